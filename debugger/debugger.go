// This file is part of Cube030.
//
// Cube030 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cube030 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cube030.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/debugger/commandline"
	"github.com/jetsetilly/cube030/debugger/script"
	"github.com/jetsetilly/cube030/debugger/terminal"
	"github.com/jetsetilly/cube030/digest"
	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/logger"
	"github.com/jetsetilly/cube030/rewind"
)

// scripts can run other scripts but not without limit
const maxScriptDepth = 8

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	vm   *hardware.Machine
	term terminal.Terminal

	// lua scripts share a single state for the lifetime of the debugger.
	// globals set by one script are visible to the next
	lua *script.Lua

	// the number of scripts currently running
	scriptDepth int

	// snapshot history and the running digest of the machine state
	rewind *rewind.Rewind
	digest *digest.State

	// the QUIT command has been issued
	quit bool
}

// NewDebugger creates and initialises everything required for a new
// debugging session. Use the Start() function to actually begin the session.
func NewDebugger(vm *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	if vm == nil {
		return nil, curated.Errorf("debugger: no machine")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: no terminal")
	}

	dbg := &Debugger{
		vm:     vm,
		term:   term,
		rewind: rewind.NewRewind(vm),
		digest: digest.NewState(),
	}
	dbg.lua = script.NewLua(vm, dbg.printStyle(terminal.StyleFeedback))

	// tab completion of command keywords and keyword arguments
	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	return dbg, nil
}

// GetTerminal implements the terminal.Broker interface.
func (dbg *Debugger) GetTerminal() terminal.Terminal {
	return dbg.term
}

// Start the main debugger sequence. The initScript is run before reading
// from the terminal.
func (dbg *Debugger) Start(initScript string) error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()
	defer dbg.lua.Close()

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return dbg.inputLoop(dbg.term)
}

// inputLoop reads from the inputter until the end of input or until the
// QUIT command is issued.
func (dbg *Debugger) inputLoop(inputter terminal.Input) error {
	prompt := terminal.Prompt{Content: "cube030"}

	for !dbg.quit {
		input, err := inputter.TermRead(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				dbg.quit = true
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if !inputter.IsInteractive() {
			dbg.printLine(terminal.StyleEcho, "%s", input)
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}

		// entries logged by the command
		logger.WriteRecent(dbg.printStyle(terminal.StyleLog))
	}

	return nil
}

// parseInput splits the input into commands, separated by a semi-colon, and
// runs each one in turn. parsing stops at the first error.
func (dbg *Debugger) parseInput(input string) error {
	for _, cmd := range strings.Split(input, ";") {
		tokens := commandline.TokeniseInput(cmd)
		if tokens.Remaining() == 0 {
			continue
		}
		if err := dbg.processTokens(tokens); err != nil {
			return err
		}
		if dbg.quit {
			return nil
		}
	}
	return nil
}

// runScript runs a Lua script if the filename ends with .lua. Otherwise the
// file is treated as a command script.
func (dbg *Debugger) runScript(filename string) error {
	if dbg.scriptDepth >= maxScriptDepth {
		return curated.Errorf("debugger: scripts nested too deeply")
	}
	dbg.scriptDepth++
	defer func() {
		dbg.scriptDepth--
	}()

	if strings.EqualFold(filepath.Ext(filename), ".lua") {
		return dbg.lua.RunFile(filename)
	}

	scr, err := script.RescribeScript(filename)
	if err != nil {
		return err
	}
	return dbg.inputLoop(scr)
}
