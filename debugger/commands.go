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
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/debugger/commandline"
	"github.com/jetsetilly/cube030/debugger/terminal"
	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/hardware/mmu"
	"github.com/jetsetilly/cube030/logger"
	"github.com/jetsetilly/cube030/screenshot"
)

// the maximum number of bytes the PEEK command will display
const maxPeek = 0x1000

var debuggerCommands *commandline.Commands

func init() {
	var err error

	// parse command template
	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(err)
	}

	sort.Stable(debuggerCommands)

	err = debuggerCommands.AddHelp(cmdHelp, helps)
	if err != nil {
		panic(err)
	}
}

func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	// check the input against the command templates before doing anything.
	// the command implementations can assume that the tokens are well formed
	if err := debuggerCommands.ValidateTokens(tokens); err != nil {
		return err
	}

	command, _ := tokens.Get()

	var err error

	switch command {
	case cmdHelp:
		err = dbg.help(tokens)
	case cmdMap:
		err = dbg.memoryMap()
	case cmdBank:
		err = dbg.bank(tokens)
	case cmdPeek:
		err = dbg.peek(tokens)
	case cmdPoke:
		err = dbg.poke(tokens)
	case cmdTranslate:
		err = dbg.translate(tokens)
	case cmdPTest:
		err = dbg.ptest(tokens)
	case cmdMMU:
		err = dbg.mmuRegisters(tokens)
	case cmdATC:
		err = dbg.vm.Borrow(func(m *hardware.Machine) error {
			dbg.printLine(terminal.StyleInstrument, "%s", m.MMU.ATC.String())
			return nil
		})
	case cmdFlush:
		err = dbg.flush(tokens)
	case cmdStats:
		err = dbg.vm.Borrow(func(m *hardware.Machine) error {
			dbg.printLine(terminal.StyleInstrument, "%s", m.MMU.Stats)
			return nil
		})
	case cmdViz:
		err = dbg.viz(tokens)
	case cmdScript:
		filename, _ := tokens.Get()
		err = dbg.runScript(filename)
	case cmdLua:
		source := tokens.Remainder()
		for !tokens.IsEnd() {
			tokens.Get()
		}
		err = dbg.lua.RunString(source)
	case cmdLog:
		err = dbg.log(tokens)
	case cmdShot:
		err = dbg.screenshot(tokens)
	case cmdRewind:
		err = dbg.rewindHistory(tokens)
	case cmdDigest:
		err = dbg.digestState(tokens)
	case cmdReset:
		dbg.vm.Reset()
		dbg.printLine(terminal.StyleFeedback, "machine reset")
	case cmdQuit:
		dbg.quit = true
	default:
		return curated.Errorf(commandline.UnknownCommand, command)
	}

	if err != nil {
		return err
	}

	if !tokens.IsEnd() {
		return curated.Errorf(commandline.UnexpectedInput, tokens.Remainder())
	}

	return nil
}

func (dbg *Debugger) help(tokens *commandline.Tokens) error {
	keyword, ok := tokens.Get()
	if !ok {
		dbg.printLine(terminal.StyleHelp, debuggerCommands.HelpOverview())
		return nil
	}
	dbg.printLine(terminal.StyleHelp, debuggerCommands.Help(keyword))
	return nil
}

func (dbg *Debugger) memoryMap() error {
	return dbg.vm.Borrow(func(m *hardware.Machine) error {
		dbg.printLine(terminal.StyleInstrument, "%s", m.Mem.Summary())
		return nil
	})
}

func (dbg *Debugger) bank(tokens *commandline.Tokens) error {
	address, err := tokens.GetAddress()
	if err != nil {
		return err
	}
	return dbg.vm.Borrow(func(m *hardware.Machine) error {
		dbg.printLine(terminal.StyleFeedback, "$%08x %s", address, m.Mem.Label(address))
		return nil
	})
}

func (dbg *Debugger) peek(tokens *commandline.Tokens) error {
	address, err := tokens.GetAddress()
	if err != nil {
		return err
	}

	count := uint64(1)
	if !tokens.IsEnd() {
		count, err = tokens.GetNumber("count", 32)
		if err != nil {
			return err
		}
		if count == 0 || count > maxPeek {
			return curated.Errorf("peek: count must be between 1 and %d", maxPeek)
		}
	}

	return dbg.vm.Borrow(func(m *hardware.Machine) error {
		s := strings.Builder{}
		for i := uint64(0); i < count; i++ {
			a := address + uint32(i)
			if i%16 == 0 {
				if i > 0 {
					s.WriteString("\n")
				}
				s.WriteString(fmt.Sprintf("$%08x:", a))
			}
			v, err := m.Mem.Peek(a)
			if err != nil {
				if i > 0 {
					dbg.printLine(terminal.StyleInstrument, "%s", s.String())
				}
				return err
			}
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
		dbg.printLine(terminal.StyleInstrument, "%s", s.String())
		return nil
	})
}

func (dbg *Debugger) poke(tokens *commandline.Tokens) error {
	address, err := tokens.GetAddress()
	if err != nil {
		return err
	}

	var values []uint8
	for !tokens.IsEnd() {
		v, err := tokens.GetNumber("value", 8)
		if err != nil {
			return err
		}
		values = append(values, uint8(v))
	}
	return dbg.vm.Borrow(func(m *hardware.Machine) error {
		for i, v := range values {
			if err := m.Mem.Poke(address+uint32(i), v); err != nil {
				return err
			}
		}
		return nil
	})
}

// parse the optional function code and direction that follow an address.
// the function code is a number or one of UD, UP, SD, SP. the direction is R
// or W. the default access is a supervisor data read
func parseAccess(tokens *commandline.Tokens) mmu.Access {
	acc := mmu.AccessFromFC(mmu.FCSupervisorData, false)

	for !tokens.IsEnd() {
		s, _ := tokens.Get()
		switch s {
		case "UD":
			acc = mmu.AccessFromFC(mmu.FCUserData, acc.Write)
		case "UP":
			acc = mmu.AccessFromFC(mmu.FCUserProgram, acc.Write)
		case "SD":
			acc = mmu.AccessFromFC(mmu.FCSupervisorData, acc.Write)
		case "SP":
			acc = mmu.AccessFromFC(mmu.FCSupervisorProgram, acc.Write)
		case "R":
			acc.Write = false
		case "W":
			acc.Write = true
		default:
			fc, err := strconv.ParseUint(s, 0, 3)
			if err != nil {
				tokens.Unget()
				return acc
			}
			acc = mmu.AccessFromFC(uint8(fc), acc.Write)
		}
	}

	return acc
}

func (dbg *Debugger) translate(tokens *commandline.Tokens) error {
	address, err := tokens.GetAddress()
	if err != nil {
		return err
	}
	acc := parseAccess(tokens)

	return dbg.vm.Borrow(func(m *hardware.Machine) error {
		phys, sr, err := m.MMU.Probe(address, acc)
		if err != nil {
			return err
		}
		s := fmt.Sprintf("$%08x -> $%08x %s", address, phys, m.Mem.Label(phys))
		if sr.Transparent {
			s = fmt.Sprintf("%s (transparent)", s)
		}
		dbg.printLine(terminal.StyleFeedback, "%s", s)
		return nil
	})
}

func (dbg *Debugger) ptest(tokens *commandline.Tokens) error {
	address, err := tokens.GetAddress()
	if err != nil {
		return err
	}
	acc := parseAccess(tokens)

	return dbg.vm.Borrow(func(m *hardware.Machine) error {
		sr, last := m.MMU.PTest(address, acc)
		dbg.printLine(terminal.StyleFeedback, "%s=%04x %s last descriptor=$%08x", sr.Label(), sr.Value(), sr, last)
		return nil
	})
}

func (dbg *Debugger) mmuRegisters(tokens *commandline.Tokens) error {
	reg, ok := tokens.Get()
	if !ok {
		return dbg.vm.Borrow(func(m *hardware.Machine) error {
			dbg.printLine(terminal.StyleInstrument, "%s", m.MMU.String())
			return nil
		})
	}

	// the root pointers are 64 bit registers
	if reg == "SRP" || reg == "CRP" {
		v, err := tokens.GetNumber("value", 64)
		if err != nil {
			return err
		}
		return dbg.vm.Borrow(func(m *hardware.Machine) error {
			if reg == "SRP" {
				m.MMU.WriteSRP(v)
			} else {
				m.MMU.WriteCRP(v)
			}
			return nil
		})
	}

	v, err := tokens.GetNumber("value", 32)
	if err != nil {
		return err
	}
	return dbg.vm.Borrow(func(m *hardware.Machine) error {
		switch reg {
		case "TC":
			m.MMU.WriteTC(uint32(v))
		case "TT0":
			m.MMU.WriteTT0(uint32(v))
		case "TT1":
			m.MMU.WriteTT1(uint32(v))
		case "MMUSR":
			m.MMU.WriteMMUSR(uint16(v))
		}
		return nil
	})
}

func (dbg *Debugger) flush(tokens *commandline.Tokens) error {
	mode, _ := tokens.Get()

	switch mode {
	case "FC":
		fc, err := tokens.GetNumber("function code", 3)
		if err != nil {
			return err
		}
		mask, err := tokens.GetNumber("mask", 3)
		if err != nil {
			return err
		}
		return dbg.vm.Borrow(func(m *hardware.Machine) error {
			m.MMU.FlushFC(uint8(fc), uint8(mask))
			return nil
		})
	case "PAGE":
		address, err := tokens.GetAddress()
		if err != nil {
			return err
		}
		fc, err := tokens.GetNumber("function code", 3)
		if err != nil {
			return err
		}
		mask, err := tokens.GetNumber("mask", 3)
		if err != nil {
			return err
		}
		return dbg.vm.Borrow(func(m *hardware.Machine) error {
			m.MMU.FlushPage(address, uint8(fc), uint8(mask))
			return nil
		})
	}

	// FLUSH and FLUSH ALL
	return dbg.vm.Borrow(func(m *hardware.Machine) error {
		m.MMU.FlushAll()
		return nil
	})
}

func (dbg *Debugger) log(tokens *commandline.Tokens) error {
	arg, ok := tokens.Get()
	if !ok {
		logger.Write(dbg.printStyle(terminal.StyleLog))
		return nil
	}

	if arg == "CLEAR" {
		logger.Clear()
		return nil
	}

	tokens.Unget()
	n, err := tokens.GetNumber("count", 16)
	if err != nil {
		return err
	}
	logger.Tail(dbg.printStyle(terminal.StyleLog), int(n))
	return nil
}

func (dbg *Debugger) screenshot(tokens *commandline.Tokens) error {
	filename, _ := tokens.Get()

	var vram []byte
	_ = dbg.vm.Borrow(func(m *hardware.Machine) error {
		vram = append(vram, m.Mem.VRAM.Data()...)
		return nil
	})

	// success is reported by the log
	return screenshot.Save(vram, filename)
}

func (dbg *Debugger) rewindHistory(tokens *commandline.Tokens) error {
	arg, ok := tokens.Get()
	if !ok {
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.rewind)
		return nil
	}

	if arg == "SAVE" {
		label := tokens.Remainder()
		for !tokens.IsEnd() {
			tokens.Get()
		}
		if label == "" {
			label = fmt.Sprintf("snapshot %d", dbg.rewind.Len())
		}
		e, err := dbg.rewind.Save(label)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "saved %s", e)
		return nil
	}

	tokens.Unget()
	n, err := tokens.GetNumber("entry", 16)
	if err != nil {
		return err
	}
	e, err := dbg.rewind.Goto(int(n))
	if err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "rewound to %s", e)
	return nil
}

func (dbg *Debugger) digestState(tokens *commandline.Tokens) error {
	if _, ok := tokens.Get(); ok {
		dbg.digest.ResetDigest()
		dbg.printLine(terminal.StyleFeedback, "digest reset")
		return nil
	}

	s, err := dbg.vm.Snapshot()
	if err != nil {
		return err
	}
	dbg.digest.Update(s)
	dbg.printLine(terminal.StyleInstrument, "%s", dbg.digest.Hash())
	return nil
}

// write output to a file rather than the terminal
func (dbg *Debugger) toFile(filename string, f func(w *os.File) error) error {
	w, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	if err := f(w); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	dbg.printLine(terminal.StyleFeedback, "written to %s", filename)
	return nil
}
