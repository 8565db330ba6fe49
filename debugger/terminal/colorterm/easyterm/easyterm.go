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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry, and wraps termios methods in functions with friendlier
// names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/cube030/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal).
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated by the signal handler
	mu sync.Mutex
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(input, output *os.File) error {
	if input == nil {
		return curated.Errorf("easyterm: requires an input file")
	}
	if output == nil {
		return curated.Errorf("easyterm: requires an output file")
	}

	et.input = input
	et.output = output

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	_ = et.UpdateGeometry()

	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode.
func (et *EasyTerm) CleanUp() {
	et.CanonicalMode()
	et.terminateHandlerSig <- true
	<-et.terminateHandlerAck
}

// TermPrint writes the string to the output file.
func (et *EasyTerm) TermPrint(s string) {
	et.output.WriteString(s)
}

// TermPrintf writes the formatted string to the output file.
func (et *EasyTerm) TermPrintf(s string, a ...any) {
	et.output.WriteString(fmt.Sprintf(s, a...))
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	et.mu.Lock()
	defer et.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf("easyterm: updating terminal geometry: %v", err)
	}
	et.Geometry.Rows = ws.Row
	et.Geometry.Cols = ws.Col
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr)
}

// Flush makes sure the terminal's input buffer is empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}
