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

// Package tui is a full screen, read-only view of the machine. The physical
// memory map, the MMU registers and the contents of the ATC are shown in
// separate panes and are refreshed periodically. Press q or Ctrl-C to quit.
package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/hardware/mmu"
	"github.com/jetsetilly/cube030/logger"
	"github.com/jroimartin/gocui"
)

// names of the panes
const (
	paneMap = "map"
	paneMMU = "mmu"
	paneATC = "atc"
	paneLog = "log"
)

// the number of log entries shown in the log pane
const logLines = 6

// TUI is the full screen viewer.
type TUI struct {
	vm      *hardware.Machine
	refresh time.Duration
}

// NewTUI is the preferred method of initialisation for the TUI type. The
// panes are redrawn at the refresh interval.
func NewTUI(vm *hardware.Machine, refresh time.Duration) *TUI {
	if refresh <= 0 {
		refresh = time.Second
	}
	return &TUI{
		vm:      vm,
		refresh: refresh,
	}
}

// Run the viewer. Returns when the user quits.
func (tui *TUI) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return curated.Errorf("tui: %v", err)
	}
	defer g.Close()

	g.SetManagerFunc(tui.layout)

	for _, k := range []any{gocui.KeyCtrlC, 'q'} {
		if err := g.SetKeybinding("", k, gocui.ModNone, quit); err != nil {
			return curated.Errorf("tui: %v", err)
		}
	}

	done := make(chan bool)
	defer close(done)

	go func() {
		ticker := time.NewTicker(tui.refresh)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				g.Update(tui.draw)
			}
		}
	}()

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return curated.Errorf("tui: %v", err)
	}

	return nil
}

func quit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

func (tui *TUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	splitX := maxX / 2
	splitY := maxY - logLines - 3

	panes := []struct {
		name           string
		title          string
		x0, y0, x1, y1 int
	}{
		{paneMap, "Memory Map", 0, 0, splitX - 1, splitY},
		{paneMMU, "MMU", splitX, 0, maxX - 1, splitY / 2},
		{paneATC, "ATC", splitX, splitY/2 + 1, maxX - 1, splitY},
		{paneLog, "Log", 0, splitY + 1, maxX - 1, maxY - 1},
	}

	created := false
	for _, p := range panes {
		v, err := g.SetView(p.name, p.x0, p.y0, p.x1, p.y1)
		if err != nil {
			if !errors.Is(err, gocui.ErrUnknownView) {
				return err
			}
			v.Title = p.title
			created = true
		}
	}

	// draw immediately rather than waiting for the first tick
	if created {
		return tui.draw(g)
	}

	return nil
}

// draw every pane
func (tui *TUI) draw(g *gocui.Gui) error {
	renderers := map[string]func(io.Writer, *hardware.Machine){
		paneMap: renderMap,
		paneMMU: renderMMU,
		paneATC: renderATC,
	}

	for name, r := range renderers {
		v, err := g.View(name)
		if err != nil {
			return err
		}
		v.Clear()
		_ = tui.vm.Borrow(func(m *hardware.Machine) error {
			r(v, m)
			return nil
		})
	}

	v, err := g.View(paneLog)
	if err != nil {
		return err
	}
	v.Clear()
	logger.Tail(v, logLines)

	return nil
}

func renderMap(w io.Writer, m *hardware.Machine) {
	for _, r := range m.Mem.Summary() {
		fmt.Fprintf(w, "%s\n", r)
	}
}

func renderMMU(w io.Writer, m *hardware.Machine) {
	fmt.Fprintf(w, "%s\n", m.MMU)
	fmt.Fprintf(w, "%s\n", m.MMU.Stats)
}

func renderATC(w io.Writer, m *hardware.Machine) {
	n := 0
	for i, e := range m.MMU.ATC.Entries {
		if e.Valid() {
			fmt.Fprintf(w, "%2d %s\n", i, e)
			n++
		}
	}
	if n == 0 {
		fmt.Fprintf(w, "empty (%d entries)\n", mmu.ATCEntries)
	}
}
