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

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jetsetilly/cube030/debugger"
	"github.com/jetsetilly/cube030/debugger/script"
	"github.com/jetsetilly/cube030/debugger/terminal"
	"github.com/jetsetilly/cube030/debugger/terminal/colorterm"
	"github.com/jetsetilly/cube030/debugger/terminal/plainterm"
	"github.com/jetsetilly/cube030/debugger/tui"
	"github.com/jetsetilly/cube030/hardware"
	"github.com/jetsetilly/cube030/hardware/preferences"
	"github.com/jetsetilly/cube030/logger"
	"github.com/jetsetilly/cube030/modalflag"
	"github.com/jetsetilly/cube030/paths"
	"github.com/jetsetilly/cube030/performance"
	"github.com/jetsetilly/cube030/prefs"
	"github.com/jetsetilly/cube030/statsview"
	"github.com/jetsetilly/cube030/version"
	"golang.org/x/term"
)

const defaultInitScript = "debuggerInit"

const prefsFile = "preferences"

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("MAP", "DEBUG", "VIEW", "SCRIPT", "PERFORMANCE", "VERSION")
	md.AdditionalHelp("preferences are specified as a list of key::value pairs separated by semi-colons\n" +
		"eg. -prefs \"memory.bank0::16; memory.video::color\"")

	prefsArg := md.AddString("prefs", "", "preferences applied after the preferences file")
	romFile := md.AddString("rom", "", "ROM image to load")
	echoLog := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *echoLog {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stderr))
		} else {
			logger.SetEcho(os.Stderr)
		}
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
	}

	if md.Mode() == "VERSION" {
		fmt.Println(version.String())
		return
	}

	vm, err := newMachine(*romFile)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(20)
	}

	switch md.Mode() {
	case "MAP":
		err = printMap(md, vm)
	case "DEBUG":
		err = debug(md, vm)
	case "VIEW":
		err = view(md, vm)
	case "SCRIPT":
		err = runScript(md, vm)
	case "PERFORMANCE":
		err = perform(md, vm)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// create the machine with the preferences file and load the ROM image
func newMachine(romFile string) (*hardware.Machine, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}

	p, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	vm := hardware.NewMachine(p)

	if romFile != "" {
		image, err := os.ReadFile(romFile)
		if err != nil {
			return nil, err
		}
		if err := vm.Mem.LoadROM(image); err != nil {
			return nil, err
		}
	}

	return vm, nil
}

func noArguments(md *modalflag.Modes) error {
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	return nil
}

func printMap(md *modalflag.Modes, vm *hardware.Machine) error {
	md.NewMode()
	showPrefs := md.AddBool("prefs", false, "also print the preferences in use")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	if *showPrefs {
		fmt.Println(vm.Prefs)
	}
	fmt.Print(vm.Mem.Summary())

	return nil
}

func debug(md *modalflag.Modes, vm *hardware.Machine) error {
	md.NewMode()

	defInitScript, err := paths.ResourcePath("", defaultInitScript)
	if err != nil {
		return err
	}

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("initscript", defInitScript, "script to run on debugger start")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	profile := md.AddBool("profile", false, "run debugger through cpu profiler")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout, "")
	}

	// the colour terminal requires a real terminal
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		*termType = "PLAIN"
	}

	var t terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		t = &plainterm.PlainTerminal{}
	case "COLOR":
		t = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(vm, t)
	if err != nil {
		return err
	}

	// the default init script is optional
	if *initScript == defInitScript {
		if _, err := os.Stat(*initScript); err != nil {
			*initScript = ""
		}
	}

	dbgRun := func() error {
		return dbg.Start(*initScript)
	}

	if *profile {
		if err := performance.ProfileCPU("debug.cpu.profile", dbgRun); err != nil {
			return err
		}
		if err := performance.ProfileMem("debug.mem.profile"); err != nil {
			return err
		}
	} else if err := dbgRun(); err != nil {
		return err
	}

	return vm.Prefs.Save()
}

func view(md *modalflag.Modes, vm *hardware.Machine) error {
	md.NewMode()
	refresh := md.AddDuration("refresh", time.Second, "refresh interval")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout, "")
	}

	return tui.NewTUI(vm, *refresh).Run()
}

func runScript(md *modalflag.Modes, vm *hardware.Machine) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
		scr := script.NewLua(vm, os.Stdout)
		defer scr.Close()
		return scr.RunFile(md.GetArg(0))
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

func perform(md *modalflag.Modes, vm *hardware.Machine) error {
	md.NewMode()
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if err := noArguments(md); err != nil {
		return err
	}

	return performance.Check(os.Stdout, vm, *duration, *profile)
}
