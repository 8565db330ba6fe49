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

var helps = map[string]string{
	cmdHelp:      "Lists commands and provides help for individual debugger commands",
	cmdMap:       "Display the physical memory map",
	cmdBank:      "Display the label of the bank mapped at a physical address",
	cmdPeek:      "Inspect physical memory. IO and unmapped regions cannot be inspected",
	cmdPoke:      "Modify physical memory. IO and unmapped regions cannot be modified",
	cmdTranslate: "Translate a logical address without changing the state of the MMU or memory",
	cmdPTest:     "Search the translation tables for a logical address and set the MMUSR",
	cmdMMU:       "Display the MMU registers or write to a register",
	cmdATC:       "Display the contents of the address translation cache",
	cmdFlush:     "Flush entries from the address translation cache",
	cmdStats:     "Display MMU statistics",
	cmdViz:       "Write the MMU state as a graphviz document",
	cmdScript:    "Run commands from a file. Files ending in .lua are run as Lua scripts",
	cmdLua:       "Run a line of Lua",
	cmdLog:       "Print the log, the last N entries of the log, or clear the log",
	cmdShot:      "Save the contents of video memory as a PNG image",
	cmdRewind:    "List the snapshot history, save a snapshot or restore a snapshot from the history",
	cmdDigest:    "Update the running digest with the current state of the machine and print the hash",
	cmdReset:     "Reset memory and the MMU",
	cmdQuit:      "Exits the debugger",
}

var usage = map[string]string{
	cmdHelp:      "[command]",
	cmdBank:      "<address>",
	cmdPeek:      "<address> [count]",
	cmdPoke:      "<address> <value> [value ...]",
	cmdTranslate: "<address> [UD|UP|SD|SP|fc] [R|W]",
	cmdPTest:     "<address> [UD|UP|SD|SP|fc] [R|W]",
	cmdMMU:       "[TC|SRP|CRP|TT0|TT1|MMUSR <value>]",
	cmdFlush:     "[ALL|FC <fc> <mask>|PAGE <address> <fc> <mask>]",
	cmdViz:       "[filename]",
	cmdScript:    "<filename>",
	cmdLua:       "<lua>",
	cmdLog:       "[count|CLEAR]",
	cmdShot:      "<filename>",
	cmdRewind:    "[SAVE [label]|entry]",
	cmdDigest:    "[RESET]",
}
