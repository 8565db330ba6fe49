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

// debugger keywords
const (
	cmdHelp  = "HELP"
	cmdReset = "RESET"
	cmdQuit  = "QUIT"

	// memory
	cmdMap  = "MAP"
	cmdBank = "BANK"
	cmdPeek = "PEEK"
	cmdPoke = "POKE"
	cmdShot = "SCREENSHOT"

	// mmu
	cmdTranslate = "TRANSLATE"
	cmdPTest     = "PTEST"
	cmdMMU       = "MMU"
	cmdATC       = "ATC"
	cmdFlush     = "FLUSH"
	cmdStats     = "STATS"
	cmdViz       = "VIZ"

	// scripting
	cmdScript = "SCRIPT"
	cmdLua    = "LUA"

	// meta
	cmdLog    = "LOG"
	cmdRewind = "REWIND"
	cmdDigest = "DIGEST"
)

var commandTemplate = []string{
	cmdReset,
	cmdQuit,

	cmdMap,
	cmdBank + " %<address>N",
	cmdPeek + " %<address>N (%<count>N)",
	cmdPoke + " %<address>N %<value>N {%<value>N}",
	cmdShot + " %<filename>F",

	cmdTranslate + " %<address>N (UD|UP|SD|SP|%<function code>N) (R|W)",
	cmdPTest + " %<address>N (UD|UP|SD|SP|%<function code>N) (R|W)",
	cmdMMU + " ([TC|TT0|TT1|MMUSR|SRP|CRP] %<value>N)",
	cmdATC,
	cmdFlush + " (ALL|FC %<function code>N %<mask>N|PAGE %<address>N %<function code>N %<mask>N)",
	cmdStats,
	cmdViz + " (%<filename>F)",

	cmdScript + " %<file>F",
	cmdLua + " %<lua>S {%<lua>S}",

	cmdLog + " (CLEAR|%<count>N)",
	cmdRewind + " (SAVE {%<label>S}|%<entry>N)",
	cmdDigest + " (RESET)",
}
