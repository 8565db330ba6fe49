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

// Package screenshot renders the contents of video memory as an image. Both
// the monochrome framebuffer (two bits per pixel, 0 is white and 3 is black)
// and the colour framebuffer (16 bits per pixel, four bits each of red,
// green and blue followed by four unused bits) are understood. The type of framebuffer is decided
// by the size of video memory.
//
// The visible display is 1120x832 pixels. Each line in memory is padded to
// 1152 pixels.
package screenshot
