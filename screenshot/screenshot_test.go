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

package screenshot_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/screenshot"
	"github.com/jetsetilly/cube030/test"
)

func TestMono(t *testing.T) {
	vram := make([]byte, memorymap.SizeMonoVRAM)

	// first four pixels of the first line are white, light grey, dark grey
	// and black
	vram[0] = 0x1b

	// last visible pixel on the second line is black
	vram[288+279] = 0x03

	dc, err := screenshot.Render(vram)
	test.DemandSuccess(t, err)
	im := dc.Image()

	test.ExpectEquality(t, im.Bounds(), image.Rect(0, 0, screenshot.Width, screenshot.Height))
	test.ExpectEquality(t, color.RGBAModel.Convert(im.At(0, 0)), color.Color(color.RGBA{0xff, 0xff, 0xff, 0xff}))
	test.ExpectEquality(t, color.RGBAModel.Convert(im.At(1, 0)), color.Color(color.RGBA{0xaa, 0xaa, 0xaa, 0xff}))
	test.ExpectEquality(t, color.RGBAModel.Convert(im.At(2, 0)), color.Color(color.RGBA{0x55, 0x55, 0x55, 0xff}))
	test.ExpectEquality(t, color.RGBAModel.Convert(im.At(3, 0)), color.Color(color.RGBA{0x00, 0x00, 0x00, 0xff}))
	test.ExpectEquality(t, color.RGBAModel.Convert(im.At(1119, 1)), color.Color(color.RGBA{0x00, 0x00, 0x00, 0xff}))
	test.ExpectEquality(t, color.RGBAModel.Convert(im.At(1118, 1)), color.Color(color.RGBA{0xff, 0xff, 0xff, 0xff}))
}

func TestColour(t *testing.T) {
	vram := make([]byte, memorymap.SizeColorVRAM)

	// pixel 1 of line 2
	vram[2*2304+2] = 0xf0
	vram[2*2304+3] = 0x8f

	// pixel 2 of line 2 has a low nibble of zero
	vram[2*2304+4] = 0x0f
	vram[2*2304+5] = 0x00

	dc, err := screenshot.Render(vram)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, color.RGBAModel.Convert(dc.Image().At(1, 2)), color.Color(color.RGBA{0xff, 0x00, 0x88, 0xff}))
	test.ExpectEquality(t, color.RGBAModel.Convert(dc.Image().At(2, 2)), color.Color(color.RGBA{0x00, 0xff, 0x00, 0xff}))

	// an empty framebuffer is opaque black
	test.ExpectEquality(t, color.RGBAModel.Convert(dc.Image().At(0, 0)), color.Color(color.RGBA{0x00, 0x00, 0x00, 0xff}))
}

func TestUnknownFramebuffer(t *testing.T) {
	_, err := screenshot.Render(make([]byte, 100))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, screenshot.UnknownFramebuffer))
}

func TestSave(t *testing.T) {
	vram := make([]byte, memorymap.SizeMonoVRAM)
	vram[0] = 0xc0

	fn := filepath.Join(t.TempDir(), "screen.png")
	test.DemandSuccess(t, screenshot.Save(vram, fn))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	im, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, im.Bounds().Dx(), screenshot.Width)
	r, g, b, _ := im.At(0, 0).RGBA()
	test.ExpectEquality(t, r|g|b, uint32(0))
}
