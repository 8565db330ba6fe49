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

package screenshot

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/jetsetilly/cube030/curated"
	"github.com/jetsetilly/cube030/hardware/memory/memorymap"
	"github.com/jetsetilly/cube030/logger"
)

// Dimensions of the visible display.
const (
	Width  = 1120
	Height = 832
)

// the number of pixels in each line of video memory
const stride = 1152

// Sentinel errors.
const (
	UnknownFramebuffer = "screenshot: unknown framebuffer size (%d bytes)"
)

// Render the video memory to a new drawing context.
func Render(vram []byte) (*gg.Context, error) {
	dc := gg.NewContext(Width, Height)
	im, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, curated.Errorf("screenshot: drawing context is not RGBA")
	}

	switch len(vram) {
	case memorymap.SizeMonoVRAM:
		mono(im, vram)
	case memorymap.SizeColorVRAM:
		colour(im, vram)
	default:
		return nil, curated.Errorf(UnknownFramebuffer, len(vram))
	}

	return dc, nil
}

// Save the video memory to a PNG file.
func Save(vram []byte, filename string) error {
	dc, err := Render(vram)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	logger.Logf(logger.Allow, "screenshot", "saved: %s", filename)
	return nil
}

func mono(im *image.RGBA, vram []byte) {
	// four pixels per byte, leftmost pixel in the most significant bits
	for y := 0; y < Height; y++ {
		line := vram[y*stride/4:]
		for x := 0; x < Width; x++ {
			v := (line[x/4] >> (6 - 2*(x%4))) & 0x03
			g := 0xff - v*0x55
			im.SetRGBA(x, y, color.RGBA{R: g, G: g, B: g, A: 0xff})
		}
	}
}

// the low nibble of each pixel is not used for display and the image is
// always opaque
func colour(im *image.RGBA, vram []byte) {
	for y := 0; y < Height; y++ {
		line := vram[y*stride*2:]
		for x := 0; x < Width; x++ {
			hi := line[x*2]
			lo := line[x*2+1]
			im.SetRGBA(x, y, color.RGBA{
				R: (hi >> 4) * 0x11,
				G: (hi & 0x0f) * 0x11,
				B: (lo >> 4) * 0x11,
				A: 0xff,
			})
		}
	}
}
