// Package compositor rasterizes the ordered layer sequence package render produces for one
// frame into a final raster image, the last stage spec.md §4.7 describes ("ready for
// compositing"). Grounded on renderer/renderer.go's own image handling in renderImage: decode/
// resize/encode through the standard image package plus github.com/nfnt/resize, with no font
// rasterizer of its own — glyph shaping is the external "concrete font-file loader and glyph
// rasterizer" collaborator spec.md §1 calls out, the same boundary render's own measureApprox
// fallback already assumes.
package compositor

import "github.com/assforge/asstk/render"

// A Compositor turns one frame's layer sequence into a raster image of the given pixel
// dimensions.
type Compositor interface {
	Composite(layers []render.Layer, width, height int) (Frame, error)
}

// A Frame is a composited raster frame: plain RGBA pixel data at a fixed size, the form every
// encode/downscale/preview helper in this package consumes.
type Frame struct {
	Width, Height int
	Pix           []byte // 4 bytes per pixel, row-major, non-premultiplied RGBA
}

// At returns the RGBA pixel at (x, y). Out-of-bounds coordinates return the zero value
// (transparent black).
func (f Frame) At(x, y int) (r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0, 0, 0, 0
	}
	i := (y*f.Width + x) * 4
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]
}

func (f *Frame) set(x, y int, r, g, b, a uint8) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 4
	f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = r, g, b, a
}

func newFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pix: make([]byte, width*height*4)}
}
