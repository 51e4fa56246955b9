package compositor

import "image"

// ToImage converts f to a standard library image.RGBA, the form png.Encode, resize.Thumbnail,
// and internal/kitty's protocol encoder all expect.
func (f Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	copy(img.Pix, f.Pix)
	return img
}

// FrameFromImage converts any image.Image into a Frame, flattening its color model to RGBA.
func FrameFromImage(img image.Image) *Frame {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	f := newFrame(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			f.set(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
		}
	}
	return f
}
