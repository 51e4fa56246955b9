package compositor

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/nfnt/resize"

	"github.com/assforge/asstk/internal/kitty"
)

// Thumbnail downscales f to fit within maxWidth pixels wide, preserving aspect ratio, via
// resize.Thumbnail/resize.Bicubic. A maxWidth of 0 or one already wider than f returns f unchanged.
func Thumbnail(f Frame, maxWidth int) Frame {
	if maxWidth <= 0 || f.Width <= maxWidth {
		return f
	}
	img := f.ToImage()
	bounds := img.Bounds()
	scaled := resize.Thumbnail(uint(maxWidth), uint(bounds.Dy()), img, resize.Bicubic)
	return *FrameFromImage(scaled)
}

// WritePreview encodes f as a PNG carried over the kitty terminal graphics protocol, so a
// composited frame can be previewed directly in a kitty-compatible terminal without a separate
// image file.
func WritePreview(w io.Writer, f Frame) (int, error) {
	return kitty.Encode(w, f.ToImage())
}

// ReadPreview decodes a kitty graphics protocol transmission (as produced by WritePreview) back
// into a Frame, reassembling chunked escape sequences via kitty.DecodeCommands and decoding the
// concatenated PNG payload. Used to verify a written preview round-trips before handing it to a
// real terminal.
func ReadPreview(data []byte) (Frame, error) {
	commands, _ := kitty.DecodeCommands(data)
	if len(commands) == 0 {
		return Frame{}, fmt.Errorf("no kitty graphics commands found in preview data")
	}
	var payload []byte
	for _, c := range commands {
		payload = append(payload, c.Payload...)
	}
	img, err := png.Decode(bytes.NewReader(payload))
	if err != nil {
		return Frame{}, fmt.Errorf("decoding preview payload: %w", err)
	}
	return *FrameFromImage(img), nil
}
