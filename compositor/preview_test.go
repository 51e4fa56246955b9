package compositor

import (
	"bytes"
	"testing"
)

func TestThumbnailNoopWhenAlreadyNarrower(t *testing.T) {
	f := Frame{Width: 10, Height: 10, Pix: make([]byte, 400)}
	got := Thumbnail(f, 20)
	if got.Width != 10 || got.Height != 10 {
		t.Fatalf("got %dx%d, want the original 10x10 unchanged", got.Width, got.Height)
	}
}

func TestThumbnailZeroMaxWidthIsNoop(t *testing.T) {
	f := Frame{Width: 10, Height: 10, Pix: make([]byte, 400)}
	got := Thumbnail(f, 0)
	if got.Width != 10 {
		t.Fatalf("got width %d, want 10", got.Width)
	}
}

func TestWritePreviewProducesKittyEscapeSequence(t *testing.T) {
	f := newFrame(2, 2)
	f.set(0, 0, 255, 0, 0, 255)
	var buf bytes.Buffer
	n, err := WritePreview(&buf, *f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Fatalf("got written count %d, buffer has %d bytes", n, buf.Len())
	}
	if !bytes.Contains(buf.Bytes(), []byte("\x1b_G")) {
		t.Fatal("expected a kitty graphics protocol escape sequence in the output")
	}
}

func TestReadPreviewRoundTripsWritePreview(t *testing.T) {
	f := newFrame(3, 2)
	f.set(0, 0, 255, 0, 0, 255)
	f.set(2, 1, 0, 255, 0, 128)
	var buf bytes.Buffer
	if _, err := WritePreview(&buf, *f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := ReadPreview(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Width != f.Width || got.Height != f.Height {
		t.Fatalf("got %dx%d, want %dx%d", got.Width, got.Height, f.Width, f.Height)
	}
	r, g, b, a := got.At(0, 0)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Fatalf("pixel (0,0) = %d,%d,%d,%d, want 255,0,0,255", r, g, b, a)
	}
}

func TestReadPreviewRejectsNonKittyData(t *testing.T) {
	if _, err := ReadPreview([]byte("not a kitty transmission")); err == nil {
		t.Fatal("expected an error for data with no kitty graphics commands")
	}
}
