package ast

import "testing"

func TestParseColorAlphaLess(t *testing.T) {
	c, ok := ParseColor("&H0000FF&")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if c.R != 0xFF || c.G != 0x00 || c.B != 0x00 || c.A != 255 {
		t.Fatalf("got %+v", c)
	}
}

func TestParseColorWithAlpha(t *testing.T) {
	// &H800000FF& -> alpha stored 0x80 inverted -> 255-128=127, B=G=0, R=0xFF.
	c, ok := ParseColor("&H800000FF&")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if c.R != 0xFF || c.G != 0x00 || c.B != 0x00 {
		t.Fatalf("got %+v", c)
	}
	if c.A != 255-0x80 {
		t.Fatalf("expected A=%d, got %d", 255-0x80, c.A)
	}
}

func TestParseColorFullyTransparent(t *testing.T) {
	c, ok := ParseColor("&HFF000000&")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if c.A != 0 {
		t.Fatalf("expected fully transparent, got A=%d", c.A)
	}
}

func TestParseColorTolerantPrefixes(t *testing.T) {
	for _, s := range []string{"&H0000FF&", "H0000FF", "0000FF", "&0000FF&"} {
		c, ok := ParseColor(s)
		if !ok {
			t.Fatalf("expected %q to parse", s)
		}
		if c.R != 0xFF {
			t.Fatalf("%q: got %+v", s, c)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, s := range []string{"", "&H&", "zzzzzz"} {
		if _, ok := ParseColor(s); ok {
			t.Fatalf("expected %q to fail", s)
		}
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	orig := "&H80102030&"
	c, ok := ParseColor(orig)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if got := c.String(); got != orig {
		t.Fatalf("round trip: got %q want %q", got, orig)
	}
}

func TestOpaque(t *testing.T) {
	c := Opaque(10, 20, 30)
	if c.A != 255 {
		t.Fatalf("expected opaque, got %+v", c)
	}
}
