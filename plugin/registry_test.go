package plugin

import "testing"

func TestRegisterAndLookupTagHandler(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterTagHandler(posHandler{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, ok := reg.LookupTagHandler("pos")
	if !ok {
		t.Fatal("expected to find pos handler")
	}
	if h.Name() != "pos" {
		t.Fatalf("got %q", h.Name())
	}
	if _, ok := reg.LookupTagHandler("nope"); ok {
		t.Fatal("expected lookup miss for unregistered tag")
	}
}

func TestRegisterDuplicateTagHandlerFails(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterTagHandler(posHandler{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := reg.RegisterTagHandler(posHandler{})
	if err == nil {
		t.Fatal("expected a duplicate-handler error")
	}
	if _, ok := err.(*DuplicateHandlerError); !ok {
		t.Fatalf("expected *DuplicateHandlerError, got %T", err)
	}
}

type stubSection struct{ name string }

func (s stubSection) Name() string { return s.name }
func (s stubSection) Process(header string, lines []string) SectionResult {
	return ProcessedSection()
}
func (s stubSection) Validate(header string, lines []string) error { return nil }

func TestRegisterAndLookupSectionProcessor(t *testing.T) {
	reg := NewRegistry()
	if err := reg.RegisterSectionProcessor(stubSection{name: "Aegisub Project Garbage"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := reg.LookupSectionProcessor("Aegisub Project Garbage")
	if !ok || p.Name() != "Aegisub Project Garbage" {
		t.Fatalf("got %+v, %v", p, ok)
	}
}

func TestRegisterDefaultsCoversBuiltinTagList(t *testing.T) {
	reg := NewRegistry()
	if err := RegisterDefaults(reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{
		"pos", "move", "fn", "fs", "fe", "a", "an", "q",
		"k", "K", "kf", "ko", "kt", "t", "fad", "fade",
		"fr", "frx", "fry", "frz", "org", "r",
		"c", "1c", "2c", "3c", "4c", "alpha", "1a", "2a", "3a", "4a",
		"fscx", "fscy", "bord", "shad", "blur", "be", "clip", "iclip", "p",
	} {
		if _, ok := reg.LookupTagHandler(name); !ok {
			t.Fatalf("expected built-in handler for %q", name)
		}
	}
}

func TestClearRemovesRegistrations(t *testing.T) {
	reg := NewRegistry()
	_ = reg.RegisterTagHandler(posHandler{})
	reg.Clear()
	if _, ok := reg.LookupTagHandler("pos"); ok {
		t.Fatal("expected registry to be empty after Clear")
	}
}
