package plugin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/assforge/asstk/ast"
)

// parseAlphaByte parses a bare ASS alpha argument ("&HXX&", "HXX", or "XX") as a single hex byte
// and inverts it to conventional alpha (255 = opaque), the same inversion ast.ParseColor applies
// to a full color's alpha byte. This is distinct from ast.ParseColor, which expects an RGB(A)
// payload of 6 or 8 hex digits, not a lone byte.
func parseAlphaByte(s string) (uint8, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "&")
	s = strings.TrimPrefix(s, "H")
	s = strings.TrimPrefix(s, "h")
	s = strings.TrimSuffix(s, "&")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return 255 - uint8(v), true
}

// colorSlot identifies which of the four ASS color fields a \Nc/\Na tag targets.
type colorSlot int

const (
	slotPrimary colorSlot = iota
	slotSecondary
	slotOutline
	slotBack
)

func (s colorSlot) get(state *AnimationState) (ast.Color, bool) {
	switch s {
	case slotPrimary:
		return state.PrimaryColour, state.HasPrimaryColour
	case slotSecondary:
		return state.SecondaryColour, state.HasSecondaryColour
	case slotOutline:
		return state.OutlineColour, state.HasOutlineColour
	default:
		return state.BackColour, state.HasBackColour
	}
}

func (s colorSlot) set(state *AnimationState, c ast.Color) {
	switch s {
	case slotPrimary:
		state.PrimaryColour, state.HasPrimaryColour = c, true
	case slotSecondary:
		state.SecondaryColour, state.HasSecondaryColour = c, true
	case slotOutline:
		state.OutlineColour, state.HasOutlineColour = c, true
	default:
		state.BackColour, state.HasBackColour = c, true
	}
}

// colorHandler implements \c (primary) and \1c-\4c: sets a color field's RGB, leaving whatever
// alpha is already present (or the tag argument's own alpha if the field has not been touched
// yet this block) untouched — ASS color and alpha tags are independent.
type colorHandler struct {
	name string
	slot colorSlot
}

func (h colorHandler) Name() string            { return h.name }
func (h colorHandler) SupportsAnimation() bool { return true }
func (h colorHandler) ExpectedArgs() int       { return 1 }

func (h colorHandler) ParseArgs(raw string) (any, error) {
	c, ok := ast.ParseColor(unwrapParens(raw))
	if !ok {
		return nil, fmt.Errorf("%s: invalid color %q", h.name, raw)
	}
	return c, nil
}

func (h colorHandler) Apply(args any, state *AnimationState) TagResult {
	parsed, ok := args.(ast.Color)
	if !ok {
		return FailedResult("%s: invalid argument type", h.name)
	}
	existing, has := h.slot.get(state)
	a := parsed.A
	if has {
		a = existing.A
	}
	h.slot.set(state, ast.Color{R: parsed.R, G: parsed.G, B: parsed.B, A: a})
	return ProcessedResult()
}

func (h colorHandler) Validate(args any) error {
	if _, ok := args.(ast.Color); !ok {
		return fmt.Errorf("%s: expected an ast.Color", h.name)
	}
	return nil
}

// alphaHandler implements \alpha (all four fields) and \1a-\4a (one field): sets only the alpha
// channel of the targeted color field(s).
type alphaHandler struct {
	name string
	// slots is nil for \alpha (all four); length 1 for \Na.
	slots []colorSlot
}

func (h alphaHandler) Name() string            { return h.name }
func (h alphaHandler) SupportsAnimation() bool { return true }
func (h alphaHandler) ExpectedArgs() int       { return 1 }

func (h alphaHandler) ParseArgs(raw string) (any, error) {
	a, ok := parseAlphaByte(unwrapParens(raw))
	if !ok {
		return nil, fmt.Errorf("%s: invalid alpha value %q", h.name, raw)
	}
	return a, nil
}

func (h alphaHandler) Apply(args any, state *AnimationState) TagResult {
	alpha, ok := args.(uint8)
	if !ok {
		return FailedResult("%s: invalid argument type", h.name)
	}
	targets := h.slots
	if targets == nil {
		targets = []colorSlot{slotPrimary, slotSecondary, slotOutline, slotBack}
	}
	for _, slot := range targets {
		existing, _ := slot.get(state)
		existing.A = alpha
		slot.set(state, existing)
	}
	return ProcessedResult()
}

func (h alphaHandler) Validate(args any) error {
	if _, ok := args.(uint8); !ok {
		return fmt.Errorf("%s: expected a uint8", h.name)
	}
	return nil
}
