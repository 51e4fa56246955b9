package plugin

import "fmt"

// legacyAlignToAn converts the legacy \a (SSA-style bitflag alignment: 1-3 bottom, 5-7 top+0x4,
// 9-11 middle+0x8, plus 0x4 "top of screen") to a numpad \an value, since the render pipeline's
// anchor math (spec.md §4.7 step 7) is expressed entirely in numpad terms.
func legacyAlignToAn(a int) int {
	base := a & 0x3
	switch {
	case a&0x8 != 0: // middle-left/center/right (9..11)
		return 3 + base
	case a&0x4 != 0: // top-left/center/right (5..7)
		return 6 + base
	default: // bottom-left/center/right (1..3)
		return base
	}
}

// alignHandler implements the legacy \a<n> alignment tag.
type alignHandler struct{}

func (alignHandler) Name() string            { return "a" }
func (alignHandler) SupportsAnimation() bool { return false }
func (alignHandler) ExpectedArgs() int       { return 1 }

func (alignHandler) ParseArgs(raw string) (any, error) {
	return parseIntArg(unwrapParens(raw))
}

func (alignHandler) Apply(args any, state *AnimationState) TagResult {
	n, ok := args.(int)
	if !ok {
		return FailedResult("a: invalid argument type")
	}
	state.Alignment = legacyAlignToAn(n)
	state.HasAlignment = true
	return ProcessedResult()
}

func (alignHandler) Validate(args any) error {
	n, ok := args.(int)
	if !ok {
		return fmt.Errorf("a: expected an int")
	}
	an := legacyAlignToAn(n)
	if an < 1 || an > 9 {
		return fmt.Errorf("a: legacy alignment %d maps out of range numpad value %d", n, an)
	}
	return nil
}

// anHandler implements \an<n>: numpad alignment, 1-9.
type anHandler struct{}

func (anHandler) Name() string            { return "an" }
func (anHandler) SupportsAnimation() bool { return false }
func (anHandler) ExpectedArgs() int       { return 1 }

func (anHandler) ParseArgs(raw string) (any, error) {
	return parseIntArg(unwrapParens(raw))
}

func (anHandler) Apply(args any, state *AnimationState) TagResult {
	n, ok := args.(int)
	if !ok {
		return FailedResult("an: invalid argument type")
	}
	if n < 1 || n > 9 {
		return FailedResult("an: alignment %d out of numpad range 1-9", n)
	}
	state.Alignment = n
	state.HasAlignment = true
	return ProcessedResult()
}

func (anHandler) Validate(args any) error {
	n, ok := args.(int)
	if !ok {
		return fmt.Errorf("an: expected an int")
	}
	if n < 1 || n > 9 {
		return fmt.Errorf("an: alignment %d out of numpad range 1-9", n)
	}
	return nil
}

// qHandler implements \q<n>: per-event wrap style override, 0-3.
type qHandler struct{}

func (qHandler) Name() string            { return "q" }
func (qHandler) SupportsAnimation() bool { return false }
func (qHandler) ExpectedArgs() int       { return 1 }

func (qHandler) ParseArgs(raw string) (any, error) {
	return parseIntArg(unwrapParens(raw))
}

func (qHandler) Apply(args any, state *AnimationState) TagResult {
	n, ok := args.(int)
	if !ok {
		return FailedResult("q: invalid argument type")
	}
	if n < 0 || n > 3 {
		return FailedResult("q: wrap style %d out of range 0-3", n)
	}
	state.WrapStyle = n
	state.HasWrapStyle = true
	return ProcessedResult()
}

func (qHandler) Validate(args any) error {
	n, ok := args.(int)
	if !ok {
		return fmt.Errorf("q: expected an int")
	}
	if n < 0 || n > 3 {
		return fmt.Errorf("q: wrap style %d out of range 0-3", n)
	}
	return nil
}
