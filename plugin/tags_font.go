package plugin

import "fmt"

// fontNameHandler implements \fn<name>: overrides the font family for the remainder of the
// override block's run. An empty name resets to the style's font.
type fontNameHandler struct{}

func (fontNameHandler) Name() string            { return "fn" }
func (fontNameHandler) SupportsAnimation() bool { return false }
func (fontNameHandler) ExpectedArgs() int       { return 1 }

func (fontNameHandler) ParseArgs(raw string) (any, error) {
	return unwrapParens(raw), nil
}

func (fontNameHandler) Apply(args any, state *AnimationState) TagResult {
	name, ok := args.(string)
	if !ok {
		return FailedResult("fn: invalid argument type")
	}
	if name == "" {
		state.Fontname, state.HasFontname = "", false
		return ProcessedResult()
	}
	state.Fontname = name
	state.HasFontname = true
	return ProcessedResult()
}

func (fontNameHandler) Validate(args any) error {
	if _, ok := args.(string); !ok {
		return fmt.Errorf("fn: expected a string")
	}
	return nil
}

// fontSizeHandler implements \fs<n>: overrides font size in PlayRes pixels.
type fontSizeHandler struct{}

func (fontSizeHandler) Name() string            { return "fs" }
func (fontSizeHandler) SupportsAnimation() bool { return true }
func (fontSizeHandler) ExpectedArgs() int       { return 1 }

func (fontSizeHandler) ParseArgs(raw string) (any, error) {
	return parseFloatArg(unwrapParens(raw))
}

func (fontSizeHandler) Apply(args any, state *AnimationState) TagResult {
	size, ok := args.(float64)
	if !ok {
		return FailedResult("fs: invalid argument type")
	}
	state.Fontsize = size
	state.HasFontsize = true
	return ProcessedResult()
}

func (fontSizeHandler) Validate(args any) error {
	size, ok := args.(float64)
	if !ok {
		return fmt.Errorf("fs: expected a float64")
	}
	if size <= 0 {
		return fmt.Errorf("fs: non-positive font size %v", size)
	}
	return nil
}

// fontEncodingHandler implements \fe<n>: overrides the style's charset/encoding field. It has no
// effect on layout; most shapers ignore it once the host supplies Unicode text directly. Apply
// only checks the argument type and records nothing in AnimationState.
type fontEncodingHandler struct{}

func (fontEncodingHandler) Name() string            { return "fe" }
func (fontEncodingHandler) SupportsAnimation() bool { return false }
func (fontEncodingHandler) ExpectedArgs() int       { return 1 }

func (fontEncodingHandler) ParseArgs(raw string) (any, error) {
	return parseIntArg(unwrapParens(raw))
}

func (fontEncodingHandler) Apply(args any, state *AnimationState) TagResult {
	_, ok := args.(int)
	if !ok {
		return FailedResult("fe: invalid argument type")
	}
	return ProcessedResult()
}

func (fontEncodingHandler) Validate(args any) error {
	if _, ok := args.(int); !ok {
		return fmt.Errorf("fe: expected an int")
	}
	return nil
}
