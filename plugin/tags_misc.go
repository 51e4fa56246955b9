package plugin

import (
	"fmt"
	"strings"
)

// toggleField identifies which boolean-ish style flag a \b/\i/\u/\s tag targets.
type toggleField int

const (
	toggleBold toggleField = iota
	toggleItalic
	toggleUnderline
	toggleStrikeOut
)

// toggleHandler implements \b, \i, \u, \s: 0/1 (or any nonzero, or a bold weight like \b700)
// toggles. \b additionally accepts font-weight values (100-900); any value other than 0 is
// treated as "on" for the boolean fields this state tracks, leaving weight-level fidelity to the
// render package's font lookup.
type toggleHandler struct {
	name  string
	field toggleField
}

func (h toggleHandler) Name() string            { return h.name }
func (h toggleHandler) SupportsAnimation() bool { return false }
func (h toggleHandler) ExpectedArgs() int       { return 1 }

func (h toggleHandler) ParseArgs(raw string) (any, error) {
	return parseBoolToggle(unwrapParens(raw)), nil
}

func (h toggleHandler) Apply(args any, state *AnimationState) TagResult {
	v, ok := args.(Trilean)
	if !ok {
		return FailedResult("%s: invalid argument type", h.name)
	}
	switch h.field {
	case toggleBold:
		state.Bold = v
	case toggleItalic:
		state.Italic = v
	case toggleUnderline:
		state.Underline = v
	default:
		state.StrikeOut = v
	}
	return ProcessedResult()
}

func (h toggleHandler) Validate(args any) error {
	if _, ok := args.(Trilean); !ok {
		return fmt.Errorf("%s: expected a Trilean", h.name)
	}
	return nil
}

// resetHandler implements \r[style]: resets the cumulative override state back to a named
// style (or the event's own style when the argument is empty). The render pipeline performs the
// actual reset (it has the ResolvedStyle table); the handler only records which name was asked
// for.
type resetHandler struct{}

func (resetHandler) Name() string            { return "r" }
func (resetHandler) SupportsAnimation() bool { return false }
func (resetHandler) ExpectedArgs() int       { return -1 }

func (resetHandler) ParseArgs(raw string) (any, error) {
	return strings.TrimSpace(unwrapParens(raw)), nil
}

func (resetHandler) Apply(args any, state *AnimationState) TagResult {
	name, ok := args.(string)
	if !ok {
		return FailedResult("r: invalid argument type")
	}
	state.Reset = name
	state.HasReset = true
	return ProcessedResult()
}

func (resetHandler) Validate(args any) error {
	if _, ok := args.(string); !ok {
		return fmt.Errorf("r: expected a string")
	}
	return nil
}

// rotationHandler implements \fr (z-axis, alias \frz), \frx, \fry.
type rotationAxis int

const (
	axisZ rotationAxis = iota
	axisX
	axisY
)

type rotationHandler struct {
	name string
	axis rotationAxis
}

func (h rotationHandler) Name() string            { return h.name }
func (h rotationHandler) SupportsAnimation() bool { return true }
func (h rotationHandler) ExpectedArgs() int       { return 1 }

func (h rotationHandler) ParseArgs(raw string) (any, error) {
	return parseFloatArg(unwrapParens(raw))
}

func (h rotationHandler) Apply(args any, state *AnimationState) TagResult {
	deg, ok := args.(float64)
	if !ok {
		return FailedResult("%s: invalid argument type", h.name)
	}
	switch h.axis {
	case axisX:
		state.AngleX, state.HasAngleX = deg, true
	case axisY:
		state.AngleY, state.HasAngleY = deg, true
	default:
		state.Angle, state.HasAngle = deg, true
	}
	return ProcessedResult()
}

func (h rotationHandler) Validate(args any) error {
	if _, ok := args.(float64); !ok {
		return fmt.Errorf("%s: expected a float64", h.name)
	}
	return nil
}

// scaleHandler implements \fscx, \fscy: percentage scale factors.
type scaleAxis int

const (
	scaleX scaleAxis = iota
	scaleY
)

type scaleHandler struct {
	name string
	axis scaleAxis
}

func (h scaleHandler) Name() string            { return h.name }
func (h scaleHandler) SupportsAnimation() bool { return true }
func (h scaleHandler) ExpectedArgs() int       { return 1 }

func (h scaleHandler) ParseArgs(raw string) (any, error) {
	return parseFloatArg(unwrapParens(raw))
}

func (h scaleHandler) Apply(args any, state *AnimationState) TagResult {
	pct, ok := args.(float64)
	if !ok {
		return FailedResult("%s: invalid argument type", h.name)
	}
	if h.axis == scaleX {
		state.ScaleX, state.HasScaleX = pct, true
	} else {
		state.ScaleY, state.HasScaleY = pct, true
	}
	return ProcessedResult()
}

func (h scaleHandler) Validate(args any) error {
	pct, ok := args.(float64)
	if !ok {
		return fmt.Errorf("%s: expected a float64", h.name)
	}
	if pct < 0 {
		return fmt.Errorf("%s: negative scale %v", h.name, pct)
	}
	return nil
}

// spacingHandler implements \fsp: extra inter-character spacing in PlayRes pixels.
type spacingHandler struct{}

func (spacingHandler) Name() string            { return "fsp" }
func (spacingHandler) SupportsAnimation() bool { return true }
func (spacingHandler) ExpectedArgs() int       { return 1 }

func (spacingHandler) ParseArgs(raw string) (any, error) {
	return parseFloatArg(unwrapParens(raw))
}

func (spacingHandler) Apply(args any, state *AnimationState) TagResult {
	v, ok := args.(float64)
	if !ok {
		return FailedResult("fsp: invalid argument type")
	}
	state.Spacing, state.HasSpacing = v, true
	return ProcessedResult()
}

func (spacingHandler) Validate(args any) error {
	if _, ok := args.(float64); !ok {
		return fmt.Errorf("fsp: expected a float64")
	}
	return nil
}

// borderFieldHandler implements \bord, \shad, \blur, \be: border width, shadow depth, and blur
// radius/passes (\be is treated as an alias blur strength, like \blur).
type borderField int

const (
	fieldBord borderField = iota
	fieldShad
	fieldBlur
)

type borderFieldHandler struct {
	name  string
	field borderField
}

func (h borderFieldHandler) Name() string            { return h.name }
func (h borderFieldHandler) SupportsAnimation() bool { return true }
func (h borderFieldHandler) ExpectedArgs() int       { return 1 }

func (h borderFieldHandler) ParseArgs(raw string) (any, error) {
	return parseFloatArg(unwrapParens(raw))
}

func (h borderFieldHandler) Apply(args any, state *AnimationState) TagResult {
	v, ok := args.(float64)
	if !ok {
		return FailedResult("%s: invalid argument type", h.name)
	}
	switch h.field {
	case fieldBord:
		state.Outline, state.HasOutline = v, true
	case fieldShad:
		state.Shadow, state.HasShadow = v, true
	default:
		state.Blur, state.HasBlur = v, true
	}
	return ProcessedResult()
}

func (h borderFieldHandler) Validate(args any) error {
	v, ok := args.(float64)
	if !ok {
		return fmt.Errorf("%s: expected a float64", h.name)
	}
	if v < 0 {
		return fmt.Errorf("%s: negative value %v", h.name, v)
	}
	return nil
}

// clipHandler implements \clip(...) and \iclip(...), in both their rectangle and drawing-path
// forms: 4 numeric args is a rectangle, anything else is a drawing-mode vector path (optionally
// prefixed by a scale argument, which is kept verbatim in Path; the render package tessellates
// Path at scale 1 and does not apply that prefix).
type clipHandler struct {
	inverse bool
}

func (h clipHandler) Name() string {
	if h.inverse {
		return "iclip"
	}
	return "clip"
}
func (h clipHandler) SupportsAnimation() bool { return false }
func (h clipHandler) ExpectedArgs() int       { return -1 }

func (h clipHandler) ParseArgs(raw string) (any, error) {
	parts := splitArgs(unwrapParens(raw))
	c := ClipArgs{Inverse: h.inverse}
	if len(parts) == 4 {
		vals := make([]float64, 4)
		allNumeric := true
		for i, p := range parts {
			f, err := parseFloatArg(p)
			if err != nil {
				allNumeric = false
				break
			}
			vals[i] = f
		}
		if allNumeric {
			c.HasRect = true
			c.X1, c.Y1, c.X2, c.Y2 = vals[0], vals[1], vals[2], vals[3]
			return c, nil
		}
	}
	c.Path = unwrapParens(raw)
	return c, nil
}

func (h clipHandler) Apply(args any, state *AnimationState) TagResult {
	c, ok := args.(ClipArgs)
	if !ok {
		return FailedResult("%s: invalid argument type", h.Name())
	}
	state.Clip = &c
	return ProcessedResult()
}

func (h clipHandler) Validate(args any) error {
	if _, ok := args.(ClipArgs); !ok {
		return fmt.Errorf("%s: expected ClipArgs", h.Name())
	}
	return nil
}

// drawingHandler implements \p<n>: drawing-mode scale level; n == 0 disables drawing mode.
type drawingHandler struct{}

func (drawingHandler) Name() string            { return "p" }
func (drawingHandler) SupportsAnimation() bool { return false }
func (drawingHandler) ExpectedArgs() int       { return 1 }

func (drawingHandler) ParseArgs(raw string) (any, error) {
	return parseIntArg(unwrapParens(raw))
}

func (drawingHandler) Apply(args any, state *AnimationState) TagResult {
	n, ok := args.(int)
	if !ok {
		return FailedResult("p: invalid argument type")
	}
	state.DrawingMode, state.HasDrawingMode = n, true
	return ProcessedResult()
}

func (drawingHandler) Validate(args any) error {
	if _, ok := args.(int); !ok {
		return fmt.Errorf("p: expected an int")
	}
	return nil
}
