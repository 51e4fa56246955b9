package plugin

import "fmt"

// fadHandler implements \fad(t_in, t_out): simple fade-in/fade-out durations relative to the
// event's start/end, per spec.md §4.7 step 8 and the Open Question decision recorded in
// DESIGN.md (both measured from the event's own start and end respectively, clamped to the
// event's duration).
type fadHandler struct{}

func (fadHandler) Name() string            { return "fad" }
func (fadHandler) SupportsAnimation() bool { return false }
func (fadHandler) ExpectedArgs() int       { return 2 }

func (fadHandler) ParseArgs(raw string) (any, error) {
	parts := splitArgs(unwrapParens(raw))
	if err := requireArgs(parts, 2, "fad"); err != nil {
		return nil, err
	}
	in, err := parseIntArg(parts[0])
	if err != nil {
		return nil, err
	}
	out, err := parseIntArg(parts[1])
	if err != nil {
		return nil, err
	}
	return FadeArgs{FadeInCs: in, FadeOutCs: out}, nil
}

func (fadHandler) Apply(args any, state *AnimationState) TagResult {
	f, ok := args.(FadeArgs)
	if !ok {
		return FailedResult("fad: invalid argument type")
	}
	state.Fade = &f
	return ProcessedResult()
}

func (fadHandler) Validate(args any) error {
	f, ok := args.(FadeArgs)
	if !ok {
		return fmt.Errorf("fad: expected FadeArgs")
	}
	if f.FadeInCs < 0 || f.FadeOutCs < 0 {
		return fmt.Errorf("fad: negative duration")
	}
	return nil
}

// fadeHandler implements \fade(a1, a2, a3, t1, t2, t3, t4): three alpha plateaus over four
// event-relative timestamps.
type fadeHandler struct{}

func (fadeHandler) Name() string            { return "fade" }
func (fadeHandler) SupportsAnimation() bool { return false }
func (fadeHandler) ExpectedArgs() int       { return 7 }

func (fadeHandler) ParseArgs(raw string) (any, error) {
	parts := splitArgs(unwrapParens(raw))
	if err := requireArgs(parts, 7, "fade"); err != nil {
		return nil, err
	}
	var vals [7]int
	for i := 0; i < 7; i++ {
		n, err := parseIntArg(parts[i])
		if err != nil {
			return nil, err
		}
		vals[i] = n
	}
	return FadeExArgs{
		A1: uint8(vals[0]), A2: uint8(vals[1]), A3: uint8(vals[2]),
		T1: vals[3], T2: vals[4], T3: vals[5], T4: vals[6],
	}, nil
}

func (fadeHandler) Apply(args any, state *AnimationState) TagResult {
	f, ok := args.(FadeExArgs)
	if !ok {
		return FailedResult("fade: invalid argument type")
	}
	state.FadeEx = &f
	return ProcessedResult()
}

func (fadeHandler) Validate(args any) error {
	f, ok := args.(FadeExArgs)
	if !ok {
		return fmt.Errorf("fade: expected FadeExArgs")
	}
	if f.T1 > f.T2 || f.T2 > f.T3 || f.T3 > f.T4 {
		return fmt.Errorf("fade: timestamps must be non-decreasing")
	}
	return nil
}
