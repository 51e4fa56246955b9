package plugin

import "fmt"

// posHandler implements \pos(x,y): overrides the alignment anchor's placement, per spec.md §4.7
// step 7.
type posHandler struct{}

func (posHandler) Name() string            { return "pos" }
func (posHandler) SupportsAnimation() bool { return false }
func (posHandler) ExpectedArgs() int       { return 2 }

func (posHandler) ParseArgs(raw string) (any, error) {
	parts := splitArgs(unwrapParens(raw))
	if err := requireArgs(parts, 2, "pos"); err != nil {
		return nil, err
	}
	x, err := parseFloatArg(parts[0])
	if err != nil {
		return nil, err
	}
	y, err := parseFloatArg(parts[1])
	if err != nil {
		return nil, err
	}
	return Point{X: x, Y: y}, nil
}

func (posHandler) Apply(args any, state *AnimationState) TagResult {
	p, ok := args.(Point)
	if !ok {
		return FailedResult("pos: invalid argument type")
	}
	state.Pos = &p
	return ProcessedResult()
}

func (posHandler) Validate(args any) error {
	if _, ok := args.(Point); !ok {
		return fmt.Errorf("pos: expected a Point")
	}
	return nil
}

// moveHandler implements \move(x1,y1,x2,y2[,t1,t2]): linear position interpolation over the
// event's active window, clamped to [t1, t2] if given, else the full event duration.
type moveHandler struct{}

func (moveHandler) Name() string            { return "move" }
func (moveHandler) SupportsAnimation() bool { return false }
func (moveHandler) ExpectedArgs() int       { return -1 }

func (moveHandler) ParseArgs(raw string) (any, error) {
	parts := splitArgs(unwrapParens(raw))
	if err := requireArgs(parts, 4, "move"); err != nil {
		return nil, err
	}
	vals := make([]float64, 4)
	for i := 0; i < 4; i++ {
		f, err := parseFloatArg(parts[i])
		if err != nil {
			return nil, err
		}
		vals[i] = f
	}
	m := MoveArgs{From: Point{X: vals[0], Y: vals[1]}, To: Point{X: vals[2], Y: vals[3]}}
	if len(parts) >= 6 {
		t1, err := parseIntArg(parts[4])
		if err != nil {
			return nil, err
		}
		t2, err := parseIntArg(parts[5])
		if err != nil {
			return nil, err
		}
		m.HasTiming = true
		m.T1, m.T2 = t1, t2
	}
	return m, nil
}

func (moveHandler) Apply(args any, state *AnimationState) TagResult {
	m, ok := args.(MoveArgs)
	if !ok {
		return FailedResult("move: invalid argument type")
	}
	state.Move = &m
	return ProcessedResult()
}

func (moveHandler) Validate(args any) error {
	m, ok := args.(MoveArgs)
	if !ok {
		return fmt.Errorf("move: expected MoveArgs")
	}
	if m.HasTiming && m.T2 < m.T1 {
		return fmt.Errorf("move: t2 (%d) precedes t1 (%d)", m.T2, m.T1)
	}
	return nil
}

// originHandler implements \org(x,y): sets the rotation origin, default the bounding-box center.
type originHandler struct{}

func (originHandler) Name() string            { return "org" }
func (originHandler) SupportsAnimation() bool { return false }
func (originHandler) ExpectedArgs() int       { return 2 }

func (originHandler) ParseArgs(raw string) (any, error) {
	parts := splitArgs(unwrapParens(raw))
	if err := requireArgs(parts, 2, "org"); err != nil {
		return nil, err
	}
	x, err := parseFloatArg(parts[0])
	if err != nil {
		return nil, err
	}
	y, err := parseFloatArg(parts[1])
	if err != nil {
		return nil, err
	}
	return Point{X: x, Y: y}, nil
}

func (originHandler) Apply(args any, state *AnimationState) TagResult {
	p, ok := args.(Point)
	if !ok {
		return FailedResult("org: invalid argument type")
	}
	state.Origin = &p
	return ProcessedResult()
}

func (originHandler) Validate(args any) error {
	if _, ok := args.(Point); !ok {
		return fmt.Errorf("org: expected a Point")
	}
	return nil
}
