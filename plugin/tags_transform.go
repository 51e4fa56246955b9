package plugin

import (
	"fmt"
	"strings"
)

// TransformArgs is a parsed \t(...) invocation in one of its four forms: \t(tags),
// \t(accel, tags), \t(t1, t2, tags), \t(t1, t2, accel, tags). Times are event-relative
// centiseconds; HasTiming distinguishes the two-argument forms that omit t1/t2 (the render
// pipeline then uses the whole event duration). Tags is the unparsed inner tag-invocation text,
// split out for the render package's animation controller (spec.md §4.7.2) to resolve against
// each named sub-tag's own handler.
type TransformArgs struct {
	HasTiming  bool
	T1, T2     int
	Accel      float64
	Tags       string
}

type transformHandler struct{}

func (transformHandler) Name() string            { return "t" }
func (transformHandler) SupportsAnimation() bool { return false }
func (transformHandler) ExpectedArgs() int       { return -1 }

// ParseArgs splits \t's payload into leading numeric arguments (0-3 of them) and a trailing tag
// list, the last top-level comma-separated field. Accel defaults to 1 (linear).
func (transformHandler) ParseArgs(raw string) (any, error) {
	body := unwrapParens(raw)
	parts := splitArgs(body)
	if len(parts) == 0 || (len(parts) == 1 && parts[0] == "") {
		return nil, fmt.Errorf("t: missing tag list")
	}

	t := TransformArgs{Accel: 1}
	tagsIndex := len(parts) - 1
	switch len(parts) {
	case 1:
		// \t(tags)
	case 2:
		// \t(accel, tags)
		accel, err := parseFloatArg(parts[0])
		if err != nil {
			return nil, err
		}
		t.Accel = accel
	case 3:
		// \t(t1, t2, tags)
		t1, err := parseIntArg(parts[0])
		if err != nil {
			return nil, err
		}
		t2, err := parseIntArg(parts[1])
		if err != nil {
			return nil, err
		}
		t.HasTiming = true
		t.T1, t.T2 = t1, t2
	default:
		// \t(t1, t2, accel, tags...): anything beyond 4 top-level fields means the tag list
		// itself contained an unescaped top-level comma, which splitArgs cannot distinguish
		// from another \t argument; rejoin everything after the third comma as the tag list.
		t1, err := parseIntArg(parts[0])
		if err != nil {
			return nil, err
		}
		t2, err := parseIntArg(parts[1])
		if err != nil {
			return nil, err
		}
		accel, err := parseFloatArg(parts[2])
		if err != nil {
			return nil, err
		}
		t.HasTiming = true
		t.T1, t.T2 = t1, t2
		t.Accel = accel
		tagsIndex = -1
		t.Tags = strings.Join(parts[3:], ",")
	}
	if tagsIndex >= 0 {
		t.Tags = parts[tagsIndex]
	}
	return t, nil
}

// Apply records the transform for the render package's animation controller to pick up and
// evaluate per-frame; \t never mutates AnimationState's discrete fields directly, since its
// effect depends on the current render timestamp.
func (transformHandler) Apply(args any, state *AnimationState) TagResult {
	_, ok := args.(TransformArgs)
	if !ok {
		return FailedResult("t: invalid argument type")
	}
	return ProcessedResult()
}

func (transformHandler) Validate(args any) error {
	t, ok := args.(TransformArgs)
	if !ok {
		return fmt.Errorf("t: expected TransformArgs")
	}
	if t.HasTiming && t.T2 < t.T1 {
		return fmt.Errorf("t: t2 (%d) precedes t1 (%d)", t.T2, t.T1)
	}
	if strings.TrimSpace(t.Tags) == "" {
		return fmt.Errorf("t: empty tag list")
	}
	return nil
}
