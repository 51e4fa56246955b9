package render

import (
	"sort"
	"strings"

	"github.com/assforge/asstk/plugin"
)

// splitOverrideTags splits the inner text of one {...} override block into individual tag
// tokens, each still carrying its leading backslash, e.g. `\b1\pos(10,20)` -> ["\b1",
// "\pos(10,20)"]. Splitting happens only at paren-depth 0 so a nested tag list inside \t(...) is
// not itself split here; buildAnimationTracks (transform.go) re-invokes this same function,
// through applyOverrideBlock, on that nested payload.
func splitOverrideTags(block string) []string {
	var out []string
	depth := 0
	start := -1
	for i := 0; i < len(block); i++ {
		switch block[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '\\':
			if depth == 0 {
				if start >= 0 {
					out = append(out, strings.TrimSpace(block[start:i]))
				}
				start = i
			}
		}
	}
	if start >= 0 {
		out = append(out, strings.TrimSpace(block[start:]))
	}
	return out
}

// sortedTagNames returns reg's registered tag names sorted by descending length, so a
// longest-prefix match tries "fscx" before "fs" and "an" before "a".
func sortedTagNames(reg *plugin.Registry) []string {
	names := reg.TagNames()
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}

// splitTagNameArgs splits one tag token's body (with the leading backslash already stripped)
// into a registered handler name and the remaining raw argument text, by longest-prefix match
// against names. names must already be sorted by descending length. Returns ok=false if no
// registered handler's name prefixes body.
func splitTagNameArgs(body string, names []string) (name, rawArgs string, ok bool) {
	for _, n := range names {
		if strings.HasPrefix(body, n) {
			return n, body[len(n):], true
		}
	}
	return "", "", false
}

// OutcomeKind classifies what happened when applying one override tag, driving the failure
// model from spec.md §4.7: unknown tags are informational only, malformed or semantically
// invalid arguments are warnings that leave the field untouched, and a handler-reported failure
// is likewise a warning.
type OutcomeKind int

const (
	OutcomeApplied OutcomeKind = iota
	OutcomeUnknown
	OutcomeMalformed
	OutcomeInvalid
	OutcomeFailed
)

// A TagOutcome records the result of applying one parsed override tag, for the issue collector
// the pipeline feeds.
type TagOutcome struct {
	Tag     string
	Kind    OutcomeKind
	Message string
}

// applyOverrideBlock walks every tag token in block, mutating state in place and returning one
// TagOutcome per token in source order. reg resolves tag names to handlers; a nil reg uses
// plugin.DefaultRegistry.
func applyOverrideBlock(reg *plugin.Registry, block string, state *plugin.AnimationState) []TagOutcome {
	if reg == nil {
		reg = plugin.DefaultRegistry
	}
	names := sortedTagNames(reg)
	tokens := splitOverrideTags(block)
	outcomes := make([]TagOutcome, 0, len(tokens))
	for _, tok := range tokens {
		outcomes = append(outcomes, applyOneToken(reg, names, tok, state))
	}
	return outcomes
}

func applyOneToken(reg *plugin.Registry, names []string, tok string, state *plugin.AnimationState) TagOutcome {
	outcome, _ := applyOneTokenCapturingTransforms(reg, names, tok, state)
	return outcome
}

// applyOverrideBlockCapturingTransforms is applyOverrideBlock's counterpart for callers (the
// segment walk) that need \t(...) blocks surfaced separately: transformHandler.Apply is
// deliberately a no-op (its effect depends on the render timestamp, which only this package
// knows), so the parsed plugin.TransformArgs must be captured here instead of discarded. It also
// honors \r inline: resetFn, if non-nil, is consulted immediately after any token sets
// state.HasReset, replacing state wholesale with the baseline resetFn returns so tags later in
// the same block layer on top of the reset style rather than the one it replaced.
func applyOverrideBlockCapturingTransforms(reg *plugin.Registry, block string, state *plugin.AnimationState, resetFn func(name string) plugin.AnimationState) ([]TagOutcome, []plugin.TransformArgs) {
	if reg == nil {
		reg = plugin.DefaultRegistry
	}
	names := sortedTagNames(reg)
	tokens := splitOverrideTags(block)
	outcomes := make([]TagOutcome, 0, len(tokens))
	var transforms []plugin.TransformArgs
	for _, tok := range tokens {
		outcome, tr := applyOneTokenCapturingTransforms(reg, names, tok, state)
		outcomes = append(outcomes, outcome)
		if tr != nil {
			transforms = append(transforms, *tr)
		}
		if state.HasReset && resetFn != nil {
			name := state.Reset
			*state = resetFn(name)
		}
	}
	return outcomes, transforms
}

func applyOneTokenCapturingTransforms(reg *plugin.Registry, names []string, tok string, state *plugin.AnimationState) (TagOutcome, *plugin.TransformArgs) {
	body := strings.TrimPrefix(tok, `\`)
	name, rawArgs, ok := splitTagNameArgs(body, names)
	if !ok {
		return TagOutcome{Tag: tok, Kind: OutcomeUnknown, Message: "no handler registered for " + tok}, nil
	}
	h, ok := reg.LookupTagHandler(name)
	if !ok {
		return TagOutcome{Tag: tok, Kind: OutcomeUnknown, Message: "no handler registered for " + tok}, nil
	}
	args, err := h.ParseArgs(rawArgs)
	if err != nil {
		return TagOutcome{Tag: tok, Kind: OutcomeMalformed, Message: err.Error()}, nil
	}
	if err := h.Validate(args); err != nil {
		return TagOutcome{Tag: tok, Kind: OutcomeInvalid, Message: err.Error()}, nil
	}
	if name == "t" {
		tr, ok := args.(plugin.TransformArgs)
		if !ok {
			return TagOutcome{Tag: tok, Kind: OutcomeFailed, Message: "t: invalid argument type"}, nil
		}
		return TagOutcome{Tag: tok, Kind: OutcomeApplied}, &tr
	}
	res := h.Apply(args, state)
	switch res.Kind {
	case plugin.Failed:
		return TagOutcome{Tag: tok, Kind: OutcomeFailed, Message: res.Message}, nil
	default:
		return TagOutcome{Tag: tok, Kind: OutcomeApplied}, nil
	}
}
