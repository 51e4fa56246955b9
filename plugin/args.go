package plugin

import (
	"fmt"
	"strings"

	"github.com/assforge/asstk/ast"
)

// unwrapParens strips one layer of surrounding parentheses, if present, from a tag's raw
// argument text. Most multi-argument tags (\pos, \move, \fad, \t, ...) write their payload
// inside parens; single-value tags (\b1, \fs20) do not use them.
func unwrapParens(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && raw[0] == '(' && raw[len(raw)-1] == ')' {
		return strings.TrimSpace(raw[1 : len(raw)-1])
	}
	return raw
}

// splitArgs splits a parenthesized payload on top-level commas (depth 0 with respect to nested
// parens), matching how \t(accel, \fs(...)) nests a further tag list as its last argument.
func splitArgs(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	out = append(out, strings.TrimSpace(s[start:]))
	return out
}

func requireArgs(parts []string, n int, tag string) error {
	if len(parts) < n {
		return fmt.Errorf("%s: expected at least %d argument(s), got %d", tag, n, len(parts))
	}
	return nil
}

func parseFloatArg(s string) (float64, error) {
	f, ok := ast.ParseLooseFloat(s)
	if !ok {
		return 0, fmt.Errorf("invalid numeric argument %q", s)
	}
	return f, nil
}

func parseIntArg(s string) (int, error) {
	n, ok := ast.ParseLooseInt(s)
	if !ok {
		return 0, fmt.Errorf("invalid integer argument %q", s)
	}
	return n, nil
}

func parseBoolToggle(s string) Trilean {
	s = strings.TrimSpace(s)
	switch s {
	case "0":
		return Off
	case "1", "":
		return On
	default:
		if n, ok := ast.ParseLooseInt(s); ok && n != 0 {
			return On
		}
		return Off
	}
}
