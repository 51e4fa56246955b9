package ast

// Version identifies which dialect of the format a Script was authored against, as declared by
// the ScriptInfo section's ScriptType key (spec.md §4.2).
type Version int

const (
	// VersionUnknown is the zero value: no ScriptType key was found, or it did not match a
	// recognized value.
	VersionUnknown Version = iota
	SsaV4
	AssV4
	AssV4Plus
)

func (v Version) String() string {
	switch v {
	case SsaV4:
		return "SSA v4.00"
	case AssV4:
		return "ASS v4.00+"
	case AssV4Plus:
		return "ASS v4.00++"
	default:
		return "unknown"
	}
}

// ParseVersion maps a ScriptType value to a Version, per spec.md §4.2.
func ParseVersion(scriptType string) Version {
	switch scriptType {
	case "v4.00":
		return SsaV4
	case "v4.00+":
		return AssV4
	case "v4.00++", "v4.00+ extended":
		return AssV4Plus
	default:
		return VersionUnknown
	}
}
