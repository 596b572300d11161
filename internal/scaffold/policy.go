package scaffold

import "fmt"

// Policy decides what happens when a destination path is already occupied.
type Policy int

const (
	// AlwaysOverwrite replaces whatever is at the path.
	AlwaysOverwrite Policy = iota
	// SkipIfExists leaves an occupied path untouched.
	SkipIfExists
)

// String returns the catalog spelling of the policy.
func (p Policy) String() string {
	switch p {
	case AlwaysOverwrite:
		return "always_overwrite"
	case SkipIfExists:
		return "skip_if_exists"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses the catalog spelling of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "always_overwrite":
		return AlwaysOverwrite, nil
	case "skip_if_exists":
		return SkipIfExists, nil
	}
	return 0, fmt.Errorf("unknown write policy %q", s)
}
