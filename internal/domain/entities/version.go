package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// borrowSentinel is used when decrementing across a component boundary:
// "4.3.0" minus the smallest unit becomes "4.2.999". It is a guess at a
// high-enough component value, not a value known to exist in any index.
const borrowSentinel = 999

// Version is a dotted numeric version split into its three components.
// Missing components parse as zero, so "4.3" and "4.3.0" are the same value.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses "major[.minor[.patch]]" into a Version.
// Components beyond the third are rejected, as are non-numeric components.
func ParseVersion(raw string) (Version, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) > 3 {
		return Version{}, fmt.Errorf("version %q has more than three components", raw)
	}

	components := [3]int{}
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil || value < 0 {
			return Version{}, fmt.Errorf("version %q has invalid component %q", raw, part)
		}
		components[i] = value
	}

	return Version{Major: components[0], Minor: components[1], Patch: components[2]}, nil
}

// String renders the version in full three-component form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 comparing v against other component-wise.
func (v Version) Compare(other Version) int {
	pairs := [3][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, pair := range pairs {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// NextAbove returns the version immediately above v, approximated by
// incrementing the patch component only. There is deliberately no rollover
// into minor or major.
func (v Version) NextAbove() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// NextBelow returns the version immediately below v, borrowing across
// components with the 999 sentinel. The zero version has no lower neighbor
// and is returned unchanged; callers must tolerate that degenerate case.
func (v Version) NextBelow() Version {
	switch {
	case v.Patch >= 1:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch - 1}
	case v.Minor >= 1:
		return Version{Major: v.Major, Minor: v.Minor - 1, Patch: borrowSentinel}
	case v.Major >= 1:
		return Version{Major: v.Major - 1, Minor: borrowSentinel, Patch: borrowSentinel}
	default:
		return v
	}
}

// FixTarget computes the concrete version to request so that the installed
// dependency satisfies "op boundary". This is a heuristic: it derives a
// plausible version string from the boundary alone and never consults a
// package index, so the guessed version may not exist. Replacing it with a
// real resolver would change which version gets requested and is an
// observable behavior change, not a fix.
func FixTarget(op Operator, boundary Version) Version {
	switch op {
	case OperatorGreaterThan:
		return boundary.NextAbove()
	case OperatorLessThan:
		return boundary.NextBelow()
	case OperatorEqual, OperatorLessOrEqual, OperatorGreaterOrEqual:
		return boundary
	default:
		return boundary
	}
}
