package diagnostics

import (
	"regexp"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// conditionPattern recognizes the single supported environment marker shape:
// a python_version comparison against a quoted dotted version.
var conditionPattern = regexp.MustCompile(
	`^\s*python_version\s*(<=|>=|==|<|>|=)\s*['"]([^'"]+)['"]\s*$`,
)

// EvaluateCondition reports whether a conflict's optional environment marker
// holds for the live interpreter version.
//
// The two failure modes are deliberately asymmetric: an absent or
// unrecognized condition evaluates true (the fix applies), while a genuine
// condition that cannot be resolved because the live interpreter version is
// unknown or unparsable evaluates false (the fix is skipped).
func EvaluateCondition(condition, liveVersion string) bool {
	op, required, ok := parseCondition(condition)
	if !ok {
		return true
	}

	live := canonical(liveVersion)
	if live == "" {
		return false
	}

	return compare(op, semver.Compare(live, canonical(required)))
}

// parseCondition splits a marker into its operator and boundary version.
// ok is false for empty or unrecognized markers.
func parseCondition(condition string) (entities.Operator, string, bool) {
	trimmed := strings.TrimSpace(condition)
	if trimmed == "" {
		return "", "", false
	}

	groups := conditionPattern.FindStringSubmatch(trimmed)
	if groups == nil {
		return "", "", false
	}

	op := entities.Operator(groups[1])
	if op == "==" {
		op = entities.OperatorEqual
	}
	required := strings.TrimSpace(groups[2])
	if required == "" || canonical(required) == "" {
		return "", "", false
	}

	return op, required, true
}

// canonical converts a dotted version into the "v"-prefixed form x/mod/semver
// compares, returning "" for versions it cannot order. Shorter versions are
// zero-padded by semver's comparison rules ("3.10" orders as "3.10.0").
func canonical(version string) string {
	v := "v" + strings.TrimSpace(version)
	if !semver.IsValid(v) {
		return ""
	}
	return v
}

// compare applies an operator to a three-way comparison result.
func compare(op entities.Operator, cmp int) bool {
	switch op {
	case entities.OperatorLessThan:
		return cmp < 0
	case entities.OperatorLessOrEqual:
		return cmp <= 0
	case entities.OperatorGreaterThan:
		return cmp > 0
	case entities.OperatorGreaterOrEqual:
		return cmp >= 0
	case entities.OperatorEqual:
		return cmp == 0
	default:
		return false
	}
}
