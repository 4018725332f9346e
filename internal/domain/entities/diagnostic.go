package entities

// Operator is a version comparison operator found in a requirement clause.
type Operator string

const (
	OperatorLessThan       Operator = "<"
	OperatorLessOrEqual    Operator = "<="
	OperatorGreaterThan    Operator = ">"
	OperatorGreaterOrEqual Operator = ">="
	OperatorEqual          Operator = "="
)

// IsValid reports whether op is one of the five recognized operators.
func (op Operator) IsValid() bool {
	switch op {
	case OperatorLessThan, OperatorLessOrEqual,
		OperatorGreaterThan, OperatorGreaterOrEqual, OperatorEqual:
		return true
	}
	return false
}

// MissingRequirement is a "requires X, which is not installed" diagnostic.
type MissingRequirement struct {
	RequiringPackage string // Package that declared the requirement
	RequiringVersion string // Its installed version
	Dependency       string // The missing distribution, trimmed
}

// VersionConflict is a "has requirement X, but you have Y" diagnostic.
type VersionConflict struct {
	RequiringPackage string   // Package that declared the requirement
	RequiringVersion string   // Its installed version
	Dependency       string   // The conflicting distribution
	Operator         Operator // Comparison asserted by the requirement
	RequiredVersion  string   // Boundary version (right-hand side)
	ActualVersion    string   // Version actually installed
	Condition        string   // Optional environment marker; empty when absent
}

// RepairAction is the computed fix for a single version conflict.
// ShouldApply is false when the conflict carried an environment marker that
// does not hold in the live environment.
type RepairAction struct {
	Dependency    string
	TargetVersion string
	ShouldApply   bool
}
