//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/envfixer/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// VersionConflictBuilder helps create test conflicts with a fluent interface.
type VersionConflictBuilder struct {
	*testkit.BaseBuilder
	requiringPackage string
	requiringVersion string
	dependency       string
	operator         entities.Operator
	requiredVersion  string
	actualVersion    string
	condition        string
}

// NewVersionConflictBuilder creates a new conflict builder with sensible defaults.
func NewVersionConflictBuilder() *VersionConflictBuilder {
	return &VersionConflictBuilder{
		BaseBuilder:      testkit.NewBaseBuilder(),
		requiringPackage: "requests",
		requiringVersion: "2.28.0",
		dependency:       "urllib3",
		operator:         entities.OperatorLessThan,
		requiredVersion:  "1.27.0",
		actualVersion:    "2.0.0",
		condition:        "",
	}
}

// WithDependency sets the conflicting dependency name.
func (b *VersionConflictBuilder) WithDependency(name string) *VersionConflictBuilder {
	b.dependency = name
	return b
}

// WithOperator sets the comparison operator.
func (b *VersionConflictBuilder) WithOperator(op entities.Operator) *VersionConflictBuilder {
	b.operator = op
	return b
}

// WithRequiredVersion sets the boundary version.
func (b *VersionConflictBuilder) WithRequiredVersion(version string) *VersionConflictBuilder {
	b.requiredVersion = version
	return b
}

// WithActualVersion sets the installed version.
func (b *VersionConflictBuilder) WithActualVersion(version string) *VersionConflictBuilder {
	b.actualVersion = version
	return b
}

// WithCondition sets the environment marker.
func (b *VersionConflictBuilder) WithCondition(condition string) *VersionConflictBuilder {
	b.condition = condition
	return b
}

// Build creates the conflict (satisfies testkit.Builder interface).
func (b *VersionConflictBuilder) Build() interface{} {
	return b.BuildVersionConflict()
}

// BuildVersionConflict creates the conflict with a concrete return type.
func (b *VersionConflictBuilder) BuildVersionConflict() entities.VersionConflict {
	return entities.VersionConflict{
		RequiringPackage: b.requiringPackage,
		RequiringVersion: b.requiringVersion,
		Dependency:       b.dependency,
		Operator:         b.operator,
		RequiredVersion:  b.requiredVersion,
		ActualVersion:    b.actualVersion,
		Condition:        b.condition,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *VersionConflictBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.requiringPackage = "requests"
	b.requiringVersion = "2.28.0"
	b.dependency = "urllib3"
	b.operator = entities.OperatorLessThan
	b.requiredVersion = "1.27.0"
	b.actualVersion = "2.0.0"
	b.condition = ""
	return b
}

// Clone creates a deep copy of the VersionConflictBuilder.
func (b *VersionConflictBuilder) Clone() testkit.Builder {
	return &VersionConflictBuilder{
		BaseBuilder:      b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		requiringPackage: b.requiringPackage,
		requiringVersion: b.requiringVersion,
		dependency:       b.dependency,
		operator:         b.operator,
		requiredVersion:  b.requiredVersion,
		actualVersion:    b.actualVersion,
		condition:        b.condition,
	}
}
