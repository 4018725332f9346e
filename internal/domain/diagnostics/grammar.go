// Package diagnostics parses the consistency checker's free-form output into
// structured records and evaluates their applicability against the live
// environment. It is pure logic with no process-invocation concerns.
package diagnostics

import (
	"regexp"
	"strings"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// The two diagnostic shapes emitted by pip check:
//
//	tqdm 4.63.0 requires importlib-resources, which is not installed.
//	pkg 1.0.0 has requirement dep<2.0; python_version < "3.10", but you have dep 2.1.
//
// The operator alternation lists two-character operators first so that "<="
// is never read as "<" followed by a stray "=". The dependency capture
// excludes operator characters, and the condition capture stops at the first
// comma.
var (
	missingPattern = regexp.MustCompile(
		`(\S+) (\S+) requires ([^,]+), which is not installed\.`,
	)
	conflictPattern = regexp.MustCompile(
		`(\S+) (\S+) has requirement ([^<>=\s]+)(<=|>=|==|<|>|=)([^;,\s]+)` +
			`(?:;([^,]*))?.*?but you have (\S+) (\S+?)\.?$`,
	)
)

// MatchMissingRequirement matches a line against the missing-dependency
// grammar. Lines that do not match are not an error; ok is simply false.
func MatchMissingRequirement(line string) (entities.MissingRequirement, bool) {
	groups := missingPattern.FindStringSubmatch(line)
	if groups == nil {
		return entities.MissingRequirement{}, false
	}

	dependency := strings.TrimSpace(groups[3])
	if dependency == "" {
		return entities.MissingRequirement{}, false
	}

	return entities.MissingRequirement{
		RequiringPackage: groups[1],
		RequiringVersion: groups[2],
		Dependency:       dependency,
	}, true
}

// MatchVersionConflict matches a line against the version-conflict grammar.
// An absent condition clause is a valid match with an empty Condition.
func MatchVersionConflict(line string) (entities.VersionConflict, bool) {
	groups := conflictPattern.FindStringSubmatch(line)
	if groups == nil {
		return entities.VersionConflict{}, false
	}

	op := normalizeOperator(groups[4])
	if !op.IsValid() {
		return entities.VersionConflict{}, false
	}

	if _, err := entities.ParseVersion(groups[5]); err != nil {
		return entities.VersionConflict{}, false
	}

	return entities.VersionConflict{
		RequiringPackage: groups[1],
		RequiringVersion: groups[2],
		Dependency:       groups[3],
		Operator:         op,
		RequiredVersion:  groups[5],
		ActualVersion:    groups[8],
		Condition:        strings.TrimSpace(groups[6]),
	}, true
}

// normalizeOperator folds pip's "==" into the canonical "=" operator.
func normalizeOperator(raw string) entities.Operator {
	if raw == "==" {
		return entities.OperatorEqual
	}
	return entities.Operator(raw)
}
