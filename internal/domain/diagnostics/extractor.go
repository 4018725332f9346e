package diagnostics

import (
	"github.com/rios0rios0/envfixer/internal/domain/entities"
)

// Extraction is the structured result of parsing one batch of checker output.
type Extraction struct {
	Missing   []entities.MissingRequirement
	Conflicts []entities.VersionConflict
}

// MissingNames returns the deduplicated missing-dependency names in
// first-seen order. A dependency required by several packages is listed once.
func (e Extraction) MissingNames() []string {
	seen := make(map[string]bool, len(e.Missing))
	names := make([]string, 0, len(e.Missing))
	for _, record := range e.Missing {
		if seen[record.Dependency] {
			continue
		}
		seen[record.Dependency] = true
		names = append(names, record.Dependency)
	}
	return names
}

// Extract parses an ordered batch of diagnostic lines. Order is preserved.
// The missing-dependency grammar is tried first; the conflict grammar is only
// attempted when it does not match, so a malformed line resembling both
// shapes is never counted twice. Lines matching neither grammar are skipped.
func Extract(lines []string) Extraction {
	var result Extraction

	for _, line := range lines {
		if missing, ok := MatchMissingRequirement(line); ok {
			result.Missing = append(result.Missing, missing)
			continue
		}
		if conflict, ok := MatchVersionConflict(line); ok {
			result.Conflicts = append(result.Conflicts, conflict)
		}
	}

	return result
}
