//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/envfixer/internal/domain/commands"
	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
)

// StubRepairCommand is a stub implementation of commands.Repair.
type StubRepairCommand struct {
	ExecuteCallCount int
	Summary          *entities.SessionSummary
	LastRepository   repositories.EnvironmentRepository
	LastOpts         commands.RepairOptions
}

var _ commands.Repair = (*StubRepairCommand)(nil)

func (s *StubRepairCommand) Execute(
	_ context.Context,
	repo repositories.EnvironmentRepository,
	opts commands.RepairOptions,
) *entities.SessionSummary {
	s.ExecuteCallCount++
	s.LastRepository = repo
	s.LastOpts = opts
	if s.Summary != nil {
		return s.Summary
	}
	return &entities.SessionSummary{Outcome: entities.OutcomeConvergedNoIssues}
}

// StubAuditCommand is a stub implementation of commands.Audit.
type StubAuditCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.AuditOptions
}

var _ commands.Audit = (*StubAuditCommand)(nil)

func (s *StubAuditCommand) Execute(_ context.Context, opts commands.AuditOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}

// StubScanCommand is a stub implementation of commands.Scan.
type StubScanCommand struct {
	ExecuteCallCount int
	Environments     []entities.Environment
	ExecuteErr       error
	LastRoot         string
}

var _ commands.Scan = (*StubScanCommand)(nil)

func (s *StubScanCommand) Execute(
	_ context.Context,
	root string,
) ([]entities.Environment, error) {
	s.ExecuteCallCount++
	s.LastRoot = root
	return s.Environments, s.ExecuteErr
}
