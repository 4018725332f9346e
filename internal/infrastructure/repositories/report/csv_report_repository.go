// Package report persists audit results as CSV files.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rios0rios0/envfixer/internal/domain/entities"
	"github.com/rios0rios0/envfixer/internal/domain/repositories"
)

// CSVReportRepository implements repositories.ReportRepository with plain
// CSV files, one row per package or per environment.
type CSVReportRepository struct{}

var _ repositories.ReportRepository = (*CSVReportRepository)(nil)

// NewCSVReportRepository creates a new CSVReportRepository.
func NewCSVReportRepository() *CSVReportRepository {
	return &CSVReportRepository{}
}

// WritePackageReport writes the per-package audit rows.
func (r *CSVReportRepository) WritePackageReport(
	path string,
	rows []repositories.PackageRow,
) error {
	records := [][]string{{
		"Environment Name",
		"Python Version",
		"Environment Location",
		"Package",
		"Version",
		"Last Access Time",
		"Days Since Last Access",
	}}

	for _, row := range rows {
		records = append(records, []string{
			row.Environment.Name,
			row.Interpreter,
			row.Prefix,
			row.Package.Name,
			row.Package.Version,
			formatTime(row.Package.LastAccess),
			formatDays(row.Package.LastAccess, row.Package.DaysSinceAccess),
		})
	}

	return writeCSV(path, records)
}

// WriteEnvironmentReport writes the per-environment audit rows.
func (r *CSVReportRepository) WriteEnvironmentReport(
	path string,
	rows []entities.EnvironmentReport,
) error {
	records := [][]string{{
		"Environment Name",
		"Environment Path",
		"Python Version",
		"Environment Location",
		"Environment Last Access Time",
		"Pip Check Output",
	}}

	for _, row := range rows {
		records = append(records, []string{
			row.Name,
			row.Path,
			row.InterpreterVersion,
			row.Prefix,
			formatTime(row.LastAccess),
			row.CheckOutput,
		})
	}

	return writeCSV(path, records)
}

// writeCSV writes all records to path, creating or truncating the file.
func writeCSV(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if writeErr := writer.WriteAll(records); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", path, writeErr)
	}
	return nil
}

// formatTime renders a timestamp, or the empty string when it was never set.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// formatDays renders the staleness column, blank when the package folder
// was not found.
func formatDays(lastAccess time.Time, days float64) string {
	if lastAccess.IsZero() {
		return ""
	}
	return strconv.FormatFloat(days, 'f', 2, 64)
}
