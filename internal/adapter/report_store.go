package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"
	m "oaks.dev/pkg/hygiene/internal/model"
)

// ReportStore persists machine-readable results of a check run.
type ReportStore interface {
	SavePlacementReport(path m.Path, report m.PlacementReport) error
}

type yamlReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore returns a ReportStore writing YAML documents through fs.
func NewReportStore(fs SourceFSAdapter) ReportStore {
	return &yamlReportStore{fs: fs}
}

func (s *yamlReportStore) SavePlacementReport(path m.Path, report m.PlacementReport) error {
	if report.Violations == nil {
		report.Violations = []m.Violation{}
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}
