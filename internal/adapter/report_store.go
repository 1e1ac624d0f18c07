package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/splice/internal/model"
)

// ReportStore persists and retrieves rank reports.
type ReportStore interface {
	SaveReport(path m.Path, report m.RankReport) error
	LoadReport(path m.Path) (m.RankReport, error)
}

// LocalReportStore stores reports as YAML files.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to path as YAML, creating parent directories.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.RankReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a YAML report from path.
func (rs *LocalReportStore) LoadReport(path m.Path) (m.RankReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RankReport{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.RankReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RankReport{}, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	return report, nil
}
