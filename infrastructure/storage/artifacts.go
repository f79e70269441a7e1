package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ui_verification/domain/entities"
	"ui_verification/domain/interfaces"
)

type artifactStore struct {
	reportPath string
}

// NewArtifactStore - creates a store writing screenshots and, when reportPath is set, a JSON run report
func NewArtifactStore(reportPath string) interfaces.ArtifactStore {
	return &artifactStore{
		reportPath: reportPath,
	}
}

// SaveScreenshot - writes screenshot bytes, overwriting any previous file
func (s *artifactStore) SaveScreenshot(path string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("screenshot for %s is empty", path)
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write screenshot: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("screenshot not written: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("screenshot %s is empty on disk", path)
	}
	return nil
}

// RemoveScreenshot - deletes a stale screenshot, a missing file is not an error
func (s *artifactStore) RemoveScreenshot(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove stale screenshot: %w", err)
	}
	return nil
}

// SaveReport - saves the run report as JSON
func (s *artifactStore) SaveReport(report *entities.RunReport) error {
	if s.reportPath == "" {
		return nil
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := ensureDir(s.reportPath); err != nil {
		return err
	}
	if err := os.WriteFile(s.reportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// LoadReport - reads a report written by SaveReport
func LoadReport(path string) (*entities.RunReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var report entities.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
