package interfaces

import "ui_verification/domain/entities"

// ArtifactStore persists the files a run produces
type ArtifactStore interface {
	// SaveScreenshot writes a screenshot and checks it landed non-empty
	SaveScreenshot(path string, data []byte) error

	// RemoveScreenshot deletes a screenshot left by a previous run
	RemoveScreenshot(path string) error

	// SaveReport saves the run report
	SaveReport(report *entities.RunReport) error
}
