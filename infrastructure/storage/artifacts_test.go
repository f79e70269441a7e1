package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ui_verification/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveScreenshot_CreatesDirectoriesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "verification.png")
	store := NewArtifactStore("")

	require.NoError(t, store.SaveScreenshot(path, []byte("first run")))
	require.NoError(t, store.SaveScreenshot(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSaveScreenshot_RejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verification.png")

	err := NewArtifactStore("").SaveScreenshot(path, nil)
	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestRemoveScreenshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verification.png")
	store := NewArtifactStore("")

	require.NoError(t, store.RemoveScreenshot(path), "missing file is fine")

	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))
	require.NoError(t, store.RemoveScreenshot(path))
	assert.NoFileExists(t, path)
}

func TestSaveReport(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "reports", "run.json")
	started := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	report := &entities.RunReport{
		Scenario:   "chat-image-upload",
		Status:     entities.RunStatusFailed,
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
		Steps: []entities.StepResult{
			{Index: 0, Action: entities.ActionNavigate, Summary: "open the app", Status: entities.StepPassed, DurationMS: 120},
			{Index: 1, Action: entities.ActionExpectVisible, Summary: "wait", Status: entities.StepFailed, Error: "visibility timeout"},
		},
		Error: "step 2 (expect_visible): visibility timeout",
	}

	require.NoError(t, NewArtifactStore(reportPath).SaveReport(report))

	loaded, err := LoadReport(reportPath)
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}

func TestSaveReport_DisabledWithoutPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, NewArtifactStore("").SaveReport(&entities.RunReport{Scenario: "x"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveReport_WrapsWriteError(t *testing.T) {
	// a directory where the report file should go
	reportPath := t.TempDir()

	err := NewArtifactStore(reportPath).SaveReport(&entities.RunReport{Scenario: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")

	var pathErr *os.PathError
	assert.ErrorAs(t, err, &pathErr)
}
