package entities

// Scenario represents an ordered list of UI operations run against one page
type Scenario struct {
	Name  string   `json:"name" yaml:"name"`
	Steps []Action `json:"steps" yaml:"steps"`
}

// ScreenshotPaths - returns every path a screenshot step of the scenario writes to
func (s *Scenario) ScreenshotPaths() []string {
	var paths []string
	for _, step := range s.Steps {
		if step.Type == ActionScreenshot && step.Path != "" {
			paths = append(paths, step.Path)
		}
	}
	return paths
}

// RunStatus represents the status of a scenario run
type RunStatus string

const (
	RunStatusPending RunStatus = "pending"
	RunStatusRunning RunStatus = "running"
	RunStatusPassed  RunStatus = "passed"
	RunStatusFailed  RunStatus = "failed"
)
