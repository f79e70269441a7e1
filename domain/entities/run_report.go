package entities

import "time"

// RunReport represents the outcome of one scenario run
type RunReport struct {
	Scenario   string       `json:"scenario"`
	Status     RunStatus    `json:"status"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Steps      []StepResult `json:"steps"`
	Screenshot string       `json:"screenshot,omitempty"` // last screenshot written
	Error      string       `json:"error,omitempty"`
}

// Failed - reports whether the run ended with an error
func (r *RunReport) Failed() bool {
	return r.Status == RunStatusFailed
}
