package entities

import "fmt"

// ActionType represents the type of UI operation a step performs
type ActionType string

const (
	ActionNavigate      ActionType = "navigate"
	ActionFill          ActionType = "fill"
	ActionClick         ActionType = "click"
	ActionSetFiles      ActionType = "set_files"
	ActionExpectVisible ActionType = "expect_visible"
	ActionScreenshot    ActionType = "screenshot"
)

// Action represents a single step of a scenario
type Action struct {
	Type        ActionType `json:"type" yaml:"type"`
	Target      *Target    `json:"target,omitempty" yaml:"target,omitempty"`
	URL         string     `json:"url,omitempty" yaml:"url,omitempty"`
	Text        string     `json:"text,omitempty" yaml:"text,omitempty"`
	Files       []string   `json:"files,omitempty" yaml:"files,omitempty"`
	Path        string     `json:"path,omitempty" yaml:"path,omitempty"`
	FullPage    bool       `json:"full_page,omitempty" yaml:"full_page,omitempty"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// String - returns a short human readable form used in logs and reports
func (a Action) String() string {
	if a.Description != "" {
		return a.Description
	}
	switch a.Type {
	case ActionNavigate:
		return fmt.Sprintf("navigate to %s", a.URL)
	case ActionScreenshot:
		return fmt.Sprintf("screenshot to %s", a.Path)
	case ActionSetFiles:
		return fmt.Sprintf("set files %v on %s", a.Files, a.Target)
	case ActionFill:
		return fmt.Sprintf("fill %s", a.Target)
	}
	return fmt.Sprintf("%s %s", a.Type, a.Target)
}

// StepStatus represents the outcome of a single step
type StepStatus string

const (
	StepPassed  StepStatus = "passed"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

// StepResult represents the result of an executed step
type StepResult struct {
	Index      int        `json:"index"`
	Action     ActionType `json:"action"`
	Summary    string     `json:"summary"`
	Status     StepStatus `json:"status"`
	DurationMS int64      `json:"duration_ms"`
	Error      string     `json:"error,omitempty"`
}
