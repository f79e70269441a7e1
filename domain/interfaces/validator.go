package interfaces

import (
	"context"

	"ui_verification/domain/entities"
)

// ScenarioValidator defines the interface for checks run before the browser starts
type ScenarioValidator interface {
	// Validate returns every problem found in the scenario
	Validate(ctx context.Context, scenario *entities.Scenario) error
}
