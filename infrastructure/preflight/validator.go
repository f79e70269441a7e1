package preflight

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"

	"ui_verification/domain/entities"
	"ui_verification/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Validator checks a scenario before any browser is launched
type Validator struct {
	logger *logrus.Logger
}

func NewValidator(logger *logrus.Logger) *Validator {
	return &Validator{
		logger: logger,
	}
}

func (v *Validator) Validate(ctx context.Context, scenario *entities.Scenario) error {
	if scenario == nil || len(scenario.Steps) == 0 {
		return fmt.Errorf("%w: scenario has no steps", entities.ErrInvalidScenario)
	}

	var errs []error
	for i, step := range scenario.Steps {
		if err := v.validateStep(ctx, step); err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i+1, step.Type, err))
		}
	}

	if len(errs) > 0 {
		v.logger.WithField("problems", len(errs)).Warn("Scenario failed preflight")
	}
	return errors.Join(errs...)
}

func (v *Validator) validateStep(ctx context.Context, step entities.Action) error {
	switch step.Type {
	case entities.ActionNavigate:
		return v.validateURL(step.URL)
	case entities.ActionFill, entities.ActionClick, entities.ActionExpectVisible:
		return v.validateTarget(step.Target)
	case entities.ActionSetFiles:
		if err := v.validateTarget(step.Target); err != nil {
			return err
		}
		return v.validateFiles(step.Files)
	case entities.ActionScreenshot:
		if step.Path == "" {
			return fmt.Errorf("%w: screenshot path is empty", entities.ErrInvalidScenario)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown action %q", entities.ErrInvalidScenario, step.Type)
}

func (v *Validator) validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", entities.ErrInvalidScenario, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute http(s) url", entities.ErrInvalidScenario, raw)
	}
	return nil
}

func (v *Validator) validateTarget(target *entities.Target) error {
	if target == nil {
		return fmt.Errorf("%w: target is missing", entities.ErrInvalidScenario)
	}

	switch target.By {
	case entities.ByRole:
		if target.Role == "" {
			return fmt.Errorf("%w: role target without role", entities.ErrInvalidScenario)
		}
	case entities.ByLabel, entities.ByPlaceholder, entities.ByText, entities.BySelector:
		if target.Value == "" {
			return fmt.Errorf("%w: %s target without value", entities.ErrInvalidScenario, target.By)
		}
	default:
		return fmt.Errorf("%w: unknown locator kind %q", entities.ErrInvalidScenario, target.By)
	}

	if target.Regexp {
		if target.By == entities.BySelector {
			return fmt.Errorf("%w: css selectors cannot be regular expressions", entities.ErrInvalidScenario)
		}
		if _, err := regexp.Compile(target.Value); err != nil {
			return fmt.Errorf("%w: %w", entities.ErrInvalidScenario, err)
		}
	}
	return nil
}

func (v *Validator) validateFiles(files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: no files to upload", entities.ErrInvalidScenario)
	}
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return fmt.Errorf("%w: %s", entities.ErrFileNotFound, file)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s is not a regular file", entities.ErrFileNotFound, file)
		}
	}
	return nil
}

// Ensure Validator implements ScenarioValidator interface
var _ interfaces.ScenarioValidator = (*Validator)(nil)
