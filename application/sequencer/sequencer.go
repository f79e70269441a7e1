package sequencer

import (
	"context"
	"fmt"
	"time"

	"ui_verification/domain/entities"
	"ui_verification/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Sequencer runs the steps of a scenario one after another against a single page
type Sequencer struct {
	launcher  interfaces.BrowserLauncher
	store     interfaces.ArtifactStore
	validator interfaces.ScenarioValidator
	logger    *logrus.Logger
	now       func() time.Time
}

// NewSequencer - creates new sequencer instance
func NewSequencer(launcher interfaces.BrowserLauncher, store interfaces.ArtifactStore, validator interfaces.ScenarioValidator, logger *logrus.Logger) *Sequencer {
	return &Sequencer{
		launcher:  launcher,
		store:     store,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// Run - validates the scenario, launches the browser and executes every step in order,
// stopping at the first failure. The browser is closed before Run returns.
// The returned report is never nil and is saved on every path; the error is a
// *entities.StepError when a step failed.
func (s *Sequencer) Run(ctx context.Context, scenario *entities.Scenario) (*entities.RunReport, error) {
	report := &entities.RunReport{
		Scenario:  scenario.Name,
		Status:    entities.RunStatusRunning,
		StartedAt: s.now(),
		Steps:     make([]entities.StepResult, 0, len(scenario.Steps)),
	}

	// A screenshot on disk must only ever come from a passing run.
	for _, path := range scenario.ScreenshotPaths() {
		if err := s.store.RemoveScreenshot(path); err != nil {
			s.skipFrom(report, scenario, 0)
			return s.finish(report, err), err
		}
	}

	if err := s.validator.Validate(ctx, scenario); err != nil {
		err = fmt.Errorf("scenario %s: %w", scenario.Name, err)
		s.logger.WithError(err).Error("Preflight failed, browser not launched")
		s.skipFrom(report, scenario, 0)
		return s.finish(report, err), err
	}

	browser, err := s.launcher.Launch(ctx)
	if err != nil {
		err = fmt.Errorf("failed to initialize browser: %w", err)
		s.logger.WithError(err).Error("Browser launch failed")
		s.skipFrom(report, scenario, 0)
		return s.finish(report, err), err
	}
	defer func() {
		if err := browser.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close browser")
		}
	}()

	s.logger.WithFields(logrus.Fields{
		"scenario": scenario.Name,
		"steps":    len(scenario.Steps),
	}).Info("Starting scenario")

	for i, step := range scenario.Steps {
		log := s.logger.WithFields(logrus.Fields{
			"step":   i + 1,
			"action": step.Type,
			"target": step.Target.String(),
		})

		if err := ctx.Err(); err != nil {
			stepErr := &entities.StepError{Index: i, Action: step.Type, Err: fmt.Errorf("run canceled: %w", err)}
			s.skipFrom(report, scenario, i)
			return s.finish(report, stepErr), stepErr
		}

		started := s.now()
		err := s.execute(ctx, browser, step, report)
		result := entities.StepResult{
			Index:      i,
			Action:     step.Type,
			Summary:    step.String(),
			Status:     entities.StepPassed,
			DurationMS: s.now().Sub(started).Milliseconds(),
		}

		if err != nil {
			result.Status = entities.StepFailed
			result.Error = err.Error()
			report.Steps = append(report.Steps, result)
			s.skipFrom(report, scenario, i+1)

			stepErr := &entities.StepError{
				Index:  i,
				Action: step.Type,
				Kind:   entities.Classify(err),
				Err:    err,
			}
			log.WithError(err).Error("Step failed")
			return s.finish(report, stepErr), stepErr
		}

		report.Steps = append(report.Steps, result)
		log.WithField("duration_ms", result.DurationMS).Info(step.String())
	}

	return s.finish(report, nil), nil
}

func (s *Sequencer) execute(ctx context.Context, browser interfaces.BrowserController, step entities.Action, report *entities.RunReport) error {
	if step.Type != entities.ActionNavigate && step.Type != entities.ActionScreenshot && step.Target == nil {
		return fmt.Errorf("%w: %s step has no target", entities.ErrInvalidScenario, step.Type)
	}

	switch step.Type {
	case entities.ActionNavigate:
		return browser.Navigate(ctx, step.URL)
	case entities.ActionFill:
		return browser.Fill(ctx, *step.Target, step.Text)
	case entities.ActionClick:
		return browser.Click(ctx, *step.Target)
	case entities.ActionSetFiles:
		return browser.SetInputFiles(ctx, *step.Target, step.Files)
	case entities.ActionExpectVisible:
		return browser.ExpectVisible(ctx, *step.Target)
	case entities.ActionScreenshot:
		data, err := browser.Screenshot(ctx, step.FullPage)
		if err != nil {
			return err
		}
		if err := s.store.SaveScreenshot(step.Path, data); err != nil {
			return err
		}
		report.Screenshot = step.Path
		return nil
	}
	return fmt.Errorf("%w: unknown action %q", entities.ErrInvalidScenario, step.Type)
}

// skipFrom - records the steps that never ran
func (s *Sequencer) skipFrom(report *entities.RunReport, scenario *entities.Scenario, from int) {
	for i := from; i < len(scenario.Steps); i++ {
		report.Steps = append(report.Steps, entities.StepResult{
			Index:   i,
			Action:  scenario.Steps[i].Type,
			Summary: scenario.Steps[i].String(),
			Status:  entities.StepSkipped,
		})
	}
}

func (s *Sequencer) finish(report *entities.RunReport, runErr error) *entities.RunReport {
	report.FinishedAt = s.now()
	if runErr != nil {
		report.Status = entities.RunStatusFailed
		report.Error = runErr.Error()
	} else {
		report.Status = entities.RunStatusPassed
	}

	if err := s.store.SaveReport(report); err != nil {
		s.logger.WithError(err).Warn("Failed to save run report")
	}
	return report
}
