package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ui_verification/application/flows"
	"ui_verification/application/sequencer"
	"ui_verification/domain/entities"
	"ui_verification/infrastructure/browser"
	"ui_verification/infrastructure/config"
	"ui_verification/infrastructure/preflight"
	"ui_verification/infrastructure/scenario"
	"ui_verification/infrastructure/storage"

	"github.com/sirupsen/logrus"
)

type TerminalInterface struct {
	config    *config.Config
	scenario  *entities.Scenario
	sequencer *sequencer.Sequencer
	logger    *logrus.Logger
	out       io.Writer
}

func NewTerminalInterface() (*TerminalInterface, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.LogLevel)
	if !cfg.EnvFileLoaded {
		logger.Debug(".env file not found, using environment variables")
	}

	scn, err := LoadScenario(cfg)
	if err != nil {
		return nil, err
	}

	// Preflight runs inside the sequencer, ahead of the browser launch
	launcher := browser.NewLauncher(browser.Options{
		Headless:        cfg.Headless,
		TimeoutMS:       cfg.TimeoutMS,
		InstallBrowsers: cfg.InstallBrowsers,
	}, logger)
	store := storage.NewArtifactStore(cfg.ReportPath)
	validator := preflight.NewValidator(logger)

	return &TerminalInterface{
		config:    cfg,
		scenario:  scn,
		sequencer: sequencer.NewSequencer(launcher, store, validator, logger),
		logger:    logger,
		out:       os.Stdout,
	}, nil
}

// NewLogger - builds the process logger, unknown levels fall back to info
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("Unknown log level %q, using info", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// LoadScenario - returns the scenario file when configured, the built-in chat upload flow otherwise
func LoadScenario(cfg *config.Config) (*entities.Scenario, error) {
	if cfg.ScenarioFile != "" {
		scn, err := scenario.Load(cfg.ScenarioFile)
		if err != nil {
			return nil, fmt.Errorf("scenario file %s: %w", cfg.ScenarioFile, err)
		}
		return scn, nil
	}

	return flows.ChatImageUpload(flows.ChatUploadParams{
		BaseURL:        cfg.BaseURL,
		Email:          cfg.Email,
		Password:       cfg.Password,
		LoginButton:    cfg.LoginButton,
		MessageButton:  cfg.MessageButton,
		ImagePath:      cfg.ImagePath,
		Caption:        cfg.Caption,
		ScreenshotPath: cfg.ScreenshotPath,
	}), nil
}

func (t *TerminalInterface) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := t.sequencer.Run(ctx, t.scenario)
	if err != nil {
		return err
	}

	fmt.Fprintf(t.out, "Scenario %s passed in %s\n", report.Scenario, report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
	if report.Screenshot != "" {
		fmt.Fprintf(t.out, "Screenshot: %s\n", report.Screenshot)
	}
	return nil
}
