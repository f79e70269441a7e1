package browser

import (
	"context"

	"ui_verification/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Launcher defers the browser launch until a run has passed preflight
type Launcher struct {
	opts   Options
	logger *logrus.Logger
}

// NewLauncher - creates a launcher for browsers with the given options
func NewLauncher(opts Options, logger *logrus.Logger) *Launcher {
	return &Launcher{
		opts:   opts,
		logger: logger,
	}
}

// Launch - starts playwright and opens the page the run will use
func (l *Launcher) Launch(ctx context.Context) (interfaces.BrowserController, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return NewBrowserController(l.opts, l.logger)
}

// Ensure Launcher implements BrowserLauncher interface
var _ interfaces.BrowserLauncher = (*Launcher)(nil)
