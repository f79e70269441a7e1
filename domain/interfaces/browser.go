package interfaces

import (
	"context"

	"ui_verification/domain/entities"
)

// BrowserController defines the interface for browser automation
type BrowserController interface {
	// Navigate navigates to a URL
	Navigate(ctx context.Context, url string) error

	// Fill replaces the value of an input field
	Fill(ctx context.Context, target entities.Target, text string) error

	// Click clicks on an element
	Click(ctx context.Context, target entities.Target) error

	// SetInputFiles attaches local files to a file input or the chooser the target opens
	SetInputFiles(ctx context.Context, target entities.Target, files []string) error

	// ExpectVisible blocks until the target is visible or the timeout expires
	ExpectVisible(ctx context.Context, target entities.Target) error

	// Screenshot takes a screenshot of the page
	Screenshot(ctx context.Context, fullPage bool) ([]byte, error)

	// Close closes the browser
	Close() error
}

// BrowserLauncher starts a browser when a run needs one
type BrowserLauncher interface {
	// Launch starts the browser, the caller closes it
	Launch(ctx context.Context) (BrowserController, error)
}
