package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"ui_verification/domain/entities"
	"ui_verification/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// DefaultTimeoutMS matches the Playwright default wait window
const DefaultTimeoutMS = 30000

// Options configures the launched browser
type Options struct {
	Headless        bool
	TimeoutMS       float64
	InstallBrowsers bool
}

type browserController struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	expect  playwright.PlaywrightAssertions
	logger  *logrus.Logger
}

// NewBrowserController - starts playwright and opens a single page in a fresh context
func NewBrowserController(opts Options, logger *logrus.Logger) (interfaces.BrowserController, error) {
	if opts.TimeoutMS <= 0 {
		opts.TimeoutMS = DefaultTimeoutMS
	}

	if opts.InstallBrowsers {
		logger.Info("Installing playwright chromium driver")
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			return nil, fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := browser.NewContext()
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(opts.TimeoutMS)
	page.SetDefaultNavigationTimeout(opts.TimeoutMS)

	logger.WithFields(logrus.Fields{
		"headless":   opts.Headless,
		"timeout_ms": opts.TimeoutMS,
	}).Debug("Browser launched")

	return &browserController{
		pw:      pw,
		browser: browser,
		context: context,
		page:    page,
		expect:  playwright.NewPlaywrightAssertions(opts.TimeoutMS),
		logger:  logger,
	}, nil
}

// Navigate - navigates to the specified URL
func (b *browserController) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := b.page.Goto(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// Fill - fills an input field with text
func (b *browserController) Fill(ctx context.Context, target entities.Target, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	locator, err := b.locate(target)
	if err != nil {
		return err
	}
	if err := locator.Fill(text); err != nil {
		return classify(target, err)
	}
	return nil
}

// Click - clicks on an element
func (b *browserController) Click(ctx context.Context, target entities.Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	locator, err := b.locate(target)
	if err != nil {
		return err
	}
	if err := locator.Click(); err != nil {
		return classify(target, err)
	}
	return nil
}

// SetInputFiles - attaches files to a file input, or to the file chooser the target opens on click
func (b *browserController) SetInputFiles(ctx context.Context, target entities.Target, files []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("%w: %s: %w", entities.ErrFileNotFound, file, err)
		}
	}

	locator, err := b.locate(target)
	if err != nil {
		return err
	}

	isFileInput, err := locator.Evaluate(`el => el instanceof HTMLInputElement && el.type === 'file'`, nil)
	if err != nil {
		return classify(target, err)
	}

	if ok, _ := isFileInput.(bool); ok {
		if err := locator.SetInputFiles(files); err != nil {
			return classify(target, err)
		}
		return nil
	}

	chooser, err := b.page.ExpectFileChooser(func() error {
		return locator.Click()
	})
	if err != nil {
		return classify(target, fmt.Errorf("no file chooser opened: %w", err))
	}
	if err := chooser.SetFiles(files); err != nil {
		return fmt.Errorf("failed to set files on %s: %w", &target, err)
	}
	return nil
}

// ExpectVisible - waits until the target element is visible
func (b *browserController) ExpectVisible(ctx context.Context, target entities.Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	locator, err := b.locate(target)
	if err != nil {
		return err
	}
	if err := b.expect.Locator(locator).ToBeVisible(); err != nil {
		if isStrictViolation(err) {
			return fmt.Errorf("%w: %s: %w", entities.ErrElementNotFound, &target, err)
		}
		return fmt.Errorf("%w: %s: %w", entities.ErrVisibilityTimeout, &target, err)
	}
	return nil
}

// Screenshot - takes a screenshot of the current page
func (b *browserController) Screenshot(ctx context.Context, fullPage bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := b.page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(fullPage),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to take screenshot: %w", err)
	}
	return data, nil
}

// Close - closes the context, the browser and the driver
func (b *browserController) Close() error {
	var errs []error

	if b.context != nil {
		if err := b.context.Close(); err != nil && !errors.Is(err, playwright.ErrTargetClosed) {
			errs = append(errs, fmt.Errorf("failed to close context: %w", err))
		}
		b.context = nil
	}

	if b.browser != nil {
		if err := b.browser.Close(); err != nil && !errors.Is(err, playwright.ErrTargetClosed) {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
		b.browser = nil
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
		b.pw = nil
	}

	return errors.Join(errs...)
}

// locate - builds a playwright locator for the target
func (b *browserController) locate(target entities.Target) (playwright.Locator, error) {
	match, err := matcher(target)
	if err != nil {
		return nil, err
	}

	var exact *bool
	if target.Exact {
		exact = playwright.Bool(true)
	}

	var locator playwright.Locator
	switch target.By {
	case entities.ByRole:
		opts := playwright.PageGetByRoleOptions{Exact: exact}
		if target.Value != "" {
			opts.Name = match
		}
		locator = b.page.GetByRole(playwright.AriaRole(target.Role), opts)
	case entities.ByLabel:
		locator = b.page.GetByLabel(match, playwright.PageGetByLabelOptions{Exact: exact})
	case entities.ByPlaceholder:
		locator = b.page.GetByPlaceholder(match, playwright.PageGetByPlaceholderOptions{Exact: exact})
	case entities.ByText:
		locator = b.page.GetByText(match, playwright.PageGetByTextOptions{Exact: exact})
	case entities.BySelector:
		locator = b.page.Locator(target.Value)
	default:
		return nil, fmt.Errorf("%w: unknown locator kind %q", entities.ErrInvalidScenario, target.By)
	}

	if target.First {
		locator = locator.First()
	}
	return locator, nil
}

// matcher - returns the string or regular expression playwright matches the target value with
func matcher(target entities.Target) (interface{}, error) {
	if !target.Regexp {
		return target.Value, nil
	}
	re, err := regexp.Compile(target.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: bad pattern for %s: %w", entities.ErrInvalidScenario, &target, err)
	}
	return re, nil
}

// classify - tags locator action failures as element-not-found when the element never resolved
func classify(target entities.Target, err error) error {
	if errors.Is(err, playwright.ErrTimeout) || isStrictViolation(err) {
		return fmt.Errorf("%w: %s: %w", entities.ErrElementNotFound, &target, err)
	}
	return fmt.Errorf("%s: %w", &target, err)
}

func isStrictViolation(err error) bool {
	return strings.Contains(err.Error(), "strict mode violation")
}
