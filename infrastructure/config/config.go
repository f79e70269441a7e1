package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings of a verification run
type Config struct {
	BaseURL        string
	Email          string
	Password       string
	LoginButton    string // regular expression matched against the button name
	MessageButton  string // regular expression matched against the button name
	ImagePath      string
	Caption        string
	ScreenshotPath string

	Headless        bool
	TimeoutMS       float64
	InstallBrowsers bool

	ScenarioFile string
	ReportPath   string
	LogLevel     string

	// EnvFileLoaded reports whether a .env file was found
	EnvFileLoaded bool
}

// Default - returns the settings the tool runs with when nothing is configured
func Default() *Config {
	return &Config{
		BaseURL:        "http://127.0.0.1:8080/",
		Email:          "test@test.com",
		Password:       "password",
		LoginButton:    "^(Login|Sign In)$",
		MessageButton:  "^(Message|Chat)$",
		ImagePath:      "jules-scratch/verification/red.png",
		Caption:        "Here is an image!",
		ScreenshotPath: "jules-scratch/verification/verification.png",
		Headless:       true,
		TimeoutMS:      30000,
		LogLevel:       "info",
	}
}

// Load - loads an optional .env file, then overlays environment variables on the defaults
func Load(envFiles ...string) (*Config, error) {
	cfg := Default()

	if err := godotenv.Load(envFiles...); err == nil {
		cfg.EnvFileLoaded = true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	str(&cfg.BaseURL, "VERIFY_BASE_URL")
	str(&cfg.Email, "VERIFY_EMAIL")
	str(&cfg.Password, "VERIFY_PASSWORD")
	str(&cfg.LoginButton, "VERIFY_LOGIN_BUTTON")
	str(&cfg.MessageButton, "VERIFY_MESSAGE_BUTTON")
	str(&cfg.ImagePath, "VERIFY_IMAGE_PATH")
	str(&cfg.Caption, "VERIFY_CAPTION")
	str(&cfg.ScreenshotPath, "VERIFY_SCREENSHOT_PATH")
	str(&cfg.ScenarioFile, "VERIFY_SCENARIO_FILE")
	str(&cfg.ReportPath, "VERIFY_REPORT_PATH")
	str(&cfg.LogLevel, "LOG_LEVEL")

	if err := boolean(&cfg.Headless, "VERIFY_HEADLESS"); err != nil {
		return nil, err
	}
	if err := boolean(&cfg.InstallBrowsers, "VERIFY_INSTALL_BROWSERS"); err != nil {
		return nil, err
	}

	if v := os.Getenv("VERIFY_TIMEOUT_MS"); v != "" {
		timeout, err := strconv.ParseFloat(v, 64)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("VERIFY_TIMEOUT_MS must be a positive number, got %q", v)
		}
		cfg.TimeoutMS = timeout
	}

	return cfg, nil
}

func str(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func boolean(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	*dst = b
	return nil
}
