package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAPIToken(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// No default token
	if token := settings.GetAPIToken(); token != "" {
		t.Errorf("Expected empty default token, got %q", token)
	}

	settings.SetAPIToken("secret")
	if token := settings.GetAPIToken(); token != "secret" {
		t.Errorf("Expected token 'secret', got %q", token)
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if baseURL := settings.GetAPIBaseURL(); baseURL != DefaultAPIBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultAPIBaseURL, baseURL)
	}

	settings.SetAPIBaseURL("http://localhost:8080")
	if baseURL := settings.GetAPIBaseURL(); baseURL != "http://localhost:8080" {
		t.Errorf("Expected custom base URL, got %s", baseURL)
	}
}

func TestResultsPerPage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if perPage := settings.GetResultsPerPage(); perPage != DefaultResultsPerPage {
		t.Errorf("Expected default per page %d, got %d", DefaultResultsPerPage, perPage)
	}

	settings.SetResultsPerPage(50)
	if perPage := settings.GetResultsPerPage(); perPage != 50 {
		t.Errorf("Expected per page 50, got %d", perPage)
	}

	// Boundary values are clamped
	settings.SetResultsPerPage(0)
	if settings.GetResultsPerPage() != MinResultsPerPage {
		t.Error("Per page should be clamped to minimum")
	}

	settings.SetResultsPerPage(1000)
	if settings.GetResultsPerPage() != MaxResultsPerPage {
		t.Error("Per page should be clamped to maximum")
	}
}

func TestModelsDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetModelsDirectory(); dir == "" {
		t.Error("Models directory should not be empty")
	}

	settings.SetModelsDirectory("/custom/models")
	if dir := settings.GetModelsDirectory(); dir != "/custom/models" {
		t.Errorf("Expected models directory /custom/models, got %s", dir)
	}
}

func TestLogLevel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if level := settings.GetLogLevel(); level != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, level)
	}

	settings.SetLogLevel("debug")
	if level := settings.GetLogLevel(); level != "debug" {
		t.Errorf("Expected log level debug, got %s", level)
	}
}

func TestAnalyticsSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAnalyticsEnabled() {
		t.Error("Analytics should default to enabled")
	}

	settings.SetAnalyticsEnabled(false)
	if settings.GetAnalyticsEnabled() {
		t.Error("Analytics should be disabled after SetAnalyticsEnabled(false)")
	}

	if id := settings.GetAnalyticsClientID(); id != "" {
		t.Errorf("Expected empty client ID on first run, got %q", id)
	}

	settings.SetAnalyticsClientID("install-1")
	if id := settings.GetAnalyticsClientID(); id != "install-1" {
		t.Errorf("Expected client ID install-1, got %q", id)
	}
}
