package config

import (
	"fyne.io/fyne/v2"

	"github.com/thingibrowser/thingibrowser/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIToken          = "api_token"
	KeyAPIBaseURL        = "api_base_url"
	KeyResultsPerPage    = "results_per_page"
	KeyModelsDir         = "models_directory"
	KeyLogLevel          = "log_level"
	KeyAnalyticsEnabled  = "analytics_enabled"
	KeyAnalyticsClientID = "analytics_client_id"
)

// Default values
const (
	DefaultAPIBaseURL       = "https://api.thingiverse.com"
	DefaultResultsPerPage   = 20
	DefaultLogLevel         = "info"
	DefaultAnalyticsEnabled = true

	MinResultsPerPage = 1
	MaxResultsPerPage = 100
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIToken returns the configured Thingiverse API token. Empty when the
// user has not entered one yet; the API rejects unauthenticated requests,
// which surfaces through the normal error dialog.
func (s *Settings) GetAPIToken() string {
	return s.app.Preferences().String(KeyAPIToken)
}

// SetAPIToken sets the Thingiverse API token
func (s *Settings) SetAPIToken(token string) {
	s.app.Preferences().SetString(KeyAPIToken, token)
}

// GetAPIBaseURL returns the API endpoint, defaulting to production
func (s *Settings) GetAPIBaseURL() string {
	baseURL := s.app.Preferences().String(KeyAPIBaseURL)
	if baseURL == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return baseURL
}

// SetAPIBaseURL sets the API endpoint
func (s *Settings) SetAPIBaseURL(baseURL string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, baseURL)
}

// GetResultsPerPage returns the search page size
func (s *Settings) GetResultsPerPage() int {
	value := s.app.Preferences().Int(KeyResultsPerPage)
	if value <= 0 {
		s.SetResultsPerPage(DefaultResultsPerPage)
		return DefaultResultsPerPage
	}
	return value
}

// SetResultsPerPage sets the search page size, clamped to a sane range
func (s *Settings) SetResultsPerPage(count int) {
	if count < MinResultsPerPage {
		count = MinResultsPerPage
	}
	if count > MaxResultsPerPage {
		count = MaxResultsPerPage
	}
	s.app.Preferences().SetInt(KeyResultsPerPage, count)
}

// GetModelsDirectory returns the directory downloaded models are imported into
func (s *Settings) GetModelsDirectory() string {
	dir := s.app.Preferences().String(KeyModelsDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultModelsDir()
		if err != nil {
			defaultDir = "/tmp/models"
		}
		s.SetModelsDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetModelsDirectory sets the models directory
func (s *Settings) SetModelsDirectory(dir string) {
	s.app.Preferences().SetString(KeyModelsDir, dir)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetAnalyticsEnabled returns whether usage tracking is on
func (s *Settings) GetAnalyticsEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyAnalyticsEnabled, DefaultAnalyticsEnabled)
}

// SetAnalyticsEnabled toggles usage tracking
func (s *Settings) SetAnalyticsEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyAnalyticsEnabled, enabled)
}

// GetAnalyticsClientID returns the persisted analytics install ID, empty on
// first run
func (s *Settings) GetAnalyticsClientID() string {
	return s.app.Preferences().String(KeyAnalyticsClientID)
}

// SetAnalyticsClientID persists the analytics install ID
func (s *Settings) SetAnalyticsClientID(clientID string) {
	s.app.Preferences().SetString(KeyAnalyticsClientID, clientID)
}
