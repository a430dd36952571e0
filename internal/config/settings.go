package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Settings holds all configuration options.
type Settings struct {
	// MusicBrainz settings
	UserAgent   string `json:"user_agent"`
	BaseURL     string `json:"base_url"`
	SearchLimit int    `json:"search_limit"`

	// Request pacing and retry behavior
	RequestDelay   float64 `json:"request_delay"`
	RequestTimeout float64 `json:"request_timeout"`
	MaxRetries     int     `json:"max_retries"`
	RetryCooldown  float64 `json:"retry_cooldown"`
	RetryExponent  float64 `json:"retry_exponent"`

	// Strict causes the run to fail when any name cannot be resolved.
	Strict bool `json:"strict"`

	// Output settings
	OutputFileName string `json:"output_file_name"`
}

// Application metadata used to build the default User-Agent, as required
// by the MusicBrainz API usage policy.
const (
	appName    = "arrlist-generator"
	appVersion = "0.1.0"
	appURL     = "https://github.com/jtreveset/arrlist"
)

// DefaultUserAgent identifies this tool to MusicBrainz.
const DefaultUserAgent = appName + "/" + appVersion + " (" + appURL + ")"

// DefaultSettings returns settings with default values.
//
// The defaults follow the MusicBrainz usage guidelines: a descriptive
// User-Agent and just under one request per second.
func DefaultSettings() *Settings {
	return &Settings{
		UserAgent:   DefaultUserAgent,
		BaseURL:     "https://musicbrainz.org/ws/2/artist",
		SearchLimit: 25,

		RequestDelay:   1.1,
		RequestTimeout: 30,
		MaxRetries:     3,
		RetryCooldown:  1.1,
		RetryExponent:  2.0,

		Strict: false,

		OutputFileName: "artists.json",
	}
}

// Load reads settings from a JSON file.
//
// If the file does not exist, defaults are returned without error.
// Fields missing from the file keep their default values.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks that the settings are usable.
//
// Returns an error if:
//   - UserAgent or BaseURL is empty (MusicBrainz rejects anonymous clients)
//   - RequestDelay, RequestTimeout, RetryCooldown or RetryExponent is negative
//   - MaxRetries is negative
//   - SearchLimit is outside 1..100 (the ws/2 limit range)
func (s *Settings) Validate() error {
	if s.UserAgent == "" {
		return fmt.Errorf("user_agent must not be empty")
	}
	if s.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if s.RequestDelay < 0 {
		return fmt.Errorf("request_delay must not be negative: %v", s.RequestDelay)
	}
	if s.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative: %v", s.RequestTimeout)
	}
	if s.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative: %d", s.MaxRetries)
	}
	if s.RetryCooldown < 0 {
		return fmt.Errorf("retry_cooldown must not be negative: %v", s.RetryCooldown)
	}
	if s.RetryExponent < 0 {
		return fmt.Errorf("retry_exponent must not be negative: %v", s.RetryExponent)
	}
	if s.SearchLimit < 1 || s.SearchLimit > 100 {
		return fmt.Errorf("search_limit must be between 1 and 100: %d", s.SearchLimit)
	}
	return nil
}

// Delay returns RequestDelay as a time.Duration.
func (s *Settings) Delay() time.Duration {
	return time.Duration(s.RequestDelay * float64(time.Second))
}

// Timeout returns RequestTimeout as a time.Duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.RequestTimeout * float64(time.Second))
}
