package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.UserAgent == "" {
		t.Error("default UserAgent should not be empty")
	}
	if s.BaseURL == "" {
		t.Error("default BaseURL should not be empty")
	}
	if s.RequestDelay < 1.0 {
		t.Errorf("default RequestDelay = %v, should respect the 1 req/sec guideline", s.RequestDelay)
	}
	if s.Strict {
		t.Error("strict mode should be off by default")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default settings should validate: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got error: %v", err)
	}
	if s.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want default", s.UserAgent)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"strict": true, "max_retries": 7}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.Strict {
		t.Error("Strict should be true from file")
	}
	if s.MaxRetries != 7 {
		t.Errorf("MaxRetries = %d, want 7", s.MaxRetries)
	}
	// Untouched fields keep defaults.
	if s.BaseURL != DefaultSettings().BaseURL {
		t.Errorf("BaseURL = %q, want default", s.BaseURL)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestSettings_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	s := DefaultSettings()
	s.RequestDelay = 2.5
	s.Strict = true

	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.RequestDelay != 2.5 {
		t.Errorf("RequestDelay = %v, want 2.5", loaded.RequestDelay)
	}
	if !loaded.Strict {
		t.Error("Strict should survive a save/load round trip")
	}
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"defaults", func(s *Settings) {}, false},
		{"empty user agent", func(s *Settings) { s.UserAgent = "" }, true},
		{"empty base url", func(s *Settings) { s.BaseURL = "" }, true},
		{"negative delay", func(s *Settings) { s.RequestDelay = -1 }, true},
		{"negative retries", func(s *Settings) { s.MaxRetries = -1 }, true},
		{"zero retries ok", func(s *Settings) { s.MaxRetries = 0 }, false},
		{"zero delay ok", func(s *Settings) { s.RequestDelay = 0 }, false},
		{"search limit too high", func(s *Settings) { s.SearchLimit = 200 }, true},
		{"search limit zero", func(s *Settings) { s.SearchLimit = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettings_Durations(t *testing.T) {
	s := DefaultSettings()
	s.RequestDelay = 1.5
	s.RequestTimeout = 30

	if got := s.Delay(); got != 1500*time.Millisecond {
		t.Errorf("Delay() = %v, want 1.5s", got)
	}
	if got := s.Timeout(); got != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", got)
	}
}
