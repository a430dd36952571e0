// Package config provides configuration management for arrlist.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Settings validation
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// MusicBrainz-compliant User-Agent
//	// 1.1 second delay between requests
//	// 3 retries for transient failures
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - The MusicBrainz endpoint and User-Agent
//   - Inter-request delay and per-request timeout
//   - Retry count, cooldown and backoff exponent
//   - Strict mode (fail the run on any unresolved name)
package config
