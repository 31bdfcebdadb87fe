package config

import "time"

// DefaultAPIURL is used when no flag, environment variable or config file
// names a backend.
const DefaultAPIURL = "http://localhost:8000"

// CurrentVersion is the only config file version this build understands.
const CurrentVersion = 1

// File represents the user configuration file.
type File struct {
	Version     int          `yaml:"version"`
	API         *APISettings `yaml:"api,omitempty"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// APISettings describes how to reach the BuildIT backend.
type APISettings struct {
	URL            string `yaml:"url,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"` // 0 = no timeout
}

// Preferences holds interactive UI defaults.
type Preferences struct {
	DefaultMode string   `yaml:"default_mode,omitempty"` // "build" or "reverse"
	CustomParts []string `yaml:"custom_parts,omitempty"` // Pre-filled custom parts
}

// NewFile creates a config file with default values.
func NewFile() *File {
	return &File{
		Version: CurrentVersion,
		API: &APISettings{
			URL: DefaultAPIURL,
		},
		Preferences: &Preferences{
			DefaultMode: "build",
		},
	}
}

// Timeout returns the configured request timeout, zero when unset.
func (f *File) Timeout() time.Duration {
	if f == nil || f.API == nil || f.API.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(f.API.TimeoutSeconds) * time.Second
}

// ensureDefaults fills sections missing from an older or hand-edited file.
func (f *File) ensureDefaults() {
	if f.API == nil {
		f.API = &APISettings{}
	}
	if f.Preferences == nil {
		f.Preferences = &Preferences{DefaultMode: "build"}
	}
}
