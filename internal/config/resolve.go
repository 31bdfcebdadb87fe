package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables consulted by Resolve.
const (
	APIURLEnvVar        = "BUILDIT_API_URL"
	LegacyAPIURLEnvVar  = "VITE_API_URL" // name used by the web build
	TimeoutEnvVar       = "BUILDIT_TIMEOUT"
	DefaultModeEnvVar   = "BUILDIT_MODE"
	defaultDotEnvSource = ".env"
)

// Overrides carries values given on the command line. Empty fields mean
// "not set".
type Overrides struct {
	APIURL  string
	Timeout time.Duration
	Mode    string
}

// Settings is the effective client configuration.
type Settings struct {
	APIURL      string
	Timeout     time.Duration
	Mode        string
	CustomParts []string
}

// LoadDotEnv loads variables from .env files into the process environment.
// Variables already set are never overridden. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{defaultDotEnvSource}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

// Resolve merges overrides, environment and the config file. For each
// setting the first non-empty source wins: flag, environment, file, default.
func Resolve(file *File, o Overrides) (Settings, error) {
	if file == nil {
		file = NewFile()
	}
	file.ensureDefaults()

	s := Settings{
		APIURL: firstNonEmpty(
			o.APIURL,
			os.Getenv(APIURLEnvVar),
			os.Getenv(LegacyAPIURLEnvVar),
			file.API.URL,
			DefaultAPIURL,
		),
		Mode: firstNonEmpty(
			o.Mode,
			os.Getenv(DefaultModeEnvVar),
			file.Preferences.DefaultMode,
			"build",
		),
		CustomParts: append([]string(nil), file.Preferences.CustomParts...),
	}
	s.APIURL = NormalizeURL(s.APIURL)

	switch {
	case o.Timeout > 0:
		s.Timeout = o.Timeout
	case strings.TrimSpace(os.Getenv(TimeoutEnvVar)) != "":
		d, err := parseTimeout(os.Getenv(TimeoutEnvVar))
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s: %w", TimeoutEnvVar, err)
		}
		s.Timeout = d
	default:
		s.Timeout = file.Timeout()
	}

	s.Mode = strings.ToLower(s.Mode)
	if s.Mode != "build" && s.Mode != "reverse" {
		return Settings{}, fmt.Errorf("invalid mode %q (expected build or reverse)", s.Mode)
	}

	return s, nil
}

// NormalizeURL trims whitespace and trailing slashes so paths can be joined
// with a leading "/".
func NormalizeURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

// parseTimeout accepts Go durations ("30s") or plain seconds ("30").
func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("negative timeout %d", secs)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative timeout %s", d)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
