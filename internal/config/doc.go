// Package config resolves the BuildIT client configuration.
//
// Settings come from four layers, highest precedence first:
//
//  1. command-line flags (Overrides)
//  2. environment variables: BUILDIT_API_URL (or VITE_API_URL),
//     BUILDIT_TIMEOUT, BUILDIT_MODE; a .env file in the working directory is
//     loaded into the environment first without overriding existing values
//  3. the YAML config file
//  4. built-in defaults (API URL http://localhost:8000, no timeout, build mode)
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/buildit/config.yaml or $HOME/.config/buildit/config.yaml
//   - macOS: $HOME/.config/buildit/config.yaml
//   - Windows: %LOCALAPPDATA%\buildit\config.yaml
//
// # File Format
//
//	version: 1
//	api:
//	  url: http://localhost:8000
//	  timeout_seconds: 0
//	preferences:
//	  default_mode: build
//	  custom_parts:
//	    - Servo Motor SG90
//
// Writes are atomic (temporary file + rename).
package config
