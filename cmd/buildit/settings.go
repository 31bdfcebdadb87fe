package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/buildit/buildit/internal/api"
	"github.com/buildit/buildit/internal/config"
	"github.com/buildit/buildit/internal/logging"
)

// Connection flags shared by every command
var (
	apiURL     string
	timeout    time.Duration
	modeFlag   string
	configPath string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "BuildIT backend URL (default from BUILDIT_API_URL, config file, or "+config.DefaultAPIURL+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout, e.g. 90s (0 waits indefinitely)")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "Planning mode: build or reverse")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default is the user config directory)")
}

// configFilePath returns --config or the default location
func configFilePath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// loadSettings resolves flags, environment and the config file
func loadSettings() (config.Settings, error) {
	path, err := configFilePath()
	if err != nil {
		return config.Settings{}, fmt.Errorf("failed to locate config file: %w", err)
	}

	file, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}

	settings, err := config.Resolve(file, config.Overrides{
		APIURL:  apiURL,
		Timeout: timeout,
		Mode:    modeFlag,
	})
	if err != nil {
		return config.Settings{}, err
	}

	logging.Debug("settings resolved",
		zap.String("config", path),
		zap.String("api_url", settings.APIURL),
		zap.Duration("timeout", settings.Timeout),
		zap.String("mode", settings.Mode))

	return settings, nil
}

// newClient creates a backend client for the resolved settings
func newClient(s config.Settings) *api.Client {
	client := api.NewClient(s.APIURL)
	client.SetTimeout(s.Timeout)
	return client
}
