package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/buildit/buildit/internal/config"
	"github.com/buildit/buildit/internal/planner"
	"github.com/buildit/buildit/internal/ui"
)

var forceInit bool

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file without asking")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the buildit config file",
	Long: `Manage the buildit config file.

Settings are resolved in this order, first match wins:
  1. Command-line flags (--api-url, --timeout, --mode)
  2. Environment (BUILDIT_API_URL, VITE_API_URL, BUILDIT_TIMEOUT, BUILDIT_MODE),
     including values from a .env file in the working directory
  3. The config file
  4. Built-in defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path, err := configFilePath()
		if err != nil {
			return err
		}
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		if outputFormat == "json" {
			return writeJSON(cmd.OutOrStdout(), struct {
				ConfigFile  string   `json:"config_file"`
				APIURL      string   `json:"api_url"`
				Timeout     string   `json:"timeout"`
				Mode        string   `json:"mode"`
				CustomParts []string `json:"custom_parts"`
			}{path, settings.APIURL, settings.Timeout.String(), settings.Mode, settings.CustomParts})
		}

		timeoutText := "none"
		if settings.Timeout > 0 {
			timeoutText = settings.Timeout.String()
		}

		printer := ui.NewPrinter(cmd.OutOrStdout())
		printer.PrintHeader("Configuration", "buildit config show", []ui.Field{{Key: "File", Value: path}})
		printer.PrintSuccess("Effective settings", []ui.Field{
			{Key: "API URL", Value: settings.APIURL},
			{Key: "Timeout", Value: timeoutText},
			{Key: "Mode", Value: settings.Mode},
			{Key: "Custom parts", Value: joinOrNone(settings.CustomParts)},
		})
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Example: `  # Create the default config file
  buildit config init

  # Point it at a remote backend
  buildit config init --api-url https://buildit.example.com --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path, err := configFilePath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			ok := ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
				"Config file exists",
				[]string{path, "Its contents will be replaced with defaults"},
				"Overwrite?")
			if !ok {
				return errors.New("aborted: config file left unchanged")
			}
		}

		file := config.NewFile()
		if apiURL != "" {
			file.API.URL = config.NormalizeURL(apiURL)
		}
		if timeout > 0 {
			file.API.TimeoutSeconds = int(timeout.Seconds())
		}
		if modeFlag != "" {
			mode, err := planner.ParseMode(modeFlag)
			if err != nil {
				return err
			}
			file.Preferences.DefaultMode = string(mode)
		}

		if err := file.Save(path); err != nil {
			return err
		}

		data, err := yaml.Marshal(file)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		printer := ui.NewPrinter(cmd.OutOrStdout())
		printer.PrintSuccess("Config file written", []ui.Field{{Key: "Path", Value: path}})
		printer.Newline()
		printer.Print(string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}
