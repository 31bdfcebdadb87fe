// Buildit is a terminal client for the BuildIT robotics build planner.
//
// It lets a user pick hardware kits and custom parts (build mode) or
// describe a goal (reverse mode), asks the BuildIT backend for a build
// plan, and shows the overview, assembly steps, wiring or parts list, and
// firmware.
//
// Usage:
//
//	buildit [command] [flags]
//
// Running without arguments launches the interactive planner.
// See 'buildit --help' for available commands.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/buildit/buildit/internal/config"
	"github.com/buildit/buildit/internal/logging"
	"github.com/buildit/buildit/internal/planner"
	"github.com/buildit/buildit/internal/tui"
	"github.com/buildit/buildit/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "buildit",
	Short: "AI-Powered Robotics Build Planner",
	Long: `A terminal client for the BuildIT robotics build planner.

Build mode: pick the kits you own and any extra parts, and BuildIT suggests
a project with steps, wiring and firmware.

Reverse mode: describe what you want to build, and BuildIT lists the parts
to buy, where to buy them, and how to put them together.

If no command is specified, the interactive planner will launch
automatically. Logs are silent unless BUILDIT_LOG_LEVEL is set; while the
planner is open, point BUILDIT_LOG_FILE at a file to keep the screen clean.`,
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env first so it can set BUILDIT_LOG_LEVEL
		config.LoadDotEnv()

		// Ignore error, GetLogger will create fallback logger
		_ = logging.InitializeFromEnv()
	},
	RunE: runPlanner,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("buildit %s\n", version.Full())
	},
}

// runPlanner launches the interactive planner
func runPlanner(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	mode, err := planner.ParseMode(settings.Mode)
	if err != nil {
		return err
	}

	app := tui.NewAppModel(tui.Options{
		Backend:     newClient(settings),
		Mode:        mode,
		CustomParts: settings.CustomParts,
		APIURL:      settings.APIURL,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("planner error: %w", err)
	}

	return nil
}
