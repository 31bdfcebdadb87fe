package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/buildit/buildit/internal/api"
	"github.com/buildit/buildit/internal/logging"
	"github.com/buildit/buildit/internal/planner"
	"github.com/buildit/buildit/internal/ui"
)

// Command flags
var (
	outputFormat string
	kitFlags     []string
	partFlags    []string
	goalFlag     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, json)")

	rootCmd.AddCommand(kitsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(healthCmd)
}

// checkFormat validates --format
func checkFormat() error {
	switch outputFormat {
	case "detailed", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be detailed or json)", outputFormat)
	}
}

// writeJSON prints v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// kitsCmd lists the kit catalog
var kitsCmd = &cobra.Command{
	Use:   "kits",
	Short: "List available hardware kits",
	Long: `List the hardware kits known to the BuildIT backend.

Kit IDs from this list can be passed to 'buildit generate --kit'.`,
	Example: `  # List kits
  buildit kits

  # JSON output for scripting
  buildit kits --format json`,
	RunE: runKits,
}

func runKits(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	if err := checkFormat(); err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	client := newClient(settings)
	out := cmd.OutOrStdout()

	if outputFormat == "json" {
		kits, err := client.ListKits(cmd.Context())
		if err != nil {
			return err
		}
		return writeJSON(out, kits)
	}

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   "Kit Catalog",
		Command: "buildit kits",
		Params:  []ui.Field{{Key: "Backend", Value: settings.APIURL}},
		Output:  out,
	})

	return runner.Run(cmd.Context(), func(ctx context.Context) (ui.Outcome, error) {
		kits, err := client.ListKits(ctx)
		if err != nil {
			return ui.Outcome{}, err
		}
		return ui.Outcome{
			Body:    ui.RenderKits(kits, ui.GetTerminalWidth()),
			Details: []ui.Field{{Key: "Kits", Value: fmt.Sprintf("%d", len(kits))}},
		}, nil
	})
}

// generateCmd requests a build plan
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a build plan",
	Long: `Ask the BuildIT backend for a build plan without opening the planner.

Build mode needs at least one --kit or --part. Kits may be given by ID or
by name. Reverse mode needs a --goal describing what you want to build.

Generation can take a while; no timeout applies unless --timeout or
BUILDIT_TIMEOUT is set.`,
	Example: `  # Suggest a project from two kits and a servo
  buildit generate --kit arduino-starter --kit motor-kit --part "Servo Motor SG90"

  # Plan parts for a goal
  buildit generate --mode reverse --goal "A robot arm that can pick up small objects"

  # JSON output for scripting
  buildit generate --mode reverse --goal "line follower" --format json`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringArrayVar(&kitFlags, "kit", nil, "Kit ID or name (repeatable)")
	generateCmd.Flags().StringArrayVar(&partFlags, "part", nil, "Custom part name (repeatable)")
	generateCmd.Flags().StringVar(&goalFlag, "goal", "", "What you want to build (reverse mode)")
}

// errNothingToGenerate is returned when the flags do not describe a request
var errNothingToGenerate = errors.New("nothing to generate: build mode needs --kit or --part, reverse mode needs --goal")

func runGenerate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	if err := checkFormat(); err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	mode, err := planner.ParseMode(settings.Mode)
	if err != nil {
		return err
	}
	client := newClient(settings)

	session := planner.NewSession(mode)
	if mode == planner.ModeBuild && len(kitFlags) > 0 {
		for _, id := range resolveKitIDs(cmd.Context(), client, kitFlags) {
			session.ToggleKit(id)
		}
	}
	for _, p := range settings.CustomParts {
		session.AddPart(p)
	}
	for _, p := range partFlags {
		session.AddPart(p)
	}
	session.Goal = goalFlag

	req, ok := session.Begin()
	if !ok {
		return errNothingToGenerate
	}

	out := cmd.OutOrStdout()

	if outputFormat == "json" {
		result, err := client.Generate(cmd.Context(), req)
		if err != nil {
			return err
		}
		return writeJSON(out, result)
	}

	params := []ui.Field{
		{Key: "Backend", Value: settings.APIURL},
		{Key: "Mode", Value: mode.Label()},
	}
	if mode == planner.ModeReverse {
		params = append(params, ui.Field{Key: "Goal", Value: req.Goal})
	} else {
		params = append(params,
			ui.Field{Key: "Kits", Value: joinOrNone(req.Kits)},
			ui.Field{Key: "Parts", Value: joinOrNone(req.CustomParts)})
	}

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:    "Build Plan",
		Command:  "buildit generate",
		Params:   params,
		Wait:     "Generating build plan",
		WaitHint: "this can take a minute",
		Output:   out,
	})

	return runner.Run(cmd.Context(), func(ctx context.Context) (ui.Outcome, error) {
		result, err := client.Generate(ctx, req)
		session.Finish(result, err)
		if err != nil {
			return ui.Outcome{}, err
		}
		plan := session.Result()
		return ui.Outcome{
			Body:    ui.RenderPlan(plan, mode, ui.GetTerminalWidth()),
			Details: ui.PlanDetails(plan, mode),
		}, nil
	})
}

// resolveKitIDs maps kit names to IDs using the catalog. Values that match
// no kit are passed through as IDs; if the catalog is unreachable all values
// are.
func resolveKitIDs(ctx context.Context, client *api.Client, values []string) []string {
	kits, err := client.ListKits(ctx)
	if err != nil {
		logging.Warn("kit catalog unavailable, using --kit values as IDs", zap.Error(err))
		return values
	}

	ids := make([]string, 0, len(values))
	for _, v := range values {
		ids = append(ids, matchKit(kits, v))
	}
	return ids
}

// matchKit returns the ID of the kit whose ID or name equals v (names
// compared case-insensitively), or v itself.
func matchKit(kits []api.Kit, v string) string {
	v = strings.TrimSpace(v)
	for _, k := range kits {
		if k.ID == v {
			return k.ID
		}
	}
	for _, k := range kits {
		if strings.EqualFold(k.Name, v) {
			return k.ID
		}
	}
	return v
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

// healthCmd probes the backend
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the backend is reachable",
	Long: `Query the backend's health endpoint and report its status and database
connection.`,
	Example: `  # Check the default backend
  buildit health

  # Check a remote backend
  buildit health --api-url https://buildit.example.com`,
	RunE: runHealth,
}

func runHealth(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	if err := checkFormat(); err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	client := newClient(settings)
	out := cmd.OutOrStdout()

	if outputFormat == "json" {
		status, err := client.Health(cmd.Context())
		if err != nil {
			return err
		}
		return writeJSON(out, status)
	}

	printer := ui.NewPrinter(out)
	printer.PrintHeader("Health Check", "buildit health", []ui.Field{{Key: "Backend", Value: settings.APIURL}})

	status, err := client.Health(cmd.Context())
	if err != nil {
		printer.PrintError("Backend unreachable", err, api.Troubleshooting(err))
		return err
	}

	details := []ui.Field{
		{Key: "Status", Value: status.Status},
		{Key: "MongoDB", Value: status.MongoDB},
	}
	if !status.OK() {
		printer.PrintWarning("Backend degraded", details)
		return nil
	}
	printer.PrintSuccess("Backend healthy", details)
	return nil
}
