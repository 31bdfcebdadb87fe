// Package ui renders the non-interactive output of the buildit CLI.
//
// Unlike the interactive TUI, these components follow a "run once and
// exit" pattern: commands print a header, wait for the backend, then print
// a body and a result box.
//
// # Components
//
//   - Header: command banner showing operation name and parameters
//   - Result: success, failure and warning boxes; failures carry
//     troubleshooting tips
//   - Runner: header → wait → body → result flow around one backend call
//   - RenderKits / RenderPlan: the kit catalog and a generation result as
//     plain sections
//   - Confirm: yes/no prompt behind a warning box
//
// # Usage Pattern
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:   "Build Plan",
//	    Command: "buildit generate",
//	    Params:  []ui.Field{{Key: "Backend", Value: apiURL}},
//	    Wait:    "Generating build plan",
//	})
//
//	err := runner.Run(ctx, func(ctx context.Context) (ui.Outcome, error) {
//	    result, err := client.Generate(ctx, req)
//	    if err != nil {
//	        return ui.Outcome{}, err
//	    }
//	    return ui.Outcome{Body: ui.RenderPlan(result, mode, width)}, nil
//	})
//
// # Logging Integration
//
// Logging is controlled via the BUILDIT_LOG_LEVEL environment variable.
// When unset or empty, zap logging is silent, so only the curated output
// reaches the terminal.
package ui
