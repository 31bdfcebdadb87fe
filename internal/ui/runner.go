package ui

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/buildit/buildit/internal/api"
	"github.com/buildit/buildit/internal/logging"
)

// RunnerConfig holds configuration for one backend command
type RunnerConfig struct {
	Title    string    // Command title (e.g., "Build Plan")
	Command  string    // Full command (e.g., "buildit generate")
	Params   []Field   // Parameters to display in header
	Wait     string    // Message shown while the request runs
	WaitHint string    // Duration hint for the wait message
	Output   io.Writer // Output writer (default: os.Stdout)
	Width    int       // Overrides the detected terminal width when > 0
}

// Outcome is what a successful operation reports back to the runner
type Outcome struct {
	Body    string  // Printed between the wait line and the result box
	Details []Field // Shown in the success box
}

// Operation performs the backend call
type Operation func(ctx context.Context) (Outcome, error)

// Runner orchestrates the output of a backend command: header, wait
// message, body, then a success or failure box.
type Runner struct {
	config  RunnerConfig
	printer *Printer
}

// NewRunner creates a new runner for a command
func NewRunner(config RunnerConfig) *Runner {
	p := NewPrinter(config.Output)
	if config.Width > 0 {
		p.SetWidth(config.Width)
	}
	return &Runner{config: config, printer: p}
}

// Run executes the operation with UI updates. Failures are shown with the
// troubleshooting hints for their error kind and returned unchanged.
func (r *Runner) Run(ctx context.Context, operation Operation) error {
	start := time.Now()

	r.printer.PrintHeader(r.config.Title, r.config.Command, r.config.Params)
	if r.config.Wait != "" {
		r.printer.PrintPleaseWait(r.config.Wait, r.config.WaitHint)
	}

	outcome, err := operation(ctx)
	duration := time.Since(start)

	if err != nil {
		logging.Debug("command failed",
			zap.String("command", r.config.Command),
			zap.Duration("elapsed", duration),
			zap.Error(err))
		r.printer.PrintError(r.config.Title+" failed", err, api.Troubleshooting(err))
		return err
	}

	if outcome.Body != "" {
		r.printer.Println(outcome.Body)
		r.printer.Newline()
	}

	details := append(outcome.Details, Field{Key: "Duration", Value: FormatDuration(duration)})
	r.printer.PrintSuccess(r.config.Title+" complete", details)
	return nil
}
