package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/lifebar/internal/app"
	"github.com/vk/lifebar/internal/render"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("lifebar", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
lifebar - Visualize your life progress as a colored terminal bar.

Usage:
  lifebar [options]

Runs fully interactively: you will be prompted for your age, an optional
assumed lifespan, and whether to save the report to a text file.

Options:
`)
		flagSet.PrintDefaults()
	}

	lifespanFlag := flagSet.Float64("lifespan", 80, "Default assumed lifespan in years.")
	barLengthFlag := flagSet.Int("bar-length", render.DefaultBarLength, "Progress bar width in glyphs.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable ANSI colors in the terminal output.")
	noAnimationFlag := flagSet.Bool("no-animation", false, "Skip the progress bar fill animation.")
	outDirFlag := flagSet.String("out-dir", ".", "Directory for the optional saved report.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		DefaultLifespan: *lifespanFlag,
		BarLength:       *barLengthFlag,
		ColorEnabled:    !*noColorFlag,
		Animate:         !*noAnimationFlag,
		AnimateDelay:    render.AnimateDelay,
		OutDir:          *outDirFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
