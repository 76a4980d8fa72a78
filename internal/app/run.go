package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vk/lifebar/internal/ctxlog"
	"github.com/vk/lifebar/internal/export"
	"github.com/vk/lifebar/internal/input"
	"github.com/vk/lifebar/internal/lifemath"
	"github.com/vk/lifebar/internal/prompt"
	"github.com/vk/lifebar/internal/render"
)

// Run executes one full interactive session: prompt for age and lifespan,
// compute the summary, render it, and offer the export. End-of-input at any
// prompt ends the run cleanly with a nil error.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	p := prompt.New(a.in, a.outW)
	fmt.Fprint(a.outW, render.Header())

	age, err := a.promptAge(p)
	if err != nil {
		return a.handleClosedInput(err)
	}

	lifespan, err := a.promptLifespan(p, age)
	if err != nil {
		return a.handleClosedInput(err)
	}

	summary := lifemath.Summarize(age, lifespan)
	a.logger.Debug("Summary computed.",
		"age", age,
		"lifespan", lifespan,
		"percent_lived", summary.PercentLived,
		"stage", summary.Stage,
	)

	if a.config.Animate {
		render.Animate(a.outW, summary.PercentLived, a.config.BarLength, a.config.ColorEnabled, a.config.AnimateDelay)
	}
	fmt.Fprint(a.outW, render.Report(summary, a.config.BarLength, a.config.ColorEnabled))

	if err := a.promptSave(ctx, p, summary); err != nil {
		return a.handleClosedInput(err)
	}

	fmt.Fprint(a.outW, render.Farewell())
	a.logger.Debug("App.Run method finished.")
	return nil
}

// promptAge asks for the age until a valid whole-number age arrives.
func (a *App) promptAge(p *prompt.Prompter) (int, error) {
	for {
		raw, err := p.Ask("\n🎂 How old are you? ")
		if err != nil {
			return 0, err
		}

		res := input.Validate(raw, input.FieldAge)
		if res.OK {
			return int(res.Value), nil
		}
		a.logger.Debug("Rejected age input.", "reason", res.Message)
		fmt.Fprintf(a.outW, "❌ %s Please try again.\n", res.Message)
	}
}

// promptLifespan asks whether to override the default lifespan and, if so,
// reads one until it is valid and greater than the age. An empty answer at
// the lifespan prompt accepts the default.
func (a *App) promptLifespan(p *prompt.Prompter, age int) (float64, error) {
	fmt.Fprintln(a.outW, "\n"+strings.Repeat("-", 60))
	fmt.Fprintf(a.outW, "💡 By default, we use %s years as average lifespan.\n", formatYears(a.config.DefaultLifespan))

	custom, err := p.AskYesNo("Would you like to use a different lifespan? (y/n): ")
	if err != nil {
		return 0, err
	}
	if !custom {
		fmt.Fprintf(a.outW, "Using default lifespan: %s years\n", formatYears(a.config.DefaultLifespan))
		return a.config.DefaultLifespan, nil
	}

	for {
		raw, err := p.Ask("Enter your expected lifespan (years, Enter for default): ")
		if err != nil {
			return 0, err
		}
		if raw == "" {
			fmt.Fprintf(a.outW, "Using default lifespan: %s years\n", formatYears(a.config.DefaultLifespan))
			return a.config.DefaultLifespan, nil
		}

		res := input.Validate(raw, input.FieldLifespan)
		if !res.OK {
			a.logger.Debug("Rejected lifespan input.", "reason", res.Message)
			fmt.Fprintf(a.outW, "❌ %s\n", res.Message)
			continue
		}
		if res.Value <= float64(age) {
			a.logger.Debug("Rejected lifespan input.", "reason", "not greater than age")
			fmt.Fprintln(a.outW, "⚠️  Lifespan should be greater than your current age. Try again.")
			continue
		}
		return res.Value, nil
	}
}

// promptSave offers the text export. A write failure is reported as a
// warning and never fails the run.
func (a *App) promptSave(ctx context.Context, p *prompt.Prompter, summary lifemath.Summary) error {
	save, err := p.AskYesNo("\n💾 Would you like to save these results to a file? (y/n): ")
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	report := render.Report(summary, a.config.BarLength, false)
	path, err := export.Write(ctx, a.config.OutDir, summary.Age, report)
	if err != nil {
		a.logger.Warn("Report export failed.", "error", err)
		fmt.Fprintf(a.outW, "\n⚠️  Could not save file: %v\n", err)
		return nil
	}

	fmt.Fprintf(a.outW, "\n💾 Results saved to '%s'\n", path)
	return nil
}

// handleClosedInput converts an end-of-input condition into a clean exit
// with a short notice. Any other error passes through.
func (a *App) handleClosedInput(err error) error {
	if errors.Is(err, prompt.ErrClosed) {
		a.logger.Debug("Input stream closed during a prompt; exiting cleanly.")
		fmt.Fprintln(a.outW, "\nInput closed. Exiting.")
		return nil
	}
	return err
}

// formatYears prints a year count without trailing zeros.
func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
