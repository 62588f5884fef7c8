package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"lucid"
	"lucid/internal/bundle"
	"lucid/internal/config"
	"lucid/render"
)

var (
	demoOut    string
	demoLocale string
	demoWidth  int
)

func init() {
	demoCmd.Flags().StringVar(&demoOut, "out", "", "also store the report as a bundle at this path")
	demoCmd.Flags().StringVar(&demoLocale, "locale", "", "locale handed to converters (overrides lucid.toml)")
	demoCmd.Flags().IntVar(&demoWidth, "width", 0, "maximum output width (0 = detect from terminal)")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Resolve and render a sample error chain",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

const demoManifest = `[service]
name = "imports"

[limits]
workers = "many"
`

// demoConfigError stands in for the kind of internal error a service
// would hand to the resolver: terse on its own, but explainable.
type demoConfigError struct {
	path  string
	value string
	cause error
}

func (e *demoConfigError) Error() string {
	return fmt.Sprintf("%s: limits.workers: cannot parse %s as an integer", e.path, e.value)
}

func (e *demoConfigError) Explain(ctx lucid.Context) lucid.UserFacingError {
	summary := "The service manifest has a value of the wrong type"
	reason := "limits.workers sets how many import workers run in parallel, so it must be an integer."
	if ctx.Locale() == language.German {
		summary = "Das Dienstmanifest enthält einen Wert mit falschem Typ"
		reason = "limits.workers bestimmt, wie viele Import-Worker parallel laufen, und muss daher eine Ganzzahl sein."
	}
	cause := lucid.NewCause(summary).
		WithExtendedReason(reason).
		WithHighlight(lucid.FileHighlight{
			Path:    e.path,
			Content: demoManifest,
			Labels: []lucid.FileLabel{
				{Start: 47, End: 53, Message: "this is a string"},
				{Start: 37, End: 44, Message: "expects an integer"},
			},
		})
	out := lucid.New(cause)
	if e.cause != nil {
		out = out.WithRelated(lucid.Resolve(e.cause, ctx))
	}
	return out
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Discover(".")
	if err != nil {
		return err
	}
	mode, err := resolveColorMode(cmd, cfg)
	if err != nil {
		return err
	}
	applyColorMode(mode, os.Stdout)

	tag, err := cfg.Render.ParseLocale()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("locale") {
		tag, err = language.Parse(demoLocale)
		if err != nil {
			return fmt.Errorf("invalid --locale value %q: %w", demoLocale, err)
		}
	}
	ctx := lucid.NewContext().WithLocale(tag)

	lucid.Register(lucid.ForType[*demoConfigError]())

	_, parseErr := strconv.Atoi("many")
	manifestErr := &demoConfigError{path: "service.toml", value: `"many"`, cause: parseErr}
	failure := fmt.Errorf("could not start the import service: %w", manifestErr)

	ufe := lucid.Resolve(failure, ctx)

	opts := render.PrettyOpts{
		Width:   resolveWidth(cmd, demoWidth, cfg),
		Context: resolveContext(cmd, 0, cfg),
	}
	render.Pretty(cmd.OutOrStdout(), ufe, opts)

	if demoOut != "" {
		b := bundle.Bundle{Saved: time.Now().UTC(), Tool: "lucid", Report: ufe}
		if err := bundle.WriteFile(demoOut, b); err != nil {
			return fmt.Errorf("failed to write bundle: %w", err)
		}
		logger.Debug("wrote bundle", zap.String("path", demoOut))
		fmt.Fprintf(cmd.OutOrStdout(), "\nstored report at %s\n", demoOut)
	}
	return nil
}
