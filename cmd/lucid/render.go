package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lucid/internal/bundle"
	"lucid/internal/config"
	"lucid/render"
)

var (
	renderFormat         string
	renderWidth          int
	renderContext        int
	renderJobs           int
	renderIncludeContent bool
	renderMaxDepth       int
)

func init() {
	renderCmd.Flags().StringVar(&renderFormat, "format", "pretty", "output format (pretty|json|short)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "maximum output width (0 = detect from terminal)")
	renderCmd.Flags().IntVar(&renderContext, "context", 2, "source lines shown around each labeled span")
	renderCmd.Flags().IntVar(&renderJobs, "jobs", 0, "bundles decoded in parallel (0 = GOMAXPROCS)")
	renderCmd.Flags().BoolVar(&renderIncludeContent, "include-content", false, "include file snapshots in json output")
	renderCmd.Flags().IntVar(&renderMaxDepth, "max-depth", 0, "related depth in json output (0 = unlimited)")
}

var renderCmd = &cobra.Command{
	Use:   "render <bundle>...",
	Short: "Render stored report bundles",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	switch renderFormat {
	case "pretty", "json", "short":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json, or short)", renderFormat)
	}

	cfg, cfgPath, err := config.Discover(".")
	if err != nil {
		return err
	}
	if cfgPath != "" {
		logger.Debug("loaded config", zap.String("path", cfgPath))
	}

	mode, err := resolveColorMode(cmd, cfg)
	if err != nil {
		return err
	}
	applyColorMode(mode, os.Stdout)

	opts := render.PrettyOpts{
		Width:   resolveWidth(cmd, renderWidth, cfg),
		Context: resolveContext(cmd, renderContext, cfg),
	}

	// Decode and render in parallel; each goroutine owns one output slot,
	// so printing stays in argument order.
	outputs := make([]string, len(args))
	jobs := renderJobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))

	for i, path := range args {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				b, err := bundle.ReadFile(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				logger.Debug("decoded bundle",
					zap.String("path", path),
					zap.String("tool", b.Tool),
					zap.Time("saved", b.Saved))

				var out strings.Builder
				switch renderFormat {
				case "pretty":
					render.Pretty(&out, b.Report, opts)
				case "json":
					jsonOpts := render.JSONOpts{
						IncludeContent: renderIncludeContent,
						MaxDepth:       renderMaxDepth,
					}
					if err := render.JSON(&out, b.Report, jsonOpts); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
				case "short":
					out.WriteString(render.Short(b.Report))
				}
				outputs[i] = out.String()
				return nil
			}
		}(i, path))
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range outputs {
		if i > 0 && renderFormat == "pretty" {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	}
	return nil
}
