package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"lucid/internal/config"
	"lucid/internal/version"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "lucid",
	Short: "Readable reports for opaque program errors",
	Long: `Lucid resolves wrapped program errors into structured reports and
renders them for people: summaries, file excerpts with labeled spans,
and the chain of causes behind a failure.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Root().PersistentFlags().GetBool("debug")
		if err != nil {
			return err
		}
		l, err := newConsoleLogger(debug)
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		logger = l
		return nil
	},
}

// main registers subcommands and global flags, then runs the root command.
// A failed command exits with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	defer func() {
		_ = logger.Sync()
	}()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColorMode picks the color mode from the --color flag, falling
// back to lucid.toml when the flag was not set explicitly.
func resolveColorMode(cmd *cobra.Command, cfg config.Config) (string, error) {
	flags := cmd.Root().PersistentFlags()
	mode, err := flags.GetString("color")
	if err != nil {
		return "", fmt.Errorf("failed to get color flag: %w", err)
	}
	if !flags.Changed("color") && cfg.Render.Color != "" {
		mode = cfg.Render.Color
	}
	switch mode {
	case "auto", "on", "off":
		return mode, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

func applyColorMode(mode string, out *os.File) {
	useColor := mode == "on" || (mode == "auto" && isTerminal(out))
	color.NoColor = !useColor
}

// resolveWidth merges a command's --width flag with lucid.toml. A final
// value of zero falls through to the terminal size, if there is one.
func resolveWidth(cmd *cobra.Command, flagValue int, cfg config.Config) int {
	width := flagValue
	if !cmd.Flags().Changed("width") && cfg.Render.Width > 0 {
		width = cfg.Render.Width
	}
	if width <= 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	return width
}

func resolveContext(cmd *cobra.Command, flagValue int, cfg config.Config) int {
	if !cmd.Flags().Changed("context") {
		return cfg.Render.Context
	}
	return flagValue
}
