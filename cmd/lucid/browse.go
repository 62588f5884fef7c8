package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lucid/internal/bundle"
	"lucid/internal/config"
	"lucid/internal/tui"
	"lucid/render"
)

var browseUI string

func init() {
	browseCmd.Flags().StringVar(&browseUI, "ui", "auto", "interactive browser (auto|on|off)")
}

var browseCmd = &cobra.Command{
	Use:   "browse <bundle>...",
	Short: "Page through stored reports interactively",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBrowse,
}

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	mode, err := readUIMode(browseUI)
	if err != nil {
		return err
	}

	cfg, _, err := config.Discover(".")
	if err != nil {
		return err
	}
	colorMode, err := resolveColorMode(cmd, cfg)
	if err != nil {
		return err
	}
	applyColorMode(colorMode, os.Stdout)

	opts := render.PrettyOpts{
		Width:   resolveWidth(cmd, 0, cfg),
		Context: resolveContext(cmd, 0, cfg),
	}

	reports := make([]tui.Report, 0, len(args))
	for _, path := range args {
		b, err := bundle.ReadFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("decoded bundle",
			zap.String("path", path),
			zap.String("tool", b.Tool))

		var body strings.Builder
		render.Pretty(&body, b.Report, opts)
		reports = append(reports, tui.Report{Title: path, Body: body.String()})
	}

	if !shouldUseTUI(mode) {
		for i, rep := range reports {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprint(cmd.OutOrStdout(), rep.Body)
		}
		return nil
	}

	program := tea.NewProgram(tui.NewBrowser(reports), tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
