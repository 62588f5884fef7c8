package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lucid/annotate"
	"lucid/internal/config"
)

var (
	annotateKind    string
	annotateLabels  []string
	annotateWidth   int
	annotateContext int
)

func init() {
	annotateCmd.Flags().StringVar(&annotateKind, "kind", "error", "report kind (error|warning|note)")
	annotateCmd.Flags().StringArrayVar(&annotateLabels, "label", nil,
		"labeled byte span as start:end:message (repeatable)")
	annotateCmd.Flags().IntVar(&annotateWidth, "width", 0, "maximum output width (0 = detect from terminal)")
	annotateCmd.Flags().IntVar(&annotateContext, "context", 2, "source lines shown around each labeled span")
}

var annotateCmd = &cobra.Command{
	Use:   "annotate <file>",
	Short: "Print a file excerpt with labeled byte spans",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnnotate,
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	cfg, _, err := config.Discover(".")
	if err != nil {
		return err
	}
	mode, err := resolveColorMode(cmd, cfg)
	if err != nil {
		return err
	}
	applyColorMode(mode, os.Stdout)

	kind, err := parseKind(annotateKind)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	rep := annotate.New(kind, args[0], string(content))
	colors := annotate.NewColorGenerator()
	for _, spec := range annotateLabels {
		label, err := parseLabel(spec)
		if err != nil {
			return err
		}
		label.Color = colors.Next()
		rep = rep.WithLabel(label)
	}

	opts := annotate.Options{
		Width:   resolveWidth(cmd, annotateWidth, cfg),
		Context: resolveContext(cmd, annotateContext, cfg),
	}
	fmt.Fprint(cmd.OutOrStdout(), rep.Render(opts))
	return nil
}

func parseKind(value string) (annotate.Kind, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "error":
		return annotate.KindError, nil
	case "warning":
		return annotate.KindWarning, nil
	case "note":
		return annotate.KindNote, nil
	default:
		return 0, fmt.Errorf("invalid --kind value %q (expected error|warning|note)", value)
	}
}

// parseLabel reads a start:end:message spec. The message is optional and
// may itself contain colons.
func parseLabel(spec string) (annotate.Label, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 {
		return annotate.Label{}, fmt.Errorf("invalid --label value %q (expected start:end:message)", spec)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return annotate.Label{}, fmt.Errorf("invalid --label start in %q: %w", spec, err)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return annotate.Label{}, fmt.Errorf("invalid --label end in %q: %w", spec, err)
	}
	label := annotate.Label{Start: start, End: end}
	if len(parts) == 3 {
		label.Message = parts[2]
	}
	return label, nil
}
