package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/searchbench/internal/config"
	"github.com/harrison/searchbench/internal/visual"
)

// NewVisualizeCommand creates the visualize command
func NewVisualizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Draw the steps of a binary search",
		Long: `Replay binary search over a sorted list and draw every step: the
eliminated elements, the midpoint and the elements still in range.

The tikz style emits a Beamer overlay (one \only<k> block per step) for
inclusion in a LaTeX slide. The text style draws the steps in the terminal.

Values, target and style default to the visualize section of the config
file, or to the demonstration list with target 71.

Examples:
  searchbench visualize
  searchbench visualize --style text --target 52
  searchbench visualize --values 1,3,5,7,9 --target 7 > steps.tex`,
		Args: cobra.NoArgs,
		RunE: runVisualize,
	}

	cmd.Flags().IntSlice("values", nil, "Sorted list to search (default from config)")
	cmd.Flags().Int("target", 0, "Value to search for (default from config)")
	cmd.Flags().String("style", "", "Output style: tikz, text (default from config)")

	return cmd
}

func runVisualize(cmd *cobra.Command, args []string) error {
	env, err := newRuntimeEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	vc := env.cfg.Visualize
	if changed(cmd, "values") {
		vc.Values, _ = cmd.Flags().GetIntSlice("values")
	}
	if changed(cmd, "target") {
		vc.Target, _ = cmd.Flags().GetInt("target")
	}
	if changed(cmd, "style") {
		vc.Style, _ = cmd.Flags().GetString("style")
	}

	return drawSteps(cmd.OutOrStdout(), env, vc)
}

// drawSteps renders the trace described by vc to w.
func drawSteps(w io.Writer, env *runtimeEnv, vc config.VisualizeConfig) error {
	renderer, err := visual.NewRenderer(vc.Style, env.color)
	if err != nil {
		return err
	}

	res, err := visual.Render(w, vc.Values, vc.Target, renderer)
	if err != nil {
		return fmt.Errorf("failed to render visualization: %w", err)
	}

	if res.Found() {
		env.log.LogInfo(fmt.Sprintf("Target %d found at index %d in %d step(s)", vc.Target, res.Index, res.Steps))
	} else {
		env.log.LogInfo(fmt.Sprintf("Target %d not found after %d step(s)", vc.Target, res.Steps))
	}
	return nil
}
