package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hogaku/shakufu"
	"github.com/hogaku/shakufu/score"
)

var (
	renderOutput        string
	renderWidth         float64
	renderHeight        float64
	renderPerColumn     int
	renderDebugLabels   bool
	renderNoOctaveMarks bool
)

var renderCmd = &cobra.Command{
	Use:   "render <score.json>",
	Short: "Render a score file to SVG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		applyRenderFlags(cmd, &opts)

		svg, err := renderFile(args[0], opts)
		if err != nil {
			return err
		}
		return writeOutput(renderOutput, svg)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
	renderCmd.Flags().Float64Var(&renderWidth, "width", 0, "viewport width")
	renderCmd.Flags().Float64Var(&renderHeight, "height", 0, "viewport height")
	renderCmd.Flags().IntVar(&renderPerColumn, "notes-per-column", 0, "column capacity")
	renderCmd.Flags().BoolVar(&renderDebugLabels, "debug-labels", false, "overlay diagnostic labels")
	renderCmd.Flags().BoolVar(&renderNoOctaveMarks, "no-octave-marks", false, "hide octave-register marks")
}

// applyRenderFlags overlays explicitly set flags onto opts, leaving
// config-file values in place for flags the user did not pass.
func applyRenderFlags(cmd *cobra.Command, opts *shakufu.Options) {
	if cmd.Flags().Changed("width") {
		opts.Width = renderWidth
	}
	if cmd.Flags().Changed("height") {
		opts.Height = renderHeight
	}
	if cmd.Flags().Changed("notes-per-column") {
		opts.NotesPerColumn = renderPerColumn
	}
	if cmd.Flags().Changed("debug-labels") {
		opts.ShowDebugLabels = renderDebugLabels
	}
	if cmd.Flags().Changed("no-octave-marks") {
		opts.ShowOctaveMarks = !renderNoOctaveMarks
	}
}

// renderFile renders one score file to an SVG document string.
func renderFile(path string, opts shakufu.Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read score: %w", err)
	}
	sc, err := score.Unmarshal(data)
	if err != nil {
		return "", err
	}

	container := shakufu.NewUnmeasuredContainer()
	renderer := shakufu.New(container, shakufu.WithOptions(opts), shakufu.WithAutoResize(false))
	defer renderer.Destroy()

	if err := renderer.RenderFromScoreData(sc); err != nil {
		return "", err
	}
	return container.Content(), nil
}

func writeOutput(path, svg string) error {
	if path == "" {
		_, err := fmt.Print(svg)
		return err
	}
	return os.WriteFile(path, []byte(svg), 0o644)
}
