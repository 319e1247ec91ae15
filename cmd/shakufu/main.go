// Command shakufu renders shakuhachi notation scores as SVG documents,
// serves them over HTTP, or watches a score file and re-renders it on
// change.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hogaku/shakufu"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "shakufu",
	Short: "Shakuhachi notation renderer",
	Long: `Renders shakuhachi scores (kinko or tozan notation) from the JSON
interchange format into SVG, as vertical right-to-left columns.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			shakufu.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "options YAML file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadOptions builds the renderer configuration: defaults, overlaid
// with the YAML config file when given. Subcommand flags apply on top.
func loadOptions() (shakufu.Options, error) {
	opts := shakufu.DefaultOptions()
	if configPath == "" {
		return opts, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return opts, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parse config %s: %w", configPath, err)
	}
	return opts, nil
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
