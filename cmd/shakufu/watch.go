package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/hogaku/shakufu"
)

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch <score.json>",
	Short: "Re-render a score file to SVG whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}
		if watchOutput == "" {
			return fmt.Errorf("watch requires --output")
		}
		return watchScore(cmd, args[0], watchOutput, opts)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output SVG file (required)")
}

func watchScore(cmd *cobra.Command, scorePath, outPath string, opts shakufu.Options) error {
	render := func() {
		svg, err := renderFile(scorePath, opts)
		if err != nil {
			// Keep watching; a transient parse error during save is
			// normal with editors that write in two steps.
			cmd.PrintErrf("render failed: %v\n", err)
			return
		}
		if err := os.WriteFile(outPath, []byte(svg), 0o644); err != nil {
			cmd.PrintErrf("write failed: %v\n", err)
			return
		}
		cmd.Printf("rendered %s -> %s\n", scorePath, outPath)
	}
	render()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on
	// save, which drops a direct file watch.
	dir := filepath.Dir(scorePath)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target, err := filepath.Abs(scorePath)
	if err != nil {
		return err
	}

	debounced := debounce.New(200 * time.Millisecond)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || abs != target {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				debounced(render)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch error: %v\n", err)
		case <-sig:
			cmd.Println("stopping")
			return nil
		}
	}
}
