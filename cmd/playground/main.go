// Command playground runs the site's canvas scenes outside the browser:
// in a terminal, in a desktop window, or just prints the stored high score.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
)

// options are the flags shared by every subcommand.
type options struct {
	scene   string
	mode    string
	palette string
	count   int
	db      string
	model   string
	fps     int
	mute    bool
	debug   string
}

var (
	opts    options
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:           "playground",
	Short:         "Play with the portfolio canvases from a terminal or a window",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(opts.debug)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading configuration, using defaults: %v", err)
		cfg = config.Defaults()
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.scene, "scene", "particles", "scene to run: particles, background, game or model")
	flags.StringVar(&opts.mode, "mode", "attract", "particle mode: attract, repel, explode or vortex")
	flags.StringVar(&opts.palette, "palette", "", "particle palette name")
	flags.IntVar(&opts.count, "count", 0, "particle count (0 keeps the default)")
	flags.StringVar(&opts.db, "db", cfg.DBPath, "SQLite file holding the high score")
	flags.StringVar(&opts.model, "model", cfg.ModelPath, "OBJ file for the model scene")
	flags.IntVar(&opts.fps, "fps", cfg.FrameRate, "frames per second")
	flags.BoolVar(&opts.mute, "mute", false, "disable sound")
	flags.StringVar(&opts.debug, "debug", "", "write logs to this file")
}

// setupLogging sends the log to path, or discards it: the terminal
// belongs to the scene while it runs.
func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	log.SetOutput(f)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "playground:", err)
		os.Exit(1)
	}
}
