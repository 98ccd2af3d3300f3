package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/OpenTraceLab/OpenTraceSch/internal/config"
	"github.com/OpenTraceLab/OpenTraceSch/internal/logging"
	"github.com/spf13/cobra"
)

// Version is the release reported by --version and the version command.
const Version = "0.1.0"

var (
	// Global flags
	verbose    bool
	configPath string

	// Set up by the root command before any subcommand runs
	cfg    *config.Config
	logBuf *logging.Buffer
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "otsch",
	Short: "OpenTraceSch - schematic primitive editing tools",
	Long: `OpenTraceSch (otsch) creates and edits schematic drawing primitives:
lines, boxes, circles, arcs, pins, text and pictures.

Edits are written as scripts, one statement per line:

  line 3 (0, 0) (100, 0) as wire
  rotate wire (0, 0) 90
  print

Examples:
  otsch run edit.otsch            # Execute a script and print results
  otsch run --json edit.otsch     # Same, as JSON
  otsch check edit.otsch          # Parse only
  otsch fill-styles               # List fill types and their parameters`,
	Version:           Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is the platform config directory)")
}

// setup loads the configuration and builds the logger. Flags override the
// config file and environment.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if cmd.Flags().Changed("verbose") {
		c.Verbose = verbose
	}
	cfg = c

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logBuf = logging.NewBuffer(cfg.LogBuffer)
	logger = logging.New(logging.Options{
		Console: cmd.ErrOrStderr(),
		Level:   level,
		Buffer:  logBuf,
	})
	return nil
}
