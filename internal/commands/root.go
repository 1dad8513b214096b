// Package commands provides the symptrack CLI.
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/diogo/symptrack/internal/config"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// app carries the state shared by every command of one invocation
type app struct {
	deps   *Dependencies
	cfg    config.Config
	logger *zap.Logger

	// Global flags
	baseURL string
	verbose bool
}

// NewRootCmd builds the command tree around deps
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	a := &app{deps: deps, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "symptrack",
		Short: "Terminal chat client for the SympTrack symptom checker",
		Long: `symptrack talks to a SympTrack prediction server. Describe your
symptoms in free text and get a predicted condition with a severity rating.

Examples:
  symptrack                              Start the interactive chat
  symptrack predict "fever, cough"       One-shot prediction
  echo "headache" | symptrack predict    Read symptoms from stdin
  symptrack symptoms --search head       List known symptoms
  symptrack theme toggle                 Switch between light and dark`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(a.deps.Stdout, "symptrack %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return a.runChat()
		},
	}

	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "Prediction server root (overrides config and SYMPTRACK_BASE_URL)")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "Write debug entries to the log file")
	root.Flags().BoolP("version", "v", false, "Show version and exit")

	root.AddCommand(
		newChatCmd(a),
		newPredictCmd(a),
		newSymptomsCmd(a),
		newThemeCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads configuration and the logger before any command runs
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := a.deps.LoadConfig()
	if err != nil {
		fmt.Fprintf(a.deps.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if a.baseURL != "" {
		cfg.BaseURL = strings.TrimRight(strings.TrimSpace(a.baseURL), "/")
	}
	if a.verbose {
		cfg.Verbose = true
	}
	a.cfg = cfg

	a.logger = a.deps.NewLogger(cfg)
	a.logger.Debug("command started",
		zap.String("command", cmd.CommandPath()),
		zap.String("base_url", cfg.BaseURL),
		zap.String("version", Version))
	return nil
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	deps := NewDependencies()
	if err := NewRootCmd(deps).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(deps.Stderr, formatErrorMessage(err, "symptrack"))
		stop()
		os.Exit(1)
	}
}
