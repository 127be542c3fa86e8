package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/mega/internal/config"
	"github.com/born-ml/mega/internal/logging"
)

// app carries state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	cfg *config.Config
	log *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg: config.Default(),
		log: logging.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:           "mega",
		Short:         "Typed tensors, arithmetic functions and special functions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSigmaCmd(a),
		newPhiCmd(a),
		newJordanCmd(a),
		newGammaCmd(a),
		newThetaCmd(a),
		newHaversineCmd(a),
		newDistanceCmd(a),
		newLucasCmd(a),
		newCatalanCmd(a),
		newGoldenCmd(a),
		newTensorCmd(a),
	)
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(logging.ConfigFor(cfg.Logging.Level, cfg.Logging.Development))
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.log = logger
	a.log.Debug("configuration loaded",
		zap.String("log_level", cfg.Logging.Level),
		zap.Int("golden_iterations", cfg.Sequence.GoldenIterations),
		zap.Int("print_limit", cfg.Tensor.PrintLimit),
	)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			emit(cmd, "mega "+version)
		},
	}
}

func parseInt(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// emit writes a command result to stdout; logs go to stderr.
func emit(cmd *cobra.Command, v any) {
	fmt.Fprintln(cmd.OutOrStdout(), v)
}
