package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/mega/sequence"
)

func newLucasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lucas <n>",
		Short: "Lucas number L(n)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			result, err := sequence.LucasNumber(n)
			if err != nil {
				return err
			}
			a.log.Evaluation("lucas", zap.Int("n", n), zap.Int64("result", result))
			emit(cmd, result)
			return nil
		},
	}
}

func newCatalanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalan <n>",
		Short: "Catalan number C(n)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			result, err := sequence.CatalanNumber(n)
			if err != nil {
				return err
			}
			a.log.Evaluation("catalan", zap.Int("n", n), zap.Int64("result", result))
			emit(cmd, result)
			return nil
		},
	}
}

func newGoldenCmd(a *app) *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "golden",
		Short: "Golden ratio by continued-fraction iteration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("iterations") {
				iterations = a.cfg.Sequence.GoldenIterations
			}
			result, err := sequence.GoldenRatio(iterations)
			if err != nil {
				return err
			}
			a.log.Evaluation("golden", zap.Int("iterations", iterations), zap.Float64("result", result))
			emit(cmd, formatFloat(result))
			return nil
		},
	}
	cmd.Flags().IntVarP(&iterations, "iterations", "n", sequence.DefaultGoldenIterations,
		"iteration count (default from MEGA_GOLDEN_ITERATIONS)")
	return cmd
}
