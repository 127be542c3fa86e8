package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/mega/numtheory"
)

func newSigmaCmd(a *app) *cobra.Command {
	var imag float64
	cmd := &cobra.Command{
		Use:   "sigma <n> <z>",
		Short: "Divisor-power sum σ_z(n)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			z, err := parseFloat("z", args[1])
			if err != nil {
				return err
			}

			s, err := numtheory.NewSigmaZComplex(n, complex(z, imag))
			if err != nil {
				return err
			}
			result := s.Compute()
			a.log.Evaluation("sigma",
				zap.Int64("n", n),
				zap.Float64("z", z),
				zap.Float64("imag", imag),
				zap.Stringer("kind", result.Kind()),
			)
			emit(cmd, result)
			return nil
		},
	}
	cmd.Flags().Float64Var(&imag, "imag", 0, "imaginary part of the exponent")
	return cmd
}

func newPhiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "phi <n>",
		Short: "Euler's totient φ(n)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			phi, err := numtheory.NewEulerPhi(n)
			if err != nil {
				return err
			}
			result := phi.Compute()
			a.log.Evaluation("phi", zap.Int64("n", n), zap.Int64("result", result))
			emit(cmd, result)
			return nil
		},
	}
}

func newJordanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "jordan <n> <k>",
		Short: "Jordan totient J_k(n)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			k, err := parseInt("k", args[1])
			if err != nil {
				return err
			}
			j, err := numtheory.NewJordanTotient(n, k)
			if err != nil {
				return err
			}
			result, err := j.Compute()
			if err != nil {
				return err
			}
			a.log.Evaluation("jordan", zap.Int64("n", n), zap.Int64("k", k), zap.Int64("result", result))
			emit(cmd, result)
			return nil
		},
	}
}
