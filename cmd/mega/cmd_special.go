package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/born-ml/mega/special"
)

func newGammaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gamma <z>",
		Short: "Gamma function Γ(z)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			z, err := parseFloat("z", args[0])
			if err != nil {
				return err
			}
			g, err := special.NewGamma(z)
			if err != nil {
				return err
			}
			result, err := g.Compute()
			if err != nil {
				return err
			}
			a.log.Evaluation("gamma", zap.Float64("z", z), zap.Float64("result", result))
			emit(cmd, formatFloat(result))
			return nil
		},
	}
}

func newThetaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "theta <x>",
		Short: "First Chebyshev function θ(x)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloat("x", args[0])
			if err != nil {
				return err
			}
			c, err := special.NewChebyshevFunction(x)
			if err != nil {
				return err
			}
			result := c.Compute()
			a.log.Evaluation("theta", zap.Float64("x", x), zap.Float64("result", result))
			emit(cmd, formatFloat(result))
			return nil
		},
	}
}

func newHaversineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "haversine <theta>",
		Short: "Haversine sin²(θ/2) of an angle in radians",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theta, err := parseFloat("theta", args[0])
			if err != nil {
				return err
			}
			result := special.NewHaversine(theta).Compute()
			a.log.Evaluation("haversine", zap.Float64("theta", theta), zap.Float64("result", result))
			emit(cmd, formatFloat(result))
			return nil
		},
	}
}

func newDistanceCmd(a *app) *cobra.Command {
	var radius float64
	cmd := &cobra.Command{
		Use:   "distance <lat1> <lon1> <lat2> <lon2>",
		Short: "Great-circle distance between two points given in degrees",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var coords [4]float64
			for i, name := range []string{"lat1", "lon1", "lat2", "lon2"} {
				v, err := parseFloat(name, args[i])
				if err != nil {
					return err
				}
				coords[i] = v
			}
			d, err := special.GreatCircleDistance(coords[0], coords[1], coords[2], coords[3], radius)
			if err != nil {
				return err
			}
			a.log.Evaluation("distance", zap.Float64s("coords", coords[:]), zap.Float64("radius", radius))
			emit(cmd, formatFloat(d))
			return nil
		},
	}
	cmd.Flags().Float64Var(&radius, "radius", special.EarthRadiusKm, "sphere radius")
	return cmd
}
