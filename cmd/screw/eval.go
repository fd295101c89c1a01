package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"honnef.co/go/screw"
	"honnef.co/go/screw/internal/config"
)

func newEvalCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Print the screw-displaced vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			results, err := evaluate(cfg)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

type result struct {
	method config.Method
	v      screw.Vec3
}

// evaluate moves cfg.Vector with every pipeline cfg.Method selects.
func evaluate(cfg config.Config) ([]result, error) {
	methods := []config.Method{cfg.Method}
	if cfg.Method == config.MethodAll {
		methods = []config.Method{config.MethodDual, config.MethodQuaternion, config.MethodDualQuat}
	}

	var out []result
	for _, m := range methods {
		var (
			v   screw.Vec3
			err error
		)
		switch m {
		case config.MethodDual:
			v, err = screw.RotateScrewDual(cfg.Vector, cfg.Axis, cfg.Theta, cfg.Displacement)
		case config.MethodQuaternion:
			v, err = screw.RotateScrewQuaternion(cfg.Vector, cfg.Axis, cfg.Theta, cfg.Displacement)
		case config.MethodDualQuat:
			var s screw.Screw
			s, err = screw.NewScrew(cfg.Axis, cfg.Theta, cfg.Displacement)
			if err == nil {
				v, err = s.ApplyDualQuaternion(cfg.Vector)
			}
		default:
			return nil, fmt.Errorf("unknown method %q", m)
		}
		if err != nil {
			return nil, err
		}
		klog.V(2).InfoS("Evaluated screw", "method", m, "result", v.String())
		out = append(out, result{method: m, v: v})
	}
	return out, nil
}

func printResults(w io.Writer, results []result) {
	for _, r := range results {
		fmt.Fprintf(w, "%-10s %s\n", r.method, formatVec(r.v))
	}
	if len(results) < 2 {
		return
	}
	var dev float64
	for _, r := range results[1:] {
		d := r.v.Sub(results[0].v)
		dev = math.Max(dev, math.Max(math.Abs(d.X), math.Max(math.Abs(d.Y), math.Abs(d.Z))))
	}
	fmt.Fprintf(w, "%-10s %.3g\n", "max |Δ|", dev)
}

// formatVec prints v with six decimals, without negative zeros.
func formatVec(v screw.Vec3) string {
	c := func(x float64) float64 {
		if math.Abs(x) < 5e-7 {
			return 0
		}
		return x
	}
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", c(v.X), c(v.Y), c(v.Z))
}
