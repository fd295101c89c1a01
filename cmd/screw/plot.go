package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"k8s.io/klog/v2"

	"honnef.co/go/screw"
	"honnef.co/go/screw/internal/config"
	"honnef.co/go/screw/internal/render"
)

// traceSteps is the number of segments in the plotted tip trajectory.
const traceSteps = 64

func newPlotCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plot",
		Short: "Render the axis and the screw vector to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			if err := writePlot(cfg, cfg.Plot.Output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfg.Plot.Output)
			return nil
		},
	}
}

// scene builds the figure for cfg. The result drawn is the dual-number one.
func scene(cfg config.Config) (render.Scene, error) {
	s, err := screw.NewScrew(cfg.Axis, cfg.Theta, cfg.Displacement)
	if err != nil {
		return render.Scene{}, err
	}
	res, err := s.Apply(cfg.Vector)
	if err != nil {
		return render.Scene{}, err
	}
	path, err := render.Trace(s, cfg.Vector, traceSteps)
	if err != nil {
		return render.Scene{}, err
	}
	return render.Scene{
		Axis:   s.Axis,
		Vector: cfg.Vector,
		Result: res,
		Path:   path,
		Title:  render.Title(cfg.Theta, cfg.Displacement, s.Axis),
		Bound:  cfg.Plot.Bound,
	}, nil
}

func renderPlot(cfg config.Config, w io.Writer) error {
	sc, err := scene(cfg)
	if err != nil {
		return err
	}
	return sc.WritePNG(w, vg.Points(cfg.Plot.Width), vg.Points(cfg.Plot.Height))
}

func writePlot(cfg config.Config, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := renderPlot(cfg, f); err != nil {
		return err
	}
	klog.InfoS("Wrote plot", "path", path)
	return nil
}
