package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
	"zappem.net/pub/io/lined"

	"honnef.co/go/screw/internal/config"
)

// lineReader is the part of lined.Reader the REPL needs.
type lineReader interface {
	ReadString() (string, error)
}

type options struct {
	vip        *viper.Viper
	configFile string
	newReader  func() lineReader
}

func newRootCommand(out io.Writer) *cobra.Command {
	o := &options{
		vip: config.New(),
		newReader: func() lineReader {
			return lined.NewReader()
		},
	}

	cmd := &cobra.Command{
		Use:   "screw",
		Short: "Evaluate screw motions with dual numbers and quaternions",
		Long: `Evaluate screw motions: a rotation about an axis through the origin
combined with a translation along it.

Every parameter can also be set with a SCREW_ environment variable
(SCREW_THETA, SCREW_AXIS="0,0,1", SCREW_PLOT_BOUND, ...) or in a config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.configFile == "" {
				return nil
			}
			if err := config.ReadFile(o.vip, o.configFile); err != nil {
				return err
			}
			klog.V(1).InfoS("Read config file", "path", o.configFile)
			return nil
		},
	}
	cmd.SetOut(out)

	defaults := viper.New()
	config.SetDefaults(defaults)

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "Path to a YAML, TOML or JSON config file")
	flags.Float64(config.KeyTheta, defaults.GetFloat64(config.KeyTheta), "Rotation angle in radians")
	flags.Float64P(config.KeyDisplacement, "d", defaults.GetFloat64(config.KeyDisplacement), "Translation along the axis")
	flags.String(config.KeyAxis, defaults.GetString(config.KeyAxis), "Screw axis as x,y,z")
	flags.String(config.KeyVector, defaults.GetString(config.KeyVector), "Vector to move as x,y,z")
	flags.String(config.KeyMethod, defaults.GetString(config.KeyMethod), "Pipeline: dual, quaternion, dualquat or all")
	flags.Float64("bound", defaults.GetFloat64(config.KeyPlotBound), "Plotted range is [-bound, bound] on every axis")
	flags.Float64("width", defaults.GetFloat64(config.KeyPlotWidth), "Plot width in points")
	flags.Float64("height", defaults.GetFloat64(config.KeyPlotHeight), "Plot height in points")
	flags.StringP("output", "o", defaults.GetString(config.KeyPlotOutput), "Plot output file")

	for key, name := range map[string]string{
		config.KeyTheta:        config.KeyTheta,
		config.KeyDisplacement: config.KeyDisplacement,
		config.KeyAxis:         config.KeyAxis,
		config.KeyVector:       config.KeyVector,
		config.KeyMethod:       config.KeyMethod,
		config.KeyPlotBound:    "bound",
		config.KeyPlotWidth:    "width",
		config.KeyPlotHeight:   "height",
		config.KeyPlotOutput:   "output",
	} {
		// Only fails for a nil flag.
		_ = o.vip.BindPFlag(key, flags.Lookup(name))
	}

	cmd.AddCommand(
		newEvalCommand(o),
		newReplCommand(o),
		newPlotCommand(o),
	)
	return cmd
}

// load returns the configuration for the current invocation.
func (o *options) load() (config.Config, error) {
	cfg, err := config.Load(o.vip)
	if err != nil {
		return config.Config{}, err
	}
	klog.V(1).InfoS("Loaded configuration",
		"theta", cfg.Theta,
		"displacement", cfg.Displacement,
		"axis", cfg.Axis.String(),
		"vector", cfg.Vector.String(),
		"method", cfg.Method)
	return cfg, nil
}
