// Package config loads the parameters of a screw evaluation from flags,
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"honnef.co/go/screw"
)

// EnvPrefix is prepended to the upper-cased key of every setting, with dots
// replaced by underscores: SCREW_THETA, SCREW_PLOT_BOUND.
const EnvPrefix = "SCREW"

// Keys understood by Load.
const (
	KeyTheta        = "theta"
	KeyDisplacement = "displacement"
	KeyAxis         = "axis"
	KeyVector       = "vector"
	KeyMethod       = "method"
	KeyPlotBound    = "plot.bound"
	KeyPlotWidth    = "plot.width"
	KeyPlotHeight   = "plot.height"
	KeyPlotOutput   = "plot.output"
)

// Method selects which pipeline evaluates a screw.
type Method string

const (
	MethodDual       Method = "dual"
	MethodQuaternion Method = "quaternion"
	MethodDualQuat   Method = "dualquat"
	MethodAll        Method = "all"
)

// Methods lists the valid methods in display order.
var Methods = []Method{MethodDual, MethodQuaternion, MethodDualQuat, MethodAll}

// ParseMethod returns the method named s.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown method %q, want one of %v", s, Methods)
}

// Plot holds the settings of the rendered figure.
type Plot struct {
	// Bound is the half-width of every plotted axis range.
	Bound float64
	// Width and Height are in points.
	Width  float64
	Height float64
	Output string
}

// Config is a complete set of screw parameters.
type Config struct {
	Theta        float64
	Displacement float64
	Axis         screw.Vec3
	Vector       screw.Vec3
	Method       Method
	Plot         Plot
}

// New returns a viper instance with the defaults set and environment
// variables bound.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheta, math.Pi/4)
	v.SetDefault(KeyDisplacement, 0.5)
	v.SetDefault(KeyAxis, "0,0,1")
	v.SetDefault(KeyVector, "1,0,0")
	v.SetDefault(KeyMethod, string(MethodAll))
	v.SetDefault(KeyPlotBound, 2.0)
	v.SetDefault(KeyPlotWidth, 900.0)
	v.SetDefault(KeyPlotHeight, 320.0)
	v.SetDefault(KeyPlotOutput, "screw.png")
}

// BindEnv makes v consult SCREW_* environment variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile merges the config file at path into v. The format is taken from
// the file extension.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// Load reads and validates a Config from v.
func Load(v *viper.Viper) (Config, error) {
	theta, err := cast.ToFloat64E(v.Get(KeyTheta))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyTheta, err)
	}
	d, err := cast.ToFloat64E(v.Get(KeyDisplacement))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyDisplacement, err)
	}
	axis, err := vecValue(v.Get(KeyAxis))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyAxis, err)
	}
	vec, err := vecValue(v.Get(KeyVector))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyVector, err)
	}
	method, err := ParseMethod(v.GetString(KeyMethod))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyMethod, err)
	}
	cfg := Config{
		Theta:        theta,
		Displacement: d,
		Axis:         axis,
		Vector:       vec,
		Method:       method,
		Plot: Plot{
			Bound:  v.GetFloat64(KeyPlotBound),
			Width:  v.GetFloat64(KeyPlotWidth),
			Height: v.GetFloat64(KeyPlotHeight),
			Output: v.GetString(KeyPlotOutput),
		},
	}
	return cfg, cfg.Validate()
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if _, err := screw.UnitAxis(c.Axis); err != nil {
		return err
	}
	if c.Vector.IsNaN() || c.Vector.IsInf() {
		return fmt.Errorf("vector %s is not finite", c.Vector)
	}
	if math.IsNaN(c.Theta) || math.IsInf(c.Theta, 0) {
		return fmt.Errorf("theta %g is not finite", c.Theta)
	}
	if math.IsNaN(c.Displacement) || math.IsInf(c.Displacement, 0) {
		return fmt.Errorf("displacement %g is not finite", c.Displacement)
	}
	if _, err := ParseMethod(string(c.Method)); err != nil {
		return err
	}
	if !(c.Plot.Bound > 0) {
		return fmt.Errorf("plot bound must be positive, got %g", c.Plot.Bound)
	}
	if !(c.Plot.Width > 0) || !(c.Plot.Height > 0) {
		return fmt.Errorf("plot size must be positive, got %g×%g", c.Plot.Width, c.Plot.Height)
	}
	return nil
}

var errVecLen = errors.New("a vector needs exactly three components")

// ParseVec parses a vector written as "x,y,z". Whitespace may be used instead
// of or in addition to commas.
func ParseVec(s string) (screw.Vec3, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return screw.Vec3{}, fmt.Errorf("%q: %w", s, errVecLen)
	}
	var xs [3]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return screw.Vec3{}, fmt.Errorf("%q: %w", s, err)
		}
		xs[i] = x
	}
	return screw.Vec(xs[0], xs[1], xs[2]), nil
}

// vecValue accepts either a string for ParseVec or a list of three numbers,
// as produced by YAML, TOML and JSON config files.
func vecValue(val any) (screw.Vec3, error) {
	switch val := val.(type) {
	case string:
		return ParseVec(val)
	case []any:
		if len(val) != 3 {
			return screw.Vec3{}, errVecLen
		}
		var xs [3]float64
		for i, x := range val {
			f, err := cast.ToFloat64E(x)
			if err != nil {
				return screw.Vec3{}, err
			}
			xs[i] = f
		}
		return screw.Vec(xs[0], xs[1], xs[2]), nil
	default:
		return screw.Vec3{}, fmt.Errorf("unsupported vector value %v (%T)", val, val)
	}
}
