package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"honnef.co/go/screw/internal/config"
)

const replHelp = `commands:
  theta <rad>     rotation angle in radians
  deg <degrees>   rotation angle in degrees
  d <len>         displacement along the axis
  axis x y z      screw axis
  v x y z         vector to move
  method <m>      dual, quaternion, dualquat or all
  show            print the parameters and the result
  plot [file]     render to a PNG file
  help            this text
  exit            leave`

func newReplCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Explore screw motions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load()
			if err != nil {
				return err
			}
			return runREPL(o.newReader(), cmd.OutOrStdout(), cfg)
		},
	}
}

// session holds the parameters of an interactive session. Every change
// re-evaluates the screw.
type session struct {
	cfg config.Config
	out io.Writer
}

func runREPL(r lineReader, out io.Writer, cfg config.Config) error {
	s := &session{cfg: cfg, out: out}
	fmt.Fprintln(out, `screw: type "help" for commands`)
	s.show()
	for {
		fmt.Fprint(out, "> ")
		line, err := r.ReadString()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}
		quit, err := s.exec(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// exec runs one command line. It reports whether the session should end.
func (s *session) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "exit", "quit":
		return true, nil
	case "help":
		fmt.Fprintln(s.out, replHelp)
		return false, nil
	case "show":
		s.show()
		return false, nil
	case "plot":
		path := s.cfg.Plot.Output
		if len(args) > 0 {
			path = args[0]
		}
		if err := writePlot(s.cfg, path); err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "wrote %s\n", path)
		return false, nil
	case "theta", "deg", "d":
		x, err := scalarArg(cmd, args)
		if err != nil {
			return false, err
		}
		switch cmd {
		case "theta":
			s.cfg.Theta = x
		case "deg":
			s.cfg.Theta = x * math.Pi / 180
		case "d":
			s.cfg.Displacement = x
		}
	case "axis", "v":
		if len(args) == 0 {
			return false, fmt.Errorf("usage: %s x y z", cmd)
		}
		v, err := config.ParseVec(strings.Join(args, " "))
		if err != nil {
			return false, err
		}
		if v.IsNaN() || v.IsInf() {
			return false, fmt.Errorf("%s %s is not finite", cmd, v)
		}
		if cmd == "axis" {
			s.cfg.Axis = v
		} else {
			s.cfg.Vector = v
		}
	case "method":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: method <%v>", config.Methods)
		}
		m, err := config.ParseMethod(args[0])
		if err != nil {
			return false, err
		}
		s.cfg.Method = m
	default:
		return false, fmt.Errorf("unknown command %q", cmd)
	}
	s.update()
	return false, nil
}

func scalarArg(cmd string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s <number>", cmd)
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%s must be finite", cmd)
	}
	return x, nil
}

func (s *session) show() {
	c := s.cfg
	fmt.Fprintf(s.out, "θ=%g rad (%.1f°) d=%g axis=%s v=%s method=%s\n",
		c.Theta, c.Theta*180/math.Pi, c.Displacement, c.Axis, c.Vector, c.Method)
	s.update()
}

// update prints the current result. A degenerate axis is reported but keeps
// the session alive so it can be corrected.
func (s *session) update() {
	results, err := evaluate(s.cfg)
	if err != nil {
		klog.V(1).InfoS("Evaluation failed", "err", err)
		fmt.Fprintf(s.out, "warning: %v\n", err)
		return
	}
	printResults(s.out, results)
}
