package main

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/screw"
	"honnef.co/go/screw/internal/config"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// scriptReader feeds the REPL a fixed list of lines, then io.EOF.
type scriptReader struct {
	lines []string
}

func (r *scriptReader) ReadString() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var quarter = strconv.FormatFloat(math.Pi/2, 'g', -1, 64)

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "--theta", quarter, "-d", "1", "--axis", "0,0,1", "--vector", "1,0,0", "--method", "dual")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "dual       (0.000000, 1.000000, 1.000000)\n", out)
}

func TestEvalAll(t *testing.T) {
	out, err := run(t, "eval", "--theta", quarter, "-d", "1", "--axis", "0 0 5", "--vector", "1,0,0")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	for i, m := range []string{"dual", "quaternion", "dualquat"} {
		if !strings.HasPrefix(lines[i], m+" ") || !strings.HasSuffix(lines[i], "(0.000000, 1.000000, 1.000000)") {
			t.Errorf("line %d: got %q", i, lines[i])
		}
	}
	if !strings.HasPrefix(lines[3], "max |Δ|") {
		t.Errorf("got %q, want deviation line", lines[3])
	}
}

func TestEvalInvalidAxis(t *testing.T) {
	_, err := run(t, "eval", "--axis", "0,0,0")
	if !errors.Is(err, screw.ErrInvalidAxis) {
		t.Errorf("got error %v, want ErrInvalidAxis", err)
	}
}

func TestEvalConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screw.json")
	data := `{"theta": ` + quarter + `, "displacement": 2, "axis": [1, 0, 0], "vector": "0,1,0", "method": "quaternion"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "--config", path, "eval")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "quaternion (2.000000, 0.000000, 1.000000)\n", out)
}

func TestPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "screw.png")
	out, err := run(t, "plot", "--output", path, "--width", "300", "--height", "120")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "wrote "+path+"\n", out)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG file")
	}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load(config.New())
	if err != nil {
		t.Fatal(err)
	}
	cfg.Method = config.MethodDual
	return cfg
}

func TestREPL(t *testing.T) {
	var out bytes.Buffer
	r := &scriptReader{lines: []string{
		"# comment",
		"",
		"theta " + quarter,
		"d 1",
		"axis 0 0 0",
		"axis 0 0 1",
		"bogus",
		"exit",
		"theta 2",
	}}
	if err := runREPL(r, &out, testConfig(t)); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"dual       (0.000000, 1.000000, 1.000000)",
		"warning: invalid rotation axis",
		`error: unknown command "bogus"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
	if len(r.lines) != 1 {
		t.Errorf("exit left %d unread lines, want 1", len(r.lines))
	}
}

func TestREPLEOF(t *testing.T) {
	var out bytes.Buffer
	if err := runREPL(&scriptReader{}, &out, testConfig(t)); err != nil {
		t.Fatal(err)
	}
}

func TestSessionExec(t *testing.T) {
	s := &session{cfg: testConfig(t), out: io.Discard}

	for _, line := range []string{"deg 90", "d -1.5", "v 1 2 3", "axis 1,0,0", "method quaternion"} {
		if _, err := s.exec(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	diff(t, math.Pi/2, s.cfg.Theta, cmpopts.EquateApprox(0, 1e-12))
	diff(t, -1.5, s.cfg.Displacement)
	diff(t, screw.Vec(1, 2, 3), s.cfg.Vector)
	diff(t, screw.Vec(1, 0, 0), s.cfg.Axis)
	diff(t, config.MethodQuaternion, s.cfg.Method)

	before := s.cfg
	for _, line := range []string{"theta", "theta x", "theta NaN", "v 1 2", "v 1 NaN 0", "v Inf 0 0", "axis 0 -Inf 1", "axis", "method euler", "method"} {
		if _, err := s.exec(line); err == nil {
			t.Errorf("%q: expected error", line)
		}
	}
	diff(t, before, s.cfg)
}

func TestSessionPlot(t *testing.T) {
	var out bytes.Buffer
	s := &session{cfg: testConfig(t), out: &out}
	path := filepath.Join(t.TempDir(), "repl.png")
	if _, err := s.exec("plot " + path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
