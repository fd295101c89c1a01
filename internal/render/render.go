// Package render draws a screw motion as three orthographic projections.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"honnef.co/go/screw"
)

var (
	axisColor   = color.RGBA{R: 0x19, G: 0x87, B: 0xc7, A: 0xff}
	vectorColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	resultColor = color.RGBA{R: 0xc7, G: 0x19, B: 0x2b, A: 0xff}
	pathColor   = color.RGBA{R: 0xc7, G: 0x19, B: 0x79, A: 0x99}
)

// Scene is everything drawn for one evaluation.
type Scene struct {
	// Axis is the screw axis. It is drawn through the origin across the
	// whole plotted range and need not be normalized.
	Axis screw.Vec3
	// Vector is the input vector and Result the screw-displaced one.
	Vector screw.Vec3
	Result screw.Vec3
	// Path is the trace of the vector tip while the screw is applied. It
	// may be empty.
	Path  []screw.Vec3
	Title string
	// Bound fixes every plotted range to [-Bound, Bound].
	Bound float64
}

// Title formats the figure title for a screw of th radians and displacement d
// about axis.
func Title(th, d float64, axis screw.Vec3) string {
	return fmt.Sprintf("screw motion θ=%.1f° d=%.3f axis %s", th*180/math.Pi, d, axis)
}

// Trace samples the tip of v while s is applied: point i of n+1 is v moved by
// the fraction i/n of s.
func Trace(s screw.Screw, v screw.Vec3, n int) ([]screw.Vec3, error) {
	if n < 1 {
		n = 1
	}
	out := make([]screw.Vec3, 0, n+1)
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)
		p, err := screw.Screw{Axis: s.Axis, Angle: s.Angle.Scale(f)}.Apply(v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// projection maps 3D points onto one coordinate plane.
type projection struct {
	name   string
	xLabel string
	yLabel string
	x, y   func(screw.Vec3) float64
}

var projections = []projection{
	{"XY", "x", "y", func(v screw.Vec3) float64 { return v.X }, func(v screw.Vec3) float64 { return v.Y }},
	{"XZ", "x", "z", func(v screw.Vec3) float64 { return v.X }, func(v screw.Vec3) float64 { return v.Z }},
	{"YZ", "y", "z", func(v screw.Vec3) float64 { return v.Y }, func(v screw.Vec3) float64 { return v.Z }},
}

func (pr projection) xys(vs ...screw.Vec3) plotter.XYs {
	xys := make(plotter.XYs, len(vs))
	for i, v := range vs {
		xys[i].X = pr.x(v)
		xys[i].Y = pr.y(v)
	}
	return xys
}

// Plots returns one plot per coordinate plane, in the order XY, XZ, YZ. Only
// the first plot has a legend.
func (s Scene) Plots() ([]*plot.Plot, error) {
	if !(s.Bound > 0) {
		return nil, fmt.Errorf("render: bound must be positive, got %g", s.Bound)
	}
	a, err := screw.UnitAxis(s.Axis)
	if err != nil {
		return nil, err
	}

	var out []*plot.Plot
	for i, pr := range projections {
		p := plot.New()
		p.Title.Text = pr.name
		p.X.Label.Text = pr.xLabel
		p.Y.Label.Text = pr.yLabel
		p.Add(plotter.NewGrid())

		axis, err := plotter.NewLine(pr.xys(a.Mul(-s.Bound), a.Mul(s.Bound)))
		if err != nil {
			return nil, err
		}
		axis.Color = axisColor
		axis.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(axis)

		vector, vectorTip, err := arrow(pr, s.Vector, vectorColor)
		if err != nil {
			return nil, err
		}
		p.Add(vector, vectorTip)

		if len(s.Path) > 1 {
			path, err := plotter.NewLine(pr.xys(s.Path...))
			if err != nil {
				return nil, err
			}
			path.Color = pathColor
			p.Add(path)
		}

		result, resultTip, err := arrow(pr, s.Result, resultColor)
		if err != nil {
			return nil, err
		}
		p.Add(result, resultTip)

		if i == 0 {
			p.Legend.Add("axis", axis)
			p.Legend.Add("vector", vector, vectorTip)
			p.Legend.Add("screw", result, resultTip)
			p.Legend.Top = true
			p.Legend.Left = true
		}

		// Add grows the ranges to fit the data, so fix them last.
		p.X.Min, p.X.Max = -s.Bound, s.Bound
		p.Y.Min, p.Y.Max = -s.Bound, s.Bound
		out = append(out, p)
	}
	return out, nil
}

// arrow draws a segment from the origin to v with a marker at its tip.
func arrow(pr projection, v screw.Vec3, c color.Color) (*plotter.Line, *plotter.Scatter, error) {
	l, err := plotter.NewLine(pr.xys(screw.Vec3{}, v))
	if err != nil {
		return nil, nil, err
	}
	l.Color = c
	l.Width = vg.Points(2)

	tip, err := plotter.NewScatter(pr.xys(v))
	if err != nil {
		return nil, nil, err
	}
	tip.Color = c
	tip.Shape = draw.TriangleGlyph{}
	tip.Radius = vg.Points(3)
	return l, tip, nil
}

// WritePNG draws the three projections side by side under the scene title
// and writes the image to w as PNG.
func (s Scene) WritePNG(w io.Writer, width, height vg.Length) error {
	plots, err := s.Plots()
	if err != nil {
		return err
	}

	img := vgimg.New(width, height)
	dc := draw.New(img)

	sty := plot.New().Title.TextStyle
	sty.Font.Size = vg.Points(14)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop
	titleHeight := sty.Height(s.Title) + vg.Points(8)
	dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y - vg.Points(4)}, s.Title)

	t := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Millimeter * 4,
		PadTop:    titleHeight,
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(4),
	}
	canvases := plot.Align([][]*plot.Plot{plots}, t, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("render: writing png: %w", err)
	}
	return nil
}
