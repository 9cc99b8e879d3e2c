package perfplot

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

const (
	figureWidth  = 10 * vg.Inch
	figureHeight = 6 * vg.Inch
)

var lineColor = color.RGBA{B: 255, A: 255}

// Figure is a single chart owned by the caller. Each Plot call creates its own.
type Figure struct {
	plot    *plot.Plot
	labels  Labels
	points  int
	summary string
}

func NewFigure(labels Labels) *Figure {
	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.X
	p.Y.Label.Text = labels.Y
	p.Add(plotter.NewGrid())

	return &Figure{plot: p, labels: labels}
}

// Draw adds ys as a solid line with a circle marker per point. The x
// coordinate of ys[i] is the sample index i.
func (f *Figure) Draw(ys []float64) error {
	if len(ys) == 0 {
		return nil
	}

	xys := make(plotter.XYs, len(ys))
	for i, y := range ys {
		xys[i].X = float64(i)
		xys[i].Y = y
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("build line: %w", err)
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Dashes = nil
	points.GlyphStyle.Color = lineColor
	points.GlyphStyle.Shape = draw.CircleGlyph{}

	f.plot.Add(line, points)
	f.points += len(ys)
	return nil
}

func (f *Figure) Labels() Labels {
	return f.labels
}

// Annotate attaches a markdown summary that viewers show beside the chart.
func (f *Figure) Annotate(markdown string) {
	f.summary = markdown
}

func (f *Figure) Summary() string {
	return f.summary
}

// Points returns how many samples have been drawn.
func (f *Figure) Points() int {
	return f.points
}

// WriteTo encodes the figure as SVG.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	wt, err := f.plot.WriterTo(figureWidth, figureHeight, "svg")
	if err != nil {
		return 0, fmt.Errorf("render svg: %w", err)
	}
	return wt.WriteTo(w)
}

// SVG returns the encoded figure.
func (f *Figure) SVG() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
