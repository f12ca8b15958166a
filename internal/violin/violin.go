package violin

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/leengari/sheetplot/internal/projection"
)

// DefaultWidth is the width of a violin as a fraction of the category spacing
const DefaultWidth = 0.8

// Body is one violin: the density of a group's values drawn at Location
type Body struct {
	Name     string
	Values   plotter.Values
	Location float64
	Color    color.Color
	Density  Density
	Summary  Summary
}

// Violins draws one violin per group at X = 0, 1, 2, ...
// Densities are scaled by the largest density across all bodies, so
// widths are comparable between groups.
type Violins struct {
	Bodies []Body

	// Width of the widest violin in data units along X
	Width float64

	// LineStyle outlines each body
	LineStyle draw.LineStyle
	// BoxStyle draws the interquartile bar
	BoxStyle draw.LineStyle
	// WhiskerStyle draws the 1.5·IQR whiskers and degenerate sticks
	WhiskerStyle draw.LineStyle
	// MedianStyle marks the median
	MedianStyle draw.GlyphStyle
}

// NewViolins estimates a density for every group
func NewViolins(groups []projection.Group) (*Violins, error) {
	if len(groups) == 0 {
		return nil, errors.New("violin: no groups to plot")
	}

	v := &Violins{
		Bodies: make([]Body, 0, len(groups)),
		Width:  DefaultWidth,
		LineStyle: draw.LineStyle{
			Color: color.Gray{Y: 0x40},
			Width: vg.Points(1),
		},
		BoxStyle: draw.LineStyle{
			Color: color.Gray{Y: 0x40},
			Width: vg.Points(5),
		},
		WhiskerStyle: draw.LineStyle{
			Color: color.Gray{Y: 0x40},
			Width: vg.Points(1.2),
		},
		MedianStyle: draw.GlyphStyle{
			Color:  color.White,
			Radius: vg.Points(2.5),
			Shape:  draw.CircleGlyph{},
		},
	}

	var kde KDE
	for i, g := range groups {
		if len(g.Values) == 0 {
			return nil, fmt.Errorf("violin: group %s has no values", g.Name)
		}
		values, err := plotter.CopyValues(plotter.Values(g.Values))
		if err != nil {
			return nil, fmt.Errorf("violin: group %s: %w", g.Name, err)
		}

		density, err := kde.Estimate(values)
		if err != nil {
			return nil, fmt.Errorf("violin: group %s: %w", g.Name, err)
		}
		summary, err := Summarize(values)
		if err != nil {
			return nil, fmt.Errorf("violin: group %s: %w", g.Name, err)
		}

		v.Bodies = append(v.Bodies, Body{
			Name:     g.Name,
			Values:   values,
			Location: float64(i),
			Color:    plotutil.Color(i),
			Density:  density,
			Summary:  summary,
		})
	}
	return v, nil
}

// Names returns the group names in X order, for plot.NominalX
func (v *Violins) Names() []string {
	names := make([]string, len(v.Bodies))
	for i, b := range v.Bodies {
		names[i] = b.Name
	}
	return names
}

// Len returns the number of observations across all groups
func (v *Violins) Len() int {
	n := 0
	for _, b := range v.Bodies {
		n += len(b.Values)
	}
	return n
}

// maxDensity is the scale shared by all bodies
func (v *Violins) maxDensity() float64 {
	m := 0.0
	for _, b := range v.Bodies {
		m = math.Max(m, b.Density.Max())
	}
	return m
}

// Plot implements the plot.Plotter interface.
func (v *Violins) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	half := v.Width / 2
	scale := v.maxDensity()

	for _, b := range v.Bodies {
		if b.Density.Degenerate() || scale == 0 {
			y := trY(b.Density.Support[0])
			c.StrokeLines(v.WhiskerStyle, c.ClipLinesXY([]vg.Point{
				{X: trX(b.Location - half), Y: y},
				{X: trX(b.Location + half), Y: y},
			})...)
			continue
		}

		n := len(b.Density.Support)
		outline := make([]vg.Point, 0, 2*n+1)
		for i := 0; i < n; i++ {
			w := b.Density.Density[i] / scale * half
			outline = append(outline, vg.Point{X: trX(b.Location + w), Y: trY(b.Density.Support[i])})
		}
		for i := n - 1; i >= 0; i-- {
			w := b.Density.Density[i] / scale * half
			outline = append(outline, vg.Point{X: trX(b.Location - w), Y: trY(b.Density.Support[i])})
		}

		c.FillPolygon(b.Color, c.ClipPolygonXY(outline))
		outline = append(outline, outline[0])
		c.StrokeLines(v.LineStyle, c.ClipLinesXY(outline)...)

		x := trX(b.Location)
		s := b.Summary
		c.StrokeLines(v.WhiskerStyle, c.ClipLinesXY([]vg.Point{
			{X: x, Y: trY(s.LowWhisker)},
			{X: x, Y: trY(s.HighWhisker)},
		})...)
		c.StrokeLines(v.BoxStyle, c.ClipLinesXY([]vg.Point{
			{X: x, Y: trY(s.Q1)},
			{X: x, Y: trY(s.Q3)},
		})...)

		median := vg.Point{X: x, Y: trY(s.Median)}
		if c.Contains(median) {
			c.DrawGlyph(v.MedianStyle, median)
		}
	}
}

// DataRange implements the plot.DataRanger interface.
func (v *Violins) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	half := v.Width / 2

	for _, b := range v.Bodies {
		xmin = math.Min(xmin, b.Location-half)
		xmax = math.Max(xmax, b.Location+half)
		for _, y := range b.Density.Support {
			ymin = math.Min(ymin, y)
			ymax = math.Max(ymax, y)
		}
	}
	return xmin, xmax, ymin, ymax
}
