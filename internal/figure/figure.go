package figure

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ErrFigureDiscarded is returned when a figure is used after it was shown
var ErrFigureDiscarded = errors.New("figure has already been shown")

type state int

const (
	stateCreated state = iota
	statePopulated
	stateShown
)

// Figure is a fixed-size rendering surface holding one plot.
// It is populated, shown once, and then discarded.
type Figure struct {
	Width, Height vg.Length

	plot     *plot.Plot
	plotters []plot.Plotter
	state    state
}

// New creates an empty figure of the given size
func New(width, height vg.Length) *Figure {
	return &Figure{
		Width:  width,
		Height: height,
		plot:   plot.New(),
	}
}

// Add places plotters on the figure's plot
func (f *Figure) Add(ps ...plot.Plotter) error {
	if f.state == stateShown {
		return ErrFigureDiscarded
	}
	f.plot.Add(ps...)
	f.plotters = append(f.plotters, ps...)
	f.state = statePopulated
	return nil
}

// NominalX labels the X axis with category names at 0, 1, 2, ...
func (f *Figure) NominalX(names ...string) error {
	if f.state == stateShown {
		return ErrFigureDiscarded
	}
	f.plot.NominalX(names...)
	return nil
}

// SetLabels sets the title and axis labels
func (f *Figure) SetLabels(title, x, y string) error {
	if f.state == stateShown {
		return ErrFigureDiscarded
	}
	f.plot.Title.Text = title
	f.plot.X.Label.Text = x
	f.plot.Y.Label.Text = y
	return nil
}

func (f *Figure) Title() string  { return f.plot.Title.Text }
func (f *Figure) XLabel() string { return f.plot.X.Label.Text }
func (f *Figure) YLabel() string { return f.plot.Y.Label.Text }

// Plotters returns everything added to the figure, in order
func (f *Figure) Plotters() []plot.Plotter {
	return f.plotters
}

// Shown reports whether the figure has been shown
func (f *Figure) Shown() bool {
	return f.state == stateShown
}

// WriteTo renders the figure in the given format (png, svg, pdf, eps, jpg, tif)
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	wt, err := f.plot.WriterTo(f.Width, f.Height, format)
	if err != nil {
		return 0, fmt.Errorf("failed to render figure as %s: %w", format, err)
	}
	return wt.WriteTo(w)
}

// Show hands the figure to d and discards it, whether or not d succeeds
func (f *Figure) Show(ctx context.Context, d Display) error {
	if f.state == stateShown {
		return ErrFigureDiscarded
	}
	f.state = stateShown
	return d.Show(ctx, f)
}
