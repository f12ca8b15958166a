package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/leengari/sheetplot/internal/datasource"
	"github.com/leengari/sheetplot/internal/figure"
	"github.com/leengari/sheetplot/internal/projection"
	"github.com/leengari/sheetplot/internal/violin"
)

const (
	TableRef       = "iris[#All]"
	NumericColumn  = "sepal_width"
	CategoryColumn = "species"

	Title  = "Violin Plot: Sepal Width Distribution by Species"
	XLabel = "Species"
	YLabel = "Sepal Width"

	FigureWidth  = 8 * vg.Inch
	FigureHeight = 6 * vg.Inch
)

// Pipeline reads the iris table from Source and shows a violin plot of
// sepal width by species on Display
type Pipeline struct {
	Source    datasource.DataSource
	Display   figure.Display
	logger    *slog.Logger
	observers []Observer
}

// New creates a pipeline; a nil logger means slog.Default()
func New(src datasource.DataSource, display figure.Display, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Source:    src,
		Display:   display,
		logger:    logger,
		observers: make([]Observer, 0),
	}
}

// AddObserver registers an observer for lifecycle events
func (p *Pipeline) AddObserver(o Observer) {
	p.observers = append(p.observers, o)
}

// RemoveObserver unregisters an observer
func (p *Pipeline) RemoveObserver(o Observer) {
	for i, obs := range p.observers {
		if obs == o {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return
		}
	}
}

func (p *Pipeline) notify(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	for _, o := range p.observers {
		o.OnEvent(event)
	}
}

// Groups fetches the table and returns sepal width grouped by species
func (p *Pipeline) Groups(ctx context.Context) ([]projection.Group, error) {
	return p.groups(ctx, NewRun())
}

func (p *Pipeline) groups(ctx context.Context, run *Run) ([]projection.Group, error) {
	ref, err := datasource.ParseReference(TableRef)
	if err != nil {
		return nil, err
	}

	// 1. Acquire table
	p.notify(Event{Type: EventFetchStart, RunID: run.ID, Data: TableRef})
	table, err := p.Source.Table(ctx, ref, true)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", TableRef, err)
	}
	p.notify(Event{Type: EventFetchEnd, RunID: run.ID, Data: table.RowCount()})

	// 2. Project columns
	p.notify(Event{Type: EventProjectStart, RunID: run.ID, Data: []string{NumericColumn, CategoryColumn}})
	obs, err := projection.Pairs(table, NumericColumn, CategoryColumn)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", table.Name, err)
	}
	if obs.Dropped > 0 {
		p.logger.Warn("rows without a numeric value or category were skipped",
			"table", table.Name,
			"run_id", run.ID,
			"dropped", obs.Dropped,
		)
	}
	groups := projection.GroupBy(obs)
	p.notify(Event{Type: EventProjectEnd, RunID: run.ID, Data: projection.GroupNames(groups)})

	return groups, nil
}

// Run executes fetch, project, render, label and display once.
// On any error nothing reaches the display.
func (p *Pipeline) Run(ctx context.Context) error {
	run := NewRun()

	groups, err := p.groups(ctx, run)
	if err != nil {
		return err
	}

	// 3. Initialize canvas and render
	p.notify(Event{Type: EventRenderStart, RunID: run.ID})
	fig, err := Render(groups)
	if err != nil {
		return err
	}
	p.notify(Event{Type: EventRenderEnd, RunID: run.ID, Data: len(groups)})

	// 4. Display
	if err := fig.Show(ctx, p.Display); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	p.notify(Event{Type: EventDisplay, RunID: run.ID, Data: fig.Title()})

	p.logger.Info("violin plot shown",
		"run_id", run.ID,
		"groups", len(groups),
		"elapsed", run.Elapsed(),
	)
	return nil
}

// Render builds the labeled 8×6 figure for the groups
func Render(groups []projection.Group) (*figure.Figure, error) {
	violins, err := violin.NewViolins(groups)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	fig := figure.New(FigureWidth, FigureHeight)
	if err := fig.Add(violins); err != nil {
		return nil, err
	}
	if err := fig.NominalX(violins.Names()...); err != nil {
		return nil, err
	}
	if err := fig.SetLabels(Title, XLabel, YLabel); err != nil {
		return nil, err
	}
	return fig, nil
}
