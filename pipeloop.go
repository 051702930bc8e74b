package pipeloop

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/pipeloop/enclosure"
	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Option configures Solve.
type Option func(*Options)

// Options collects the knobs forwarded to the subpackages.
type Options struct {
	Logger  logr.Logger
	Method  enclosure.Method
	Workers int
}

// DefaultOptions returns a discarding logger, the scanline method and
// sequential classification.
func DefaultOptions() Options {
	return Options{
		Logger:  logr.Discard(),
		Method:  enclosure.Scanline,
		Workers: 1,
	}
}

// WithLogger sets the logger handed to every stage.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) { o.Logger = log }
}

// WithMethod selects the enclosure strategy.
func WithMethod(m enclosure.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithWorkers sets enclosure row concurrency.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// Result is the answer to one puzzle.
type Result struct {
	// Distance is the farthest-point distance along the loop.
	Distance int
	// Enclosed is the number of cells strictly inside the loop.
	Enclosed int

	Start      pipegrid.Position
	StartShape pipegrid.Shape
	Farthest   pipegrid.Position
	LoopLength int
}

// Solve parses text, traces its loop and counts the enclosed cells.
// Errors from every stage are wrapped and stay inspectable with errors.Is
// and errors.As (pipegrid.ErrInvalidSymbol, pipegrid.ErrDimension,
// pipegrid.ErrTopology, ...).
func Solve(text string, opts ...Option) (*Result, error) {
	g, err := pipegrid.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("pipeloop: parse: %w", err)
	}
	return SolveGrid(g, opts...)
}

// SolveGrid runs the trace and enclosure stages on an already parsed grid.
func SolveGrid(g *pipegrid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("pipeloop: %w", looptrace.ErrGridNil)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.WithValues("rows", g.Rows(), "cols", g.Cols())

	shape, err := g.StartShape()
	if err != nil {
		return nil, fmt.Errorf("pipeloop: start: %w", err)
	}

	tr, err := looptrace.Walk(g, looptrace.WithLogger(log.WithName("trace")))
	if err != nil {
		return nil, fmt.Errorf("pipeloop: trace: %w", err)
	}

	enclosed, err := enclosure.CountEnclosed(g, tr.Loop,
		enclosure.WithMethod(o.Method),
		enclosure.WithWorkers(o.Workers),
		enclosure.WithLogger(log.WithName("enclosure")))
	if err != nil {
		return nil, fmt.Errorf("pipeloop: enclosure: %w", err)
	}

	return &Result{
		Distance:   tr.Distance,
		Enclosed:   enclosed,
		Start:      g.Start(),
		StartShape: shape,
		Farthest:   tr.Farthest,
		LoopLength: tr.Loop.Len(),
	}, nil
}
