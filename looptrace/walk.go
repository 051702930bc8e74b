package looptrace

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// walker encapsulates the mutable state of a two-pointer walk.
type walker struct {
	grid  *pipegrid.Grid
	opts  Options
	start pipegrid.Position
	limit int

	pointer  [2]pipegrid.Position
	previous [2]pipegrid.Position
	distance int

	head []pipegrid.Position // start, then pointer0's path
	tail []pipegrid.Position // pointer1's path in discovery order
}

// Walk traces the loop through g's start cell, applying any Options.
// Returns ErrGridNil, ErrOptionViolation, or a wrapped *pipegrid.TopologyError
// when the map violates the single-loop guarantee, or any OnStep hook error.
func Walk(g *pipegrid.Grid, opts ...Option) (*Trace, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	first, err := g.StartConnections()
	if err != nil {
		return nil, fmt.Errorf("looptrace: %w", err)
	}

	w := &walker{
		grid:     g,
		opts:     o,
		start:    g.Start(),
		limit:    o.MaxSteps,
		pointer:  first,
		previous: [2]pipegrid.Position{g.Start(), g.Start()},
		distance: 1,
	}
	if w.limit == 0 {
		w.limit = g.Rows() * g.Cols()
	}
	w.head = append(make([]pipegrid.Position, 0, w.limit/2+2), w.start, first[0])
	w.tail = append(make([]pipegrid.Position, 0, w.limit/2+1), first[1])

	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.result(), nil
}

// loop moves both pointers until they meet.
func (w *walker) loop() error {
	for w.pointer[0] != w.pointer[1] {
		if w.distance >= w.limit {
			return fmt.Errorf("looptrace: step %d: %w", w.distance, &pipegrid.TopologyError{
				Position: w.pointer[0],
				Reason:   fmt.Sprintf("walk exceeded %d steps", w.limit),
			})
		}
		for i := range w.pointer {
			next, err := w.advance(w.pointer[i], w.previous[i])
			if err != nil {
				return fmt.Errorf("looptrace: step %d: %w", w.distance+1, err)
			}
			w.previous[i], w.pointer[i] = w.pointer[i], next
		}
		w.distance++

		w.opts.Logger.V(1).Info("step",
			"distance", w.distance,
			"pointer0", w.pointer[0].String(),
			"pointer1", w.pointer[1].String())
		if err := w.opts.OnStep(w.distance, w.pointer[0], w.pointer[1]); err != nil {
			return err
		}

		w.head = append(w.head, w.pointer[0])
		if w.pointer[0] != w.pointer[1] {
			w.tail = append(w.tail, w.pointer[1])
		}
	}
	return nil
}

// advance returns the connection of cur that is not prev.
func (w *walker) advance(cur, prev pipegrid.Position) (pipegrid.Position, error) {
	conns, err := w.grid.Connections(cur)
	if err != nil {
		return pipegrid.Position{}, err
	}
	for _, next := range conns {
		if next == prev {
			continue
		}
		if next == w.start {
			return pipegrid.Position{}, &pipegrid.TopologyError{
				Position: cur,
				Found:    len(conns),
				Reason:   "pointer re-entered the start before the pointers met",
			}
		}
		return next, nil
	}
	return pipegrid.Position{}, &pipegrid.TopologyError{
		Position: cur,
		Found:    len(conns),
		Reason:   "no connection leads forward",
	}
}

// result assembles the polygon: the head path, then the tail path reversed so
// that it runs from the meeting point back toward the start.
func (w *walker) result() *Trace {
	slices.Reverse(w.tail)
	loop := make(Loop, 0, len(w.head)+len(w.tail))
	loop = append(loop, w.head...)
	loop = append(loop, w.tail...)

	w.opts.Logger.Info("loop closed",
		"distance", w.distance,
		"farthest", w.pointer[0].String(),
		"length", len(loop))

	return &Trace{
		Distance: w.distance,
		Farthest: w.pointer[0],
		Loop:     loop,
	}
}
