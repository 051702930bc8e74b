package looptrace

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for loop tracing.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("looptrace: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("looptrace: invalid option supplied")

	// ErrInvalidLoop is returned by Loop.Valid for a sequence that is not a
	// simple orthogonal cycle.
	ErrInvalidLoop = errors.New("looptrace: invalid loop")
)

// Option configures Walk via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Walk.
type Option func(*Options)

// Options holds the knobs and hooks of a walk.
type Options struct {
	// Logger receives one V(1) record per step and a summary on success.
	Logger logr.Logger

	// OnStep is called after both pointers have moved. Returning an error
	// aborts the walk and propagates that error.
	OnStep func(distance int, pointer0, pointer1 pipegrid.Position) error

	// MaxSteps bounds the walk. 0 means rows*cols.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a discarding logger, a no-op OnStep
// hook and the grid-size step bound.
func DefaultOptions() Options {
	return Options{
		Logger: logr.Discard(),
		OnStep: func(int, pipegrid.Position, pipegrid.Position) error { return nil },
	}
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// WithOnStep registers a per-step hook; a nil fn is ignored.
func WithOnStep(fn func(distance int, pointer0, pointer1 pipegrid.Position) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithMaxSteps caps the number of steps.
//
//	n > 0: at most n steps
//	n == 0: rows*cols
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Trace is the outcome of a walk.
type Trace struct {
	// Distance is the farthest-point distance along the loop.
	Distance int
	// Farthest is where the two pointers met.
	Farthest pipegrid.Position
	// Loop lists every loop cell in cyclic order, Loop[0] being the start.
	Loop Loop
}

// Loop is a cyclic sequence of positions; the last connects back to the first.
type Loop []pipegrid.Position

// Len returns the number of cells on the loop.
func (l Loop) Len() int { return len(l) }

// Set returns the loop's cells as a membership set.
func (l Loop) Set() map[pipegrid.Position]struct{} {
	set := make(map[pipegrid.Position]struct{}, len(l))
	for _, p := range l {
		set[p] = struct{}{}
	}
	return set
}

// Contains reports whether p lies on the loop. O(L); use Set for repeated queries.
func (l Loop) Contains(p pipegrid.Position) bool {
	for _, v := range l {
		if v == p {
			return true
		}
	}
	return false
}

// Rotate returns a copy of the loop starting at index k (mod Len).
func (l Loop) Rotate(k int) Loop {
	n := len(l)
	if n == 0 {
		return Loop{}
	}
	k = ((k % n) + n) % n
	out := make(Loop, 0, n)
	out = append(out, l[k:]...)
	return append(out, l[:k]...)
}

// Reverse returns a copy of the loop traversed in the opposite direction.
func (l Loop) Reverse() Loop {
	out := make(Loop, len(l))
	for i, p := range l {
		out[len(l)-1-i] = p
	}
	return out
}

// Valid reports whether l is a simple closed orthogonal cycle: at least four
// cells, no repeats, and every consecutive pair (including last→first) one
// step apart.
func (l Loop) Valid() error {
	if len(l) < 4 {
		return fmt.Errorf("%w: %d cells, need at least 4", ErrInvalidLoop, len(l))
	}
	seen := make(map[pipegrid.Position]int, len(l))
	for i, p := range l {
		if j, dup := seen[p]; dup {
			return fmt.Errorf("%w: %v repeats at %d and %d", ErrInvalidLoop, p, j, i)
		}
		seen[p] = i
		if q := l[(i+1)%len(l)]; !adjacent(p, q) {
			return fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidLoop, p, q)
		}
	}
	return nil
}

// adjacent reports whether a and b are orthogonal neighbors.
func adjacent(a, b pipegrid.Position) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr+dc*dc == 1
}
