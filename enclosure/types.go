package enclosure

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
)

// Sentinel errors for enclosure counting.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("enclosure: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enclosure: invalid option supplied")
)

// Method selects the classification strategy.
type Method int

const (
	// RayCast tests every polygon edge for every cell.
	RayCast Method = iota
	// Scanline precomputes sorted edge crossings per row.
	Scanline
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case RayCast:
		return "raycast"
	case Scanline:
		return "scanline"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps "raycast" or "scanline" to its Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "raycast":
		return RayCast, nil
	case "scanline":
		return Scanline, nil
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrOptionViolation, s)
}

// Option configures CountEnclosed and Interior.
type Option func(*Options)

// Options holds the classification knobs.
type Options struct {
	// Method is the classification strategy.
	Method Method
	// Workers > 1 classifies rows concurrently with at most Workers goroutines.
	Workers int
	// Logger receives a V(1) summary per call.
	Logger logr.Logger

	err error
}

// DefaultOptions returns Options for a sequential ray cast with a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Method:  RayCast,
		Workers: 1,
		Logger:  logr.Discard(),
	}
}

// WithMethod selects the strategy; unknown values → ErrOptionViolation.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != RayCast && m != Scanline {
			o.err = fmt.Errorf("%w: unknown method %d", ErrOptionViolation, int(m))
			return
		}
		o.Method = m
	}
}

// WithWorkers sets row concurrency.
//
//	n > 1: up to n goroutines
//	n == 0 or 1: sequential
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}
