// Package mazegen defines tunable options and sentinel errors for maze
// generation.
package mazegen

import (
	"errors"
	"fmt"
)

// Sentinel errors for option validation.
var (
	// ErrBadDimensions indicates width or height below the 3×3 minimum.
	ErrBadDimensions = errors.New("mazegen: width and height must be at least 3")

	// ErrBadDensity indicates a wall or mud density outside [0,1).
	ErrBadDensity = errors.New("mazegen: density must be in [0,1)")

	// ErrBadAttempts indicates a non-positive retry cap.
	ErrBadAttempts = errors.New("mazegen: attempt cap must be positive")
)

// Layout selects the generation style.
type Layout int

const (
	// LayoutRandom scatters walls and mud uniformly (the default).
	LayoutRandom Layout = iota
	// LayoutBacktracker carves a perfect maze of winding corridors with
	// depth-first backtracking, then sprinkles mud.
	LayoutBacktracker
	// LayoutOpen places sparse obstacles with protected rings around the
	// start and goal, leaving room for the searchers to diverge visibly.
	LayoutOpen
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutRandom:
		return "random"
	case LayoutBacktracker:
		return "backtracker"
	case LayoutOpen:
		return "open"
	}

	return fmt.Sprintf("Layout(%d)", int(l))
}

// Default generation parameters, shared with the original arena defaults.
const (
	// DefaultWidth is the default grid width in cells.
	DefaultWidth = 22
	// DefaultHeight is the default grid height in cells.
	DefaultHeight = 22
	// DefaultWallDensity is the default fraction of cells turned to Wall.
	DefaultWallDensity = 0.25
	// DefaultMudDensity is the default fraction of floor turned to Mud.
	DefaultMudDensity = 0.15
	// DefaultMaxAttempts caps regeneration before the deterministic
	// fallback layout is used.
	DefaultMaxAttempts = 50
)

// Options holds the generation parameters. Invalid values supplied via
// options are recorded and surfaced when Generate runs.
type Options struct {
	// Width and Height are the grid dimensions in cells.
	Width, Height int
	// WallDensity is the target fraction of cells that become Wall.
	WallDensity float64
	// MudDensity is the chance each remaining floor cell becomes Mud.
	MudDensity float64
	// Seed fixes the random source for reproducible mazes. Ignored
	// unless set through WithSeed.
	Seed int64
	// Layout selects the generation style.
	Layout Layout
	// MaxAttempts caps regeneration tries before the fallback layout.
	MaxAttempts int

	seeded bool
	err    error
}

// Option configures maze generation via functional arguments.
type Option func(*Options)

// DefaultOptions returns the arena defaults: 22×22, 25% walls, 15% mud,
// random layout, 50 attempts, clock-seeded randomness.
func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		WallDensity: DefaultWallDensity,
		MudDensity:  DefaultMudDensity,
		Layout:      LayoutRandom,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// WithWidth sets the grid width. Values below 3 are a violation.
func WithWidth(w int) Option {
	return func(o *Options) {
		if w < 3 {
			o.err = fmt.Errorf("%w: width %d", ErrBadDimensions, w)

			return
		}
		o.Width = w
	}
}

// WithHeight sets the grid height. Values below 3 are a violation.
func WithHeight(h int) Option {
	return func(o *Options) {
		if h < 3 {
			o.err = fmt.Errorf("%w: height %d", ErrBadDimensions, h)

			return
		}
		o.Height = h
	}
}

// WithWallDensity sets the target wall fraction, in [0,1).
func WithWallDensity(d float64) Option {
	return func(o *Options) {
		if d < 0 || d >= 1 {
			o.err = fmt.Errorf("%w: wall density %v", ErrBadDensity, d)

			return
		}
		o.WallDensity = d
	}
}

// WithMudDensity sets the mud fraction, in [0,1).
func WithMudDensity(d float64) Option {
	return func(o *Options) {
		if d < 0 || d >= 1 {
			o.err = fmt.Errorf("%w: mud density %v", ErrBadDensity, d)

			return
		}
		o.MudDensity = d
	}
}

// WithSeed fixes the random seed so the same options reproduce the same
// maze.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.seeded = true
	}
}

// WithLayout selects the generation style.
func WithLayout(l Layout) Option {
	return func(o *Options) {
		o.Layout = l
	}
}

// WithMaxAttempts sets the regeneration cap. Must be positive.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadAttempts, n)

			return
		}
		o.MaxAttempts = n
	}
}
