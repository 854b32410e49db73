package mazegen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridrace/gridrace/grid"
	"github.com/gridrace/gridrace/mazegen"
)

// TestGenerate_OptionViolations verifies that bad options fail fast.
func TestGenerate_OptionViolations(t *testing.T) {
	cases := []struct {
		name string
		opt  mazegen.Option
		err  error
	}{
		{"NarrowWidth", mazegen.WithWidth(2), mazegen.ErrBadDimensions},
		{"ShortHeight", mazegen.WithHeight(0), mazegen.ErrBadDimensions},
		{"NegativeWall", mazegen.WithWallDensity(-0.1), mazegen.ErrBadDensity},
		{"FullWall", mazegen.WithWallDensity(1.0), mazegen.ErrBadDensity},
		{"NegativeMud", mazegen.WithMudDensity(-0.5), mazegen.ErrBadDensity},
		{"FullMud", mazegen.WithMudDensity(1.0), mazegen.ErrBadDensity},
		{"ZeroAttempts", mazegen.WithMaxAttempts(0), mazegen.ErrBadAttempts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mazegen.Generate(tc.opt)
			if !errors.Is(err, tc.err) {
				t.Errorf("Generate error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestGenerate_Connectivity is the generator's core invariant: every maze
// it returns has a walkable start→goal path, across layouts, seeds, and
// densities up to aggressively walled grids.
func TestGenerate_Connectivity(t *testing.T) {
	layouts := []mazegen.Layout{
		mazegen.LayoutRandom,
		mazegen.LayoutBacktracker,
		mazegen.LayoutOpen,
	}
	densities := []float64{0.0, 0.25, 0.45, 0.6}

	for _, layout := range layouts {
		for _, density := range densities {
			for seed := int64(1); seed <= 8; seed++ {
				g, err := mazegen.Generate(
					mazegen.WithWidth(20),
					mazegen.WithHeight(16),
					mazegen.WithWallDensity(density),
					mazegen.WithSeed(seed),
					mazegen.WithLayout(layout),
				)
				require.NoError(t, err, "layout=%v density=%v seed=%d", layout, density, seed)
				require.True(t, mazegen.PathExists(g),
					"disconnected maze: layout=%v density=%v seed=%d", layout, density, seed)
				assert.True(t, g.IsWalkable(g.Start()), "start is not walkable")
				assert.True(t, g.IsWalkable(g.Goal()), "goal is not walkable")
			}
		}
	}
}

// TestGenerate_Reproducible checks that a fixed seed reproduces the exact
// terrain and that another seed diverges.
func TestGenerate_Reproducible(t *testing.T) {
	opts := func(seed int64) []mazegen.Option {
		return []mazegen.Option{
			mazegen.WithWidth(18),
			mazegen.WithHeight(18),
			mazegen.WithSeed(seed),
		}
	}

	first, err := mazegen.Generate(opts(42)...)
	require.NoError(t, err)
	second, err := mazegen.Generate(opts(42)...)
	require.NoError(t, err)
	assert.Equal(t, first.Cells(), second.Cells(), "same seed must reproduce the maze")
	assert.Equal(t, first.Start(), second.Start())
	assert.Equal(t, first.Goal(), second.Goal())

	other, err := mazegen.Generate(opts(43)...)
	require.NoError(t, err)
	assert.NotEqual(t, first.Cells(), other.Cells(), "different seeds should diverge")
}

// TestGenerate_Defaults checks the default dimensions and endpoints.
func TestGenerate_Defaults(t *testing.T) {
	g, err := mazegen.Generate(mazegen.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, mazegen.DefaultWidth, g.Width())
	assert.Equal(t, mazegen.DefaultHeight, g.Height())
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, g.Start())
}

// TestGenerate_MudDensity makes sure mud actually appears at non-zero
// density and never at zero.
func TestGenerate_MudDensity(t *testing.T) {
	muddy, err := mazegen.Generate(
		mazegen.WithSeed(5),
		mazegen.WithWallDensity(0),
		mazegen.WithMudDensity(0.5),
	)
	require.NoError(t, err)
	assert.Positive(t, muddy.CountTerrain(grid.Mud), "expected mud at 50%% density")

	clean, err := mazegen.Generate(
		mazegen.WithSeed(5),
		mazegen.WithWallDensity(0),
		mazegen.WithMudDensity(0),
	)
	require.NoError(t, err)
	assert.Zero(t, clean.CountTerrain(grid.Mud), "expected no mud at 0%% density")
}

// TestGenerate_Backtracker verifies the perfect-maze layout pins its goal
// to the odd lattice and stays connected.
func TestGenerate_Backtracker(t *testing.T) {
	g, err := mazegen.Generate(
		mazegen.WithWidth(21),
		mazegen.WithHeight(21),
		mazegen.WithSeed(11),
		mazegen.WithLayout(mazegen.LayoutBacktracker),
	)
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{Row: 19, Col: 19}, g.Goal())
	assert.True(t, mazegen.PathExists(g))
	assert.Positive(t, g.CountTerrain(grid.Wall), "a perfect maze has walls")
}

// TestPathExists covers both verdicts directly.
func TestPathExists(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	assert.True(t, mazegen.PathExists(g), "open grid must be connected")

	// Wall off the column between start and goal entirely.
	for row := 0; row < 5; row++ {
		require.NoError(t, g.SetTerrain(grid.Coord{Row: row, Col: 2}, grid.Wall))
	}
	assert.False(t, mazegen.PathExists(g), "severed grid must be disconnected")
}
