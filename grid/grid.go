package grid

import "fmt"

// neighborOffsets enumerates the four orthogonal directions in the fixed
// order Up, Right, Down, Left. Searchers rely on this order for
// reproducible traces.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a fixed-size rectangular field of terrain cells with designated
// start and goal coordinates. Terrain is stored row-major. The grid is
// mutable while a maze is being built and treated as read-only once a
// search begins.
type Grid struct {
	width, height int
	cells         []Terrain
	start, goal   Coord
}

// New constructs a width×height grid of Floor cells with the start at (1,1)
// and the goal at (height-2,width-2). Returns ErrTooSmall for dimensions
// below 3×3.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrTooSmall, width, height)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Terrain, width*height),
		start:  Coord{Row: 1, Col: 1},
		goal:   Coord{Row: height - 2, Col: width - 2},
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the goal coordinate.
func (g *Grid) Goal() Coord { return g.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Index flattens c into a row-major offset. Searchers use it to key their
// scratch annotation arrays without touching the grid itself.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Index(c Coord) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %s in %d×%d", ErrOutOfBounds, c, g.width, g.height)
	}

	return c.Row*g.width + c.Col, nil
}

// Terrain returns the terrain kind at c.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Terrain(c Coord) (Terrain, error) {
	i, err := g.Index(c)
	if err != nil {
		return Floor, err
	}

	return g.cells[i], nil
}

// Cost returns the cost of entering cell c: CostFloor, CostMud, or the
// Impassable sentinel for Wall cells.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Cost(c Coord) (int64, error) {
	t, err := g.Terrain(c)
	if err != nil {
		return 0, err
	}
	switch t {
	case Mud:
		return CostMud, nil
	case Wall:
		return Impassable, nil
	default:
		return CostFloor, nil
	}
}

// StepCost returns the cost of moving from one cell into an adjacent one.
// The cost is determined by the destination cell's terrain, matching the
// convention that a path's cost sums the cells entered (start excluded).
func (g *Grid) StepCost(from, to Coord) (int64, error) {
	if _, err := g.Index(from); err != nil {
		return 0, err
	}

	return g.Cost(to)
}

// IsWalkable reports whether c is in bounds and not a Wall.
// Complexity: O(1).
func (g *Grid) IsWalkable(c Coord) bool {
	t, err := g.Terrain(c)

	return err == nil && t != Wall
}

// Neighbors returns all in-bounds orthogonal neighbors of c, walls
// included, in the fixed Up, Right, Down, Left order. Intended for
// rendering; searchers want WalkableNeighbors.
// Returns ErrOutOfBounds if c itself is outside the grid.
func (g *Grid) Neighbors(c Coord) ([]Coord, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %s in %d×%d", ErrOutOfBounds, c, g.width, g.height)
	}
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out, nil
}

// WalkableNeighbors returns the in-bounds, non-Wall orthogonal neighbors of
// c in the fixed Up, Right, Down, Left order.
// Returns ErrOutOfBounds if c itself is outside the grid.
func (g *Grid) WalkableNeighbors(c Coord) ([]Coord, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %s in %d×%d", ErrOutOfBounds, c, g.width, g.height)
	}
	out := make([]Coord, 0, 4)
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.IsWalkable(n) {
			out = append(out, n)
		}
	}

	return out, nil
}

// SetTerrain changes the terrain at c. Placing a Wall on the start or goal
// cell is rejected with ErrWallEndpoint; the generator keeps endpoints
// clear by construction and this guard makes the invariant explicit.
func (g *Grid) SetTerrain(c Coord, t Terrain) error {
	i, err := g.Index(c)
	if err != nil {
		return err
	}
	if t == Wall && (c == g.start || c == g.goal) {
		return fmt.Errorf("%w: cannot wall %s", ErrWallEndpoint, c)
	}
	g.cells[i] = t

	return nil
}

// SetStart moves the start coordinate. The destination must be in bounds
// and walkable.
func (g *Grid) SetStart(c Coord) error {
	if _, err := g.Index(c); err != nil {
		return err
	}
	if !g.IsWalkable(c) {
		return fmt.Errorf("%w: start %s is a wall", ErrWallEndpoint, c)
	}
	g.start = c

	return nil
}

// SetGoal moves the goal coordinate. The destination must be in bounds and
// walkable.
func (g *Grid) SetGoal(c Coord) error {
	if _, err := g.Index(c); err != nil {
		return err
	}
	if !g.IsWalkable(c) {
		return fmt.Errorf("%w: goal %s is a wall", ErrWallEndpoint, c)
	}
	g.goal = c

	return nil
}

// Clone returns a deep copy of the grid, endpoints included. Useful for
// running structurally-identical races side by side.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	cells := make([]Terrain, len(g.cells))
	copy(cells, g.cells)

	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
		start:  g.start,
		goal:   g.goal,
	}
}

// Cells returns a snapshot of every cell with its terrain, row by row.
// Intended for renderers; mutating the returned slice does not affect the
// grid.
// Complexity: O(W×H).
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			out = append(out, Cell{
				Coord:   Coord{Row: r, Col: c},
				Terrain: g.cells[r*g.width+c],
			})
		}
	}

	return out
}

// CountTerrain returns the number of cells with the given terrain kind.
// Complexity: O(W×H).
func (g *Grid) CountTerrain(t Terrain) int {
	n := 0
	for _, cell := range g.cells {
		if cell == t {
			n++
		}
	}

	return n
}
