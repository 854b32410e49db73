package mazegen

import (
	"math/rand"
	"time"

	"github.com/gridrace/gridrace/grid"
)

// Generate builds a maze from the supplied options. The returned grid
// always has a Wall-free path from start to goal; see the package
// documentation for how that is guaranteed.
// Complexity: O(attempts × W×H).
func Generate(opts ...Option) (*grid.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	seed := o.Seed
	if !o.seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	switch o.Layout {
	case LayoutBacktracker:
		return generateBacktracker(o, rng)
	case LayoutOpen:
		return generateOpen(o, rng)
	default:
		return generateRandom(o, rng)
	}
}

// PathExists reports whether the goal is reachable from the start through
// walkable cells. Plain flood fill: the cheapest possible check.
// Complexity: O(W×H).
func PathExists(g *grid.Grid) bool {
	start, goal := g.Start(), g.Goal()
	if start == goal {
		return true
	}
	w := g.Width()
	visited := make([]bool, w*g.Height())
	queue := []grid.Coord{start}
	visited[start.Row*w+start.Col] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return true
		}
		nbrs, _ := g.WalkableNeighbors(cur)
		for _, nb := range nbrs {
			i := nb.Row*w + nb.Col
			if !visited[i] {
				visited[i] = true
				queue = append(queue, nb)
			}
		}
	}

	return false
}

// generateRandom scatters walls and mud, then enforces connectivity:
// flood fill, corridor carve on failure, bounded retries, deterministic
// fallback.
func generateRandom(o Options, rng *rand.Rand) (*grid.Grid, error) {
	for attempt := 0; attempt < o.MaxAttempts; attempt++ {
		g, err := randomLayout(o, rng)
		if err != nil {
			return nil, err
		}
		if PathExists(g) {
			return g, nil
		}
		carveCorridor(g, rng)
		if PathExists(g) {
			return g, nil
		}
	}

	// Retries exhausted: the unsolvable-maze condition is recovered here,
	// never surfaced to the caller.
	return fallbackGrid(o.Width, o.Height)
}

// randomLayout lays walls and mud without connectivity guarantees.
func randomLayout(o Options, rng *rand.Rand) (*grid.Grid, error) {
	g, err := grid.New(o.Width, o.Height)
	if err != nil {
		return nil, err
	}

	total := o.Width * o.Height
	targetWalls := int(float64(total) * o.WallDensity)
	placed := 0
	// Random placement may keep hitting occupied or protected cells;
	// bound the tries the same way the density bounds the walls.
	for tries := 0; placed < targetWalls && tries < targetWalls*4; tries++ {
		c := grid.Coord{Row: rng.Intn(o.Height), Col: rng.Intn(o.Width)}
		if c == g.Start() || c == g.Goal() {
			continue
		}
		if t, _ := g.Terrain(c); t != grid.Floor {
			continue
		}
		if wouldChokeEndpoint(g, c) {
			continue
		}
		if err = g.SetTerrain(c, grid.Wall); err != nil {
			return nil, err
		}
		placed++
	}

	sprinkleMud(g, rng, o.MudDensity)

	return g, nil
}

// wouldChokeEndpoint reports whether walling c would leave the start or
// goal with too few walkable exits.
func wouldChokeEndpoint(g *grid.Grid, c grid.Coord) bool {
	for _, end := range []grid.Coord{g.Start(), g.Goal()} {
		if c.Manhattan(end) <= 1 {
			nbrs, _ := g.WalkableNeighbors(end)
			if len(nbrs) <= 2 {
				return true
			}
		}
	}

	return false
}

// sprinkleMud converts floor cells to mud with the given probability,
// leaving the endpoints clear.
func sprinkleMud(g *grid.Grid, rng *rand.Rand, density float64) {
	for r := 0; r < g.Height(); r++ {
		for col := 0; col < g.Width(); col++ {
			c := grid.Coord{Row: r, Col: col}
			if c == g.Start() || c == g.Goal() {
				continue
			}
			if t, _ := g.Terrain(c); t != grid.Floor {
				continue
			}
			if rng.Float64() < density {
				_ = g.SetTerrain(c, grid.Mud)
			}
		}
	}
}

// carveCorridor clears a randomized monotone corridor from start to goal,
// turning walls into floor (mud is left as-is: the corridor only needs to
// be walkable, not cheap).
func carveCorridor(g *grid.Grid, rng *rand.Rand) {
	cur := g.Start()
	goal := g.Goal()
	for cur != goal {
		dr, dc := 0, 0
		if cur.Row < goal.Row {
			dr = 1
		} else if cur.Row > goal.Row {
			dr = -1
		}
		if cur.Col < goal.Col {
			dc = 1
		} else if cur.Col > goal.Col {
			dc = -1
		}
		if dr != 0 && dc != 0 {
			// Both axes off target: advance a random one.
			if rng.Intn(2) == 0 {
				dc = 0
			} else {
				dr = 0
			}
		}
		cur = grid.Coord{Row: cur.Row + dr, Col: cur.Col + dc}
		if t, _ := g.Terrain(cur); t == grid.Wall {
			_ = g.SetTerrain(cur, grid.Floor)
		}
	}
}

// fallbackGrid is the deterministic guaranteed-connected layout used when
// random generation keeps failing: a serpentine of wall columns with
// alternating gaps. Mud-free, boring, and always solvable.
func fallbackGrid(width, height int) (*grid.Grid, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	for col := 2; col < width-2; col += 2 {
		gapRow := 1
		if (col/2)%2 == 0 {
			gapRow = height - 2
		}
		for row := 0; row < height; row++ {
			if row == gapRow {
				continue
			}
			c := grid.Coord{Row: row, Col: col}
			if c == g.Start() || c == g.Goal() {
				continue
			}
			_ = g.SetTerrain(c, grid.Wall)
		}
	}

	return g, nil
}

// generateBacktracker carves a perfect maze with depth-first backtracking
// over the odd-coordinate lattice, walls everything else, then sprinkles
// mud through the corridors.
func generateBacktracker(o Options, rng *rand.Rand) (*grid.Grid, error) {
	g, err := grid.New(o.Width, o.Height)
	if err != nil {
		return nil, err
	}

	w, h := o.Width, o.Height
	carved := make(map[grid.Coord]bool)
	start := grid.Coord{Row: 1, Col: 1}
	carved[start] = true
	stack := []grid.Coord{start}
	// Jump two cells per move; the skipped cell becomes the doorway.
	jumps := [4][2]int{{-2, 0}, {0, 2}, {2, 0}, {0, -2}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		candidates := make([]grid.Coord, 0, 4)
		for _, j := range jumps {
			next := grid.Coord{Row: cur.Row + j[0], Col: cur.Col + j[1]}
			if next.Row >= 1 && next.Row < h-1 && next.Col >= 1 && next.Col < w-1 && !carved[next] {
				candidates = append(candidates, next)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]

			continue
		}
		next := candidates[rng.Intn(len(candidates))]
		door := grid.Coord{Row: (cur.Row + next.Row) / 2, Col: (cur.Col + next.Col) / 2}
		carved[next] = true
		carved[door] = true
		stack = append(stack, next)
	}

	// Pin the goal to the odd-aligned corner so it lies on a corridor.
	goal := grid.Coord{Row: oddAligned(h), Col: oddAligned(w)}
	if err = g.SetGoal(goal); err != nil {
		return nil, err
	}
	if err = g.SetStart(start); err != nil {
		return nil, err
	}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := grid.Coord{Row: row, Col: col}
			if carved[c] || c == g.Start() || c == g.Goal() {
				continue
			}
			if err = g.SetTerrain(c, grid.Wall); err != nil {
				return nil, err
			}
		}
	}

	sprinkleMud(g, rng, o.MudDensity)

	return g, nil
}

// oddAligned returns the last odd coordinate strictly inside a dimension
// of the given size.
func oddAligned(size int) int {
	if size%2 == 1 {
		return size - 2
	}

	return size - 3
}

// generateOpen scatters sparse obstacles while protecting a ring around
// each endpoint, then retries with thinner walls until connected.
func generateOpen(o Options, rng *rand.Rand) (*grid.Grid, error) {
	wallDensity := o.WallDensity
	for attempt := 0; attempt < o.MaxAttempts; attempt++ {
		g, err := openLayout(o, wallDensity, rng)
		if err != nil {
			return nil, err
		}
		if PathExists(g) {
			return g, nil
		}
		// Thin the walls and try again.
		wallDensity *= 0.7
	}

	return fallbackGrid(o.Width, o.Height)
}

// openLayout places obstacles for one open-arena attempt.
func openLayout(o Options, wallDensity float64, rng *rand.Rand) (*grid.Grid, error) {
	g, err := grid.New(o.Width, o.Height)
	if err != nil {
		return nil, err
	}
	w, h := o.Width, o.Height

	protected := map[grid.Coord]bool{g.Start(): true, g.Goal(): true}
	for _, end := range []grid.Coord{g.Start(), g.Goal()} {
		nbrs, _ := g.Neighbors(end)
		for _, nb := range nbrs {
			protected[nb] = true
		}
	}

	interior := make([]grid.Coord, 0, (w-2)*(h-2))
	for row := 1; row < h-1; row++ {
		for col := 1; col < w-1; col++ {
			c := grid.Coord{Row: row, Col: col}
			if !protected[c] {
				interior = append(interior, c)
			}
		}
	}
	rng.Shuffle(len(interior), func(i, j int) {
		interior[i], interior[j] = interior[j], interior[i]
	})

	targetWalls := int(float64(w*h) * wallDensity)
	placed := 0
	for _, c := range interior {
		if placed >= targetWalls {
			break
		}
		if rng.Float64() < 0.7 {
			if err = g.SetTerrain(c, grid.Wall); err != nil {
				return nil, err
			}
			placed++
		}
	}

	targetMud := int(float64(w*h) * o.MudDensity)
	mudPlaced := 0
	for row := 1; row < h-1 && mudPlaced < targetMud; row++ {
		for col := 1; col < w-1 && mudPlaced < targetMud; col++ {
			c := grid.Coord{Row: row, Col: col}
			if protected[c] {
				continue
			}
			if t, _ := g.Terrain(c); t != grid.Floor {
				continue
			}
			if rng.Float64() < 0.35 {
				_ = g.SetTerrain(c, grid.Mud)
				mudPlaced++
			}
		}
	}

	// A few mud patches near the diagonal keep the cost-aware searchers
	// honest on the "direct" route.
	if w >= 5 && h >= 5 {
		for i := 0; i < min(w, h)/2; i++ {
			c := grid.Coord{Row: 2 + rng.Intn(h-4), Col: 2 + rng.Intn(w-4)}
			if protected[c] {
				continue
			}
			if t, _ := g.Terrain(c); t == grid.Floor {
				_ = g.SetTerrain(c, grid.Mud)
			}
		}
	}

	return g, nil
}
