package search_test

import (
	"fmt"

	"github.com/gridrace/gridrace/grid"
	"github.com/gridrace/gridrace/search"
)

// ExampleNames lists the fixed racing roster.
func ExampleNames() {
	fmt.Println(search.Names())
	// Output:
	// [BFS DFS UCS Greedy A* IDA*]
}

// ExampleSearcher_bfs steps breadth-first search over a small open grid
// and reports the shortest route.
func ExampleSearcher_bfs() {
	g, err := grid.New(4, 4) // start (1,1), goal (2,2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	s := search.NewBFS()
	if err = s.Reset(g, g.Start(), g.Goal()); err != nil {
		fmt.Println("error:", err)

		return
	}
	for s.Step() == search.Continue {
	}

	res, err := s.Result()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("found=%v moves=%d cost=%d\n", res.Success, len(res.Path)-1, res.PathCost)
	// Output:
	// found=true moves=2 cost=2
}

// ExampleSearcher_mud contrasts A* and Greedy on a grid where the direct
// corridor is mud and a longer floor detour is cheaper: A* pays steps to
// save cost, Greedy chases the heuristic straight into the mud.
func ExampleSearcher_mud() {
	g, err := grid.New(4, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = g.SetStart(grid.Coord{Row: 0, Col: 0})
	_ = g.SetGoal(grid.Coord{Row: 0, Col: 3})
	_ = g.SetTerrain(grid.Coord{Row: 0, Col: 1}, grid.Mud)
	_ = g.SetTerrain(grid.Coord{Row: 0, Col: 2}, grid.Mud)
	_ = g.SetTerrain(grid.Coord{Row: 1, Col: 1}, grid.Wall)
	_ = g.SetTerrain(grid.Coord{Row: 1, Col: 2}, grid.Wall)

	for _, name := range []string{"A*", "Greedy"} {
		s, err := search.New(name)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		if err = s.Reset(g, g.Start(), g.Goal()); err != nil {
			fmt.Println("error:", err)

			return
		}
		for s.Step() == search.Continue {
		}
		res, _ := s.Result()
		fmt.Printf("%s: moves=%d cost=%d\n", s.Name(), len(res.Path)-1, res.PathCost)
	}
	// Output:
	// A*: moves=7 cost=7
	// Greedy: moves=3 cost=11
}
