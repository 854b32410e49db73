package race_test

import (
	"fmt"

	"github.com/gridrace/gridrace/grid"
	"github.com/gridrace/gridrace/race"
	"github.com/gridrace/gridrace/search"
)

// ExampleRace pits A* against BFS on an open field. The heuristic lets
// A* march straight to the goal while BFS floods the whole board, so A*
// takes the flag in fewer ticks.
func ExampleRace() {
	g, err := grid.New(6, 6) // start (1,1), goal (4,4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	r, err := race.New(g, search.NewAStar(), search.NewBFS())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	r.RunToCompletion()

	left, right := r.Status()
	winner, _ := r.Winner()
	fmt.Printf("%s finished in %d ticks, %s in %d\n", left.Name, left.Ticks, right.Name, right.Ticks)
	fmt.Printf("winner: %s\n", winner)
	// Output:
	// A* finished in 7 ticks, BFS in 32
	// winner: A*
}
