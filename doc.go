// Package gridrace is a pathfinding racing arena: six classic grid
// searchers stepping side by side over generated mazes.
//
// 🚀 What is gridrace?
//
//	A small library plus a JSON API that brings together:
//		• grid/    — the terrain model: floor, mud, walls, costs, endpoints
//		• mazegen/ — maze generation with a guaranteed start→goal path
//		• search/  — BFS, DFS, UCS, Greedy, A*, IDA* behind one Step contract
//		• race/    — a lockstep coordinator that pits two searchers
//		• httpapi/ — maze and race endpoints for building a front end
//
// ✨ Why the step contract?
//
//   - Every searcher advances one cell expansion per Step call, so a
//     render loop can animate all six at any pace, Slow to Instant
//   - Traces record the exact expansion order for replay and overlays
//   - Results expose path, cost, and nodes explored for fair scoring
//
// Quick ASCII example, a 4×3 arena:
//
//	S M M G      S=start, G=goal
//	. # # .      M=mud (cost 5), #=wall
//	. . . .      .=floor (cost 1)
//
//	BFS and Greedy dash through the mud in 3 moves (cost 11); UCS, A*,
//	and IDA* pay 7 moves for the cost-7 floor detour.
//
// Start with mazegen.Generate, hand the grid to race.New, and Tick.
//
//	go get github.com/gridrace/gridrace
package gridrace
