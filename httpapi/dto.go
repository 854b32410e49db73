package httpapi

// Request and response shapes. Terrain is serialized as the numeric
// kind (0 floor, 1 mud, 2 wall) in row-major rows.

import (
	"github.com/gridrace/gridrace/grid"
	"github.com/gridrace/gridrace/race"
)

// CoordDTO is a cell position in JSON form.
type CoordDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func toCoordDTO(c grid.Coord) CoordDTO {
	return CoordDTO{Row: c.Row, Col: c.Col}
}

func toPathDTO(path []grid.Coord) []CoordDTO {
	if len(path) == 0 {
		return nil
	}
	out := make([]CoordDTO, len(path))
	for i, c := range path {
		out[i] = toCoordDTO(c)
	}

	return out
}

// MazeRequest asks for a generated maze. Zero or omitted fields fall
// back to the generator defaults; Seed is optional so repeated requests
// normally produce fresh mazes.
type MazeRequest struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	WallDensity *float64 `json:"wallDensity"`
	MudDensity  *float64 `json:"mudDensity"`
	Seed        *int64   `json:"seed"`
	Layout      string   `json:"layout"` // "random", "backtracker" or "open"
}

// MazeResponse carries a generated maze.
type MazeResponse struct {
	ID      string   `json:"id"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Terrain [][]int  `json:"terrain"`
	Start   CoordDTO `json:"start"`
	Goal    CoordDTO `json:"goal"`
}

func toMazeResponse(id string, g *grid.Grid) MazeResponse {
	terrain := make([][]int, g.Height())
	for row := range terrain {
		terrain[row] = make([]int, g.Width())
	}
	for _, cell := range g.Cells() {
		terrain[cell.Row][cell.Col] = int(cell.Terrain)
	}

	return MazeResponse{
		ID:      id,
		Width:   g.Width(),
		Height:  g.Height(),
		Terrain: terrain,
		Start:   toCoordDTO(g.Start()),
		Goal:    toCoordDTO(g.Goal()),
	}
}

// RaceRequest starts a race between two algorithms on a stored maze.
type RaceRequest struct {
	MazeID string `json:"mazeId" binding:"required"`
	Left   string `json:"left" binding:"required"`
	Right  string `json:"right" binding:"required"`
}

// TickRequest advances a race. Steps defaults to 1; a negative value
// runs the race to completion in one call.
type TickRequest struct {
	Steps int `json:"steps"`
}

// SideDTO is the JSON view of one competitor.
type SideDTO struct {
	Name          string     `json:"name"`
	Status        string     `json:"status"`
	Ticks         int        `json:"ticks"`
	NodesExplored int        `json:"nodesExplored"`
	Success       bool       `json:"success"`
	PathCost      int64      `json:"pathCost"`
	Path          []CoordDTO `json:"path,omitempty"`
}

func toSideDTO(s race.Side) SideDTO {
	return SideDTO{
		Name:          s.Name,
		Status:        s.Status.String(),
		Ticks:         s.Ticks,
		NodesExplored: s.Result.NodesExplored,
		Success:       s.Result.Success,
		PathCost:      s.Result.PathCost,
		Path:          toPathDTO(s.Result.Path),
	}
}

// RaceResponse is a race snapshot: live while either side still runs,
// final once Done, with the winner named when one exists.
type RaceResponse struct {
	ID     string  `json:"id"`
	MazeID string  `json:"mazeId"`
	Left   SideDTO `json:"left"`
	Right  SideDTO `json:"right"`
	Done   bool    `json:"done"`
	Winner string  `json:"winner,omitempty"`
}
