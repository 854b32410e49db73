package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gridrace/gridrace/mazegen"
)

// MazeController serves maze generation and retrieval.
type MazeController struct {
	store *MazeStore
}

// NewMazeController initializes a MazeController over the given store.
func NewMazeController(store *MazeStore) *MazeController {
	return &MazeController{store: store}
}

// Register mounts the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:id", mc.get)
	}
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	opts, err := mazeOptions(request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	g, err := mazegen.Generate(opts...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	id := mc.store.Put(g)
	ctx.JSON(http.StatusCreated, toMazeResponse(id.String(), g))
}

// get retrieves a previously generated maze.
func (mc *MazeController) get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})

		return
	}
	g, ok := mc.store.Get(id)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})

		return
	}

	ctx.JSON(http.StatusOK, toMazeResponse(id.String(), g))
}

// mazeOptions translates a request into generator options, leaving
// omitted fields on their defaults.
func mazeOptions(request MazeRequest) ([]mazegen.Option, error) {
	var opts []mazegen.Option
	if request.Width != 0 {
		opts = append(opts, mazegen.WithWidth(request.Width))
	}
	if request.Height != 0 {
		opts = append(opts, mazegen.WithHeight(request.Height))
	}
	if request.WallDensity != nil {
		opts = append(opts, mazegen.WithWallDensity(*request.WallDensity))
	}
	if request.MudDensity != nil {
		opts = append(opts, mazegen.WithMudDensity(*request.MudDensity))
	}
	if request.Seed != nil {
		opts = append(opts, mazegen.WithSeed(*request.Seed))
	}
	if request.Layout != "" {
		layout, err := parseLayout(request.Layout)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mazegen.WithLayout(layout))
	}

	return opts, nil
}

// parseLayout maps the wire name onto a generator layout.
func parseLayout(name string) (mazegen.Layout, error) {
	switch name {
	case mazegen.LayoutRandom.String():
		return mazegen.LayoutRandom, nil
	case mazegen.LayoutBacktracker.String():
		return mazegen.LayoutBacktracker, nil
	case mazegen.LayoutOpen.String():
		return mazegen.LayoutOpen, nil
	}

	return 0, fmt.Errorf("unknown layout %q", name)
}
