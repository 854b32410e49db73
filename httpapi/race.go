package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gridrace/gridrace/race"
	"github.com/gridrace/gridrace/search"
)

// RaceController serves race creation, advancement, and inspection.
type RaceController struct {
	mazes *MazeStore
	races *RaceStore
}

// NewRaceController initializes a RaceController over the given stores.
func NewRaceController(mazes *MazeStore, races *RaceStore) *RaceController {
	return &RaceController{mazes: mazes, races: races}
}

// Register mounts the race routes.
func (rc *RaceController) Register(route *gin.RouterGroup) {
	races := route.Group("/races")
	{
		races.POST("", rc.create)
		races.GET("/:id", rc.get)
		races.POST("/:id/tick", rc.tick)
	}
}

// create handles race creation requests.
func (rc *RaceController) create(ctx *gin.Context) {
	var request RaceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	mazeID, err := uuid.Parse(request.MazeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})

		return
	}
	g, ok := rc.mazes.Get(mazeID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})

		return
	}

	left, err := search.New(request.Left)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	right, err := search.New(request.Right)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	// Each session races over its own copy, so concurrent races on the
	// same maze never share terrain mutations.
	r, err := race.New(g.Clone(), left, right)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while starting race"})

		return
	}

	session := rc.races.Put(mazeID, r)
	ctx.JSON(http.StatusCreated, session.Snapshot())
}

// tick advances a race by a batch of steps.
func (rc *RaceController) tick(ctx *gin.Context) {
	session, ok := rc.session(ctx)
	if !ok {
		return
	}
	var request TickRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	session.Advance(request.Steps)
	ctx.JSON(http.StatusOK, session.Snapshot())
}

// get reads a race snapshot without advancing it.
func (rc *RaceController) get(ctx *gin.Context) {
	session, ok := rc.session(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, session.Snapshot())
}

// session resolves the :id parameter, writing the error response itself
// when the lookup fails.
func (rc *RaceController) session(ctx *gin.Context) (*Session, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid race id"})

		return nil, false
	}
	session, ok := rc.races.Get(id)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "race not found"})

		return nil, false
	}

	return session, true
}
