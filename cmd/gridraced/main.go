// Command gridraced serves the maze and race API.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gridrace/gridrace/config"
	"github.com/gridrace/gridrace/httpapi"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	mazes := httpapi.NewMazeStore()
	races := httpapi.NewRaceStore()

	router := httpapi.NewRouter(httpapi.Config{
		Addr:    fmt.Sprintf("%s:%d", cfg.HostIP, cfg.Port),
		BaseURL: "/api",
		Controllers: []httpapi.Controller{
			httpapi.NewMazeController(mazes),
			httpapi.NewRaceController(mazes, races),
		},
	})

	log.Printf("[APP] [INFO] serving on %s:%d", cfg.HostIP, cfg.Port)
	if err := router.Run(); err != nil {
		log.Printf("[APP] [ERROR] server stopped: %v", err)
		os.Exit(1)
	}
}
