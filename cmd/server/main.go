package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/youruser/sgmapp/internal/api"
	"github.com/youruser/sgmapp/internal/assets"
	"github.com/youruser/sgmapp/internal/config"
)

func main() {
	cfgPath := flag.String("config", config.DefaultFileName, "path to the settings file")
	addr := flag.String("addr", "", "listen address (default :$PORT or :8080)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	// Warm up the last folder (best-effort)
	if cfg.LastGameFolder != "" {
		res := assets.Scan(cfg.LastGameFolder)
		log.Printf("last game folder %s: %d games", res.Folder, res.Len())
	}

	r := gin.Default()
	api.RegisterRoutes(r, api.NewServer(cfg, *cfgPath))

	if *addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		*addr = ":" + port
	}
	log.Println("starting server on", *addr)
	if err := r.Run(*addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
