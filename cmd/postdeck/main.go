package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/postdeck/postdeck/internal/config"
	"github.com/postdeck/postdeck/internal/logger"
	"github.com/postdeck/postdeck/internal/router"
	"github.com/postdeck/postdeck/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps := setup.SetupDependencies(cfg)
	deps.Warmup(context.Background())

	r := router.New(deps)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = cfg.Public.Port
	}

	logger.Log.Info("postdeck started", "port", httpPort, "store", cfg.Public.StoreBaseURL)
	log.Fatal(http.ListenAndServe(":"+httpPort, r))
}
