package main

import (
	"context"
	"log"
	"time"

	"econdash/internal/config"
	"econdash/internal/resources"
	"econdash/internal/viewlog"
	"econdash/ui"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := resources.Load(ctx, appConfig.Data)
	if err != nil {
		log.Fatalf("Failed to load resources: %v", err)
	}
	if res.DataErr != nil {
		log.Printf("[DataLoader] %v", res.DataErr)
	}
	if res.ModelErr != nil {
		log.Printf("[ModelLoader] %v", res.ModelErr)
	}

	store, err := viewlog.Open(ctx, appConfig.Database)
	if err != nil {
		log.Fatalf("Failed to open view log: %v", err)
	}
	defer store.Close()

	server, err := ui.NewServer(ui.Options{
		Resources:   res,
		Views:       store,
		ImagesDir:   appConfig.Data.ImagesDir,
		CompareSeed: appConfig.Compare.Seed,
		GinMode:     appConfig.Server.GinMode,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
