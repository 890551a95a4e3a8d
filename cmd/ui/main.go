package main

import (
	"log"
	"os"

	"econdash/ui"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	app, err := ui.NewApp(ui.Config{
		Port: port,
	})
	if err != nil {
		log.Fatal("Failed to create gallery app:", err)
	}

	log.Fatal(app.Start())
}
