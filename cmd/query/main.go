package main

import (
	"context"
	"log"

	"trailrace/internal/app/bootstrap"
)

// Query service entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (read store + listeners + query handlers).
// 3) Bind event queues, then serve the read-side HTTP API.
func main() {
	log.Println("trailrace query service starting")
	app, err := bootstrap.BuildQuery()
	if err != nil {
		log.Fatalf("bootstrap query service failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("query service shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("trailrace query service stopped with error: %v", err)
	}
}
