package main

import (
	"context"
	"log"

	"trailrace/internal/app/bootstrap"
)

// Command service entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + command handlers).
// 3) Serve the write-side HTTP API; publish one event per write.
func main() {
	log.Println("trailrace command service starting")
	app, err := bootstrap.BuildCommand()
	if err != nil {
		log.Fatalf("bootstrap command service failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("command service shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("trailrace command service stopped with error: %v", err)
	}
}
