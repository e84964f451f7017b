package main

import (
	"context"
	"log"

	"op-mental-be/internal/bootstrap"
	"op-mental-be/internal/config"
	"op-mental-be/internal/server"
	"op-mental-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Start Background Services
	go func() {
		log.Println("Background: Starting Knowledge Reloader...")
		if err := container.Reloader.Listen(context.Background()); err != nil {
			log.Printf("Background Reloader Error: %v", err)
		}
	}()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
