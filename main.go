package main

import (
	"FreshTrack-Backend/cmd/config"
	migration "FreshTrack-Backend/cmd/database/migrate"
	"FreshTrack-Backend/internal/utils"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go app.Scheduler.Run(ctx)

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Fiber.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
