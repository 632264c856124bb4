package config

import (
	"FreshTrack-Backend/internal/api/handlers"
	"FreshTrack-Backend/internal/api/routes"
	"FreshTrack-Backend/internal/middleware"
	"FreshTrack-Backend/internal/utils"
	"FreshTrack-Backend/internal/utils/storage"
	"FreshTrack-Backend/pkg/food"
	"FreshTrack-Backend/pkg/jwt"
	"FreshTrack-Backend/pkg/migration"
	"FreshTrack-Backend/pkg/notification"
	"FreshTrack-Backend/pkg/realtime"
	"FreshTrack-Backend/pkg/user"
	"FreshTrack-Backend/pkg/waste"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

type App struct {
	Fiber     *fiber.App
	Scheduler *notification.Scheduler
}

func NewApp(db *gorm.DB) (*App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	hub := realtime.NewHub()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	wasteRepository := waste.NewWasteRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, notificationRepository, s3, hub)
	notificationService := notification.NewNotificationService(notificationRepository, foodRepository, userRepository, hub)
	wasteService := waste.NewWasteService(wasteRepository)
	migrationService := migration.NewMigrationService(foodRepository, hub)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	wasteHandler := handlers.NewWasteHandler(wasteService, validator)
	migrationHandler := handlers.NewMigrationHandler(migrationService, validator)
	eventsHandler := handlers.NewEventsHandler(hub)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		FoodHandler:         foodHandler,
		NotificationHandler: notificationHandler,
		WasteHandler:        wasteHandler,
		MigrationHandler:    migrationHandler,
		EventsHandler:       eventsHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()

	scheduler := notification.NewScheduler(notificationService, userRepository, notification.DefaultCheckInterval)

	return &App{
		Fiber:     app,
		Scheduler: scheduler,
	}, nil
}
