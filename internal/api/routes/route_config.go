package routes

import (
	"FreshTrack-Backend/internal/api/handlers"
	"FreshTrack-Backend/internal/middleware"
	"FreshTrack-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	NotificationHandler handlers.NotificationHandler
	WasteHandler        handlers.WasteHandler
	MigrationHandler    handlers.MigrationHandler
	EventsHandler       handlers.EventsHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodItems()
	c.Notifications()
	c.Waste()
	c.Migration()
	c.Events()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/settings", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetSettings)
		user.Patch("/settings", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateSettings)
	}
}

func (c *Config) FoodItems() {
	foodItems := c.App.Group("/api/v1/food-items", c.Middleware.AuthMiddleware(c.JWTService))
	foodItems.Get("/dashboard", c.FoodHandler.GetDashboardStats)

	// Trash before :id so the literal segment wins
	foodItems.Get("/trash", c.FoodHandler.GetTrashedItems)
	foodItems.Post("/trash/:id/restore", c.FoodHandler.RestoreFoodItem)
	foodItems.Delete("/trash/:id", c.FoodHandler.DeleteFoodItem)

	// Basic CRUD operations
	foodItems.Post("", c.FoodHandler.AddFoodItem)
	foodItems.Get("", c.FoodHandler.GetFoodItems)
	foodItems.Get("/:id", c.FoodHandler.GetFoodItemDetails)
	foodItems.Put("/:id", c.FoodHandler.UpdateFoodItem)
	foodItems.Delete("/:id", c.FoodHandler.TrashFoodItem)

	foodItems.Post("/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))

	notifications.Get("", c.NotificationHandler.GetNotifications)
	notifications.Post("/check", c.NotificationHandler.RunExpiryCheck)
	notifications.Patch("/read-all", c.NotificationHandler.MarkAllAsRead)
	notifications.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
	notifications.Delete("/:id", c.NotificationHandler.DeleteNotification)
}

func (c *Config) Waste() {
	waste := c.App.Group("/api/v1/waste", c.Middleware.AuthMiddleware(c.JWTService))

	waste.Post("/log", c.WasteHandler.LogDisposal)
	waste.Get("/log", c.WasteHandler.GetWasteLog)
	waste.Get("/summary", c.WasteHandler.GetWasteSummary)
	waste.Post("/goals", c.WasteHandler.CreateWasteGoal)
	waste.Get("/goals", c.WasteHandler.GetWasteGoals)
	waste.Patch("/goals/:id/deactivate", c.WasteHandler.DeactivateGoal)
}

func (c *Config) Migration() {
	c.App.Post(
		"/api/v1/migration/import",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.MigrationHandler.ImportLocalItems,
	)
}

func (c *Config) Events() {
	c.App.Get(
		"/api/v1/events",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.EventsHandler.Stream,
	)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
