package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"github.com/randexapp/randex/cache"
	config "github.com/randexapp/randex/configs"
	"github.com/randexapp/randex/database"
	"github.com/randexapp/randex/handlers"
	"github.com/randexapp/randex/jobs"
	"github.com/randexapp/randex/notifications"
	"github.com/randexapp/randex/repository"
	"github.com/randexapp/randex/routes"
	"github.com/randexapp/randex/services"
	"github.com/randexapp/randex/websocket"
)

func main() {
	db := database.Connect()
	database.Migrate(db)
	notifications.InitEmailService()

	userRepo := repository.NewUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	var businessRepo repository.BusinessRepository = repository.NewBusinessRepository(db)
	if addr := config.Config("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("⚠️ Redis unavailable, directory cache disabled: %v", err)
		} else {
			businessRepo = cache.NewCachedBusinessRepository(businessRepo, rdb)
			log.Println("✅ Business directory cache enabled")
		}
	}

	hub := websocket.NewHub()
	go hub.Run()

	booking := services.NewBookingService(appointmentRepo)

	c := cron.New()
	reminder := jobs.NewReminderJob(appointmentRepo)
	c.AddFunc("0 18 * * *", reminder.Run)
	c.Start()
	log.Println("✅ Cron job for appointment reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "Randex",
		CaseSensitive: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app, handlers.NewAuthHandler(userRepo))
	routes.BusinessRoutes(app, handlers.NewBusinessHandler(businessRepo))
	routes.ServiceRoutes(app, handlers.NewServiceHandler(serviceRepo, businessRepo))
	routes.AppointmentRoutes(app,
		handlers.NewAppointmentHandler(appointmentRepo, businessRepo, userRepo, booking, hub),
		handlers.NewTicketHandler(appointmentRepo))
	routes.ReviewRoutes(app, handlers.NewReviewHandler(reviewRepo, businessRepo))
	routes.NotificationRoutes(app, handlers.NewNotificationHandler(hub))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	port := config.Config("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
