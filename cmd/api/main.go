package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"

	"employee-task-manager/configs"
	v1 "employee-task-manager/internal/api/v1"
	"employee-task-manager/internal/api/v1/handlers"
	"employee-task-manager/internal/middleware"
	"employee-task-manager/internal/service"
	"employee-task-manager/internal/store"
	myws "employee-task-manager/internal/websocket"
	"employee-task-manager/pkg/logger"
)

func main() {
	// Inisialisasi logger
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	// Load config
	cfg := configs.LoadConfig()

	// Store in-memory: semua data hilang saat proses berhenti
	st := store.New()
	st.Seed()
	logger.SystemLogger.Info("In-memory store seeded",
		zap.Int("accounts", len(st.Accounts())),
		zap.Int("employees", len(st.Employees())),
		zap.Int("tasks", len(st.Tasks())),
	)

	svc := service.New(st)

	// Change feed hub
	hub := myws.NewHub()
	go hub.Run()

	h := handlers.New(svc, hub)

	app := fiber.New()

	// Middleware
	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Daftarkan route API v1
	v1.RegisterRoutes(app, h, hub)

	// Banner akun demo supaya API gampang langsung dicoba
	fmt.Printf("Server running on http://localhost:%d\n", cfg.AppPort)
	fmt.Println("\nPre-configured demo accounts:")
	fmt.Println("Admin: admin@example.com / admin123")
	fmt.Println("Employee: johndoe@example.com / johndoe123")
	fmt.Println("Employee: janesmith@example.com / janesmith123")

	logger.SystemLogger.Info("Application ready", zap.Int("port", cfg.AppPort))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.AppPort)); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
