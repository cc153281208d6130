package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"employee-task-manager/internal/api/v1/handlers"
	myws "employee-task-manager/internal/websocket"
)

// RegisterRoutes mendaftarkan seluruh route API v1 plus endpoint change feed.
// hub boleh nil jika change feed tidak dipakai (misalnya saat test).
func RegisterRoutes(app *fiber.App, h *handlers.Handler, hub *myws.Hub) {
	api := app.Group("/api/v1")

	// Auth
	api.Post("/login", h.Login)
	api.Post("/register", h.Register)

	// Account
	accountRoutes := api.Group("/accounts")
	accountRoutes.Get("/", h.GetAllAccounts)
	accountRoutes.Get("/:id", h.GetAccount)

	// Employee
	employeeRoutes := api.Group("/employees")
	employeeRoutes.Get("/", h.GetAllEmployees)
	employeeRoutes.Post("/", h.CreateEmployee)
	employeeRoutes.Put("/:id", h.UpdateEmployee)
	employeeRoutes.Delete("/:id", h.DeleteEmployee)

	// Task
	taskRoutes := api.Group("/tasks")
	taskRoutes.Get("/", h.GetAllTasks)
	taskRoutes.Post("/", h.CreateTask)
	taskRoutes.Put("/:id", h.UpdateTask)
	taskRoutes.Delete("/:id", h.DeleteTask)

	// Change feed
	if hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})
		app.Get("/ws", websocket.New(func(c *websocket.Conn) {
			client := &myws.Client{Conn: c}
			hub.Register <- client
			defer func() {
				hub.Unregister <- client
			}()
			// Feed ini satu arah; baca hanya untuk mendeteksi koneksi putus
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					break
				}
			}
		}))
	}
}
