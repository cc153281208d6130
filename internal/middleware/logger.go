package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"employee-task-manager/pkg/logger"
)

// ErrorHandler mencatat setiap request masuk dan menangkap panic dari handler
// supaya proses tidak ikut mati.
func ErrorHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				errMsg := fmt.Sprintf("Recovered from panic: %v", r)
				logger.ErrorLogger.Error(errMsg, zap.String("stack", string(debug.Stack())))
				c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": errMsg,
					"success": false,
					"status":  fiber.StatusInternalServerError,
				})
			}
		}()
		logger.RequestLogger.Info("Incoming request",
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
		)
		return c.Next()
	}
}
