package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"employee-task-manager/internal/service"
	"employee-task-manager/pkg/logger"
)

// Task handlers

// TaskRequest menerima body create/update task. AssignedTo dan Status pakai
// pointer supaya field yang tidak dikirim bisa dibedakan dari nilai kosong.
type TaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	AssignedTo  *int    `json:"assignedTo"`
	Status      *string `json:"status"`
}

// GetAllTasks mengembalikan semua task.
func (h *Handler) GetAllTasks(c *fiber.Ctx) error {
	tasks := h.svc.ListTasks()

	logger.AuditLogger.Info("Tasks fetched successfully")
	return c.JSON(fiber.Map{
		"message": "Tasks fetched successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    tasks,
	})
}

// CreateTask membuat task baru.
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return badRequest(c, "Bad request")
	}

	task, err := h.svc.CreateTask(service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      req.Status,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	logger.AuditLogger.Info("Task created", zap.Int("task_id", task.ID))
	h.notify("task.created", task)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Task created successfully",
		"success": true,
		"status":  fiber.StatusCreated,
		"data":    task,
	})
}

// UpdateTask mengganti isi task.
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return badRequest(c, "Invalid task ID")
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update task", zap.Error(err))
		return badRequest(c, "Bad request")
	}

	task, err := h.svc.UpdateTask(taskID, service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      req.Status,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	logger.AuditLogger.Info("Task updated", zap.Int("task_id", task.ID))
	h.notify("task.updated", task)
	return c.JSON(fiber.Map{
		"message": "Task updated successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    task,
	})
}

// DeleteTask menghapus satu task.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return badRequest(c, "Invalid task ID")
	}

	if err := h.svc.DeleteTask(taskID); err != nil {
		return h.errorResponse(c, err)
	}

	logger.AuditLogger.Info("Task deleted", zap.Int("task_id", taskID))
	h.notify("task.deleted", fiber.Map{"id": taskID})
	return c.JSON(fiber.Map{
		"message": "Task deleted successfully",
		"success": true,
		"status":  fiber.StatusOK,
	})
}
