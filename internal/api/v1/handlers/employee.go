package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"employee-task-manager/internal/service"
	"employee-task-manager/pkg/logger"
)

// Employee handlers

type EmployeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// GetAllEmployees mengembalikan semua employee.
func (h *Handler) GetAllEmployees(c *fiber.Ctx) error {
	employees := h.svc.ListEmployees()

	logger.AuditLogger.Info("Employees fetched successfully")
	return c.JSON(fiber.Map{
		"message": "Employees fetched successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    employees,
	})
}

// CreateEmployee membuat record employee baru.
func (h *Handler) CreateEmployee(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create employee", zap.Error(err))
		return badRequest(c, "Bad request")
	}

	employee, err := h.svc.CreateEmployee(service.EmployeeInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	logger.AuditLogger.Info("Employee created", zap.Int("employee_id", employee.ID))
	h.notify("employee.created", employee)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Employee created successfully",
		"success": true,
		"status":  fiber.StatusCreated,
		"data":    employee,
	})
}

// UpdateEmployee mengganti name/email/role employee.
func (h *Handler) UpdateEmployee(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid employee ID", zap.Error(err))
		return badRequest(c, "Invalid employee ID")
	}

	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in update employee", zap.Error(err))
		return badRequest(c, "Bad request")
	}

	employee, err := h.svc.UpdateEmployee(employeeID, service.EmployeeInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	logger.AuditLogger.Info("Employee updated", zap.Int("employee_id", employee.ID))
	h.notify("employee.updated", employee)
	return c.JSON(fiber.Map{
		"message": "Employee updated successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    employee,
	})
}

// DeleteEmployee menghapus employee beserta task yang di-assign kepadanya.
func (h *Handler) DeleteEmployee(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid employee ID", zap.Error(err))
		return badRequest(c, "Invalid employee ID")
	}

	removedTasks, err := h.svc.DeleteEmployee(employeeID)
	if err != nil {
		return h.errorResponse(c, err)
	}

	logger.AuditLogger.Info("Employee deleted",
		zap.Int("employee_id", employeeID),
		zap.Int("removed_tasks", removedTasks),
	)
	h.notify("employee.deleted", fiber.Map{"id": employeeID, "removedTasks": removedTasks})
	return c.JSON(fiber.Map{
		"message": "Employee and associated tasks deleted successfully",
		"success": true,
		"status":  fiber.StatusOK,
	})
}
