package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"employee-task-manager/internal/service"
	"employee-task-manager/pkg/logger"
)

// Auth & account handlers

// Register membuat account baru lengkap dengan token mock.
func (h *Handler) Register(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in register", zap.Error(err))
		return badRequest(c, "Bad request")
	}

	account, err := h.svc.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		logger.AuditLogger.Warn("Register rejected", zap.String("email", req.Email), zap.Error(err))
		return h.errorResponse(c, err)
	}

	logger.AuditLogger.Info("Account registered", zap.Int("account_id", account.ID), zap.String("role", account.Role))
	h.notify("account.registered", account)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created successfully",
		"success": true,
		"status":  fiber.StatusCreated,
		"data":    account,
	})
}

// Login memvalidasi kredensial plus role yang diharapkan dari kartu login.
func (h *Handler) Login(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email        string `json:"email"`
		Password     string `json:"password"`
		ExpectedRole string `json:"expectedRole"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		return badRequest(c, "Bad request")
	}

	account, err := h.svc.Login(service.LoginInput{
		Email:        req.Email,
		Password:     req.Password,
		ExpectedRole: req.ExpectedRole,
	})
	if err != nil {
		logger.SecurityLogger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		return h.errorResponse(c, err)
	}

	logger.AuditLogger.Info("Login success", zap.Int("account_id", account.ID), zap.String("role", account.Role))
	return c.JSON(fiber.Map{
		"message": "Login success",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    account,
	})
}

// GetAllAccounts mengembalikan semua account tanpa field password.
func (h *Handler) GetAllAccounts(c *fiber.Ctx) error {
	accounts := h.svc.ListAccounts()

	logger.AuditLogger.Info("Accounts fetched successfully")
	return c.JSON(fiber.Map{
		"message": "Accounts fetched successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    accounts,
	})
}

// GetAccount mengembalikan satu account berdasarkan id.
func (h *Handler) GetAccount(c *fiber.Ctx) error {
	accountID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid account ID", zap.Error(err))
		return badRequest(c, "Invalid account ID")
	}

	account, err := h.svc.GetAccountByID(accountID)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Account found",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    account,
	})
}
