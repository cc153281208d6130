package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"employee-task-manager/internal/config"
	"employee-task-manager/internal/models"
)

// RegisterInput menerima inputan register dari request layer.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,record_email"`
	Password string `validate:"required,strong_password"`
	Role     string `validate:"required,account_role"`
}

// LoginInput menerima inputan login dari request layer. ExpectedRole adalah
// role dari kartu login yang dipakai di sisi client (admin atau employee).
type LoginInput struct {
	Email        string
	Password     string
	ExpectedRole string
}

// ListAccounts mengembalikan semua account sesuai urutan pendaftaran.
// Field password tidak pernah ikut terserialisasi (json:"-").
func (s *Service) ListAccounts() []models.Account {
	s.store.Lock()
	defer s.store.Unlock()

	return s.store.Accounts()
}

// Login memvalidasi kredensial dengan perbandingan plaintext persis, lalu
// mengecek role account terhadap role yang diharapkan.
func (s *Service) Login(in LoginInput) (models.Account, error) {
	if in.Email == "" || in.Password == "" {
		return models.Account{}, &AuthError{Kind: KindMissingCredentials, Message: "Email and password are required"}
	}
	if in.ExpectedRole == "" {
		return models.Account{}, &AuthError{Kind: KindMissingRole, Message: "Role information is required"}
	}

	s.store.Lock()
	defer s.store.Unlock()

	account := s.store.FindAccountByEmail(in.Email)
	if account == nil || account.Password != in.Password {
		// Pesan yang sama untuk email tidak terdaftar dan password salah
		return models.Account{}, &AuthError{Kind: KindInvalidCredentials, Message: "Invalid email or password"}
	}

	if account.Role != in.ExpectedRole {
		card := "Employee"
		if account.Role == models.RoleAdmin {
			card = "Admin"
		}
		return models.Account{}, &AuthError{
			Kind:    KindRoleMismatch,
			Message: fmt.Sprintf("This account is registered as %s. Please use the %s login card.", account.Role, card),
		}
	}

	return *account, nil
}

// Register membuat account baru. EmployeeID sengaja dibiarkan kosong;
// penautan ke record employee dilakukan belakangan, di luar alur register.
func (s *Service) Register(in RegisterInput) (models.Account, error) {
	if err := config.Validate.Struct(in); err != nil {
		return models.Account{}, registerValidationError(err)
	}

	s.store.Lock()
	defer s.store.Unlock()

	if existing := s.store.FindAccountByEmail(in.Email); existing != nil {
		return models.Account{}, &ValidationError{Kind: KindEmailTaken, Message: "Email already registered"}
	}

	account := models.Account{
		ID:       s.store.NextAccountID(),
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
		Token:    generateToken(in.Role),
	}
	s.store.AppendAccount(account)

	return account, nil
}

// GetAccountByID mengembalikan satu account berdasarkan id.
func (s *Service) GetAccountByID(id int) (models.Account, error) {
	s.store.Lock()
	defer s.store.Unlock()

	account := s.store.FindAccountByID(id)
	if account == nil {
		return models.Account{}, &NotFoundError{Entity: "Account", ID: id}
	}
	return *account, nil
}

// generateToken menghasilkan token opaque untuk account baru. Token ini tidak
// divalidasi ulang saat login.
func generateToken(role string) string {
	return fmt.Sprintf("mock-%s-token-%d", role, time.Now().UnixMilli())
}

// registerValidationError memetakan error dari validator ke ValidationError
// dengan pesan per aturan. Field yang kosong diperiksa lebih dulu, baru
// format email, kekuatan password, dan role.
func registerValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Kind: KindMissingField, Message: "All fields are required"}
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return &ValidationError{Kind: KindMissingField, Message: "All fields are required"}
		}
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "record_email":
			return &ValidationError{Kind: KindInvalidEmail, Message: "Invalid email format"}
		case "strong_password":
			return &ValidationError{
				Kind:    KindWeakPassword,
				Message: "Password must be at least 8 characters and include uppercase, lowercase, number, and special character",
			}
		case "account_role":
			return &ValidationError{Kind: KindRoleInvalid, Message: "Role must be either admin or employee"}
		}
	}
	return &ValidationError{Kind: KindMissingField, Message: "All fields are required"}
}
