package config

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"employee-task-manager/internal/models"
)

// Dependency bersama yang dipakai di seluruh aplikasi
var Validate = validator.New()

// Pola email sederhana: local-part @ domain . tld, tanpa whitespace dan
// tanpa '@' ganda.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSymbols = "@$!%*?&"

func init() {
	// Rule custom "record_email": format email yang dipakai untuk Account
	// maupun Employee.
	_ = Validate.RegisterValidation("record_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	// Rule custom "strong_password": minimal 8 karakter, harus mengandung
	// huruf kecil, huruf besar, angka, dan simbol dari @$!%*?&. Karakter di
	// luar himpunan tersebut tidak diperbolehkan.
	_ = Validate.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return StrongPassword(fl.Field().String())
	})

	// Rule custom "account_role": hanya admin atau employee.
	_ = Validate.RegisterValidation("account_role", func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		return role == models.RoleAdmin || role == models.RoleEmployee
	})
}

// ValidEmail mengecek format email dengan pola yang sama seperti rule
// "record_email".
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// StrongPassword mengecek kekuatan password tanpa lewat struct tag.
func StrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			// karakter di luar himpunan yang diizinkan
			return false
		}
	}
	return lower && upper && digit && symbol
}
