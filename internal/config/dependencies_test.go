package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"sam@x.com", "a.b@sub.domain.org", "x@y.co"}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), email)
	}

	invalid := []string{"", "bad-email", "no@tld", "two@@x.com", "spa ce@x.com", "@x.com"}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), email)
	}
}

func TestStrongPassword(t *testing.T) {
	valid := []string{"Abcd123!", "Xyz$9876a", "P%assw0rd"}
	for _, password := range valid {
		assert.True(t, StrongPassword(password), password)
	}

	invalid := []string{
		"",
		"Ab1!",      // terlalu pendek
		"abcd123!",  // tanpa huruf besar
		"ABCD123!",  // tanpa huruf kecil
		"Abcdefg!",  // tanpa angka
		"Abcd1234",  // tanpa simbol
		"Abcd123#",  // simbol di luar himpunan yang diizinkan
		"Abcd 123!", // spasi tidak diizinkan
	}
	for _, password := range invalid {
		assert.False(t, StrongPassword(password), password)
	}
}

func TestRegisteredValidatorRules(t *testing.T) {
	assert.NoError(t, Validate.Var("sam@x.com", "record_email"))
	assert.Error(t, Validate.Var("bad-email", "record_email"))

	assert.NoError(t, Validate.Var("Abcd123!", "strong_password"))
	assert.Error(t, Validate.Var("weak", "strong_password"))

	assert.NoError(t, Validate.Var("admin", "account_role"))
	assert.NoError(t, Validate.Var("employee", "account_role"))
	assert.Error(t, Validate.Var("manager", "account_role"))
}
