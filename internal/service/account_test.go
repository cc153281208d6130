package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-task-manager/internal/store"
)

func newTestService() *Service {
	return New(store.New())
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newTestService()

	account, err := svc.Register(RegisterInput{
		Name:     "Sam",
		Email:    "sam@x.com",
		Password: "Abcd123!",
		Role:     "employee",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, account.ID)
	assert.True(t, strings.HasPrefix(account.Token, "mock-employee-token-"))
	assert.Nil(t, account.EmployeeID)

	loggedIn, err := svc.Login(LoginInput{
		Email:        "sam@x.com",
		Password:     "Abcd123!",
		ExpectedRole: "employee",
	})
	require.NoError(t, err)
	assert.Equal(t, account.ID, loggedIn.ID)
	assert.Equal(t, account.Email, loggedIn.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService()
	_, err := svc.Register(RegisterInput{Name: "Sam", Email: "sam@x.com", Password: "Abcd123!", Role: "employee"})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "sam@x.com", Password: "wrong", ExpectedRole: "employee"})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindInvalidCredentials, authErr.Kind)
	assert.Equal(t, "Invalid email or password", authErr.Message)
}

func TestLoginUnknownEmailSameMessage(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(LoginInput{Email: "nobody@x.com", Password: "whatever", ExpectedRole: "employee"})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindInvalidCredentials, authErr.Kind)
	assert.Equal(t, "Invalid email or password", authErr.Message)
}

func TestLoginRoleMismatchNamesActualRole(t *testing.T) {
	svc := newTestService()
	_, err := svc.Register(RegisterInput{Name: "Sam", Email: "sam@x.com", Password: "Abcd123!", Role: "employee"})
	require.NoError(t, err)

	_, err = svc.Login(LoginInput{Email: "sam@x.com", Password: "Abcd123!", ExpectedRole: "admin"})

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindRoleMismatch, authErr.Kind)
	assert.Contains(t, authErr.Message, "registered as employee")
	assert.Contains(t, authErr.Message, "Employee login card")
}

func TestLoginMissingFields(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(LoginInput{Email: "sam@x.com", ExpectedRole: "employee"})
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindMissingCredentials, authErr.Kind)

	_, err = svc.Login(LoginInput{Email: "sam@x.com", Password: "Abcd123!"})
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, KindMissingRole, authErr.Kind)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()

	cases := []struct {
		name  string
		input RegisterInput
		kind  string
	}{
		{"missing name", RegisterInput{Email: "a@x.com", Password: "Abcd123!", Role: "employee"}, KindMissingField},
		{"missing password", RegisterInput{Name: "A", Email: "a@x.com", Role: "employee"}, KindMissingField},
		{"bad email", RegisterInput{Name: "A", Email: "bad-email", Password: "Abcd123!", Role: "employee"}, KindInvalidEmail},
		{"email with space", RegisterInput{Name: "A", Email: "a b@x.com", Password: "Abcd123!", Role: "employee"}, KindInvalidEmail},
		{"short password", RegisterInput{Name: "A", Email: "a@x.com", Password: "Ab1!", Role: "employee"}, KindWeakPassword},
		{"no uppercase", RegisterInput{Name: "A", Email: "a@x.com", Password: "abcd123!", Role: "employee"}, KindWeakPassword},
		{"no symbol", RegisterInput{Name: "A", Email: "a@x.com", Password: "Abcd1234", Role: "employee"}, KindWeakPassword},
		{"symbol outside allowed set", RegisterInput{Name: "A", Email: "a@x.com", Password: "Abcd123#", Role: "employee"}, KindWeakPassword},
		{"bad role", RegisterInput{Name: "A", Email: "a@x.com", Password: "Abcd123!", Role: "manager"}, KindRoleInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.input)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.kind, validationErr.Kind)
			// Registrasi yang gagal tidak boleh menambah account
			assert.Empty(t, svc.ListAccounts())
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	first, err := svc.Register(RegisterInput{Name: "Sam", Email: "sam@x.com", Password: "Abcd123!", Role: "employee"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Name: "Other", Email: "sam@x.com", Password: "Efgh456!", Role: "admin"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, KindEmailTaken, validationErr.Kind)

	// Account pertama tidak berubah
	accounts := svc.ListAccounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, first, accounts[0])
}

func TestAccountPasswordNeverSerialized(t *testing.T) {
	svc := newTestService()
	_, err := svc.Register(RegisterInput{Name: "Sam", Email: "sam@x.com", Password: "Abcd123!", Role: "employee"})
	require.NoError(t, err)

	body, err := json.Marshal(svc.ListAccounts())
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "Abcd123!")
}

func TestGetAccountByID(t *testing.T) {
	svc := newTestService()
	created, err := svc.Register(RegisterInput{Name: "Sam", Email: "sam@x.com", Password: "Abcd123!", Role: "employee"})
	require.NoError(t, err)

	found, err := svc.GetAccountByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = svc.GetAccountByID(99)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Account", notFoundErr.Entity)
	assert.Equal(t, 99, notFoundErr.ID)
}
