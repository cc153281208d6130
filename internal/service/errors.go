package service

import "fmt"

// Kind untuk ValidationError
const (
	KindMissingField    = "missing_field"
	KindInvalidEmail    = "invalid_email"
	KindWeakPassword    = "weak_password"
	KindRoleInvalid     = "role_invalid"
	KindEmailTaken      = "email_taken"
	KindUnknownAssignee = "unknown_assignee"
	KindInvalidStatus   = "invalid_status"
)

// Kind untuk AuthError
const (
	KindMissingCredentials = "missing_credentials"
	KindMissingRole        = "missing_role"
	KindInvalidCredentials = "invalid_credentials"
	KindRoleMismatch       = "role_mismatch"
)

// ValidationError berarti input dari client tidak valid atau konflik dengan
// data yang sudah ada. Request layer memetakan KindEmailTaken ke 409, sisanya
// ke 400.
type ValidationError struct {
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError berarti id yang direferensikan tidak ada. Dipetakan ke 404.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// AuthError adalah kegagalan saat login. KindMissingCredentials dan
// KindMissingRole dipetakan ke 400, KindInvalidCredentials ke 401,
// KindRoleMismatch ke 403.
type AuthError struct {
	Kind    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
