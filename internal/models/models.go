package models

import (
	"time"
)

// Account adalah record kredensial login, terpisah dari record Employee.
// Field Password tidak pernah ikut diserialisasi ke response JSON.
type Account struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"-"`
	Role       string `json:"role"`
	Token      string `json:"token"`
	EmployeeID *int   `json:"employeeId"`
}

// Employee adalah record data karyawan yang bisa direferensikan oleh Task.
type Employee struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Task adalah item pekerjaan. AssignedTo bernilai nil jika task belum
// di-assign ke employee manapun.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AssignedTo  *int      `json:"assignedTo"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Role yang valid untuk Account
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Status yang valid untuk Task
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// ValidTaskStatus mengembalikan true jika status termasuk salah satu dari:
// - pending
// - in-progress
// - completed
func ValidTaskStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}
