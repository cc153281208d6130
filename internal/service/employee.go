package service

import (
	"employee-task-manager/internal/config"
	"employee-task-manager/internal/models"
)

// EmployeeInput menerima inputan create/update employee dari request layer.
// Role boleh kosong dan akan di-default-kan ke "employee".
type EmployeeInput struct {
	Name  string
	Email string
	Role  string
}

// ListEmployees mengembalikan semua employee sesuai urutan pembuatan.
func (s *Service) ListEmployees() []models.Employee {
	s.store.Lock()
	defer s.store.Unlock()

	return s.store.Employees()
}

// CreateEmployee membuat record employee baru.
func (s *Service) CreateEmployee(in EmployeeInput) (models.Employee, error) {
	if err := validateEmployeeInput(in); err != nil {
		return models.Employee{}, err
	}

	s.store.Lock()
	defer s.store.Unlock()

	if existing := s.store.FindEmployeeByEmail(in.Email, 0); existing != nil {
		return models.Employee{}, &ValidationError{Kind: KindEmailTaken, Message: "Email already exists"}
	}

	employee := models.Employee{
		ID:    s.store.NextEmployeeID(),
		Name:  in.Name,
		Email: in.Email,
		Role:  employeeRoleOrDefault(in.Role),
	}
	s.store.AppendEmployee(employee)

	return employee, nil
}

// UpdateEmployee mengganti name/email/role employee di tempat, id tetap.
// Id yang tidak dikenal diperiksa lebih dulu, sebelum validasi field.
func (s *Service) UpdateEmployee(id int, in EmployeeInput) (models.Employee, error) {
	s.store.Lock()
	defer s.store.Unlock()

	employee := s.store.FindEmployeeByID(id)
	if employee == nil {
		return models.Employee{}, &NotFoundError{Entity: "Employee", ID: id}
	}

	if err := validateEmployeeInput(in); err != nil {
		return models.Employee{}, err
	}

	// Email boleh sama dengan email employee ini sendiri, tapi tidak boleh
	// dipakai employee lain
	if existing := s.store.FindEmployeeByEmail(in.Email, id); existing != nil {
		return models.Employee{}, &ValidationError{Kind: KindEmailTaken, Message: "Email already exists"}
	}

	employee.Name = in.Name
	employee.Email = in.Email
	employee.Role = employeeRoleOrDefault(in.Role)

	return *employee, nil
}

// DeleteEmployee menghapus employee beserta semua task yang di-assign
// kepadanya (cascade). Mengembalikan jumlah task yang ikut terhapus.
// Keduanya terjadi dalam satu region lock, jadi pembaca tidak pernah melihat
// employee sudah hilang sementara task-nya masih ada.
func (s *Service) DeleteEmployee(id int) (int, error) {
	s.store.Lock()
	defer s.store.Unlock()

	if s.store.FindEmployeeByID(id) == nil {
		return 0, &NotFoundError{Entity: "Employee", ID: id}
	}

	removedTasks := s.store.RemoveTasksAssignedTo(id)
	s.store.RemoveEmployee(id)

	return removedTasks, nil
}

func validateEmployeeInput(in EmployeeInput) error {
	if in.Name == "" || in.Email == "" {
		return &ValidationError{Kind: KindMissingField, Message: "Name and email are required"}
	}
	if err := config.Validate.Var(in.Email, "record_email"); err != nil {
		return &ValidationError{Kind: KindInvalidEmail, Message: "Invalid email format"}
	}
	return nil
}

func employeeRoleOrDefault(role string) string {
	if role == "" {
		return models.RoleEmployee
	}
	return role
}
