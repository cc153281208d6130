package store

import (
	"sync"
	"time"

	"employee-task-manager/internal/models"
)

// Store memegang ketiga koleksi di memori proses. Semua data hilang saat
// proses restart. Store tidak melakukan locking sendiri: pemanggil (service
// layer) wajib memegang Lock selama satu operasi penuh, karena satu operasi
// bisa membaca dan menulis lebih dari satu koleksi (misalnya cascade delete).
type Store struct {
	sync.Mutex

	accounts  []models.Account
	employees []models.Employee
	tasks     []models.Task
}

func New() *Store {
	return &Store{}
}

// nextID mengembalikan max(id) + 1, atau 1 jika koleksi kosong. Jika record
// dengan id tertinggi dihapus, id tersebut akan dipakai ulang.
func nextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// ----- Accounts -----

func (s *Store) Accounts() []models.Account {
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *Store) FindAccountByEmail(email string) *models.Account {
	for i := range s.accounts {
		if s.accounts[i].Email == email {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *Store) FindAccountByID(id int) *models.Account {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return &s.accounts[i]
		}
	}
	return nil
}

func (s *Store) NextAccountID() int {
	ids := make([]int, len(s.accounts))
	for i, a := range s.accounts {
		ids[i] = a.ID
	}
	return nextID(ids)
}

func (s *Store) AppendAccount(a models.Account) {
	s.accounts = append(s.accounts, a)
}

// ----- Employees -----

func (s *Store) Employees() []models.Employee {
	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *Store) FindEmployeeByID(id int) *models.Employee {
	for i := range s.employees {
		if s.employees[i].ID == id {
			return &s.employees[i]
		}
	}
	return nil
}

// FindEmployeeByEmail mencari employee dengan email yang sama, mengabaikan
// employee dengan id == exceptID (pakai 0 untuk tidak mengecualikan siapapun).
func (s *Store) FindEmployeeByEmail(email string, exceptID int) *models.Employee {
	for i := range s.employees {
		if s.employees[i].Email == email && s.employees[i].ID != exceptID {
			return &s.employees[i]
		}
	}
	return nil
}

func (s *Store) NextEmployeeID() int {
	ids := make([]int, len(s.employees))
	for i, e := range s.employees {
		ids[i] = e.ID
	}
	return nextID(ids)
}

func (s *Store) AppendEmployee(e models.Employee) {
	s.employees = append(s.employees, e)
}

func (s *Store) RemoveEmployee(id int) bool {
	for i := range s.employees {
		if s.employees[i].ID == id {
			s.employees = append(s.employees[:i], s.employees[i+1:]...)
			return true
		}
	}
	return false
}

// ----- Tasks -----

func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) FindTaskByID(id int) *models.Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}

func (s *Store) NextTaskID() int {
	ids := make([]int, len(s.tasks))
	for i, t := range s.tasks {
		ids[i] = t.ID
	}
	return nextID(ids)
}

func (s *Store) AppendTask(t models.Task) {
	s.tasks = append(s.tasks, t)
}

func (s *Store) RemoveTask(id int) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveTasksAssignedTo menghapus semua task yang di-assign ke employee
// tersebut dan mengembalikan jumlah task yang dihapus.
func (s *Store) RemoveTasksAssignedTo(employeeID int) int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.AssignedTo != nil && *t.AssignedTo == employeeID {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return removed
}

// Seed mengisi store dengan data demo bawaan: tiga account, dua employee,
// dan dua task.
func (s *Store) Seed() {
	emp1, emp2 := 1, 2
	s.accounts = []models.Account{
		{
			ID:       1,
			Name:     "Admin User",
			Email:    "admin@example.com",
			Password: "admin123",
			Role:     models.RoleAdmin,
			Token:    "mock-admin-token-123",
			// Admin tidak punya record employee
			EmployeeID: nil,
		},
		{
			ID:         2,
			Name:       "John Doe",
			Email:      "johndoe@example.com",
			Password:   "johndoe123",
			Role:       models.RoleEmployee,
			Token:      "mock-employee-token-456",
			EmployeeID: &emp1,
		},
		{
			ID:         3,
			Name:       "Jane Smith",
			Email:      "janesmith@example.com",
			Password:   "janesmith123",
			Role:       models.RoleEmployee,
			Token:      "mock-employee-token-789",
			EmployeeID: &emp2,
		},
	}
	s.employees = []models.Employee{
		{ID: 1, Name: "John Doe", Email: "johndoe@example.com", Role: models.RoleEmployee},
		{ID: 2, Name: "Jane Smith", Email: "janesmith@example.com", Role: models.RoleEmployee},
	}
	assigned1, assigned2 := 1, 2
	s.tasks = []models.Task{
		{
			ID:          1,
			Title:       "Setup Development Environment",
			Description: "Install Node.js, VS Code, and Git",
			AssignedTo:  &assigned1,
			Status:      models.StatusCompleted,
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Title:       "Design Database Schema",
			Description: "Create ER diagram for the application",
			AssignedTo:  &assigned2,
			Status:      models.StatusInProgress,
			CreatedAt:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}
