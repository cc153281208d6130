package service

import (
	"time"

	"employee-task-manager/internal/models"
)

// TaskInput menerima inputan create/update task dari request layer.
// AssignedTo dan Status nil berarti field tidak dikirim oleh client.
type TaskInput struct {
	Title       string
	Description string
	AssignedTo  *int
	Status      *string
}

// ListTasks mengembalikan semua task sesuai urutan pembuatan.
func (s *Service) ListTasks() []models.Task {
	s.store.Lock()
	defer s.store.Unlock()

	return s.store.Tasks()
}

// CreateTask membuat task baru. AssignedTo, jika dikirim, harus merujuk ke
// employee yang ada. Status yang tidak dikirim atau tidak dikenal jatuh ke
// "pending". CreatedAt di-set sekali di sini dan tidak pernah diubah lagi.
func (s *Service) CreateTask(in TaskInput) (models.Task, error) {
	if in.Title == "" || in.Description == "" {
		return models.Task{}, &ValidationError{Kind: KindMissingField, Message: "Title and description are required"}
	}

	s.store.Lock()
	defer s.store.Unlock()

	if err := s.checkAssignee(in.AssignedTo); err != nil {
		return models.Task{}, err
	}

	status := models.StatusPending
	if in.Status != nil && models.ValidTaskStatus(*in.Status) {
		status = *in.Status
	}

	task := models.Task{
		ID:          s.store.NextTaskID(),
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		Status:      status,
		CreatedAt:   time.Now(),
	}
	s.store.AppendTask(task)

	return task, nil
}

// UpdateTask mengganti title/description/assignedTo task di tempat. Status
// hanya diganti jika dikirim; berbeda dengan create, status yang dikirim tapi
// tidak dikenal adalah error, bukan fallback ke "pending". CreatedAt tidak
// pernah disentuh.
func (s *Service) UpdateTask(id int, in TaskInput) (models.Task, error) {
	s.store.Lock()
	defer s.store.Unlock()

	task := s.store.FindTaskByID(id)
	if task == nil {
		return models.Task{}, &NotFoundError{Entity: "Task", ID: id}
	}

	if in.Title == "" || in.Description == "" {
		return models.Task{}, &ValidationError{Kind: KindMissingField, Message: "Title and description are required"}
	}
	if err := s.checkAssignee(in.AssignedTo); err != nil {
		return models.Task{}, err
	}
	if in.Status != nil && *in.Status != "" && !models.ValidTaskStatus(*in.Status) {
		return models.Task{}, &ValidationError{Kind: KindInvalidStatus, Message: "Invalid status"}
	}

	task.Title = in.Title
	task.Description = in.Description
	// AssignedTo selalu diganti: nil jika client tidak mengirim field-nya
	task.AssignedTo = in.AssignedTo
	if in.Status != nil && *in.Status != "" {
		task.Status = *in.Status
	}

	return *task, nil
}

// DeleteTask menghapus satu task.
func (s *Service) DeleteTask(id int) error {
	s.store.Lock()
	defer s.store.Unlock()

	if !s.store.RemoveTask(id) {
		return &NotFoundError{Entity: "Task", ID: id}
	}
	return nil
}

// checkAssignee memastikan assignedTo, jika dikirim, merujuk ke employee yang
// ada. Nilai 0 yang dikirim eksplisit tetap divalidasi seperti id lain (dan
// akan gagal, karena id employee dimulai dari 1).
func (s *Service) checkAssignee(assignedTo *int) error {
	if assignedTo == nil {
		return nil
	}
	if s.store.FindEmployeeByID(*assignedTo) == nil {
		return &ValidationError{Kind: KindUnknownAssignee, Message: "Assigned employee does not exist"}
	}
	return nil
}
