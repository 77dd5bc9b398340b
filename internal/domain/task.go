package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TaskPriority classifies a task on the urgency/importance matrix.
type TaskPriority string

// The four fixed priority levels.
const (
	PriorityUrgentImportant      TaskPriority = "urgent_important"
	PriorityUrgentUnimportant    TaskPriority = "urgent_unimportant"
	PriorityNotUrgentImportant   TaskPriority = "not_urgent_important"
	PriorityNotUrgentUnimportant TaskPriority = "not_urgent_unimportant"
)

// TaskStatus is the completion flag of a task.
type TaskStatus string

// Possible task status values. A task starts incomplete; an update may set
// it to done and back, the field is a plain enumerated value.
const (
	TaskStatusIncomplete TaskStatus = "incomplete"
	TaskStatusDone       TaskStatus = "done"
)

// Task-specific validation errors. All of them wrap ErrValidation so the
// API layer can map any of them to a client error.
var (
	ErrEmptyTaskID        = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskUserID    = fmt.Errorf("%w: task user ID cannot be empty", ErrValidation)
	ErrEmptyTaskTitle     = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrTaskTitleTooLong   = fmt.Errorf("%w: task title must be at most 150 characters long", ErrValidation)
	ErrDescriptionTooLong = fmt.Errorf("%w: task description must be at most 720 characters long", ErrValidation)
	ErrInvalidPriority    = fmt.Errorf("%w: invalid task priority", ErrValidation)
	ErrInvalidStatus      = fmt.Errorf("%w: invalid task status", ErrValidation)
	ErrZeroDeadline       = fmt.Errorf("%w: task deadline must be set", ErrValidation)
)

// Task represents a single to-do item owned by a user. A task may belong to
// zero or more of its owner's categories; the membership is kept as a set of
// category IDs and persisted through the task_categories join table.
//
// The (Title, UserID) pair is unique per user, enforced by a database
// constraint and surfaced by the store layer.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"user_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CategoryIDs []uuid.UUID  `json:"category_ids"`
	Priority    TaskPriority `json:"priority"`
	Deadline    time.Time    `json:"deadline"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// NewTask creates a new Task owned by the given user. It generates a new
// UUID for the task ID, sets the status to incomplete, and sets the
// creation/update timestamps. Returns an error if validation fails.
func NewTask(
	userID uuid.UUID,
	title, description string,
	categoryIDs []uuid.UUID,
	priority TaskPriority,
	deadline time.Time,
) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		CategoryIDs: categoryIDs,
		Priority:    priority,
		Deadline:    deadline,
		Status:      TaskStatusIncomplete,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskUserID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	// Limits count characters, not bytes; multi-byte input must not be
	// penalized.
	if utf8.RuneCountInString(t.Title) > 150 {
		return ErrTaskTitleTooLong
	}

	if utf8.RuneCountInString(t.Description) > 720 {
		return ErrDescriptionTooLong
	}

	if !isValidPriority(t.Priority) {
		return ErrInvalidPriority
	}

	if t.Deadline.IsZero() {
		return ErrZeroDeadline
	}

	if !isValidStatus(t.Status) {
		return ErrInvalidStatus
	}

	return nil
}

// IsOverdue reports whether the task's deadline is strictly before now.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Deadline.Before(now)
}

// TimeLeft returns the remaining time until the deadline. The result is
// negative for overdue tasks.
func (t *Task) TimeLeft(now time.Time) time.Duration {
	return t.Deadline.Sub(now)
}

// isValidPriority checks if the given priority is one of the four levels.
func isValidPriority(p TaskPriority) bool {
	switch p {
	case PriorityUrgentImportant, PriorityUrgentUnimportant,
		PriorityNotUrgentImportant, PriorityNotUrgentUnimportant:
		return true
	default:
		return false
	}
}

// isValidStatus checks if the given status is a valid TaskStatus.
func isValidStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusIncomplete, TaskStatusDone:
		return true
	default:
		return false
	}
}
