package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
	"github.com/taskhive/taskhive-api/internal/store"
)

// TaskListing is the result of listing a user's tasks, enriched with the
// deadline-derived subsets. Tasks is ordered by deadline ascending; Overdue
// and Upcoming partition the same collection relative to evaluation time.
type TaskListing struct {
	Tasks    []*domain.Task
	Overdue  []*domain.Task
	Upcoming []*domain.Task
}

// CreateTaskInput carries the client-submitted fields for task creation.
// The owner is never part of the input; it is always taken from the
// authenticated requester.
type CreateTaskInput struct {
	Title       string
	Description string
	CategoryIDs []uuid.UUID
	Priority    domain.TaskPriority
	Deadline    time.Time
}

// UpdateTaskInput carries the client-submitted fields for task updates.
// Every field is replaced, matching form semantics; Status may move in
// either direction.
type UpdateTaskInput struct {
	Title       string
	Description string
	CategoryIDs []uuid.UUID
	Priority    domain.TaskPriority
	Deadline    time.Time
	Status      domain.TaskStatus
}

// TaskService exposes the ownership-gated task operations.
type TaskService struct {
	taskStore     store.TaskStore
	categoryStore store.CategoryStore
	logger        *slog.Logger
	now           func() time.Time // Injectable for testing
}

// NewTaskService creates a new TaskService with the given dependencies.
// If logger is nil, a default logger will be used.
func NewTaskService(taskStore store.TaskStore, categoryStore store.CategoryStore, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		taskStore:     taskStore,
		categoryStore: categoryStore,
		logger:        logger.With(slog.String("component", "task_service")),
		now:           time.Now,
	}
}

// List returns the requester's tasks ordered by deadline ascending together
// with the overdue/upcoming subsets evaluated against the current clock.
func (s *TaskService) List(ctx context.Context, requesterID uuid.UUID) (*TaskListing, error) {
	tasks, err := s.taskStore.ListByUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return &TaskListing{
		Tasks:    tasks,
		Overdue:  domain.OverdueTasks(tasks, now),
		Upcoming: domain.UpcomingTasks(tasks, now),
	}, nil
}

// Get returns a single task by ID. The requester must be the owner.
func (s *TaskService) Get(ctx context.Context, requesterID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(task.UserID, requesterID); err != nil {
		return nil, err
	}

	return task, nil
}

// Create builds and stores a new task owned by the requester. Submitted
// category IDs must all belong to the requester.
func (s *TaskService) Create(ctx context.Context, requesterID uuid.UUID, input CreateTaskInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.verifyCategoryOwnership(ctx, requesterID, input.CategoryIDs); err != nil {
		return nil, err
	}

	// The owner always comes from the authenticated session, never from
	// client input.
	task, err := domain.NewTask(
		requesterID,
		input.Title,
		input.Description,
		input.CategoryIDs,
		input.Priority,
		input.Deadline,
	)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", requesterID.String()))
	return task, nil
}

// Update replaces the fields of an existing task. The requester must be the
// owner, and submitted category IDs must all belong to the requester.
func (s *TaskService) Update(
	ctx context.Context,
	requesterID, taskID uuid.UUID,
	input UpdateTaskInput,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(task.UserID, requesterID); err != nil {
		return nil, err
	}

	if err := s.verifyCategoryOwnership(ctx, requesterID, input.CategoryIDs); err != nil {
		return nil, err
	}

	task.Title = input.Title
	task.Description = input.Description
	task.CategoryIDs = input.CategoryIDs
	task.Priority = input.Priority
	task.Deadline = input.Deadline
	task.Status = input.Status

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes a task. The requester must be the owner.
func (s *TaskService) Delete(ctx context.Context, requesterID, taskID uuid.UUID) error {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	if err := authorizeOwner(task.UserID, requesterID); err != nil {
		return err
	}

	return s.taskStore.Delete(ctx, taskID)
}

// SelectableCategories returns the categories the requester may attach to a
// task: exactly the requester's own categories. This backs the category
// selector on the create and edit forms.
func (s *TaskService) SelectableCategories(ctx context.Context, requesterID uuid.UUID) ([]*domain.Category, error) {
	return s.categoryStore.ListByUser(ctx, requesterID)
}

// verifyCategoryOwnership ensures every submitted category ID belongs to the
// requester. Returns ErrCategoryNotOwned on the first ID that does not.
func (s *TaskService) verifyCategoryOwnership(ctx context.Context, requesterID uuid.UUID, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	owned, err := s.categoryStore.ListByUser(ctx, requesterID)
	if err != nil {
		return err
	}

	ownedSet := make(map[uuid.UUID]bool, len(owned))
	for _, c := range owned {
		ownedSet[c.ID] = true
	}

	for _, id := range categoryIDs {
		if !ownedSet[id] {
			return ErrCategoryNotOwned
		}
	}

	return nil
}
