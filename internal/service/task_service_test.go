package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive-api/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func testTask(userID uuid.UUID, deadline time.Time) *domain.Task {
	return &domain.Task{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    "task " + uuid.NewString()[:8],
		Priority: domain.PriorityUrgentImportant,
		Deadline: deadline,
		Status:   domain.TaskStatusIncomplete,
	}
}

func TestTaskServiceList(t *testing.T) {
	userID := uuid.New()
	now := fixedNow()

	overdue := testTask(userID, now.Add(-time.Hour))
	upcoming := testTask(userID, now.Add(time.Hour))

	taskStore := &mockTaskStore{
		listByUserFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Task, error) {
			assert.Equal(t, userID, id)
			return []*domain.Task{overdue, upcoming}, nil
		},
	}

	svc := NewTaskService(taskStore, &mockCategoryStore{}, nil)
	svc.now = fixedNow

	listing, err := svc.List(context.Background(), userID)
	require.NoError(t, err)

	assert.Len(t, listing.Tasks, 2)
	require.Len(t, listing.Overdue, 1)
	assert.Equal(t, overdue.ID, listing.Overdue[0].ID)
	require.Len(t, listing.Upcoming, 1)
	assert.Equal(t, upcoming.ID, listing.Upcoming[0].ID)
}

func TestTaskServiceGetEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	task := testTask(owner, fixedNow().Add(time.Hour))

	taskStore := &mockTaskStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return task, nil
		},
	}

	svc := NewTaskService(taskStore, &mockCategoryStore{}, nil)

	got, err := svc.Get(context.Background(), owner, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	_, err = svc.Get(context.Background(), other, task.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestTaskServiceCreateForcesOwner(t *testing.T) {
	requesterID := uuid.New()

	var stored *domain.Task
	taskStore := &mockTaskStore{
		createFn: func(ctx context.Context, task *domain.Task) error {
			stored = task
			return nil
		},
	}

	svc := NewTaskService(taskStore, &mockCategoryStore{}, nil)

	task, err := svc.Create(context.Background(), requesterID, CreateTaskInput{
		Title:    "Write report",
		Priority: domain.PriorityNotUrgentImportant,
		Deadline: fixedNow().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, requesterID, task.UserID)
	require.NotNil(t, stored)
	assert.Equal(t, requesterID, stored.UserID)
	assert.Equal(t, domain.TaskStatusIncomplete, stored.Status)
}

func TestTaskServiceCreateRejectsForeignCategory(t *testing.T) {
	requesterID := uuid.New()
	ownCategory := &domain.Category{ID: uuid.New(), UserID: requesterID, Name: "Work"}
	foreignCategoryID := uuid.New()

	categoryStore := &mockCategoryStore{
		listByUserFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Category, error) {
			return []*domain.Category{ownCategory}, nil
		},
	}
	taskStore := &mockTaskStore{
		createFn: func(ctx context.Context, task *domain.Task) error {
			t.Fatal("Create must not reach the store when a category is not owned")
			return nil
		},
	}

	svc := NewTaskService(taskStore, categoryStore, nil)

	_, err := svc.Create(context.Background(), requesterID, CreateTaskInput{
		Title:       "Write report",
		CategoryIDs: []uuid.UUID{ownCategory.ID, foreignCategoryID},
		Priority:    domain.PriorityUrgentImportant,
		Deadline:    fixedNow().Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrCategoryNotOwned)
}

func TestTaskServiceUpdate(t *testing.T) {
	owner := uuid.New()
	task := testTask(owner, fixedNow().Add(time.Hour))
	category := &domain.Category{ID: uuid.New(), UserID: owner, Name: "Work"}

	var updated *domain.Task
	taskStore := &mockTaskStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return task, nil
		},
		updateFn: func(ctx context.Context, t *domain.Task) error {
			updated = t
			return nil
		},
	}
	categoryStore := &mockCategoryStore{
		listByUserFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Category, error) {
			return []*domain.Category{category}, nil
		},
	}

	svc := NewTaskService(taskStore, categoryStore, nil)

	newDeadline := fixedNow().Add(48 * time.Hour)
	got, err := svc.Update(context.Background(), owner, task.ID, UpdateTaskInput{
		Title:       "Renamed",
		Description: "now with details",
		CategoryIDs: []uuid.UUID{category.ID},
		Priority:    domain.PriorityNotUrgentUnimportant,
		Deadline:    newDeadline,
		Status:      domain.TaskStatusDone,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, domain.TaskStatusDone, got.Status)
	assert.Equal(t, owner, got.UserID)
	require.NotNil(t, updated)
	assert.Equal(t, newDeadline, updated.Deadline)
}

func TestTaskServiceUpdateReopensTask(t *testing.T) {
	owner := uuid.New()
	task := testTask(owner, fixedNow().Add(time.Hour))
	task.Status = domain.TaskStatusDone

	taskStore := &mockTaskStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return task, nil
		},
		updateFn: func(ctx context.Context, t *domain.Task) error {
			return nil
		},
	}

	svc := NewTaskService(taskStore, &mockCategoryStore{}, nil)

	got, err := svc.Update(context.Background(), owner, task.ID, UpdateTaskInput{
		Title:    task.Title,
		Priority: task.Priority,
		Deadline: task.Deadline,
		Status:   domain.TaskStatusIncomplete,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusIncomplete, got.Status)
}

func TestTaskServiceUpdateEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	task := testTask(owner, fixedNow().Add(time.Hour))

	taskStore := &mockTaskStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return task, nil
		},
	}

	svc := NewTaskService(taskStore, &mockCategoryStore{}, nil)

	_, err := svc.Update(context.Background(), uuid.New(), task.ID, UpdateTaskInput{
		Title:    "hijack",
		Priority: domain.PriorityUrgentImportant,
		Deadline: fixedNow().Add(time.Hour),
		Status:   domain.TaskStatusIncomplete,
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestTaskServiceDeleteEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	task := testTask(owner, fixedNow().Add(time.Hour))

	deleted := false
	taskStore := &mockTaskStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			return task, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}

	svc := NewTaskService(taskStore, &mockCategoryStore{}, nil)

	err := svc.Delete(context.Background(), uuid.New(), task.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.False(t, deleted)

	err = svc.Delete(context.Background(), owner, task.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestTaskServiceSelectableCategories(t *testing.T) {
	requesterID := uuid.New()
	own := &domain.Category{ID: uuid.New(), UserID: requesterID, Name: "Work"}

	categoryStore := &mockCategoryStore{
		listByUserFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Category, error) {
			// The selector is always scoped to the requester.
			assert.Equal(t, requesterID, id)
			return []*domain.Category{own}, nil
		},
	}

	svc := NewTaskService(&mockTaskStore{}, categoryStore, nil)

	categories, err := svc.SelectableCategories(context.Background(), requesterID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, own.ID, categories[0].ID)
}
