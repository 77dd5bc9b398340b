package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/store"
)

// mockTaskStore is a function-field mock of store.TaskStore.
type mockTaskStore struct {
	createFn         func(ctx context.Context, task *domain.Task) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	listByUserFn     func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	listByCategoryFn func(ctx context.Context, categoryID uuid.UUID) ([]*domain.Task, error)
	updateFn         func(ctx context.Context, task *domain.Task) error
	deleteFn         func(ctx context.Context, id uuid.UUID) error
}

var _ store.TaskStore = (*mockTaskStore)(nil)

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	return m.createFn(ctx, task)
}

func (m *mockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	return m.listByUserFn(ctx, userID)
}

func (m *mockTaskStore) ListByCategory(
	ctx context.Context,
	categoryID uuid.UUID,
) ([]*domain.Task, error) {
	return m.listByCategoryFn(ctx, categoryID)
}

func (m *mockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	return m.updateFn(ctx, task)
}

func (m *mockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

// mockCategoryStore is a function-field mock of store.CategoryStore.
type mockCategoryStore struct {
	createFn     func(ctx context.Context, category *domain.Category) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	updateFn     func(ctx context.Context, category *domain.Category) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

var _ store.CategoryStore = (*mockCategoryStore)(nil)

func (m *mockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	return m.createFn(ctx, category)
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockCategoryStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Category, error) {
	return m.listByUserFn(ctx, userID)
}

func (m *mockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	return m.updateFn(ctx, category)
}

func (m *mockCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}
