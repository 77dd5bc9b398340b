package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
	"github.com/taskhive/taskhive-api/internal/store"
)

// CategoryListing is the result of listing a user's categories, enriched
// with the empty/full subsets over the same collection.
type CategoryListing struct {
	Categories []*domain.Category
	Empty      []*domain.Category
	Full       []*domain.Category
}

// CategoryDetail is a category together with its tasks partitioned by
// completion status.
type CategoryDetail struct {
	Category  *domain.Category
	Completed []*domain.Task
	Pending   []*domain.Task
}

// CategoryService exposes the ownership-gated category operations.
type CategoryService struct {
	categoryStore store.CategoryStore
	taskStore     store.TaskStore
	logger        *slog.Logger
}

// NewCategoryService creates a new CategoryService with the given
// dependencies. If logger is nil, a default logger will be used.
func NewCategoryService(categoryStore store.CategoryStore, taskStore store.TaskStore, logger *slog.Logger) *CategoryService {
	if logger == nil {
		logger = slog.Default()
	}

	return &CategoryService{
		categoryStore: categoryStore,
		taskStore:     taskStore,
		logger:        logger.With(slog.String("component", "category_service")),
	}
}

// List returns the requester's categories together with the empty/full
// subsets, both re-restricted to the requester's own tasks.
func (s *CategoryService) List(ctx context.Context, requesterID uuid.UUID) (*CategoryListing, error) {
	categories, err := s.categoryStore.ListByUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskStore.ListByUser(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	return &CategoryListing{
		Categories: categories,
		Empty:      domain.EmptyCategories(categories, tasks),
		Full:       domain.FullCategories(categories, tasks),
	}, nil
}

// Get returns a single category by ID. The requester must be the owner.
func (s *CategoryService) Get(ctx context.Context, requesterID, categoryID uuid.UUID) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(category.UserID, requesterID); err != nil {
		return nil, err
	}

	return category, nil
}

// Detail returns a category and its tasks partitioned into completed and
// pending subsets. The requester must be the owner.
func (s *CategoryService) Detail(ctx context.Context, requesterID, categoryID uuid.UUID) (*CategoryDetail, error) {
	category, err := s.Get(ctx, requesterID, categoryID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskStore.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	partition := domain.PartitionByStatus(tasks)
	return &CategoryDetail{
		Category:  category,
		Completed: partition.Completed,
		Pending:   partition.Pending,
	}, nil
}

// Create builds and stores a new category owned by the requester.
func (s *CategoryService) Create(ctx context.Context, requesterID uuid.UUID, name string) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The owner always comes from the authenticated session, never from
	// client input.
	category, err := domain.NewCategory(requesterID, name)
	if err != nil {
		return nil, err
	}

	if err := s.categoryStore.Create(ctx, category); err != nil {
		return nil, err
	}

	log.Info("category created",
		slog.String("category_id", category.ID.String()),
		slog.String("user_id", requesterID.String()))
	return category, nil
}

// Rename changes a category's name. The requester must be the owner.
func (s *CategoryService) Rename(ctx context.Context, requesterID, categoryID uuid.UUID, name string) (*domain.Category, error) {
	category, err := s.Get(ctx, requesterID, categoryID)
	if err != nil {
		return nil, err
	}

	if err := category.Rename(name); err != nil {
		return nil, err
	}

	if err := s.categoryStore.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes a category. The requester must be the owner. Tasks that
// belonged to the category survive; only the membership rows go away.
func (s *CategoryService) Delete(ctx context.Context, requesterID, categoryID uuid.UUID) error {
	if _, err := s.Get(ctx, requesterID, categoryID); err != nil {
		return err
	}

	return s.categoryStore.Delete(ctx, categoryID)
}
