package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category to the store.
	// Returns ErrDuplicateCategoryName if the owner already has a category
	// with the same name.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	// ListByUser retrieves all categories owned by the given user,
	// ordered by name.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)

	// Update modifies an existing category (rename).
	// Returns ErrCategoryNotFound if the category does not exist.
	// Returns ErrDuplicateCategoryName on a (name, owner) collision.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category from the store by its ID. Membership rows
	// in task_categories are removed by the database-level cascade; the
	// tasks themselves survive.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
