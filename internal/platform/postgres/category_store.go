package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/platform/logger"
	"github.com/taskhive/taskhive-api/internal/store"
)

// PostgresCategoryStore implements the store.CategoryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

// Ensure PostgresCategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// Create implements store.CategoryStore.Create
// Returns store.ErrDuplicateCategoryName if the owner already has a category
// with the same name.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	query := `
		INSERT INTO categories (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		category.ID,
		category.UserID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate category name for owner",
				slog.String("category_id", category.ID.String()),
				slog.String("user_id", category.UserID.String()))
			return MapUniqueViolation(err, store.ErrDuplicateCategoryName)
		}
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()),
			slog.String("user_id", category.UserID.String()))
		return MapError(err)
	}

	log.Info("category created successfully",
		slog.String("category_id", category.ID.String()),
		slog.String("user_id", category.UserID.String()))
	return nil
}

// GetByID implements store.CategoryStore.GetByID
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var category domain.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("category not found", slog.String("category_id", id.String()))
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category by ID",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return nil, err
	}

	return &category, nil
}

// ListByUser implements store.CategoryStore.ListByUser
// Returns an empty slice if the user owns no categories.
func (s *PostgresCategoryStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list categories by user",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	categories := []*domain.Category{}
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(
			&category.ID,
			&category.UserID,
			&category.Name,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan category row",
				slog.String("error", err.Error()))
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return categories, nil
}

// Update implements store.CategoryStore.Update
// Returns store.ErrCategoryNotFound if the category does not exist.
// Returns store.ErrDuplicateCategoryName on a (name, owner) collision.
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during update",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return err
	}

	category.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE categories
		SET name = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, category.Name, category.UpdatedAt, category.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return MapUniqueViolation(err, store.ErrDuplicateCategoryName)
		}
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.String("category_id", category.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "category"); err != nil {
		log.Debug("category not found for update",
			slog.String("category_id", category.ID.String()))
		return store.ErrCategoryNotFound
	}

	log.Info("category updated successfully",
		slog.String("category_id", category.ID.String()))
	return nil
}

// Delete implements store.CategoryStore.Delete
// Membership rows in task_categories are removed by ON DELETE CASCADE;
// the tasks themselves are never deleted.
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.String("category_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "category"); err != nil {
		log.Debug("category not found for delete",
			slog.String("category_id", id.String()))
		return store.ErrCategoryNotFound
	}

	log.Info("category deleted successfully",
		slog.String("category_id", id.String()))
	return nil
}
