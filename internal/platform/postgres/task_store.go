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

// PostgresTaskStore implements the store.TaskStore interface using a
// PostgreSQL database as the storage backend. Unlike the other stores it
// holds a *sql.DB rather than a DBTX: writes touch both the tasks table and
// the task_categories join table and run inside their own transaction.
type PostgresTaskStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db *sql.DB, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// The task row and its category membership rows are written atomically.
// Returns store.ErrDuplicateTaskTitle if the owner already has a task with
// the same title.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO tasks (id, user_id, title, description, priority, deadline, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		_, err := tx.ExecContext(
			ctx,
			query,
			task.ID,
			task.UserID,
			task.Title,
			task.Description,
			task.Priority,
			task.Deadline,
			task.Status,
			task.CreatedAt,
			task.UpdatedAt,
		)
		if err != nil {
			return err
		}

		return insertTaskCategories(ctx, tx, task.ID, task.CategoryIDs)
	})

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate task title for owner",
				slog.String("task_id", task.ID.String()),
				slog.String("user_id", task.UserID.String()))
			return MapUniqueViolation(err, store.ErrDuplicateTaskTitle)
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()),
			slog.String("user_id", task.UserID.String()))
		return MapError(err)
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT t.id, t.user_id, t.title, t.description, t.priority, t.deadline, t.status,
		       t.created_at, t.updated_at,
		       COALESCE(array_agg(tc.category_id) FILTER (WHERE tc.category_id IS NOT NULL), '{}')
		FROM tasks t
		LEFT JOIN task_categories tc ON tc.task_id = t.id
		WHERE t.id = $1
		GROUP BY t.id
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, err
	}

	return task, nil
}

// ListByUser implements store.TaskStore.ListByUser
// Tasks are ordered by deadline ascending, the default listing order.
func (s *PostgresTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	query := `
		SELECT t.id, t.user_id, t.title, t.description, t.priority, t.deadline, t.status,
		       t.created_at, t.updated_at,
		       COALESCE(array_agg(tc.category_id) FILTER (WHERE tc.category_id IS NOT NULL), '{}')
		FROM tasks t
		LEFT JOIN task_categories tc ON tc.task_id = t.id
		WHERE t.user_id = $1
		GROUP BY t.id
		ORDER BY t.deadline ASC
	`
	return s.queryTasks(ctx, query, userID)
}

// ListByCategory implements store.TaskStore.ListByCategory
// Tasks are ordered by deadline ascending.
func (s *PostgresTaskStore) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]*domain.Task, error) {
	query := `
		SELECT t.id, t.user_id, t.title, t.description, t.priority, t.deadline, t.status,
		       t.created_at, t.updated_at,
		       COALESCE(array_agg(tc2.category_id) FILTER (WHERE tc2.category_id IS NOT NULL), '{}')
		FROM tasks t
		JOIN task_categories tc ON tc.task_id = t.id AND tc.category_id = $1
		LEFT JOIN task_categories tc2 ON tc2.task_id = t.id
		GROUP BY t.id
		ORDER BY t.deadline ASC
	`
	return s.queryTasks(ctx, query, categoryID)
}

// Update implements store.TaskStore.Update
// The task row update and the replacement of the category membership set
// happen in one transaction.
// Returns store.ErrTaskNotFound if the task does not exist.
// Returns store.ErrDuplicateTaskTitle on a (title, owner) collision.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	task.UpdatedAt = time.Now().UTC()

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			UPDATE tasks
			SET title = $1, description = $2, priority = $3, deadline = $4,
			    status = $5, updated_at = $6
			WHERE id = $7
		`
		result, err := tx.ExecContext(
			ctx,
			query,
			task.Title,
			task.Description,
			task.Priority,
			task.Deadline,
			task.Status,
			task.UpdatedAt,
			task.ID,
		)
		if err != nil {
			return err
		}

		if err := CheckRowsAffected(result, "task"); err != nil {
			return store.ErrTaskNotFound
		}

		// Replace the membership set.
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM task_categories WHERE task_id = $1`, task.ID); err != nil {
			return err
		}
		return insertTaskCategories(ctx, tx, task.ID, task.CategoryIDs)
	})

	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			log.Debug("task not found for update",
				slog.String("task_id", task.ID.String()))
			return store.ErrTaskNotFound
		}
		if IsUniqueViolation(err) {
			return MapUniqueViolation(err, store.ErrDuplicateTaskTitle)
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return MapError(err)
	}

	log.Info("task updated successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("status", string(task.Status)))
	return nil
}

// Delete implements store.TaskStore.Delete
// Membership rows are removed by ON DELETE CASCADE.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		log.Debug("task not found for delete",
			slog.String("task_id", id.String()))
		return store.ErrTaskNotFound
	}

	log.Info("task deleted successfully",
		slog.String("task_id", id.String()))
	return nil
}

// queryTasks runs a multi-row task query and scans the result set.
func (s *PostgresTaskStore) queryTasks(ctx context.Context, query string, arg any) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return tasks, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row including its aggregated category IDs.
// The category array arrives as a Postgres array literal.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var priority, status string
	var categoryIDs pgUUIDArray

	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&priority,
		&task.Deadline,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
		&categoryIDs,
	)
	if err != nil {
		return nil, err
	}

	task.Priority = domain.TaskPriority(priority)
	task.Status = domain.TaskStatus(status)
	task.CategoryIDs = categoryIDs

	return &task, nil
}

// insertTaskCategories writes one membership row per category ID.
func insertTaskCategories(ctx context.Context, tx *sql.Tx, taskID uuid.UUID, categoryIDs []uuid.UUID) error {
	for _, categoryID := range categoryIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO task_categories (task_id, category_id) VALUES ($1, $2)`,
			taskID, categoryID)
		if err != nil {
			return err
		}
	}
	return nil
}
