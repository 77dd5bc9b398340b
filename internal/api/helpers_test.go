package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskhive/taskhive-api/internal/api/shared"
	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/service/auth"
	"github.com/taskhive/taskhive-api/internal/store"
)

// Test doubles shared by the handler tests. Handlers are exercised with
// real services wired to these in-memory stores so the ownership rules run
// exactly as in production.

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

type mockUserStore struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	updateFn     func(ctx context.Context, user *domain.User) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

var _ store.UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserStore) Update(ctx context.Context, user *domain.User) error {
	return m.updateFn(ctx, user)
}

func (m *mockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

// mockJWTService is a function-field mock of auth.JWTService.
type mockJWTService struct {
	generateFn func(ctx context.Context, userID uuid.UUID) (string, error)
	validateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

var _ auth.JWTService = (*mockJWTService)(nil)

func (m *mockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return m.generateFn(ctx, userID)
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return m.validateFn(ctx, tokenString)
}

// withUserID returns a request whose context carries the given user ID, as
// the authentication middleware would set it.
func withUserID(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
	return r.WithContext(ctx)
}

// withPathID returns a request carrying a chi route parameter named "id".
func withPathID(r *http.Request, id uuid.UUID) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id.String())
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}
