package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/service"
	"github.com/taskhive/taskhive-api/internal/store"
)

func newCategoryHandler(
	categoryStore *mockCategoryStore,
	taskStore *mockTaskStore,
) *CategoryHandler {
	return NewCategoryHandler(service.NewCategoryService(categoryStore, taskStore, nil), nil)
}

func TestListCategories(t *testing.T) {
	userID := uuid.New()
	used := &domain.Category{ID: uuid.New(), UserID: userID, Name: "Work"}
	unused := &domain.Category{ID: uuid.New(), UserID: userID, Name: "Errands"}

	task := fixtureTask(userID, time.Now().UTC().Add(time.Hour))
	task.CategoryIDs = []uuid.UUID{used.ID}

	categoryStore := &mockCategoryStore{
		listByUserFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Category, error) {
			return []*domain.Category{used, unused}, nil
		},
	}
	taskStore := &mockTaskStore{
		listByUserFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Task, error) {
			return []*domain.Task{task}, nil
		},
	}
	handler := newCategoryHandler(categoryStore, taskStore)

	req := httptest.NewRequest("GET", "/categories/", nil)
	req = withUserID(req, userID)
	rr := httptest.NewRecorder()

	handler.ListCategories(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var resp CategoryListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if len(resp.Categories) != 2 {
		t.Errorf("expected 2 categories, got %d", len(resp.Categories))
	}
	if len(resp.Empty) != 1 || resp.Empty[0].ID != unused.ID {
		t.Errorf("expected only the unused category in empty subset")
	}
	if len(resp.Full) != 1 || resp.Full[0].ID != used.ID {
		t.Errorf("expected only the used category in full subset")
	}
}

func TestGetCategoryCreateForm(t *testing.T) {
	handler := newCategoryHandler(&mockCategoryStore{}, &mockTaskStore{})

	req := httptest.NewRequest("GET", "/categories/create/", nil)
	req = withUserID(req, uuid.New())
	rr := httptest.NewRecorder()

	handler.GetCategoryCreateForm(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var resp CategoryRequest
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if resp.Name != "" {
		t.Errorf("expected an empty form scaffold, got name %q", resp.Name)
	}

	// Unauthenticated requests are rejected before any body is produced.
	rr = httptest.NewRecorder()
	handler.GetCategoryCreateForm(rr, httptest.NewRequest("GET", "/categories/create/", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected %v without a user in context, got %v", http.StatusUnauthorized, rr.Code)
	}
}

func TestCreateCategory(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		body           string
		storeErr       error
		expectedStatus int
	}{
		{name: "Success", body: `{"name":"Work"}`, expectedStatus: http.StatusCreated},
		{name: "Empty Name", body: `{"name":""}`, expectedStatus: http.StatusBadRequest},
		{name: "Malformed JSON", body: `{`, expectedStatus: http.StatusBadRequest},
		{
			name:           "Duplicate Name",
			body:           `{"name":"Work"}`,
			storeErr:       store.ErrDuplicateCategoryName,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var created *domain.Category
			categoryStore := &mockCategoryStore{
				createFn: func(ctx context.Context, category *domain.Category) error {
					if tc.storeErr != nil {
						return tc.storeErr
					}
					created = category
					return nil
				},
			}
			handler := newCategoryHandler(categoryStore, &mockTaskStore{})

			req := httptest.NewRequest(
				"POST",
				"/categories/create/",
				bytes.NewReader([]byte(tc.body)),
			)
			req = withUserID(req, userID)
			rr := httptest.NewRecorder()

			handler.CreateCategory(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("handler returned wrong status code: got %v want %v, body: %s",
					rr.Code, tc.expectedStatus, rr.Body.String())
			}

			if tc.expectedStatus == http.StatusCreated {
				if created == nil {
					t.Fatal("expected category to reach the store")
				}
				if created.UserID != userID {
					t.Errorf("expected owner %v, got %v", userID, created.UserID)
				}
			}
		})
	}
}

func TestRenameCategory(t *testing.T) {
	owner := uuid.New()
	category := &domain.Category{ID: uuid.New(), UserID: owner, Name: "Work"}

	tests := []struct {
		name           string
		requester      uuid.UUID
		body           string
		expectedStatus int
	}{
		{name: "Owner", requester: owner, body: `{"name":"Personal"}`, expectedStatus: http.StatusOK},
		{
			name:           "Not Owner",
			requester:      uuid.New(),
			body:           `{"name":"Personal"}`,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Empty Name",
			requester:      owner,
			body:           `{"name":""}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			categoryStore := &mockCategoryStore{
				getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
					clone := *category
					return &clone, nil
				},
				updateFn: func(ctx context.Context, c *domain.Category) error {
					return nil
				},
			}
			handler := newCategoryHandler(categoryStore, &mockTaskStore{})

			req := httptest.NewRequest(
				"POST",
				"/category/"+category.ID.String()+"/edit/",
				bytes.NewReader([]byte(tc.body)),
			)
			req = withUserID(req, tc.requester)
			req = withPathID(req, category.ID)
			rr := httptest.NewRecorder()

			handler.RenameCategory(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("handler returned wrong status code: got %v want %v, body: %s",
					rr.Code, tc.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestGetCategoryDetail(t *testing.T) {
	owner := uuid.New()
	category := &domain.Category{ID: uuid.New(), UserID: owner, Name: "Work"}

	done := fixtureTask(owner, time.Now().UTC().Add(time.Hour))
	done.Status = domain.TaskStatusDone
	pending := fixtureTask(owner, time.Now().UTC().Add(-time.Hour))

	categoryStore := &mockCategoryStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
			return category, nil
		},
	}
	taskStore := &mockTaskStore{
		listByCategoryFn: func(ctx context.Context, id uuid.UUID) ([]*domain.Task, error) {
			return []*domain.Task{done, pending}, nil
		},
	}
	handler := newCategoryHandler(categoryStore, taskStore)

	req := httptest.NewRequest("GET", "/"+category.ID.String()+"/detail/", nil)
	req = withUserID(req, owner)
	req = withPathID(req, category.ID)
	rr := httptest.NewRecorder()

	handler.GetCategoryDetail(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var resp CategoryDetailResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if len(resp.Completed) != 1 || resp.Completed[0].ID != done.ID {
		t.Errorf("expected the done task in the completed subset")
	}
	if len(resp.Pending) != 1 || resp.Pending[0].ID != pending.ID {
		t.Errorf("expected the incomplete task in the pending subset")
	}
}

func TestGetCategoryDetailForbidden(t *testing.T) {
	category := &domain.Category{ID: uuid.New(), UserID: uuid.New(), Name: "Work"}

	categoryStore := &mockCategoryStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
			return category, nil
		},
	}
	handler := newCategoryHandler(categoryStore, &mockTaskStore{})

	req := httptest.NewRequest("GET", "/"+category.ID.String()+"/detail/", nil)
	req = withUserID(req, uuid.New())
	req = withPathID(req, category.ID)
	rr := httptest.NewRecorder()

	handler.GetCategoryDetail(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("handler returned wrong status code: got %v want %v",
			rr.Code, http.StatusForbidden)
	}
}

func TestDeleteCategory(t *testing.T) {
	owner := uuid.New()
	category := &domain.Category{ID: uuid.New(), UserID: owner, Name: "Work"}

	deleted := false
	categoryStore := &mockCategoryStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
			return category, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	handler := newCategoryHandler(categoryStore, &mockTaskStore{})

	req := httptest.NewRequest("POST", "/"+category.ID.String()+"/delete/", nil)
	req = withUserID(req, owner)
	req = withPathID(req, category.ID)
	rr := httptest.NewRecorder()

	handler.DeleteCategory(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("handler returned wrong status code: got %v want %v",
			rr.Code, http.StatusNoContent)
	}
	if !deleted {
		t.Error("expected delete to reach the store")
	}
}

func TestGetCategoryNotFound(t *testing.T) {
	categoryStore := &mockCategoryStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
			return nil, store.ErrCategoryNotFound
		},
	}
	handler := newCategoryHandler(categoryStore, &mockTaskStore{})

	id := uuid.New()
	req := httptest.NewRequest("GET", "/category/"+id.String()+"/edit/", nil)
	req = withUserID(req, uuid.New())
	req = withPathID(req, id)
	rr := httptest.NewRecorder()

	handler.GetCategory(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v",
			rr.Code, http.StatusNotFound)
	}
}
