package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/taskhive/taskhive-api/internal/domain"
	"github.com/taskhive/taskhive-api/internal/service/auth"
	"github.com/taskhive/taskhive-api/internal/store"
)

// mockPasswordService implements auth.PasswordHasher and
// auth.PasswordVerifier without the bcrypt cost.
type mockPasswordService struct {
	hashErr    error
	compareErr error
}

func (m *mockPasswordService) Hash(password string) (string, error) {
	if m.hashErr != nil {
		return "", m.hashErr
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordService) Compare(hashedPassword, password string) error {
	return m.compareErr
}

func okJWTService() *mockJWTService {
	return &mockJWTService{
		generateFn: func(ctx context.Context, userID uuid.UUID) (string, error) {
			return "test-token", nil
		},
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		storeErr       error
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"email":"new@example.com","password":"a-long-enough-password"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "With Profile Fields",
			body:           `{"email":"new@example.com","password":"a-long-enough-password","phone":"+1 555 000 1234","age":30}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Short Password",
			body:           `{"email":"new@example.com","password":"short"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid Email",
			body:           `{"email":"not-an-email","password":"a-long-enough-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Negative Age",
			body:           `{"email":"new@example.com","password":"a-long-enough-password","age":-1}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Email Exists",
			body:           `{"email":"taken@example.com","password":"a-long-enough-password"}`,
			storeErr:       store.ErrEmailExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Malformed JSON",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var created *domain.User
			userStore := &mockUserStore{
				createFn: func(ctx context.Context, user *domain.User) error {
					if tc.storeErr != nil {
						return tc.storeErr
					}
					created = user
					return nil
				},
			}
			pw := &mockPasswordService{}
			handler := NewAuthHandler(userStore, okJWTService(), pw, pw, nil)

			req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader([]byte(tc.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("handler returned wrong status code: got %v want %v, body: %s",
					rr.Code, tc.expectedStatus, rr.Body.String())
			}

			if tc.expectedStatus == http.StatusCreated {
				if created == nil {
					t.Fatal("expected user to reach the store")
				}
				if created.HashedPassword == "" {
					t.Error("expected a hashed password on the stored user")
				}
				if created.Password != "" {
					t.Error("plaintext password must not be stored")
				}

				var resp AuthResponse
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response body: %v", err)
				}
				if resp.Token != "test-token" {
					t.Errorf("wrong token in response: got %q", resp.Token)
				}
				if resp.UserID != created.ID {
					t.Errorf("wrong user ID in response: got %v want %v", resp.UserID, created.ID)
				}
			}
		})
	}
}

func TestLogin(t *testing.T) {
	userID := uuid.New()
	existing := &domain.User{
		ID:             userID,
		Email:          "user@example.com",
		HashedPassword: "hashed:a-long-enough-password",
	}

	tests := []struct {
		name           string
		body           string
		getErr         error
		compareErr     error
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"email":"user@example.com","password":"a-long-enough-password"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown Email",
			body:           `{"email":"nobody@example.com","password":"a-long-enough-password"}`,
			getErr:         store.ErrUserNotFound,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong Password",
			body:           `{"email":"user@example.com","password":"wrong-password-here"}`,
			compareErr:     errors.New("mismatch"),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing Password",
			body:           `{"email":"user@example.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			userStore := &mockUserStore{
				getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
					if tc.getErr != nil {
						return nil, tc.getErr
					}
					return existing, nil
				},
			}
			pw := &mockPasswordService{compareErr: tc.compareErr}
			handler := NewAuthHandler(userStore, okJWTService(), pw, pw, nil)

			req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte(tc.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("handler returned wrong status code: got %v want %v, body: %s",
					rr.Code, tc.expectedStatus, rr.Body.String())
			}

			if tc.expectedStatus == http.StatusOK {
				var resp AuthResponse
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response body: %v", err)
				}
				if resp.UserID != userID {
					t.Errorf("wrong user ID in response: got %v want %v", resp.UserID, userID)
				}
			}
		})
	}
}

func TestLoginTokenGenerationFailure(t *testing.T) {
	userStore := &mockUserStore{
		getByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:             uuid.New(),
				Email:          email,
				HashedPassword: "hashed",
			}, nil
		},
	}
	jwtService := &mockJWTService{
		generateFn: func(ctx context.Context, userID uuid.UUID) (string, error) {
			return "", errors.New("signing failure")
		},
	}
	pw := &mockPasswordService{}
	handler := NewAuthHandler(userStore, jwtService, pw, pw, nil)

	body := `{"email":"user@example.com","password":"a-long-enough-password"}`
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()

	handler.Login(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("handler returned wrong status code: got %v want %v",
			rr.Code, http.StatusInternalServerError)
	}
}

// Interface conformance for the password mock.
var (
	_ auth.PasswordHasher   = (*mockPasswordService)(nil)
	_ auth.PasswordVerifier = (*mockPasswordService)(nil)
)
