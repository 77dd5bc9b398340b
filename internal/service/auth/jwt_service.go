package auth

import (
	"context"

	"github.com/google/uuid"
)

// Claims holds the validated identity carried by a token.
type Claims struct {
	UserID uuid.UUID
}

// JWTService defines the interface for issuing and validating the tokens
// that authenticate API requests.
type JWTService interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies a token and returns its claims.
	// Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
