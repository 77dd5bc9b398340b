package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Category-specific validation errors, all wrapping ErrValidation.
var (
	ErrEmptyCategoryID     = fmt.Errorf("%w: category ID cannot be empty", ErrValidation)
	ErrEmptyCategoryUserID = fmt.Errorf("%w: category user ID cannot be empty", ErrValidation)
	ErrEmptyCategoryName   = fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	ErrCategoryNameTooLong = fmt.Errorf("%w: category name must be at most 100 characters long", ErrValidation)
)

// Category groups a user's tasks. A category is owned by exactly one user
// and the (Name, UserID) pair is unique per user, enforced by a database
// constraint. Deleting a category removes the membership rows in
// task_categories but never deletes the tasks themselves.
type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCategory creates a new Category owned by the given user.
// It generates a new UUID for the category ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewCategory(userID uuid.UUID, name string) (*Category, error) {
	category := &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
// Returns an error if any field fails validation.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCategoryID
	}

	if c.UserID == uuid.Nil {
		return ErrEmptyCategoryUserID
	}

	if c.Name == "" {
		return ErrEmptyCategoryName
	}

	if utf8.RuneCountInString(c.Name) > 100 {
		return ErrCategoryNameTooLong
	}

	return nil
}

// Rename updates the category's name and the UpdatedAt timestamp.
// Returns an error if the new name is invalid.
func (c *Category) Rename(name string) error {
	origName := c.Name
	c.Name = name

	if err := c.Validate(); err != nil {
		c.Name = origName
		return err
	}

	c.UpdatedAt = time.Now().UTC()
	return nil
}
