// Package service implements the application services that sit between the
// HTTP handlers and the stores. Every operation on an owned entity runs
// through the same ownership predicate before touching the store.
package service

import (
	"errors"

	"github.com/google/uuid"
)

// Service-level errors.
var (
	// ErrNotOwner is returned when the requester is not the owner of the
	// target entity. Handlers map it to a forbidden response.
	ErrNotOwner = errors.New("requester is not the owner of this entity")

	// ErrCategoryNotOwned is returned when a task create/update submits a
	// category ID that does not belong to the requester. The category
	// selector only ever offers the requester's own categories, so this is
	// treated as a validation failure of the submitted form data.
	ErrCategoryNotOwned = errors.New("category does not belong to the requester")

	// ErrUnknownExportFormat is returned for an unsupported export format.
	ErrUnknownExportFormat = errors.New("unknown export format")
)

// authorizeOwner is the single ownership predicate applied by every detail,
// update, and delete operation on an owned entity.
func authorizeOwner(ownerID, requesterID uuid.UUID) error {
	if ownerID != requesterID {
		return ErrNotOwner
	}
	return nil
}
