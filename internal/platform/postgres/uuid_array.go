package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// pgUUIDArray scans a PostgreSQL uuid[] column returned through
// database/sql. The driver hands the value over as the array literal text
// form, e.g. {a1b2...,c3d4...} or {} for an empty array.
type pgUUIDArray []uuid.UUID

// Scan implements the sql.Scanner interface.
func (a *pgUUIDArray) Scan(src any) error {
	var literal string
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case string:
		literal = v
	case []byte:
		literal = string(v)
	default:
		return fmt.Errorf("cannot scan %T into pgUUIDArray", src)
	}

	literal = strings.TrimSpace(literal)
	if !strings.HasPrefix(literal, "{") || !strings.HasSuffix(literal, "}") {
		return fmt.Errorf("malformed uuid array literal: %q", literal)
	}

	inner := literal[1 : len(literal)-1]
	if inner == "" {
		*a = pgUUIDArray{}
		return nil
	}

	parts := strings.Split(inner, ",")
	ids := make(pgUUIDArray, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.Trim(part, `" `))
		if err != nil {
			return fmt.Errorf("malformed uuid in array literal: %w", err)
		}
		ids = append(ids, id)
	}

	*a = ids
	return nil
}
