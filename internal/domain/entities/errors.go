package entities

import (
	"fmt"

	"github.com/yarwhq/yarw/internal/domain/values"
)

// DuplicateProfileError indicates a snapshot listed the same ID twice.
type DuplicateProfileError struct {
	ID values.ProfileID
}

func (e *DuplicateProfileError) Error() string {
	return fmt.Sprintf("duplicate profile id: %s", e.ID.String())
}
