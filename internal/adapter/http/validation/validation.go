package validation

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrInvalidID      = errors.New("invalid id")
)

// ParseID validates a path identifier and returns its canonical form.
func ParseID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidID
	}
	return id.String(), nil
}
