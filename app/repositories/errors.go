package repositories

import (
	"fmt"
	"strconv"
)

// ValidationError reports a malformed key or a missing / malformed field on a
// write. Fields maps the JSON field name to a readable message.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Fields)
}

func newValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "validation failed", Fields: fields}
}

func fieldError(field, msg string) *ValidationError {
	return newValidationError(map[string]string{field: msg})
}

// StorageError wraps a failure reported by the database itself.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// parseID converts a path segment into a primary key.
func parseID(id string) (uint, error) {
	key, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, &ValidationError{
			Message: fmt.Sprintf("invalid id %q", id),
			Fields:  map[string]string{"id": "id must be a non-negative integer"},
		}
	}
	return uint(key), nil
}
