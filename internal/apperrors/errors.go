package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the API maps to client errors.
const (
	PgCheckViolation      = "23514"
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
)

// ValidationError is a structural or business-rule failure in the submitted
// payload. ItemIndex is the offending cart position, or -1 when the error is
// not tied to a single item.
type ValidationError struct {
	Message   string
	ItemIndex int
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg, ItemIndex: -1}
}

func NewItemValidationError(index int, msg string) *ValidationError {
	return &ValidationError{Message: msg, ItemIndex: index}
}

// ConstraintViolation means the database rejected a write because of a data
// integrity rule (check, unique or foreign key constraint). It is a client
// error: the payload broke a rule the schema also enforces.
type ConstraintViolation struct {
	Code    string
	Message string
}

func (e *ConstraintViolation) Error() string {
	return e.Message
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// InternalError wraps anything unexpected. Callers only see a generic
// message; the wrapped cause is for logs.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return "internal error"
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func NewInternalError(err error) *InternalError {
	return &InternalError{Err: err}
}

// FromDB classifies a database error. Known integrity violations become
// ConstraintViolations with the given message; everything else is wrapped as
// an InternalError.
func FromDB(err error, messages map[string]string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if msg, ok := messages[pgErr.Code]; ok {
			return &ConstraintViolation{Code: pgErr.Code, Message: msg}
		}
	}
	return NewInternalError(err)
}
