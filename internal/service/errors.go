package service

import (
	"errors"
	"fmt"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// ErrorKind classifies a ValidationError for API consumers.
type ErrorKind string

const (
	KindDuplicateCategory ErrorKind = "duplicate_category"
	KindCategoryNotFound  ErrorKind = "category_not_found"
	KindInactiveCategory  ErrorKind = "inactive_category"
	KindTypeMismatch      ErrorKind = "type_mismatch"
	KindCategoryInUse     ErrorKind = "category_in_use"
	KindInvalidInput      ErrorKind = "invalid_input"
)

// ValidationError is returned when a request is well formed but violates a
// business rule. Nothing is persisted when one is returned.
type ValidationError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func newValidationError(kind ErrorKind, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func duplicateCategoryError(name string, categoryType Type) error {
	return newValidationError(KindDuplicateCategory, "category '%s' for type '%s' already exists", name, categoryType)
}

func categoryNotFoundError(id int64) error {
	return newValidationError(KindCategoryNotFound, "category with id %d not found", id)
}

func inactiveCategoryError(name string) error {
	return newValidationError(KindInactiveCategory, "category '%s' is not active", name)
}

func typeMismatchError(transactionType Type, category *Category) error {
	return newValidationError(KindTypeMismatch,
		"transaction type '%s' does not match category '%s' type '%s'",
		transactionType, category.Name, category.Type)
}

func categoryInUseError(category *Category) error {
	return newValidationError(KindCategoryInUse,
		"category '%s' is used by transactions; deactivate it instead", category.Name)
}

func invalidInputError(format string, args ...interface{}) error {
	return newValidationError(KindInvalidInput, format, args...)
}

// AsValidationError reports whether err wraps a ValidationError and returns it.
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound) || errors.Is(err, ErrTransactionNotFound)
}
