package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := &pq.Error{Code: "23505", Constraint: "categories_name_type_key"}

	assert.True(t, IsUniqueViolation(err, "categories_name_type_key"))
	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", err), ""), "wrapped errors are unwrapped")
	assert.False(t, IsUniqueViolation(err, "other_key"))
	assert.False(t, IsForeignKeyViolation(err, ""))
}

func TestIsForeignKeyViolation(t *testing.T) {
	err := &pq.Error{Code: "23503", Constraint: "transactions_category_id_fkey"}

	assert.True(t, IsForeignKeyViolation(err, "transactions_category_id_fkey"))
	assert.False(t, IsUniqueViolation(err, ""))
}

func TestNonPostgresError(t *testing.T) {
	assert.False(t, IsUniqueViolation(errors.New("boom"), ""))
	assert.False(t, IsForeignKeyViolation(nil, ""))
}
