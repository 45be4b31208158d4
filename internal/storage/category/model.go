package category

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"
)

var (
	// ErrDuplicate is returned when the (name, type) unique index rejects a write.
	ErrDuplicate = errors.New("category with this name and type already exists")
	// ErrReferenced is returned when a delete is rejected because transactions still point at the category.
	ErrReferenced = errors.New("category is referenced by transactions")
)

type Type string

const (
	TypeExpense Type = "EXPENSE"
	TypeIncome  Type = "INCOME"
)

// Category represents a category record.
type Category struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Type      Type      `db:"type"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	Name     string
	Type     Type
	IsActive bool
}

// CategoryUpdate carries the columns to change. Unset fields are left untouched.
type CategoryUpdate struct {
	Name     omit.Val[string]
	IsActive omit.Val[bool]
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	Type       *Type
	ActiveOnly bool
}

// ICategoryTable defines the interface for category storage operations.
// FindByID, FindByNameAndType and Update return (nil, nil) when no row matches;
// Delete reports whether a row was removed.
//
//go:generate mockery --name ICategoryTable --output mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	FindByNameAndType(ctx context.Context, name string, categoryType Type) (*Category, error)
	ExistsByNameAndType(ctx context.Context, name string, categoryType Type) (bool, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, id int64, update *CategoryUpdate) (*Category, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
