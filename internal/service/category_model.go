package service

import (
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/expense-tracker/internal/storage/category"
	"github.com/carson-networks/expense-tracker/internal/storage/transaction"
)

// Type is the direction of money flow shared by categories and transactions.
type Type string

const (
	TypeExpense Type = "EXPENSE"
	TypeIncome  Type = "INCOME"
)

func (t Type) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// ParseType accepts the canonical upper-case names.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", invalidInputError("unknown type '%s', expected EXPENSE or INCOME", s)
	}
	return t, nil
}

// Category represents a category in the service layer.
type Category struct {
	ID        int64
	Name      string
	Type      Type
	IsActive  bool
	CreatedAt time.Time
}

// CategoryPatch carries the fields to change on update.
type CategoryPatch struct {
	Name     omit.Val[string]
	IsActive omit.Val[bool]
}

func categoryFromStorage(row *category.Category) *Category {
	return &Category{
		ID:        row.ID,
		Name:      row.Name,
		Type:      Type(row.Type),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}

func categoriesFromStorage(rows []*category.Category) []Category {
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = *categoryFromStorage(row)
	}
	return categories
}

func categoryTypeToStorage(t Type) category.Type {
	return category.Type(t)
}

func transactionTypeToStorage(t Type) transaction.Type {
	return transaction.Type(t)
}

type defaultCategory struct {
	Name string
	Type Type
}

// defaultCategories is inserted by SeedDefaults into an empty store.
var defaultCategories = []defaultCategory{
	{Name: "Food", Type: TypeExpense},
	{Name: "Transport", Type: TypeExpense},
	{Name: "Housing", Type: TypeExpense},
	{Name: "Entertainment", Type: TypeExpense},
	{Name: "Health", Type: TypeExpense},
	{Name: "Clothing", Type: TypeExpense},
	{Name: "Salary", Type: TypeIncome},
	{Name: "Investments", Type: TypeIncome},
	{Name: "Freelance", Type: TypeIncome},
	{Name: "Gifts", Type: TypeIncome},
}
