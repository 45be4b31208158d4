package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// ErrCategoryMissing is returned when a write references a category that no longer exists.
var ErrCategoryMissing = errors.New("transaction references a missing category")

type Type string

const (
	TypeExpense Type = "EXPENSE"
	TypeIncome  Type = "INCOME"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              int64           `db:"id"`
	Name            string          `db:"name"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	Type            Type            `db:"type"`
	CategoryID      int64           `db:"category_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Name            string
	Amount          decimal.Decimal
	Description     string
	Type            Type
	CategoryID      int64
	TransactionDate time.Time // defaults to now if zero
}

// TransactionUpdate carries the columns to change. Unset fields are left untouched.
type TransactionUpdate struct {
	Name            omit.Val[string]
	Amount          omit.Val[decimal.Decimal]
	Description     omit.Val[string]
	Type            omit.Val[Type]
	CategoryID      omit.Val[int64]
	TransactionDate omit.Val[time.Time]
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	Type       *Type
	CategoryID *int64
}

// ITransactionTable defines the interface for transaction storage operations.
// FindByID and Update return (nil, nil) when no row matches; Delete reports
// whether a row was removed.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id int64, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
