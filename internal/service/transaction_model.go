package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-tracker/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          int64
	Name        string
	Amount      decimal.Decimal
	Description string
	Type        Type
	CategoryID  int64
	Date        time.Time
	CreatedAt   time.Time
}

// TransactionCreate is the input for Create. A blank Name falls back to the
// description and a zero Date to the current time.
type TransactionCreate struct {
	Name        string
	Amount      decimal.Decimal
	Description string
	Type        Type
	CategoryID  int64
	Date        time.Time
}

// TransactionPatch carries the fields to change on update.
type TransactionPatch struct {
	Name        omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Description omit.Val[string]
	Type        omit.Val[Type]
	CategoryID  omit.Val[int64]
	Date        omit.Val[time.Time]
}

func transactionFromStorage(row *transaction.Transaction) *Transaction {
	return &Transaction{
		ID:          row.ID,
		Name:        row.Name,
		Amount:      row.Amount,
		Description: row.Description,
		Type:        Type(row.Type),
		CategoryID:  row.CategoryID,
		Date:        row.TransactionDate,
		CreatedAt:   row.CreatedAt,
	}
}

func transactionsFromStorage(rows []*transaction.Transaction) []Transaction {
	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = *transactionFromStorage(row)
	}
	return transactions
}
