package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-tracker/internal/service"
)

// localDateTimeLayout is accepted alongside RFC3339 for dates without a zone,
// which are read as UTC.
const localDateTimeLayout = "2006-01-02T15:04:05"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          int64   `json:"id" doc:"Transaction id"`
	Name        string  `json:"name" doc:"Short name, defaults to the description"`
	Amount      float64 `json:"amount" doc:"Positive amount"`
	Description string  `json:"description" doc:"What the money was for"`
	Type        string  `json:"type" enum:"EXPENSE,INCOME" doc:"Transaction type, always equal to the category type"`
	CategoryID  int64   `json:"categoryId" doc:"Category id"`
	Date        string  `json:"date" doc:"RFC3339 transaction date"`
	CreatedAt   string  `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(tx *service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Name:        tx.Name,
		Amount:      tx.Amount.InexactFloat64(),
		Description: tx.Description,
		Type:        string(tx.Type),
		CategoryID:  tx.CategoryID,
		Date:        tx.Date.Format(time.RFC3339),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

func fromServiceList(transactions []service.Transaction) []Transaction {
	resp := make([]Transaction, len(transactions))
	for i := range transactions {
		resp[i] = fromService(&transactions[i])
	}
	return resp
}

func parseDate(value string) (time.Time, error) {
	if date, err := time.Parse(time.RFC3339, value); err == nil {
		return date, nil
	}
	date, err := time.ParseInLocation(localDateTimeLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date, expected RFC3339 or "+localDateTimeLayout, err)
	}
	return date, nil
}

// amountScale matches the NUMERIC(19,2) amount column.
const amountScale = 2

// parseAmount rejects amounts with sub-cent precision.
func parseAmount(value float64) (decimal.Decimal, error) {
	amount := decimal.NewFromFloat(value)
	if !amount.Equal(amount.Truncate(amountScale)) {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "amount must have at most two decimal places")
	}
	return amount, nil
}

// TransactionIDInput is shared by operations addressing a single transaction.
type TransactionIDInput struct {
	ID int64 `path:"id" minimum:"1" doc:"Transaction id"`
}

// TransactionOutput is the Huma output for operations returning one transaction.
type TransactionOutput struct {
	Body Transaction
}

// ListTransactionsOutput is the Huma output for transaction listings.
type ListTransactionsOutput struct {
	Body []Transaction
}
