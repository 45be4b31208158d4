package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-tracker/internal/service"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) ListAll(ctx context.Context) ([]service.Transaction, error) {
	args := m.Called(ctx)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) ListByType(ctx context.Context, transactionType service.Type) ([]service.Transaction, error) {
	args := m.Called(ctx, transactionType)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) ListByCategory(ctx context.Context, categoryID int64) ([]service.Transaction, error) {
	args := m.Called(ctx, categoryID)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) ListByCategoryAndType(ctx context.Context, categoryID int64, transactionType service.Type) ([]service.Transaction, error) {
	args := m.Called(ctx, categoryID, transactionType)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) Get(ctx context.Context, id int64) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Create(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error) {
	args := m.Called(ctx, create)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Update(ctx context.Context, id int64, patch service.TransactionPatch) (*service.Transaction, error) {
	args := m.Called(ctx, id, patch)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// newTestAPI registers every transaction handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewCreateTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

var testDate = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func lunch() *service.Transaction {
	return &service.Transaction{
		ID:          1,
		Name:        "Lunch",
		Amount:      decimal.RequireFromString("50.00"),
		Description: "Lunch",
		Type:        service.TypeExpense,
		CategoryID:  1,
		Date:        testDate,
		CreatedAt:   testDate,
	}
}
