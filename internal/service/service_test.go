package service

import (
	"context"
	"testing"
	"time"

	"github.com/carson-networks/expense-tracker/internal/operator"
	"github.com/carson-networks/expense-tracker/internal/storage"
	"github.com/carson-networks/expense-tracker/internal/storage/category"
	"github.com/carson-networks/expense-tracker/internal/storage/transaction"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeTx struct {
	commits   int
	rollbacks int
}

func (f *fakeTx) Commit(context.Context) error {
	f.commits++
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rollbacks++
	return nil
}

// inlineProcessor runs actions synchronously against the mocked tables, with
// the same commit/rollback contract as the operator.
type inlineProcessor struct {
	tx     *fakeTx
	reader storage.Reader
}

func (p *inlineProcessor) Process(ctx context.Context, action operator.IAction) error {
	writer := storage.NewWriterWithReader(p.tx, p.reader)
	if err := action.Perform(ctx, writer); err != nil {
		_ = writer.Rollback()
		return err
	}
	return writer.Commit()
}

type testHarness struct {
	categories   *category.MockICategoryTable
	transactions *transaction.MockITransactionTable
	tx           *fakeTx
	service      *Service
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	categories := category.NewMockICategoryTable(t)
	transactions := transaction.NewMockITransactionTable(t)
	reader := storage.Reader{Categories: categories, Transactions: transactions}

	store := &storage.Storage{Reader: &reader}
	tx := &fakeTx{}
	processor := &inlineProcessor{tx: tx, reader: reader}

	categoryService := NewCategoryService(store, processor)
	return &testHarness{
		categories:   categories,
		transactions: transactions,
		tx:           tx,
		service: &Service{
			Category: categoryService,
			Transaction: NewTransactionService(store, processor, categoryService, func() time.Time {
				return fixedNow
			}),
		},
	}
}

func storageCategory(id int64, name string, categoryType category.Type, active bool) *category.Category {
	return &category.Category{
		ID:        id,
		Name:      name,
		Type:      categoryType,
		IsActive:  active,
		CreatedAt: fixedNow,
	}
}
