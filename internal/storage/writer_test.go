package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/expense-tracker/internal/storage/category"
	"github.com/carson-networks/expense-tracker/internal/storage/transaction"
)

type fakeTx struct {
	commits   int
	rollbacks int
	commitErr error
}

func (f *fakeTx) Commit(context.Context) error {
	f.commits++
	return f.commitErr
}

func (f *fakeTx) Rollback(context.Context) error {
	f.rollbacks++
	return nil
}

func TestWriter_CommitAndRollbackDelegate(t *testing.T) {
	tx := &fakeTx{}
	categories := category.NewMockICategoryTable(t)
	transactions := transaction.NewMockITransactionTable(t)

	writer := NewWriterWithReader(tx, Reader{Categories: categories, Transactions: transactions})

	assert.NoError(t, writer.Commit())
	assert.NoError(t, writer.Rollback())
	assert.Equal(t, 1, tx.commits)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Same(t, categories, writer.Categories)
	assert.Same(t, transactions, writer.Transactions)
}

func TestWriter_CommitError(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("serialization failure")}
	writer := NewWriterWithReader(tx, Reader{})

	err := writer.Commit()
	assert.EqualError(t, err, "serialization failure")
}
