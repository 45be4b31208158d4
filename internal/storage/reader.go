package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/expense-tracker/internal/storage/category"
	"github.com/carson-networks/expense-tracker/internal/storage/transaction"
)

type Reader struct {
	Categories   category.ICategoryTable
	Transactions transaction.ITransactionTable
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Categories:   category.NewTable(exec),
		Transactions: transaction.NewTable(exec),
	}
}
