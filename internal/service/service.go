package service

import (
	"context"
	"time"

	"github.com/carson-networks/expense-tracker/internal/operator"
	"github.com/carson-networks/expense-tracker/internal/storage"
)

// Processor runs a write action inside a single database transaction.
type Processor interface {
	Process(ctx context.Context, action operator.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Category    *CategoryService
	Transaction *TransactionService
}

// NewService creates a new Service reading from store and writing through processor.
func NewService(store *storage.Storage, processor Processor) *Service {
	categories := NewCategoryService(store, processor)
	return &Service{
		Category:    categories,
		Transaction: NewTransactionService(store, processor, categories, time.Now),
	}
}
