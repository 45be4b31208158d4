package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/expense-tracker/internal/operator"
	"github.com/carson-networks/expense-tracker/internal/storage"
	"github.com/carson-networks/expense-tracker/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage    *storage.Storage
	operator   Processor
	categories *CategoryService
	now        func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	store *storage.Storage,
	processor Processor,
	categories *CategoryService,
	now func() time.Time,
) *TransactionService {
	return &TransactionService{
		storage:    store,
		operator:   processor,
		categories: categories,
		now:        now,
	}
}

// ListAll returns every transaction, newest first.
func (s *TransactionService) ListAll(ctx context.Context) ([]Transaction, error) {
	return s.list(ctx, &transaction.TransactionFilter{})
}

// Get returns the transaction or ErrTransactionNotFound.
func (s *TransactionService) Get(ctx context.Context, id int64) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrTransactionNotFound
	}
	return transactionFromStorage(row), nil
}

func (s *TransactionService) ListByType(ctx context.Context, transactionType Type) ([]Transaction, error) {
	if err := validateType(transactionType); err != nil {
		return nil, err
	}
	storageType := transactionTypeToStorage(transactionType)
	return s.list(ctx, &transaction.TransactionFilter{Type: &storageType})
}

// ListByCategory returns the category's transactions, or an empty slice when
// the category does not exist.
func (s *TransactionService) ListByCategory(ctx context.Context, categoryID int64) ([]Transaction, error) {
	return s.listForCategory(ctx, categoryID, nil)
}

// ListByCategoryAndType narrows ListByCategory to one type.
func (s *TransactionService) ListByCategoryAndType(ctx context.Context, categoryID int64, transactionType Type) ([]Transaction, error) {
	if err := validateType(transactionType); err != nil {
		return nil, err
	}
	storageType := transactionTypeToStorage(transactionType)
	return s.listForCategory(ctx, categoryID, &storageType)
}

func (s *TransactionService) listForCategory(ctx context.Context, categoryID int64, transactionType *transaction.Type) ([]Transaction, error) {
	row, err := s.storage.Categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return []Transaction{}, nil
	}

	return s.list(ctx, &transaction.TransactionFilter{
		Type:       transactionType,
		CategoryID: &categoryID,
	})
}

func (s *TransactionService) list(ctx context.Context, filter *transaction.TransactionFilter) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// Create validates input, checks the referenced category is active and of the
// same type, and persists the transaction.
func (s *TransactionService) Create(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	if err := validateAmount(create.Amount); err != nil {
		return nil, err
	}
	description, err := validateDescription(create.Description)
	if err != nil {
		return nil, err
	}
	if err = validateCategoryID(create.CategoryID); err != nil {
		return nil, err
	}
	if err = validateType(create.Type); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(create.Name)
	if name == "" {
		name = description
	}
	date := create.Date
	if date.IsZero() {
		date = s.now()
	}

	var created *Transaction
	err = s.operator.Process(ctx, operator.ActionFunc(func(ctx context.Context, writer *storage.Writer) error {
		category, err := s.categories.resolveForTransaction(ctx, writer.Categories, create.CategoryID)
		if err != nil {
			return err
		}
		if err = checkCategoryForTransaction(category, create.Type); err != nil {
			return err
		}

		row, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
			Name:            name,
			Amount:          create.Amount,
			Description:     description,
			Type:            transactionTypeToStorage(create.Type),
			CategoryID:      category.ID,
			TransactionDate: date,
		})
		if errors.Is(err, transaction.ErrCategoryMissing) {
			return categoryNotFoundError(create.CategoryID)
		}
		if err != nil {
			return err
		}

		created = transactionFromStorage(row)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the set fields of patch. The effective category is resolved
// and checked on every update, even when neither category nor type changes.
func (s *TransactionService) Update(ctx context.Context, id int64, patch TransactionPatch) (*Transaction, error) {
	var updated *Transaction
	err := s.operator.Process(ctx, operator.ActionFunc(func(ctx context.Context, writer *storage.Writer) error {
		existing, err := writer.Transactions.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrTransactionNotFound
		}

		categoryID := patch.CategoryID.GetOr(existing.CategoryID)
		if err = validateCategoryID(categoryID); err != nil {
			return err
		}
		transactionType := patch.Type.GetOr(Type(existing.Type))
		if err = validateType(transactionType); err != nil {
			return err
		}

		category, err := s.categories.resolveForTransaction(ctx, writer.Categories, categoryID)
		if err != nil {
			return err
		}
		if err = checkCategoryForTransaction(category, transactionType); err != nil {
			return err
		}

		update, err := buildTransactionUpdate(existing, patch)
		if err != nil {
			return err
		}

		row, err := writer.Transactions.Update(ctx, id, update)
		if errors.Is(err, transaction.ErrCategoryMissing) {
			return categoryNotFoundError(categoryID)
		}
		if err != nil {
			return err
		}
		if row == nil {
			return ErrTransactionNotFound
		}

		updated = transactionFromStorage(row)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func buildTransactionUpdate(existing *transaction.Transaction, patch TransactionPatch) (*transaction.TransactionUpdate, error) {
	update := &transaction.TransactionUpdate{
		TransactionDate: patch.Date,
	}

	if amount, ok := patch.Amount.Get(); ok {
		if err := validateAmount(amount); err != nil {
			return nil, err
		}
		update.Amount = omit.From(amount)
	}

	description := existing.Description
	if value, ok := patch.Description.Get(); ok {
		trimmed, err := validateDescription(value)
		if err != nil {
			return nil, err
		}
		description = trimmed
		update.Description = omit.From(trimmed)
	}

	if name, ok := patch.Name.Get(); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			name = description
		}
		update.Name = omit.From(name)
	}

	if t, ok := patch.Type.Get(); ok {
		update.Type = omit.From(transactionTypeToStorage(t))
	}
	if categoryID, ok := patch.CategoryID.Get(); ok {
		update.CategoryID = omit.From(categoryID)
	}

	return update, nil
}

// Delete removes the transaction permanently.
func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	return s.operator.Process(ctx, operator.ActionFunc(func(ctx context.Context, writer *storage.Writer) error {
		deleted, err := writer.Transactions.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrTransactionNotFound
		}
		return nil
	}))
}
