package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/expense-tracker/internal/operator"
	"github.com/carson-networks/expense-tracker/internal/storage"
	"github.com/carson-networks/expense-tracker/internal/storage/category"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage  *storage.Storage
	operator Processor
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, processor Processor) *CategoryService {
	return &CategoryService{storage: store, operator: processor}
}

// ListAll returns every category, active or not, ordered by id.
func (s *CategoryService) ListAll(ctx context.Context) ([]Category, error) {
	rows, err := s.storage.Categories.List(ctx, &category.CategoryFilter{})
	if err != nil {
		return nil, err
	}
	return categoriesFromStorage(rows), nil
}

// ListByType returns the active categories of the given type.
func (s *CategoryService) ListByType(ctx context.Context, categoryType Type) ([]Category, error) {
	if err := validateType(categoryType); err != nil {
		return nil, err
	}

	storageType := categoryTypeToStorage(categoryType)
	rows, err := s.storage.Categories.List(ctx, &category.CategoryFilter{
		Type:       &storageType,
		ActiveOnly: true,
	})
	if err != nil {
		return nil, err
	}
	return categoriesFromStorage(rows), nil
}

func (s *CategoryService) ListExpense(ctx context.Context) ([]Category, error) {
	return s.ListByType(ctx, TypeExpense)
}

func (s *CategoryService) ListIncome(ctx context.Context) ([]Category, error) {
	return s.ListByType(ctx, TypeIncome)
}

// Get returns the category regardless of its active state.
func (s *CategoryService) Get(ctx context.Context, id int64) (*Category, error) {
	row, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrCategoryNotFound
	}
	return categoryFromStorage(row), nil
}

// Create inserts a new active category. The (name, type) pair must be unused.
func (s *CategoryService) Create(ctx context.Context, name string, categoryType Type) (*Category, error) {
	name, err := validateCategoryName(name)
	if err != nil {
		return nil, err
	}
	if err = validateType(categoryType); err != nil {
		return nil, err
	}

	var created *Category
	err = s.operator.Process(ctx, operator.ActionFunc(func(ctx context.Context, writer *storage.Writer) error {
		storageType := categoryTypeToStorage(categoryType)
		exists, err := writer.Categories.ExistsByNameAndType(ctx, name, storageType)
		if err != nil {
			return err
		}
		if exists {
			return duplicateCategoryError(name, categoryType)
		}

		row, err := writer.Categories.Insert(ctx, &category.CategoryCreate{
			Name:     name,
			Type:     storageType,
			IsActive: true,
		})
		if errors.Is(err, category.ErrDuplicate) {
			return duplicateCategoryError(name, categoryType)
		}
		if err != nil {
			return err
		}

		created = categoryFromStorage(row)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the set fields of patch. Renaming onto a (name, type) pair
// held by another category is rejected.
func (s *CategoryService) Update(ctx context.Context, id int64, patch CategoryPatch) (*Category, error) {
	update := &category.CategoryUpdate{IsActive: patch.IsActive}
	if name, ok := patch.Name.Get(); ok {
		trimmed, err := validateCategoryName(name)
		if err != nil {
			return nil, err
		}
		update.Name = omit.From(trimmed)
	}

	var updated *Category
	err := s.operator.Process(ctx, operator.ActionFunc(func(ctx context.Context, writer *storage.Writer) error {
		existing, err := writer.Categories.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrCategoryNotFound
		}

		if name, ok := update.Name.Get(); ok && name != existing.Name {
			holder, err := writer.Categories.FindByNameAndType(ctx, name, existing.Type)
			if err != nil {
				return err
			}
			if holder != nil && holder.ID != id {
				return duplicateCategoryError(name, Type(existing.Type))
			}
		}

		row, err := writer.Categories.Update(ctx, id, update)
		if errors.Is(err, category.ErrDuplicate) {
			return duplicateCategoryError(update.Name.GetOrZero(), Type(existing.Type))
		}
		if err != nil {
			return err
		}
		if row == nil {
			return ErrCategoryNotFound
		}

		updated = categoryFromStorage(row)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the category permanently. Categories still referenced by
// transactions are refused; SoftDelete is the alternative for those.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.operator.Process(ctx, operator.ActionFunc(func(ctx context.Context, writer *storage.Writer) error {
		existing, err := writer.Categories.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrCategoryNotFound
		}

		references, err := writer.Transactions.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if references > 0 {
			return categoryInUseError(categoryFromStorage(existing))
		}

		deleted, err := writer.Categories.Delete(ctx, id)
		if errors.Is(err, category.ErrReferenced) {
			return categoryInUseError(categoryFromStorage(existing))
		}
		if err != nil {
			return err
		}
		if !deleted {
			return ErrCategoryNotFound
		}
		return nil
	}))
}

// SoftDelete marks the category inactive.
func (s *CategoryService) SoftDelete(ctx context.Context, id int64) error {
	_, err := s.setActive(ctx, id, false)
	return err
}

// Activate marks the category active again and returns it.
func (s *CategoryService) Activate(ctx context.Context, id int64) (*Category, error) {
	return s.setActive(ctx, id, true)
}

func (s *CategoryService) setActive(ctx context.Context, id int64, active bool) (*Category, error) {
	var updated *Category
	err := s.operator.Process(ctx, operator.ActionFunc(func(ctx context.Context, writer *storage.Writer) error {
		row, err := writer.Categories.Update(ctx, id, &category.CategoryUpdate{IsActive: omit.From(active)})
		if err != nil {
			return err
		}
		if row == nil {
			return ErrCategoryNotFound
		}
		updated = categoryFromStorage(row)
		return nil
	}))
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SeedDefaults inserts the default catalog when no categories exist and
// returns how many were inserted.
func (s *CategoryService) SeedDefaults(ctx context.Context) (int, error) {
	inserted := 0
	err := s.operator.Process(ctx, operator.ActionFunc(func(ctx context.Context, writer *storage.Writer) error {
		inserted = 0
		count, err := writer.Categories.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, def := range defaultCategories {
			_, err = writer.Categories.Insert(ctx, &category.CategoryCreate{
				Name:     def.Name,
				Type:     categoryTypeToStorage(def.Type),
				IsActive: true,
			})
			if err != nil {
				return fmt.Errorf("seed category %s %s: %w", def.Type, def.Name, err)
			}
			inserted++
		}
		return nil
	}))
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// resolveForTransaction looks the category up through table, which is bound
// to the caller's database transaction. An unknown id is a validation failure.
func (s *CategoryService) resolveForTransaction(ctx context.Context, table category.ICategoryTable, id int64) (*Category, error) {
	row, err := table.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, categoryNotFoundError(id)
	}
	return categoryFromStorage(row), nil
}
