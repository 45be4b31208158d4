package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-tracker/internal/storage/category"
)

// -- List tests --

func TestCategoryListAll_IncludesInactive(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().List(mock.Anything, &category.CategoryFilter{}).Return([]*category.Category{
		storageCategory(1, "Food", category.TypeExpense, true),
		storageCategory(2, "Gifts", category.TypeIncome, false),
	}, nil)

	categories, err := h.service.Category.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, TypeExpense, categories[0].Type)
	assert.False(t, categories[1].IsActive)
}

func TestCategoryListByType_FiltersActive(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *category.CategoryFilter) bool {
		return f.Type != nil && *f.Type == category.TypeIncome && f.ActiveOnly
	})).Return([]*category.Category{storageCategory(7, "Salary", category.TypeIncome, true)}, nil)

	categories, err := h.service.Category.ListIncome(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, int64(7), categories[0].ID)
}

func TestCategoryListByType_InvalidType(t *testing.T) {
	h := newTestHarness(t)

	categories, err := h.service.Category.ListByType(context.Background(), Type("SAVINGS"))

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidInput, validationErr.Kind)
	assert.Nil(t, categories)
}

func TestCategoryListAll_StorageError(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	categories, err := h.service.Category.ListAll(context.Background())

	assert.EqualError(t, err, "database unavailable")
	assert.Nil(t, categories)
}

// -- Get tests --

func TestCategoryGet_ReturnsInactive(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().FindByID(mock.Anything, int64(3)).
		Return(storageCategory(3, "Health", category.TypeExpense, false), nil)

	result, err := h.service.Category.Get(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Health", result.Name)
	assert.False(t, result.IsActive)
}

func TestCategoryGet_NotFound(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().FindByID(mock.Anything, int64(99)).Return(nil, nil)

	result, err := h.service.Category.Get(context.Background(), 99)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.True(t, IsNotFound(err))
	assert.Nil(t, result)
}

// -- Create tests --

func TestCategoryCreate_Success(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().ExistsByNameAndType(mock.Anything, "Travel", category.TypeExpense).Return(false, nil)
	h.categories.EXPECT().Insert(mock.Anything, &category.CategoryCreate{
		Name:     "Travel",
		Type:     category.TypeExpense,
		IsActive: true,
	}).Return(storageCategory(11, "Travel", category.TypeExpense, true), nil)

	created, err := h.service.Category.Create(context.Background(), "  Travel ", TypeExpense)

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, 1, h.tx.commits)
}

func TestCategoryCreate_Duplicate(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().ExistsByNameAndType(mock.Anything, "Food", category.TypeExpense).Return(true, nil)

	created, err := h.service.Category.Create(context.Background(), "Food", TypeExpense)

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, KindDuplicateCategory, validationErr.Kind)
	assert.Nil(t, created)
	assert.Equal(t, 1, h.tx.rollbacks)
	assert.Equal(t, 0, h.tx.commits)
}

func TestCategoryCreate_SameNameOtherTypeAllowed(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().ExistsByNameAndType(mock.Anything, "Gifts", category.TypeExpense).Return(false, nil)
	h.categories.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(storageCategory(12, "Gifts", category.TypeExpense, true), nil)

	created, err := h.service.Category.Create(context.Background(), "Gifts", TypeExpense)

	require.NoError(t, err)
	assert.Equal(t, TypeExpense, created.Type)
}

func TestCategoryCreate_UniqueIndexRace(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().ExistsByNameAndType(mock.Anything, "Food", category.TypeExpense).Return(false, nil)
	h.categories.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil, category.ErrDuplicate)

	_, err := h.service.Category.Create(context.Background(), "Food", TypeExpense)

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, KindDuplicateCategory, validationErr.Kind)
}

func TestCategoryCreate_BlankName(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.service.Category.Create(context.Background(), "   ", TypeIncome)

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, KindInvalidInput, validationErr.Kind)
	assert.Equal(t, 0, h.tx.rollbacks+h.tx.commits)
}

// -- Update tests --

func TestCategoryUpdate_RenameAndDeactivate(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().FindByID(mock.Anything, int64(4)).
		Return(storageCategory(4, "Fun", category.TypeExpense, true), nil)
	h.categories.EXPECT().FindByNameAndType(mock.Anything, "Leisure", category.TypeExpense).Return(nil, nil)
	h.categories.EXPECT().Update(mock.Anything, int64(4), mock.MatchedBy(func(u *category.CategoryUpdate) bool {
		name, nameSet := u.Name.Get()
		active, activeSet := u.IsActive.Get()
		return nameSet && name == "Leisure" && activeSet && !active
	})).Return(storageCategory(4, "Leisure", category.TypeExpense, false), nil)

	updated, err := h.service.Category.Update(context.Background(), 4, CategoryPatch{
		Name:     omit.From("Leisure"),
		IsActive: omit.From(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Leisure", updated.Name)
	assert.False(t, updated.IsActive)
}

func TestCategoryUpdate_OnlyActiveLeavesNameUntouched(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().FindByID(mock.Anything, int64(4)).
		Return(storageCategory(4, "Fun", category.TypeExpense, false), nil)
	h.categories.EXPECT().Update(mock.Anything, int64(4), mock.MatchedBy(func(u *category.CategoryUpdate) bool {
		return u.Name.IsUnset() && u.IsActive.GetOrZero()
	})).Return(storageCategory(4, "Fun", category.TypeExpense, true), nil)

	updated, err := h.service.Category.Update(context.Background(), 4, CategoryPatch{IsActive: omit.From(true)})

	require.NoError(t, err)
	assert.Equal(t, "Fun", updated.Name)
	assert.True(t, updated.IsActive)
}

func TestCategoryUpdate_RenameOntoExistingPair(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().FindByID(mock.Anything, int64(4)).
		Return(storageCategory(4, "Fun", category.TypeExpense, true), nil)
	h.categories.EXPECT().FindByNameAndType(mock.Anything, "Food", category.TypeExpense).
		Return(storageCategory(1, "Food", category.TypeExpense, true), nil)

	_, err := h.service.Category.Update(context.Background(), 4, CategoryPatch{Name: omit.From("Food")})

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, KindDuplicateCategory, validationErr.Kind)
	assert.Equal(t, 1, h.tx.rollbacks)
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().FindByID(mock.Anything, int64(42)).Return(nil, nil)

	_, err := h.service.Category.Update(context.Background(), 42, CategoryPatch{Name: omit.From("Other")})

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

// -- Delete tests --

func TestCategoryDelete_Success(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().FindByID(mock.Anything, int64(5)).
		Return(storageCategory(5, "Clothing", category.TypeExpense, true), nil)
	h.transactions.EXPECT().CountByCategory(mock.Anything, int64(5)).Return(0, nil)
	h.categories.EXPECT().Delete(mock.Anything, int64(5)).Return(true, nil)

	err := h.service.Category.Delete(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, 1, h.tx.commits)
}

func TestCategoryDelete_InUse(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().FindByID(mock.Anything, int64(5)).
		Return(storageCategory(5, "Clothing", category.TypeExpense, true), nil)
	h.transactions.EXPECT().CountByCategory(mock.Anything, int64(5)).Return(3, nil)

	err := h.service.Category.Delete(context.Background(), 5)

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, KindCategoryInUse, validationErr.Kind)
	assert.Equal(t, 1, h.tx.rollbacks)
}

func TestCategoryDelete_ForeignKeyRace(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().FindByID(mock.Anything, int64(5)).
		Return(storageCategory(5, "Clothing", category.TypeExpense, true), nil)
	h.transactions.EXPECT().CountByCategory(mock.Anything, int64(5)).Return(0, nil)
	h.categories.EXPECT().Delete(mock.Anything, int64(5)).Return(false, category.ErrReferenced)

	err := h.service.Category.Delete(context.Background(), 5)

	validationErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, KindCategoryInUse, validationErr.Kind)
}

func TestCategoryDelete_NotFound(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().FindByID(mock.Anything, int64(8)).Return(nil, nil)

	err := h.service.Category.Delete(context.Background(), 8)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

// -- SoftDelete / Activate tests --

func TestCategorySoftDelete(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().Update(mock.Anything, int64(6), mock.MatchedBy(func(u *category.CategoryUpdate) bool {
		active, ok := u.IsActive.Get()
		return ok && !active && u.Name.IsUnset()
	})).Return(storageCategory(6, "Food", category.TypeExpense, false), nil)

	err := h.service.Category.SoftDelete(context.Background(), 6)

	require.NoError(t, err)
}

func TestCategoryActivate(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().Update(mock.Anything, int64(6), mock.MatchedBy(func(u *category.CategoryUpdate) bool {
		return u.IsActive.GetOrZero()
	})).Return(storageCategory(6, "Food", category.TypeExpense, true), nil)

	activated, err := h.service.Category.Activate(context.Background(), 6)

	require.NoError(t, err)
	assert.True(t, activated.IsActive)
}

func TestCategorySoftDelete_NotFound(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().Update(mock.Anything, int64(60), mock.Anything).Return(nil, nil)

	err := h.service.Category.SoftDelete(context.Background(), 60)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

// -- SeedDefaults tests --

func TestSeedDefaults_EmptyStore(t *testing.T) {
	h := newTestHarness(t)

	var inserted []*category.CategoryCreate
	h.categories.EXPECT().Count(mock.Anything).Return(0, nil)
	h.categories.EXPECT().Insert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, create *category.CategoryCreate) (*category.Category, error) {
			inserted = append(inserted, create)
			return storageCategory(int64(len(inserted)), create.Name, create.Type, create.IsActive), nil
		}).Times(10)

	count, err := h.service.Category.SeedDefaults(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, count)
	require.Len(t, inserted, 10)

	byType := map[category.Type]int{}
	for _, create := range inserted {
		assert.True(t, create.IsActive)
		byType[create.Type]++
	}
	assert.Equal(t, 6, byType[category.TypeExpense])
	assert.Equal(t, 4, byType[category.TypeIncome])
	assert.Equal(t, 1, h.tx.commits)
}

func TestSeedDefaults_NoOpWhenCategoriesExist(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().Count(mock.Anything).Return(10, nil)

	count, err := h.service.Category.SeedDefaults(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSeedDefaults_InsertFailureRollsBack(t *testing.T) {
	h := newTestHarness(t)

	h.categories.EXPECT().Count(mock.Anything).Return(0, nil)
	h.categories.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil, errors.New("disk full")).Once()

	count, err := h.service.Category.SeedDefaults(context.Background())

	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, 0, count)
	assert.Equal(t, 1, h.tx.rollbacks)
}
