package category

import (
	"context"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-tracker/internal/service"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) ListAll(ctx context.Context) ([]service.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]service.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryService) ListByType(ctx context.Context, categoryType service.Type) ([]service.Category, error) {
	args := m.Called(ctx, categoryType)
	categories, _ := args.Get(0).([]service.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryService) Get(ctx context.Context, id int64) (*service.Category, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*service.Category)
	return result, args.Error(1)
}

func (m *mockCategoryService) Create(ctx context.Context, name string, categoryType service.Type) (*service.Category, error) {
	args := m.Called(ctx, name, categoryType)
	result, _ := args.Get(0).(*service.Category)
	return result, args.Error(1)
}

func (m *mockCategoryService) Update(ctx context.Context, id int64, patch service.CategoryPatch) (*service.Category, error) {
	args := m.Called(ctx, id, patch)
	result, _ := args.Get(0).(*service.Category)
	return result, args.Error(1)
}

func (m *mockCategoryService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryService) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryService) Activate(ctx context.Context, id int64) (*service.Category, error) {
	args := m.Called(ctx, id)
	result, _ := args.Get(0).(*service.Category)
	return result, args.Error(1)
}

// newTestAPI registers every category handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockCategoryService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListCategoriesHandler(svc).Register(api)
	NewGetCategoryHandler(svc).Register(api)
	NewCreateCategoryHandler(svc).Register(api)
	NewUpdateCategoryHandler(svc).Register(api)
	NewDeleteCategoryHandler(svc).Register(api)
	NewActivationHandler(svc).Register(api)
	return api
}

var testCreatedAt = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func food() *service.Category {
	return &service.Category{
		ID:        1,
		Name:      "Food",
		Type:      service.TypeExpense,
		IsActive:  true,
		CreatedAt: testCreatedAt,
	}
}
