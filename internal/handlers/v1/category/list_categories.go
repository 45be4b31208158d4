package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

// ListCategoriesByTypeInput is the Huma input for GET /api/categories/type/{type}.
type ListCategoriesByTypeInput struct {
	Type string `path:"type" enum:"EXPENSE,INCOME" doc:"Category type"`
}

// categoryLister is the interface for listing categories.
type categoryLister interface {
	ListAll(ctx context.Context) ([]service.Category, error)
	ListByType(ctx context.Context, categoryType service.Type) ([]service.Category, error)
}

// ListCategoriesHandler serves every category listing endpoint.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories",
		Summary:     "List categories",
		Description: "Returns every category, including inactive ones.",
		Tags:        []string{"Categories"},
	}, h.handleAll)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories-by-type",
		Method:      http.MethodGet,
		Path:        "/api/categories/type/{type}",
		Summary:     "List active categories by type",
		Tags:        []string{"Categories"},
	}, h.handleByType)

	huma.Register(api, huma.Operation{
		OperationID: "list-expense-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories/expense",
		Summary:     "List active expense categories",
		Tags:        []string{"Categories"},
	}, h.fixedType(service.TypeExpense))

	huma.Register(api, huma.Operation{
		OperationID: "list-income-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories/income",
		Summary:     "List active income categories",
		Tags:        []string{"Categories"},
	}, h.fixedType(service.TypeIncome))
}

func (h *ListCategoriesHandler) handleAll(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	stopTimer := logData.AddTiming("listCategoriesMs")
	categories, err := h.CategoryService.ListAll(ctx)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	logData.AddData("categoryCount", len(categories))
	return &ListCategoriesOutput{Body: fromServiceList(categories)}, nil
}

func (h *ListCategoriesHandler) handleByType(ctx context.Context, input *ListCategoriesByTypeInput) (*ListCategoriesOutput, error) {
	categoryType, err := service.ParseType(input.Type)
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}
	return h.listByType(ctx, categoryType)
}

func (h *ListCategoriesHandler) fixedType(categoryType service.Type) func(context.Context, *struct{}) (*ListCategoriesOutput, error) {
	return func(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
		return h.listByType(ctx, categoryType)
	}
}

func (h *ListCategoriesHandler) listByType(ctx context.Context, categoryType service.Type) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("categoryType", string(categoryType))

	stopTimer := logData.AddTiming("listCategoriesMs")
	categories, err := h.CategoryService.ListByType(ctx, categoryType)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	logData.AddData("categoryCount", len(categories))
	return &ListCategoriesOutput{Body: fromServiceList(categories)}, nil
}
