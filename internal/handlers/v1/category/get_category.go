package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

type categoryGetter interface {
	Get(ctx context.Context, id int64) (*service.Category, error)
}

// GetCategoryHandler handles GET /api/categories/{id}.
type GetCategoryHandler struct {
	CategoryService categoryGetter
}

func NewGetCategoryHandler(svc categoryGetter) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/api/categories/{id}",
		Summary:     "Get category",
		Description: "Returns the category whether or not it is active.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *CategoryIDInput) (*CategoryOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("categoryID", input.ID)

	stopTimer := logData.AddTiming("getCategoryMs")
	result, err := h.CategoryService.Get(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	return &CategoryOutput{Body: fromService(result)}, nil
}
