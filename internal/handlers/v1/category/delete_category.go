package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
)

type categoryDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteCategoryHandler handles DELETE /api/categories/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/api/categories/{id}",
		Summary:       "Delete category",
		Description:   "Permanently deletes a category. Categories used by transactions must be deactivated instead.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *CategoryIDInput) (*struct{}, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("categoryID", input.ID)

	stopTimer := logData.AddTiming("deleteCategoryMs")
	err := h.CategoryService.Delete(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	return &struct{}{}, nil
}
