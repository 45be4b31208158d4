package category

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

// UpdateCategoryBody is the request body for updating a category. Omitted
// fields keep their stored value.
type UpdateCategoryBody struct {
	Name     *string `json:"name,omitempty" minLength:"1" maxLength:"100" doc:"New category name"`
	IsActive *bool   `json:"isActive,omitempty" doc:"New active state"`
}

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Category id"`
	Body UpdateCategoryBody
}

type categoryUpdater interface {
	Update(ctx context.Context, id int64, patch service.CategoryPatch) (*service.Category, error)
}

// UpdateCategoryHandler handles PUT /api/categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/api/categories/{id}",
		Summary:     "Update category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func parseUpdateCategoryInput(input *UpdateCategoryInput) service.CategoryPatch {
	return service.CategoryPatch{
		Name:     omit.FromPtr(input.Body.Name),
		IsActive: omit.FromPtr(input.Body.IsActive),
	}
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("categoryID", input.ID)

	stopTimer := logData.AddTiming("updateCategoryMs")
	updated, err := h.CategoryService.Update(ctx, input.ID, parseUpdateCategoryInput(input))
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	return &CategoryOutput{Body: fromService(updated)}, nil
}
