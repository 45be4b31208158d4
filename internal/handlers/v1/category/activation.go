package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

type categoryActivator interface {
	SoftDelete(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) (*service.Category, error)
}

// ActivationHandler handles the deactivate and activate endpoints.
type ActivationHandler struct {
	CategoryService categoryActivator
}

func NewActivationHandler(svc categoryActivator) *ActivationHandler {
	return &ActivationHandler{CategoryService: svc}
}

func (h *ActivationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "deactivate-category",
		Method:        http.MethodPatch,
		Path:          "/api/categories/{id}/deactivate",
		Summary:       "Deactivate category",
		Description:   "Soft deletes a category. Existing transactions keep their reference.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handleDeactivate)

	huma.Register(api, huma.Operation{
		OperationID: "activate-category",
		Method:      http.MethodPatch,
		Path:        "/api/categories/{id}/activate",
		Summary:     "Activate category",
		Tags:        []string{"Categories"},
	}, h.handleActivate)
}

func (h *ActivationHandler) handleDeactivate(ctx context.Context, input *CategoryIDInput) (*struct{}, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("categoryID", input.ID)

	stopTimer := logData.AddTiming("deactivateCategoryMs")
	err := h.CategoryService.SoftDelete(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	return &struct{}{}, nil
}

func (h *ActivationHandler) handleActivate(ctx context.Context, input *CategoryIDInput) (*CategoryOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("categoryID", input.ID)

	stopTimer := logData.AddTiming("activateCategoryMs")
	activated, err := h.CategoryService.Activate(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	return &CategoryOutput{Body: fromService(activated)}, nil
}
