package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

// CreateCategoryBody is the request body for creating a category.
type CreateCategoryBody struct {
	Name string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Category name"`
	Type string `json:"type" required:"true" enum:"EXPENSE,INCOME" doc:"Category type"`
}

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	Body CreateCategoryBody
}

type categoryCreator interface {
	Create(ctx context.Context, name string, categoryType service.Type) (*service.Category, error)
}

// CreateCategoryHandler handles POST /api/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/api/categories",
		Summary:       "Create category",
		Description:   "Creates an active category. The name must be unused for the given type.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	categoryType, err := service.ParseType(input.Body.Type)
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	stopTimer := logData.AddTiming("createCategoryMs")
	created, err := h.CategoryService.Create(ctx, input.Body.Name, categoryType)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	logData.AddData("categoryID", created.ID)
	return &CategoryOutput{Body: fromService(created)}, nil
}
