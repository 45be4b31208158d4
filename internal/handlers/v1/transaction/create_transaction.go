package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Name        string  `json:"name,omitempty" maxLength:"255" doc:"Short name, defaults to the description"`
	Amount      float64 `json:"amount" required:"true" minimum:"0.01" exclusiveMaximum:"1e17" doc:"Positive amount with at most two decimal places"`
	Description string  `json:"description" required:"true" minLength:"1" maxLength:"255" doc:"What the money was for"`
	Type        string  `json:"type" required:"true" enum:"EXPENSE,INCOME" doc:"Must match the category type"`
	CategoryID  int64   `json:"categoryId" required:"true" minimum:"1" doc:"Active category of the same type"`
	Date        string  `json:"date,omitempty" doc:"RFC3339 transaction date, defaults to now"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

type transactionCreator interface {
	Create(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /api/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/api/transactions",
		Summary:       "Create transaction",
		Description:   "Creates a transaction against an active category of the same type.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput converts the request body into the service input.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreate, error) {
	txType, err := service.ParseType(input.Body.Type)
	if err != nil {
		return service.TransactionCreate{}, err
	}

	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return service.TransactionCreate{}, err
	}

	create := service.TransactionCreate{
		Name:        input.Body.Name,
		Amount:      amount,
		Description: input.Body.Description,
		Type:        txType,
		CategoryID:  input.Body.CategoryID,
	}
	if input.Body.Date != "" {
		create.Date, err = parseDate(input.Body.Date)
		if err != nil {
			return service.TransactionCreate{}, err
		}
	}
	return create, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*TransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, asAPIError(ctx, err)
	}
	logData.AddData("categoryID", create.CategoryID)

	stopTimer := logData.AddTiming("createTransactionMs")
	created, err := h.TransactionService.Create(ctx, create)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	logData.AddData("transactionID", created.ID)
	return &TransactionOutput{Body: fromService(created)}, nil
}

// asAPIError passes huma errors through and translates everything else.
func asAPIError(ctx context.Context, err error) error {
	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}
	return apierr.FromService(ctx, err)
}
