package transaction

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

// UpdateTransactionBody is the request body for updating a transaction.
// Omitted fields keep their stored value.
type UpdateTransactionBody struct {
	Name        *string  `json:"name,omitempty" maxLength:"255" doc:"Short name, blank falls back to the description"`
	Amount      *float64 `json:"amount,omitempty" minimum:"0.01" exclusiveMaximum:"1e17" doc:"Positive amount with at most two decimal places"`
	Description *string  `json:"description,omitempty" minLength:"1" maxLength:"255" doc:"What the money was for"`
	Type        *string  `json:"type,omitempty" enum:"EXPENSE,INCOME" doc:"Must match the effective category type"`
	CategoryID  *int64   `json:"categoryId,omitempty" minimum:"1" doc:"Move to another active category"`
	Date        *string  `json:"date,omitempty" doc:"RFC3339 transaction date"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"Transaction id"`
	Body UpdateTransactionBody
}

type transactionUpdater interface {
	Update(ctx context.Context, id int64, patch service.TransactionPatch) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /api/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/api/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Applies the supplied fields. The resulting category must be active and of the same type.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseUpdateTransactionInput converts the optional body fields into a patch.
func parseUpdateTransactionInput(input *UpdateTransactionInput) (service.TransactionPatch, error) {
	body := input.Body
	patch := service.TransactionPatch{
		Name:        omit.FromPtr(body.Name),
		Description: omit.FromPtr(body.Description),
		CategoryID:  omit.FromPtr(body.CategoryID),
	}

	if body.Amount != nil {
		amount, err := parseAmount(*body.Amount)
		if err != nil {
			return service.TransactionPatch{}, err
		}
		patch.Amount = omit.From(amount)
	}
	if body.Type != nil {
		txType, err := service.ParseType(*body.Type)
		if err != nil {
			return service.TransactionPatch{}, err
		}
		patch.Type = omit.From(txType)
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			return service.TransactionPatch{}, err
		}
		patch.Date = omit.From(date)
	}
	return patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("transactionID", input.ID)

	patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, asAPIError(ctx, err)
	}

	stopTimer := logData.AddTiming("updateTransactionMs")
	updated, err := h.TransactionService.Update(ctx, input.ID, patch)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	return &TransactionOutput{Body: fromService(updated)}, nil
}
