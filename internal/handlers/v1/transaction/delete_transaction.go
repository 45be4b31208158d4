package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
)

type transactionDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteTransactionHandler handles DELETE /api/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/api/transactions/{id}",
		Summary:       "Delete transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *TransactionIDInput) (*struct{}, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("transactionID", input.ID)

	stopTimer := logData.AddTiming("deleteTransactionMs")
	err := h.TransactionService.Delete(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	return &struct{}{}, nil
}
