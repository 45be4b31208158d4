package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

type transactionGetter interface {
	Get(ctx context.Context, id int64) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /api/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/api/transactions/{id}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *TransactionIDInput) (*TransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("transactionID", input.ID)

	stopTimer := logData.AddTiming("getTransactionMs")
	tx, err := h.TransactionService.Get(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	return &TransactionOutput{Body: fromService(tx)}, nil
}
