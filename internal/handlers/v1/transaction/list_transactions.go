package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

// ListTransactionsInput is the Huma input for GET /api/transactions.
type ListTransactionsInput struct {
	CategoryID int64  `query:"categoryId" minimum:"1" doc:"Only transactions of this category"`
	Type       string `query:"type" enum:"EXPENSE,INCOME" doc:"Only transactions of this type"`
}

// ListTransactionsByTypeInput is the Huma input for GET /api/transactions/type/{type}.
type ListTransactionsByTypeInput struct {
	Type string `path:"type" enum:"EXPENSE,INCOME" doc:"Transaction type"`
}

// ListTransactionsByCategoryInput is the Huma input for GET /api/transactions/category/{categoryId}.
type ListTransactionsByCategoryInput struct {
	CategoryID int64 `path:"categoryId" minimum:"1" doc:"Category id"`
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListAll(ctx context.Context) ([]service.Transaction, error)
	ListByType(ctx context.Context, transactionType service.Type) ([]service.Transaction, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]service.Transaction, error)
	ListByCategoryAndType(ctx context.Context, categoryID int64, transactionType service.Type) ([]service.Transaction, error)
}

// listQuery is the parsed form of every listing endpoint.
type listQuery struct {
	categoryID int64
	txType     service.Type
}

// ListTransactionsHandler serves every transaction listing endpoint.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoints with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions",
		Summary:     "List transactions",
		Description: "Returns transactions newest first, optionally narrowed by category and type.",
		Tags:        []string{"Transactions"},
	}, h.handle)

	huma.Register(api, huma.Operation{
		OperationID: "list-transactions-by-type",
		Method:      http.MethodGet,
		Path:        "/api/transactions/type/{type}",
		Summary:     "List transactions by type",
		Tags:        []string{"Transactions"},
	}, h.handleByType)

	huma.Register(api, huma.Operation{
		OperationID: "list-transactions-by-category",
		Method:      http.MethodGet,
		Path:        "/api/transactions/category/{categoryId}",
		Summary:     "List transactions by category",
		Description: "Returns an empty list when the category does not exist.",
		Tags:        []string{"Transactions"},
	}, h.handleByCategory)
}

// parseListTransactionsInput turns the optional query filters into a listQuery.
func parseListTransactionsInput(input *ListTransactionsInput) (listQuery, error) {
	query := listQuery{categoryID: input.CategoryID}
	if input.Type != "" {
		txType, err := service.ParseType(input.Type)
		if err != nil {
			return listQuery{}, err
		}
		query.txType = txType
	}
	return query, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}
	return h.list(ctx, query)
}

func (h *ListTransactionsHandler) handleByType(ctx context.Context, input *ListTransactionsByTypeInput) (*ListTransactionsOutput, error) {
	txType, err := service.ParseType(input.Type)
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}
	return h.list(ctx, listQuery{txType: txType})
}

func (h *ListTransactionsHandler) handleByCategory(ctx context.Context, input *ListTransactionsByCategoryInput) (*ListTransactionsOutput, error) {
	return h.list(ctx, listQuery{categoryID: input.CategoryID})
}

func (h *ListTransactionsHandler) list(ctx context.Context, query listQuery) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	if query.categoryID != 0 {
		logData.AddData("categoryID", query.categoryID)
	}
	if query.txType != "" {
		logData.AddData("transactionType", string(query.txType))
	}

	var (
		transactions []service.Transaction
		err          error
	)
	stopTimer := logData.AddTiming("listTransactionsMs")
	switch {
	case query.categoryID != 0 && query.txType != "":
		transactions, err = h.TransactionService.ListByCategoryAndType(ctx, query.categoryID, query.txType)
	case query.categoryID != 0:
		transactions, err = h.TransactionService.ListByCategory(ctx, query.categoryID)
	case query.txType != "":
		transactions, err = h.TransactionService.ListByType(ctx, query.txType)
	default:
		transactions, err = h.TransactionService.ListAll(ctx)
	}
	stopTimer()
	if err != nil {
		return nil, apierr.FromService(ctx, err)
	}

	logData.AddData("transactionCount", len(transactions))
	return &ListTransactionsOutput{Body: fromServiceList(transactions)}, nil
}
