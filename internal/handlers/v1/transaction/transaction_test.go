package transaction

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-tracker/internal/handlers/apierr"
	"github.com/carson-networks/expense-tracker/internal/service"
)

// -- list --

func TestParseListTransactionsInput(t *testing.T) {
	query, err := parseListTransactionsInput(&ListTransactionsInput{CategoryID: 4, Type: "INCOME"})
	require.NoError(t, err)
	assert.Equal(t, listQuery{categoryID: 4, txType: service.TypeIncome}, query)

	query, err = parseListTransactionsInput(&ListTransactionsInput{})
	require.NoError(t, err)
	assert.Equal(t, listQuery{}, query)
}

func TestHTTP_ListTransactions_Routing(t *testing.T) {
	tests := []struct {
		path   string
		method string
		args   []any
	}{
		{path: "/api/transactions", method: "ListAll", args: []any{mock.Anything}},
		{path: "/api/transactions?type=INCOME", method: "ListByType", args: []any{mock.Anything, service.TypeIncome}},
		{path: "/api/transactions/type/EXPENSE", method: "ListByType", args: []any{mock.Anything, service.TypeExpense}},
		{path: "/api/transactions?categoryId=3", method: "ListByCategory", args: []any{mock.Anything, int64(3)}},
		{path: "/api/transactions/category/3", method: "ListByCategory", args: []any{mock.Anything, int64(3)}},
		{
			path:   "/api/transactions?categoryId=3&type=EXPENSE",
			method: "ListByCategoryAndType",
			args:   []any{mock.Anything, int64(3), service.TypeExpense},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			mockSvc := new(mockTransactionService)
			mockSvc.On(tt.method, tt.args...).Return([]service.Transaction{*lunch()}, nil)

			resp := newTestAPI(t, mockSvc).Get(tt.path)

			assert.Equal(t, http.StatusOK, resp.Code)
			var body []Transaction
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Len(t, body, 1)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHTTP_ListTransactions_BadType(t *testing.T) {
	for _, path := range []string{"/api/transactions?type=TRANSFER", "/api/transactions/type/TRANSFER"} {
		t.Run(path, func(t *testing.T) {
			mockSvc := new(mockTransactionService)

			resp := newTestAPI(t, mockSvc).Get(path)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}
}

func TestHTTP_ListTransactionsByCategory_UnknownCategory(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListByCategory", mock.Anything, int64(404)).Return([]service.Transaction{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/transactions/category/404")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

// -- get / delete --

func TestHTTP_GetTransaction(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Get", mock.Anything, int64(1)).Return(lunch(), nil)

	resp := newTestAPI(t, mockSvc).Get("/api/transactions/1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 50.0, body.Amount)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Get", mock.Anything, int64(2)).Return(nil, service.ErrTransactionNotFound)

	resp := newTestAPI(t, mockSvc).Get("/api/transactions/2")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Delete", mock.Anything, int64(1)).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/api/transactions/1")

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestHTTP_DeleteTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Delete", mock.Anything, int64(1)).Return(service.ErrTransactionNotFound)

	resp := newTestAPI(t, mockSvc).Delete("/api/transactions/1")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- update --

func TestParseUpdateTransactionInput(t *testing.T) {
	amount := 60.0
	txType := "INCOME"
	date := "2025-02-01T00:00:00Z"

	patch, err := parseUpdateTransactionInput(&UpdateTransactionInput{
		ID: 1,
		Body: UpdateTransactionBody{
			Amount: &amount,
			Type:   &txType,
			Date:   &date,
		},
	})

	require.NoError(t, err)
	assert.True(t, patch.Amount.GetOrZero().Equal(decimal.NewFromInt(60)))
	assert.Equal(t, service.TypeIncome, patch.Type.GetOrZero())
	assert.True(t, patch.Date.GetOrZero().Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, patch.Name.IsUnset())
	assert.True(t, patch.Description.IsUnset())
	assert.True(t, patch.CategoryID.IsUnset())
}

func TestHTTP_UpdateTransaction_InactiveCategory(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p service.TransactionPatch) bool {
		return p.Amount.GetOrZero().Equal(decimal.NewFromInt(60)) && p.CategoryID.IsUnset()
	})).Return(nil, &service.ValidationError{
		Kind: service.KindInactiveCategory,
		Msg:  "category 'Food' is not active",
	})

	resp := newTestAPI(t, mockSvc).Put("/api/transactions/1", map[string]any{"amount": 60.00})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	var apiErr apierr.Error
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiErr))
	assert.Equal(t, "inactive_category", apiErr.Kind)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	updated := lunch()
	updated.Description = "Dinner"
	mockSvc.On("Update", mock.Anything, int64(1), service.TransactionPatch{
		Description: omit.From("Dinner"),
	}).Return(updated, nil)

	resp := newTestAPI(t, mockSvc).Put("/api/transactions/1", map[string]any{"description": "Dinner"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Dinner", body.Description)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("Update", mock.Anything, int64(8), mock.Anything).Return(nil, service.ErrTransactionNotFound)

	resp := newTestAPI(t, mockSvc).Put("/api/transactions/8", map[string]any{"amount": 1})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateTransaction_NegativeAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Put("/api/transactions/1", map[string]any{"amount": -1})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "Update")
}

func TestHTTP_UpdateTransaction_AmountOutOfRange(t *testing.T) {
	amounts := map[string]float64{
		"sub-cent":        0.001,
		"three decimals":  12.345,
		"overflow column": 1e18,
	}

	for name, amount := range amounts {
		t.Run(name, func(t *testing.T) {
			mockSvc := new(mockTransactionService)

			resp := newTestAPI(t, mockSvc).Put("/api/transactions/1", map[string]any{"amount": amount})

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			mockSvc.AssertNotCalled(t, "Update")
		})
	}
}
