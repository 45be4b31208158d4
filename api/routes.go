package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/expense-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/expense-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/expense-tracker/internal/logging"
	"github.com/carson-networks/expense-tracker/internal/service"
)

const shutdownTimeout = 10 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage pinger
}

// Handler builds the full route table: the huma API under /api plus its
// docs, and the plain /status endpoint.
func (r *Rest) Handler() http.Handler {
	apiMux := http.NewServeMux()
	api := humago.New(apiMux, huma.DefaultConfig("Expense Tracker API", "1.0.0"))

	category.NewListCategoriesHandler(r.Service.Category).Register(api)
	category.NewGetCategoryHandler(r.Service.Category).Register(api)
	category.NewCreateCategoryHandler(r.Service.Category).Register(api)
	category.NewUpdateCategoryHandler(r.Service.Category).Register(api)
	category.NewDeleteCategoryHandler(r.Service.Category).Register(api)
	category.NewActivationHandler(r.Service.Category).Register(api)

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)

	statusHandler := status.NewHandler(r.Storage)

	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/", logging.Middleware(r.Logger, apiMux))
	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
