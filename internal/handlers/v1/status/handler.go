package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/carson-networks/expense-tracker/internal/logging"
)

const pingTimeout = 2 * time.Second

// Body is the JSON document returned by GET /status.
type Body struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Database pinger
}

func NewHandler(db pinger) Handler {
	return Handler{Database: db}
}

// Handler reports 200 when the database answers a ping and 503 otherwise.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
	defer cancel()

	stopTimer := logData.AddTiming("pingMs")
	err := h.Database.Ping(ctx)
	stopTimer()
	if err != nil {
		writeBody(w, http.StatusServiceUnavailable, Body{Status: "DOWN", Database: "DISCONNECTED"})
		return fmt.Errorf("status: database ping: %w", err)
	}

	writeBody(w, http.StatusOK, Body{Status: "UP", Database: "CONNECTED"})
	return nil
}

func writeBody(w http.ResponseWriter, status int, body Body) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
