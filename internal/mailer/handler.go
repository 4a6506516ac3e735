package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/MohammedElgendy11/my-bookstore/internal/notify"
)

// OrderSender is the piece of Mailer the handler needs; tests swap in a
// fake.
type OrderSender interface {
	SendOrderEmails(ctx context.Context, req notify.OrderEmail) (notify.Receipt, error)
}

// Handler exposes the send-order-email function endpoint. Preflight OPTIONS
// requests are answered with permissive CORS headers before the POST is
// honored.
type Handler struct {
	sender OrderSender
	logger *zap.Logger
}

func NewHandler(sender OrderSender, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{sender: sender, logger: logger}
}

func writeCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

// SendOrderEmail handles OPTIONS and POST for the function endpoint.
func (h *Handler) SendOrderEmail(w http.ResponseWriter, r *http.Request) {
	writeCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var req notify.OrderEmail
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	h.logger.Info("processing order email",
		zap.String("orderNumber", req.OrderNumber),
		zap.String("customerEmail", req.CustomerInfo.Email))

	receipt, err := h.sender.SendOrderEmails(ctx, req)
	if err != nil {
		h.logger.Error("order email failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"customerEmailId": receipt.CustomerEmailID,
		"ownerEmailId":    receipt.OwnerEmailID,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
