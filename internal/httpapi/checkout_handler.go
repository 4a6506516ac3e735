package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MohammedElgendy11/my-bookstore/internal/cart"
	"github.com/MohammedElgendy11/my-bookstore/internal/checkout"
)

type CheckoutHandler struct {
	carts       *cart.Store
	coordinator *checkout.Coordinator
	timeout     time.Duration
}

func NewCheckoutHandler(carts *cart.Store, coordinator *checkout.Coordinator, timeout time.Duration) *CheckoutHandler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CheckoutHandler{carts: carts, coordinator: coordinator, timeout: timeout}
}

// Submit runs the checkout flow for the session's cart. The cart is cleared
// here, after the coordinator reports success, per the coordinator's
// contract.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var customer checkout.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	sessionID := SessionID(r.Context())
	c := h.carts.Fetch(sessionID)

	order, err := h.coordinator.Submit(ctx, sessionID, c, customer)
	switch {
	case err == nil:
		c.Clear()
		writeJSON(w, http.StatusOK, order)
	case errors.Is(err, checkout.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, checkout.ErrSubmissionInFlight):
		writeError(w, http.StatusConflict, "an order submission is already in progress")
	default:
		var notifErr *checkout.NotificationError
		if errors.As(err, &notifErr) {
			writeError(w, http.StatusBadGateway, "order could not be submitted; your cart has been kept, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "checkout failed")
	}
}
