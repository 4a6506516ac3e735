// Package checkout turns a final cart plus customer details into a
// submitted order and hands it to the notification sink.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/MohammedElgendy11/my-bookstore/internal/cart"
	"github.com/MohammedElgendy11/my-bookstore/internal/notify"
)

const orderNumberPrefix = "NBK-"

var errSinkRequired = errors.New("checkout: sink is required")

// CoordinatorDeps wires the sink and the test hooks for the coordinator.
// Clock, OrderNumber and Logger are optional.
type CoordinatorDeps struct {
	Sink        notify.Sink
	Clock       func() time.Time
	OrderNumber func() string
	Logger      *zap.Logger
}

// Coordinator runs the submit flow: validate, snapshot, notify. It makes at
// most one sink call per Submit and at most one outstanding call per
// session.
type Coordinator struct {
	sink      notify.Sink
	now       func() time.Time
	newNumber func() string
	logger    *zap.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewCoordinator(deps CoordinatorDeps) (*Coordinator, error) {
	if deps.Sink == nil {
		return nil, errSinkRequired
	}

	now := deps.Clock
	if now == nil {
		now = time.Now
	}
	newNumber := deps.OrderNumber
	if newNumber == nil {
		// ULID carries a millisecond timestamp plus 80 random bits, which
		// covers the uniqueness requirement within and across sessions.
		newNumber = func() string { return orderNumberPrefix + ulid.Make().String() }
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Coordinator{
		sink:      deps.Sink,
		now:       now,
		newNumber: newNumber,
		logger:    logger,
		inflight:  make(map[string]struct{}),
	}, nil
}

// Submit validates the cart and customer, builds the order snapshot and
// invokes the sink once. On sink failure the cart is left untouched and the
// caller may resubmit; on success the caller is responsible for clearing
// the cart.
func (co *Coordinator) Submit(ctx context.Context, sessionID string, c *cart.Cart, customer Customer) (Order, error) {
	if c == nil {
		return Order{}, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}
	snap := c.Snapshot()
	if len(snap.Lines) == 0 {
		return Order{}, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}
	if err := customer.Validate(); err != nil {
		return Order{}, err
	}

	if err := co.acquire(sessionID); err != nil {
		return Order{}, err
	}
	defer co.release(sessionID)

	order := Order{
		Number:    co.newNumber(),
		Customer:  customer,
		Lines:     snap.Lines,
		Total:     snap.Total,
		CreatedAt: co.now().UTC(),
	}

	receipt, err := co.sink.SendOrderEmail(ctx, buildOrderEmail(order))
	if err != nil {
		co.logger.Warn("order notification failed",
			zap.String("orderNumber", order.Number),
			zap.Error(err))
		return Order{}, &NotificationError{Reason: "sink call failed", Err: err}
	}

	co.logger.Info("order submitted",
		zap.String("orderNumber", order.Number),
		zap.Float64("total", order.Total),
		zap.String("customerEmailId", receipt.CustomerEmailID),
		zap.String("ownerEmailId", receipt.OwnerEmailID))

	return order, nil
}

func (co *Coordinator) acquire(sessionID string) error {
	co.mu.Lock()
	defer co.mu.Unlock()
	if _, busy := co.inflight[sessionID]; busy {
		return ErrSubmissionInFlight
	}
	co.inflight[sessionID] = struct{}{}
	return nil
}

func (co *Coordinator) release(sessionID string) {
	co.mu.Lock()
	defer co.mu.Unlock()
	delete(co.inflight, sessionID)
}

func buildOrderEmail(o Order) notify.OrderEmail {
	req := notify.OrderEmail{
		CustomerInfo: notify.CustomerInfo{
			Name:    o.Customer.Name,
			Email:   o.Customer.Email,
			Phone:   o.Customer.Phone,
			Address: o.Customer.FormattedAddress(),
		},
		Total:       o.Total,
		OrderNumber: o.Number,
	}
	for _, ln := range o.Lines {
		req.CartItems = append(req.CartItems, notify.CartItem{
			Book: notify.BookSummary{
				ID:     ln.Book.ID,
				Title:  ln.Book.Title,
				Author: ln.Book.Author,
				Price:  ln.Book.Price,
			},
			Quantity: ln.Quantity,
		})
	}
	return req
}
