// Package notify defines the order-email boundary: the wire payload the
// mailer accepts and the Sink contract the checkout coordinator calls.
package notify

import "context"

// OrderEmail is the payload posted to the order-email endpoint.
type OrderEmail struct {
	CustomerInfo CustomerInfo `json:"customerInfo"`
	CartItems    []CartItem   `json:"cartItems"`
	Total        float64      `json:"total"`
	OrderNumber  string       `json:"orderNumber"`
}

// CustomerInfo carries the customer contact details with the shipping
// address already formatted into a single line.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
}

type CartItem struct {
	Book     BookSummary `json:"book"`
	Quantity int         `json:"quantity"`
}

// BookSummary is the slice of the catalog record the emails need.
type BookSummary struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
}

// Receipt identifies the deliveries a successful sink call produced.
type Receipt struct {
	CustomerEmailID string `json:"customerEmailId"`
	OwnerEmailID    string `json:"ownerEmailId"`
}

// Sink delivers order confirmation messages. Implementations make at most
// one delivery attempt per call; retry is the caller's decision.
type Sink interface {
	SendOrderEmail(ctx context.Context, req OrderEmail) (Receipt, error)
}
