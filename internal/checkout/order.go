package checkout

import (
	"time"

	"github.com/MohammedElgendy11/my-bookstore/internal/cart"
)

// Order is an immutable snapshot of a cart plus customer details, created
// once per successful submission and never mutated afterward.
type Order struct {
	Number    string      `json:"orderNumber"`
	Customer  Customer    `json:"customer"`
	Lines     []cart.Line `json:"items"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
}
