package cart

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/MohammedElgendy11/my-bookstore/internal/catalog"
)

// Line is one book plus a quantity. A cart never holds two lines for the
// same book id, and a stored line always has quantity >= 1.
type Line struct {
	Book     catalog.Book `json:"book"`
	Quantity int          `json:"quantity"`
}

// Snapshot is a consistent copy of a cart's state, taken under the cart's
// lock. Handlers serve it and checkout builds orders from it, so the lines
// and total in one snapshot always agree with each other. Lines is never
// nil: an empty cart snapshots as an empty array.
type Snapshot struct {
	Lines     []Line    `json:"items"`
	Total     float64   `json:"totalAmount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemCount is the sum of all quantities. Derived for display, not stored.
func (s Snapshot) ItemCount() int {
	n := 0
	for _, ln := range s.Lines {
		n += ln.Quantity
	}
	return n
}

// Cart holds a session's line items in insertion order plus the derived
// total. The total is recomputed in full after every mutation rather than
// patched incrementally, so it can never drift from the lines.
//
// The cart carries its own lock: browsers fire parallel requests with the
// same session cookie, and the store's sweeper reads carts from another
// goroutine.
type Cart struct {
	mu        sync.Mutex
	lines     []Line
	total     float64
	updatedAt time.Time
	index     map[string]int // book id -> position in lines
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{
		index:     make(map[string]int),
		updatedAt: time.Now().UTC(),
	}
}

// AddBook merges the book into the cart: an existing line's quantity is
// incremented by one, otherwise a new line with quantity 1 is appended.
// Never fails.
func (c *Cart) AddBook(b catalog.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[b.ID]; ok {
		c.lines[i].Quantity++
	} else {
		c.index[b.ID] = len(c.lines)
		c.lines = append(c.lines, Line{Book: b, Quantity: 1})
	}
	c.recompute()
}

// RemoveBook deletes the line for the given book id. Removing an absent id
// is a no-op, not an error.
func (c *Cart) RemoveBook(bookID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(bookID)
}

// SetQuantity sets the quantity of the line for the given book id. A
// quantity of zero or below behaves exactly like RemoveBook. Unknown ids
// are a no-op.
func (c *Cart) SetQuantity(bookID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(bookID)
		return
	}
	i, ok := c.index[bookID]
	if !ok {
		return
	}
	c.lines[i].Quantity = quantity
	c.recompute()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	c.index = make(map[string]int)
	c.recompute()
}

// ItemCount is the sum of all quantities.
func (c *Cart) ItemCount() int {
	return c.Snapshot().ItemCount()
}

// Snapshot returns a consistent copy of the cart, safe to keep after the
// cart is mutated or cleared.
func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return Snapshot{Lines: lines, Total: c.total, UpdatedAt: c.updatedAt}
}

// MarshalJSON serializes the cart through a snapshot so readers never see a
// half-applied mutation.
func (c *Cart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Snapshot())
}

func (c *Cart) lastTouched() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updatedAt
}

// removeLocked and recompute expect c.mu to be held.
func (c *Cart) removeLocked(bookID string) {
	i, ok := c.index[bookID]
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.index = make(map[string]int, len(c.lines))
	for j, ln := range c.lines {
		c.index[ln.Book.ID] = j
	}
	c.recompute()
}

func (c *Cart) recompute() {
	total := 0.0
	for _, ln := range c.lines {
		total += float64(ln.Quantity) * ln.Book.Price
	}
	c.total = total
	c.updatedAt = time.Now().UTC()
}
