package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MohammedElgendy11/my-bookstore/internal/cart"
	"github.com/MohammedElgendy11/my-bookstore/internal/catalog"
)

type CartHandler struct {
	books *catalog.Store
	carts *cart.Store
}

func NewCartHandler(books *catalog.Store, carts *cart.Store) *CartHandler {
	return &CartHandler{books: books, carts: carts}
}

type cartView struct {
	cart.Snapshot
	ItemCount int `json:"itemCount"`
}

// view renders one consistent snapshot so lines, total and item count in a
// response always agree even while other requests mutate the cart.
func (h *CartHandler) view(c *cart.Cart) cartView {
	snap := c.Snapshot()
	return cartView{Snapshot: snap, ItemCount: snap.ItemCount()}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Fetch(SessionID(r.Context()))
	writeJSON(w, http.StatusOK, h.view(c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		BookID string `json:"bookId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.BookID == "" {
		writeError(w, http.StatusBadRequest, "missing bookId")
		return
	}

	b, ok := h.books.Get(body.BookID)
	if !ok {
		writeError(w, http.StatusNotFound, "book not found")
		return
	}

	c := h.carts.Fetch(SessionID(r.Context()))
	c.AddBook(b)
	writeJSON(w, http.StatusOK, h.view(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	if bookID == "" {
		writeError(w, http.StatusBadRequest, "missing bookId")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	// Quantity zero or below means removal, same as the engine's contract.
	c := h.carts.Fetch(SessionID(r.Context()))
	c.SetQuantity(bookID, body.Quantity)
	writeJSON(w, http.StatusOK, h.view(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	if bookID == "" {
		writeError(w, http.StatusBadRequest, "missing bookId")
		return
	}

	c := h.carts.Fetch(SessionID(r.Context()))
	c.RemoveBook(bookID)
	writeJSON(w, http.StatusOK, h.view(c))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Fetch(SessionID(r.Context()))
	c.Clear()
	writeJSON(w, http.StatusOK, h.view(c))
}
