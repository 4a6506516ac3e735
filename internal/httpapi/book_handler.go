package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MohammedElgendy11/my-bookstore/internal/catalog"
)

type BookHandler struct {
	books *catalog.Store
}

func NewBookHandler(books *catalog.Store) *BookHandler {
	return &BookHandler{books: books}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.books.List())
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "bookId")
	if bookID == "" {
		writeError(w, http.StatusBadRequest, "missing bookId")
		return
	}

	b, ok := h.books.Get(bookID)
	if !ok {
		writeError(w, http.StatusNotFound, "book not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}
