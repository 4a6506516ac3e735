package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/MohammedElgendy11/my-bookstore/internal/cart"
	"github.com/MohammedElgendy11/my-bookstore/internal/catalog"
	"github.com/MohammedElgendy11/my-bookstore/internal/checkout"
)

// Deps wires everything the storefront router needs.
type Deps struct {
	Logger          *zap.Logger
	Books           *catalog.Store
	Carts           *cart.Store
	Coordinator     *checkout.Coordinator
	CheckoutTimeout time.Duration
	AllowOrigins    []string
}

func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))
	r.Use(CORS(d.AllowOrigins))

	r.Get("/health", healthHandler)

	books := NewBookHandler(d.Books)
	carts := NewCartHandler(d.Books, d.Carts)
	co := NewCheckoutHandler(d.Carts, d.Coordinator, d.CheckoutTimeout)

	r.Route("/api", func(r chi.Router) {
		r.Use(Session)

		r.Get("/books", books.List)
		r.Get("/books/{bookId}", books.Get)

		r.Get("/cart", carts.Get)
		r.Delete("/cart", carts.Clear)
		r.Post("/cart/items", carts.AddItem)
		r.Put("/cart/items/{bookId}", carts.UpdateQuantity)
		r.Delete("/cart/items/{bookId}", carts.RemoveItem)

		r.Post("/checkout", co.Submit)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "service": "storefront"})
}
