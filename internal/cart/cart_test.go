package cart

import (
	"encoding/json"
	"math"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MohammedElgendy11/my-bookstore/internal/catalog"
)

func book(id string, price float64) catalog.Book {
	return catalog.Book{ID: id, Title: "Book " + id, Author: "Author " + id, Price: price}
}

// checkInvariants asserts the properties that must hold after every single
// operation: the total is the exact weighted sum, no two lines share a book
// id, and every stored line has a positive quantity.
func checkInvariants(t *testing.T, c *Cart) {
	t.Helper()

	snap := c.Snapshot()
	sum := 0.0
	seen := make(map[string]bool, len(snap.Lines))
	for _, ln := range snap.Lines {
		if ln.Quantity < 1 {
			t.Fatalf("line %q has quantity %d", ln.Book.ID, ln.Quantity)
		}
		if seen[ln.Book.ID] {
			t.Fatalf("duplicate line for book %q", ln.Book.ID)
		}
		seen[ln.Book.ID] = true
		sum += float64(ln.Quantity) * ln.Book.Price
	}
	if math.Abs(snap.Total-sum) > 1e-9 {
		t.Fatalf("total %v drifted from weighted sum %v", snap.Total, sum)
	}
}

func TestAddBookMergesExistingLine(t *testing.T) {
	c := New()
	c.AddBook(book("A", 10))
	c.AddBook(book("B", 5))
	c.AddBook(book("A", 10))
	checkInvariants(t, c)

	snap := c.Snapshot()
	if len(snap.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(snap.Lines))
	}
	if snap.Lines[0].Book.ID != "A" || snap.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected first line %+v", snap.Lines[0])
	}
	if snap.Lines[1].Book.ID != "B" || snap.Lines[1].Quantity != 1 {
		t.Fatalf("unexpected second line %+v", snap.Lines[1])
	}
	if snap.Total != 25.00 {
		t.Fatalf("expected total 25.00, got %v", snap.Total)
	}
}

func TestAddBookPreservesInsertionOrder(t *testing.T) {
	c := New()
	for _, id := range []string{"C", "A", "B"} {
		c.AddBook(book(id, 1))
	}
	checkInvariants(t, c)

	snap := c.Snapshot()
	got := []string{snap.Lines[0].Book.ID, snap.Lines[1].Book.ID, snap.Lines[2].Book.ID}
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	c := New()
	c.AddBook(book("A", 10))
	c.AddBook(book("A", 10))

	c.SetQuantity("A", 0)
	checkInvariants(t, c)

	snap := c.Snapshot()
	if len(snap.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(snap.Lines))
	}
	if snap.Total != 0.00 {
		t.Fatalf("expected total 0.00, got %v", snap.Total)
	}
}

func TestSetQuantityNegativeBehavesLikeRemove(t *testing.T) {
	build := func() *Cart {
		c := New()
		c.AddBook(book("A", 10))
		c.AddBook(book("B", 5))
		return c
	}

	removed := build()
	removed.RemoveBook("A")

	set := build()
	set.SetQuantity("A", -3)

	checkInvariants(t, removed)
	checkInvariants(t, set)

	removedSnap, setSnap := removed.Snapshot(), set.Snapshot()
	if len(removedSnap.Lines) != len(setSnap.Lines) || removedSnap.Total != setSnap.Total {
		t.Fatalf("SetQuantity(-3) diverged from RemoveBook: %+v vs %+v", setSnap, removedSnap)
	}
}

func TestRemoveBook(t *testing.T) {
	c := New()
	c.AddBook(book("A", 10))
	c.AddBook(book("B", 5))

	c.RemoveBook("B")
	checkInvariants(t, c)

	snap := c.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].Book.ID != "A" {
		t.Fatalf("unexpected lines %+v", snap.Lines)
	}
	if snap.Total != 10.00 {
		t.Fatalf("expected total 10.00, got %v", snap.Total)
	}

	// Absent ids are a no-op, not an error.
	c.RemoveBook("nope")
	checkInvariants(t, c)
	if len(c.Snapshot().Lines) != 1 {
		t.Fatalf("remove of absent id mutated the cart: %+v", c.Snapshot().Lines)
	}
}

func TestSetQuantityUnknownIDIsNoOp(t *testing.T) {
	c := New()
	c.AddBook(book("A", 10))

	c.SetQuantity("nope", 7)
	checkInvariants(t, c)

	snap := c.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].Quantity != 1 {
		t.Fatalf("unexpected lines %+v", snap.Lines)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddBook(book("A", 10))
	c.AddBook(book("B", 5))

	c.Clear()
	checkInvariants(t, c)

	snap := c.Snapshot()
	if len(snap.Lines) != 0 || snap.Total != 0 || c.ItemCount() != 0 {
		t.Fatalf("expected empty cart, got %+v", snap)
	}

	// A cleared cart accepts new items.
	c.AddBook(book("A", 10))
	checkInvariants(t, c)
	if got := c.Snapshot().Total; got != 10 {
		t.Fatalf("expected total 10 after re-add, got %v", got)
	}
}

func TestItemCount(t *testing.T) {
	c := New()
	if c.ItemCount() != 0 {
		t.Fatalf("expected 0, got %d", c.ItemCount())
	}
	c.AddBook(book("A", 10))
	c.AddBook(book("A", 10))
	c.AddBook(book("B", 5))
	if c.ItemCount() != 3 {
		t.Fatalf("expected 3, got %d", c.ItemCount())
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	c := New()
	c.AddBook(book("A", 10))

	snap := c.Snapshot()
	c.Clear()

	if len(snap.Lines) != 1 || snap.Lines[0].Book.ID != "A" {
		t.Fatalf("snapshot lost data after clear: %+v", snap)
	}
}

func TestEmptyCartMarshalsItemsAsArray(t *testing.T) {
	for name, c := range map[string]*Cart{
		"fresh": New(),
		"cleared": func() *Cart {
			c := New()
			c.AddBook(book("A", 10))
			c.Clear()
			return c
		}(),
	} {
		raw, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("%s: marshal: %v", name, err)
		}
		if !strings.Contains(string(raw), `"items":[]`) {
			t.Fatalf("%s: expected empty items array, got %s", name, raw)
		}
	}
}

// TestConcurrentMutationAndSweep hammers one cart from parallel writers
// while the store sweeps, the way parallel browser requests race the idle
// sweeper. Run with -race; correctness of the end state is checked too.
func TestConcurrentMutationAndSweep(t *testing.T) {
	s := NewStore()
	c := s.Fetch("s1")

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			c.AddBook(book("A", 24.99))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			c.AddBook(book("B", 22.50))
			c.SetQuantity("B", 3)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			s.Sweep(time.Hour)
			_ = c.Snapshot()
		}
	}()
	wg.Wait()

	checkInvariants(t, c)
	snap := c.Snapshot()
	if len(snap.Lines) != 2 {
		t.Fatalf("expected 2 lines after concurrent adds, got %+v", snap.Lines)
	}
	// Insertion order depends on goroutine scheduling, so look up by id.
	want := map[string]int{"A": 500, "B": 3}
	for _, ln := range snap.Lines {
		if ln.Quantity != want[ln.Book.ID] {
			t.Fatalf("expected quantity %d for %q, got %d", want[ln.Book.ID], ln.Book.ID, ln.Quantity)
		}
	}
	if s.Len() != 1 {
		t.Fatalf("active cart swept away, store has %d carts", s.Len())
	}
}

// TestRandomOperationSequences drives the engine through long random
// operation sequences and checks the invariants after every step.
func TestRandomOperationSequences(t *testing.T) {
	books := []catalog.Book{
		book("A", 24.99), book("B", 22.50), book("C", 28.95),
		book("D", 26.75), book("E", 9.99),
	}

	rng := rand.New(rand.NewSource(42))
	c := New()

	for i := 0; i < 5000; i++ {
		b := books[rng.Intn(len(books))]
		switch rng.Intn(10) {
		case 0:
			c.Clear()
		case 1, 2:
			c.RemoveBook(b.ID)
		case 3, 4:
			c.SetQuantity(b.ID, rng.Intn(7)-2) // includes zero and negatives
		default:
			c.AddBook(b)
		}
		checkInvariants(t, c)
	}
}
