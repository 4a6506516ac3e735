package catalog

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed books.yaml
var defaultBooks []byte

// Store is the static, read-only set of purchasable books. Loaded once at
// process start; no update operations exist.
type Store struct {
	books []Book
	byID  map[string]int
}

type booksFile struct {
	Books []Book `yaml:"books"`
}

// NewStore loads the embedded catalog.
func NewStore() (*Store, error) {
	return Load(defaultBooks)
}

// Load parses and validates a YAML catalog document. Extended descriptions
// are authored in markdown and rendered to sanitized HTML up front, so
// handlers can serve them as-is.
func Load(data []byte) (*Store, error) {
	var f booksFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Books) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	policy := bluemonday.UGCPolicy()

	s := &Store{byID: make(map[string]int, len(f.Books))}
	for i, b := range f.Books {
		if b.ID == "" || b.Title == "" || b.Author == "" {
			return nil, fmt.Errorf("book %d: id, title and author are required", i)
		}
		if b.Price < 0 {
			return nil, fmt.Errorf("book %q: negative price", b.ID)
		}
		if _, dup := s.byID[b.ID]; dup {
			return nil, fmt.Errorf("book %q: duplicate id", b.ID)
		}

		if b.ExtendedDescription != "" {
			html, err := renderMarkdown(b.ExtendedDescription, policy)
			if err != nil {
				return nil, fmt.Errorf("book %q: render description: %w", b.ID, err)
			}
			b.DescriptionHTML = html
		}

		s.byID[b.ID] = len(s.books)
		s.books = append(s.books, b)
	}
	return s, nil
}

// List returns all books in catalog order. The returned slice is a copy.
func (s *Store) List() []Book {
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// Get returns the book with the given id.
func (s *Store) Get(id string) (Book, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Book{}, false
	}
	return s.books[i], true
}

// Len reports how many books the catalog holds.
func (s *Store) Len() int { return len(s.books) }

func renderMarkdown(src string, policy *bluemonday.Policy) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return string(policy.SanitizeBytes(buf.Bytes())), nil
}
