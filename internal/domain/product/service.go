// internal/domain/product/service.go
package product

import (
	"errors"
	"slices"
	"strings"
)

// ErrProductNotFound is returned when no product has the requested id
var ErrProductNotFound = errors.New("product not found")

// Sort orders accepted by List
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

const (
	// MinSearchLength is the shortest query Search answers
	MinSearchLength = 2
	// DefaultSearchLimit caps Search results when no limit is given
	DefaultSearchLimit = 10
)

// ListFilter represents product list query parameters. Filters are
// applied first, then the sort.
type ListFilter struct {
	Category Category `form:"category"`
	Featured bool     `form:"featured"`
	Trending bool     `form:"trending"`
	Sort     string   `form:"sort"`
}

// Service answers read-only catalog queries. It never mutates its products.
type Service struct {
	products []Product
	byID     map[string]int
}

// NewService creates a catalog over a copy of products, kept in the given order
func NewService(products []Product) *Service {
	s := &Service{
		products: make([]Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		s.products[i] = p.clone()
		s.byID[p.ID] = i
	}
	return s
}

// Len returns the catalog size
func (s *Service) Len() int {
	return len(s.products)
}

// List returns products matching the filter
func (s *Service) List(f ListFilter) []Product {
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Featured && !p.IsFeatured {
			continue
		}
		if f.Trending && !p.IsTrending {
			continue
		}
		out = append(out, p.clone())
	}

	switch f.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int { return a.Price.Cmp(b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int { return b.Price.Cmp(a.Price) })
	}

	return out
}

// Get retrieves a single product by id
func (s *Service) Get(id string) (*Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := s.products[i].clone()
	return &p, nil
}

// Search matches query case-insensitively against name, description and
// category. Queries shorter than MinSearchLength return nothing.
func (s *Service) Search(query string, limit int) []Product {
	if len([]rune(query)) < MinSearchLength {
		return []Product{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	q := strings.ToLower(query)
	out := []Product{}
	for _, p := range s.products {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(string(p.Category), q) {
			out = append(out, p.clone())
		}
	}
	return out
}

// Categories returns every department with its product count
func (s *Service) Categories() []CategoryInfo {
	counts := make(map[Category]int)
	for _, p := range s.products {
		counts[p.Category]++
	}

	out := make([]CategoryInfo, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, CategoryInfo{Slug: c, Label: c.Label(), Count: counts[c]})
	}
	return out
}
