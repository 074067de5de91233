// Package pokedex holds the in-memory catalog algorithms: filtering, sorting and paginating the
// National Pokédex list, and building evolution chains.
package pokedex

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"pokedex/internal/model"
)

const (
	DefaultPageSize = 30
	MaxPageSize     = 100
)

var ErrInvalidSort = errors.New("invalid sort key")

// Query describes a catalog listing request.
type Query struct {
	Search     string
	Type       string
	Generation int
	// Owned filters by Living Dex membership when non-nil.
	Owned    *bool
	Sort     string
	Page     int
	PageSize int
}

// Entry is a species annotated with the caller's ownership.
type Entry struct {
	model.Species
	Owned bool `json:"owned"`
}

// Page is a window over a filtered, sorted list.
type Page[T any] struct {
	Items      []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// Run filters, sorts and paginates species in one pass. owned may be nil for anonymous callers.
func Run(species []model.Species, q Query, owned map[int]bool) (Page[Entry], error) {
	less, err := comparator(q.Sort)
	if err != nil {
		return Page[Entry]{}, err
	}
	matched := Filter(species, q, owned)
	sort.SliceStable(matched, func(i, j int) bool { return less(matched[i].Species, matched[j].Species) })
	return Paginate(matched, q.Page, q.PageSize), nil
}

// Filter returns the species matching q, annotated with ownership. The input slice is not modified.
func Filter(species []model.Species, q Query, owned map[int]bool) []Entry {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	number, numeric := parseNumber(search)
	typ := strings.ToLower(strings.TrimSpace(q.Type))

	out := make([]Entry, 0, len(species))
	for _, s := range species {
		if search != "" {
			if numeric {
				if s.Number != number {
					continue
				}
			} else if !strings.Contains(strings.ToLower(s.Name), search) {
				continue
			}
		}
		if typ != "" && !s.HasType(typ) {
			continue
		}
		if q.Generation != 0 && s.Generation != q.Generation {
			continue
		}
		isOwned := owned[s.Number]
		if q.Owned != nil && *q.Owned != isOwned {
			continue
		}
		out = append(out, Entry{Species: s, Owned: isOwned})
	}
	return out
}

// Sort orders species in place by key. Keys: number, name, type; prefix "-" for descending.
// Ties always fall back to ascending national number.
func Sort(species []model.Species, key string) error {
	less, err := comparator(key)
	if err != nil {
		return err
	}
	sort.SliceStable(species, func(i, j int) bool { return less(species[i], species[j]) })
	return nil
}

// Paginate cuts a 1-based page out of items. Out-of-range pages are empty but keep the total.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	res := Page[T]{
		Items:      []T{},
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: (total + size - 1) / size,
	}
	// Compare in pages so huge page numbers cannot overflow the offset.
	if page > res.TotalPages {
		return res
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	res.Items = items[start:end]
	return res
}

func comparator(key string) (func(a, b model.Species) bool, error) {
	desc := strings.HasPrefix(key, "-")
	key = strings.TrimPrefix(key, "-")

	var cmp func(a, b model.Species) int
	switch key {
	case "", "number":
		cmp = func(a, b model.Species) int { return a.Number - b.Number }
	case "name":
		cmp = func(a, b model.Species) int { return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) }
	case "type":
		cmp = func(a, b model.Species) int {
			return strings.Compare(strings.ToLower(a.PrimaryType), strings.ToLower(b.PrimaryType))
		}
	default:
		return nil, ErrInvalidSort
	}

	return func(a, b model.Species) bool {
		c := cmp(a, b)
		if desc {
			c = -c
		}
		if c != 0 {
			return c < 0
		}
		return a.Number < b.Number
	}, nil
}

func parseNumber(s string) (int, bool) {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
