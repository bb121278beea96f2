// Package catalog implements the client-side query engine over an in-memory
// phone list: free-text search, category and price-range filtering, and
// stable sorting.
package catalog

import (
	"math"
	"sort"
	"strings"

	"phonestock/internal/client/models"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortByName         SortKey = "name"
	SortByPriceAsc     SortKey = "price-asc"
	SortByPriceDesc    SortKey = "price-desc"
	SortByQuantityDesc SortKey = "quantity-desc"
)

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Params are the user-controlled query settings. They are owned by the UI
// and reset to DefaultParams on explicit clear.
type Params struct {
	Term     string
	Category string
	Sort     SortKey
	PriceMin float64
	PriceMax float64
}

// DefaultParams returns the neutral query: every item passes the filters and
// the result is ordered by name.
func DefaultParams() Params {
	return Params{
		Category: CategoryAll,
		Sort:     SortByName,
		PriceMin: 0,
		PriceMax: math.Inf(1),
	}
}

// Apply filters and sorts items according to p and returns a fresh slice.
// The input is never mutated and the function performs no I/O, so calling it
// with identical arguments always yields an identical result.
//
// Stages, in order: term (case-insensitive substring over name and
// description), category (case-insensitive tag match; CategoryAll passes
// everything), inclusive price bounds, then a stable sort by p.Sort — items
// with equal keys keep their relative input order.
func Apply(items []models.Phone, p Params) []models.Phone {
	return apply(items, p, false)
}

// ApplyInventory is the variant used by the inventory search view: the term
// additionally matches any of the item's tags.
func ApplyInventory(items []models.Phone, p Params) []models.Phone {
	return apply(items, p, true)
}

func apply(items []models.Phone, p Params, termMatchesTags bool) []models.Phone {
	filtered := make([]models.Phone, 0, len(items))
	for _, item := range items {
		if !matchesTerm(item, p.Term, termMatchesTags) {
			continue
		}
		if !matchesCategory(item, p.Category) {
			continue
		}
		if item.Price < p.PriceMin || item.Price > p.PriceMax {
			continue
		}
		filtered = append(filtered, item)
	}

	sort.SliceStable(filtered, less(filtered, p.Sort))
	return filtered
}

func matchesTerm(item models.Phone, term string, includeTags bool) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(item.Name), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle) {
		return true
	}
	if includeTags {
		for _, tag := range item.UseIn {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

// matchesCategory compares tags case-insensitively; the same policy applies
// in every view.
func matchesCategory(item models.Phone, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	for _, tag := range item.UseIn {
		if strings.EqualFold(tag, category) {
			return true
		}
	}
	return false
}

func less(items []models.Phone, key SortKey) func(i, j int) bool {
	switch key {
	case SortByPriceAsc:
		return func(i, j int) bool { return items[i].Price < items[j].Price }
	case SortByPriceDesc:
		return func(i, j int) bool { return items[i].Price > items[j].Price }
	case SortByQuantityDesc:
		return func(i, j int) bool { return items[i].Quantity > items[j].Quantity }
	default:
		return func(i, j int) bool { return items[i].Name < items[j].Name }
	}
}

// Categories returns the distinct tags across items, in first-seen order.
// The result feeds the category filter choices in the UI.
func Categories(items []models.Phone) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, item := range items {
		for _, tag := range item.UseIn {
			folded := strings.ToLower(tag)
			if _, ok := seen[folded]; ok {
				continue
			}
			seen[folded] = struct{}{}
			result = append(result, tag)
		}
	}
	return result
}
