package domain

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// A SortMode selects the ordering of the visible product list.
type SortMode string

const (
	SortRelevance  SortMode = "relevance"
	SortPriceAsc   SortMode = "price-asc"
	SortPriceDesc  SortMode = "price-desc"
	SortRatingDesc SortMode = "rating-desc"
	SortAlphaAsc   SortMode = "alpha-asc"
	SortAlphaDesc  SortMode = "alpha-desc"
)

// ParseSortMode validates a wire-level sort value.
func ParseSortMode(v string) (SortMode, error) {
	switch m := SortMode(v); m {
	case SortRelevance, SortPriceAsc, SortPriceDesc,
		SortRatingDesc, SortAlphaAsc, SortAlphaDesc:
		return m, nil
	}
	return "", fmt.Errorf("unknown sort mode %q", v)
}

// DefaultMaxPrice matches the upper bound of the price range control.
const DefaultMaxPrice = 500

type (
	// FilterState is the complete set of active filter/sort criteria.
	// An empty Category means "all categories".
	FilterState struct {
		Query    string
		MaxPrice float64
		Category string
		Sort     SortMode
	}

	// A StorefrontView is the result of applying a FilterState to the
	// catalog: the visible products plus the criteria that produced them.
	StorefrontView struct {
		Products []Product
		Total    int
		Filter   FilterState
	}
)

func DefaultFilterState() FilterState {
	return FilterState{MaxPrice: DefaultMaxPrice, Sort: SortRelevance}
}

// VisibleProducts applies f to ps and returns the ordered visible list.
//
// The function is pure: ps is never mutated and the result is always a
// subsequence of ps reordered per f.Sort. Relevance keeps the post-filter
// order; all other modes sort stably, so equal keys retain their relative
// order. An unknown mode behaves as relevance.
func VisibleProducts(ps []Product, f FilterState) []Product {
	vs := make([]Product, 0, len(ps))
	query := strings.ToLower(f.Query)
	for _, p := range ps {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if p.Price > f.MaxPrice {
			continue
		}
		vs = append(vs, p)
	}
	sortProducts(vs, f.Sort)
	return vs
}

func sortProducts(ps []Product, mode SortMode) {
	switch mode {
	case SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Price < ps[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Price > ps[j].Price
		})
	case SortRatingDesc:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Rating > ps[j].Rating
		})
	case SortAlphaAsc:
		c := titleCollator()
		sort.SliceStable(ps, func(i, j int) bool {
			return c.CompareString(ps[i].Title, ps[j].Title) < 0
		})
	case SortAlphaDesc:
		c := titleCollator()
		sort.SliceStable(ps, func(i, j int) bool {
			return c.CompareString(ps[i].Title, ps[j].Title) > 0
		})
	}
}

// A collate.Collator is not safe for concurrent use, so each sort
// builds its own.
func titleCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}
