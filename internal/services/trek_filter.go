package services

import (
	"sort"
	"strings"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

// Catalog sort keys, mirroring the storefront query string.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortPopular   = "popular"
)

type TrekFilter struct {
	Search     string
	Difficulty string
	Sort       string
}

// FilterTreks returns a new slice holding the treks matching every set
// filter. Search is a case-insensitive substring match over name and
// description, difficulty is an equality match, and filters combine as
// AND. The source slice is never mutated.
func FilterTreks(treks []db_models.Trek, filter TrekFilter) []db_models.Trek {
	result := make([]db_models.Trek, 0, len(treks))

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, trek := range treks {
		if search != "" &&
			!strings.Contains(strings.ToLower(trek.Name), search) &&
			!strings.Contains(strings.ToLower(trek.Description), search) {
			continue
		}
		if filter.Difficulty != "" && trek.Difficulty != filter.Difficulty {
			continue
		}
		result = append(result, trek)
	}

	sortTreks(result, filter.Sort)
	return result
}

// sortTreks orders in place. Sorting is stable, so ties keep the source
// ordering, which the storefront relies on for the popular view.
func sortTreks(treks []db_models.Trek, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(treks, func(i, j int) bool {
			return treks[i].Price < treks[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(treks, func(i, j int) bool {
			return treks[i].Price > treks[j].Price
		})
	case SortRating:
		sort.SliceStable(treks, func(i, j int) bool {
			return treks[i].Rating > treks[j].Rating
		})
	case SortPopular:
		sort.SliceStable(treks, func(i, j int) bool {
			return treks[i].IsFeatured && !treks[j].IsFeatured
		})
	}
}

// GroupFAQs buckets active FAQs by category, preserving the repository's
// category/display_order ordering within and across groups.
func GroupFAQs(faqs []db_models.FAQ) []FAQGroupView {
	groups := make([]FAQGroupView, 0)
	index := make(map[string]int)

	for _, faq := range faqs {
		i, ok := index[faq.Category]
		if !ok {
			i = len(groups)
			index[faq.Category] = i
			groups = append(groups, FAQGroupView{Category: faq.Category})
		}
		groups[i].Items = append(groups[i].Items, faq)
	}
	return groups
}

type FAQGroupView struct {
	Category string
	Items    []db_models.FAQ
}

// FilterMediaByCategory keeps items matching the category, all items when
// the category is empty. The source slice is never mutated.
func FilterMediaByCategory(items []db_models.MediaItem, category string) []db_models.MediaItem {
	if category == "" {
		return append([]db_models.MediaItem(nil), items...)
	}
	result := make([]db_models.MediaItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			result = append(result, item)
		}
	}
	return result
}
