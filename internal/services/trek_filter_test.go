package services

import (
	"testing"

	"github.com/sujan03nepal/apex-trek-platform-sub000/internal/models/db_models"
)

func catalogFixture() []db_models.Trek {
	return []db_models.Trek{
		{Name: "Everest Base Camp", Description: "Classic high altitude route", Difficulty: db_models.DifficultyChallenging, Price: 1450, Rating: 4.9, IsFeatured: true},
		{Name: "Annapurna Circuit", Description: "Varied landscapes and teahouses", Difficulty: db_models.DifficultyModerate, Price: 1100, Rating: 4.7},
		{Name: "Langtang Valley", Description: "Quiet valley trek near Kathmandu", Difficulty: db_models.DifficultyModerate, Price: 780, Rating: 4.5},
		{Name: "Ghorepani Poon Hill", Description: "Short sunrise trek", Difficulty: db_models.DifficultyEasy, Price: 420, Rating: 4.3, IsFeatured: true},
	}
}

func TestFilterTreksSearchMatchesNameAndDescription(t *testing.T) {
	treks := catalogFixture()

	got := FilterTreks(treks, TrekFilter{Search: "everest"})
	if len(got) != 1 || got[0].Name != "Everest Base Camp" {
		t.Fatalf("search by name: got %d results", len(got))
	}

	got = FilterTreks(treks, TrekFilter{Search: "TEAHOUSES"})
	if len(got) != 1 || got[0].Name != "Annapurna Circuit" {
		t.Fatalf("search by description should be case-insensitive, got %d results", len(got))
	}
}

func TestFilterTreksCombinesFiltersWithAnd(t *testing.T) {
	treks := catalogFixture()

	got := FilterTreks(treks, TrekFilter{Search: "trek", Difficulty: db_models.DifficultyModerate})
	if len(got) != 1 || got[0].Name != "Langtang Valley" {
		t.Fatalf("expected only Langtang Valley, got %d results", len(got))
	}
}

func TestFilterTreksEmptyFilterReturnsAll(t *testing.T) {
	treks := catalogFixture()

	got := FilterTreks(treks, TrekFilter{})
	if len(got) != len(treks) {
		t.Fatalf("expected %d treks, got %d", len(treks), len(got))
	}
	for i := range treks {
		if got[i].Name != treks[i].Name {
			t.Fatalf("source order not preserved at %d: %s", i, got[i].Name)
		}
	}
}

func TestFilterTreksDoesNotMutateSource(t *testing.T) {
	treks := catalogFixture()
	first := treks[0].Name

	FilterTreks(treks, TrekFilter{Sort: SortPriceLow})

	if treks[0].Name != first {
		t.Fatalf("source slice was reordered, first is now %s", treks[0].Name)
	}
}

func TestSortTreksByPrice(t *testing.T) {
	low := FilterTreks(catalogFixture(), TrekFilter{Sort: SortPriceLow})
	for i := 1; i < len(low); i++ {
		if low[i-1].Price > low[i].Price {
			t.Fatalf("price-low not ascending at %d: %.0f > %.0f", i, low[i-1].Price, low[i].Price)
		}
	}

	high := FilterTreks(catalogFixture(), TrekFilter{Sort: SortPriceHigh})
	for i := range high {
		if high[i].Name != low[len(low)-1-i].Name {
			t.Fatalf("price-high should reverse price-low at %d, got %s", i, high[i].Name)
		}
	}
}

func TestSortTreksPopularPutsFeaturedFirst(t *testing.T) {
	got := FilterTreks(catalogFixture(), TrekFilter{Sort: SortPopular})

	if !got[0].IsFeatured || !got[1].IsFeatured {
		t.Fatalf("featured treks should lead: %s, %s", got[0].Name, got[1].Name)
	}
	if got[0].Name != "Everest Base Camp" || got[1].Name != "Ghorepani Poon Hill" {
		t.Fatalf("stable sort should keep source order among featured, got %s then %s", got[0].Name, got[1].Name)
	}
}

func TestSortTreksByRating(t *testing.T) {
	got := FilterTreks(catalogFixture(), TrekFilter{Sort: SortRating})
	for i := 1; i < len(got); i++ {
		if got[i-1].Rating < got[i].Rating {
			t.Fatalf("rating not descending at %d", i)
		}
	}
}

func TestGroupFAQsPreservesOrder(t *testing.T) {
	faqs := []db_models.FAQ{
		{Question: "What fitness level do I need?", Category: "Preparation"},
		{Question: "Is a visa required?", Category: "Travel"},
		{Question: "What gear should I bring?", Category: "Preparation"},
		{Question: "When is the best season?", Category: "Travel"},
	}

	groups := GroupFAQs(faqs)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Category != "Preparation" || groups[1].Category != "Travel" {
		t.Fatalf("group order should follow first appearance: %s, %s", groups[0].Category, groups[1].Category)
	}
	if len(groups[0].Items) != 2 || groups[0].Items[1].Question != "What gear should I bring?" {
		t.Fatalf("items within a group out of order")
	}
}

func TestFilterMediaByCategory(t *testing.T) {
	items := []db_models.MediaItem{
		{FileName: "summit-ridge.jpg", Category: "landscape"},
		{FileName: "porter-team.jpg", Category: "people"},
		{FileName: "gokyo-lakes.jpg", Category: "landscape"},
	}

	got := FilterMediaByCategory(items, "landscape")
	if len(got) != 2 {
		t.Fatalf("expected 2 landscape items, got %d", len(got))
	}

	all := FilterMediaByCategory(items, "")
	if len(all) != len(items) {
		t.Fatalf("empty category should return all items, got %d", len(all))
	}
}
