package seo

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"The Ultimate EBC Guide!!":       "the-ultimate-ebc-guide",
		"Annapurna  Circuit   Trek":      "annapurna-circuit-trek",
		"  Mardi Himal: A Hidden Gem?  ": "mardi-himal-a-hidden-gem",
		"Langtang-Valley Trek":           "langtang-valley-trek",
	}

	for in, want := range cases {
		if got := GenerateSlug(in); got != want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateSlugNoEdgeHyphens(t *testing.T) {
	got := GenerateSlug("!!! Everest !!!")
	if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
		t.Errorf("slug %q has leading or trailing hyphen", got)
	}
	if got != "everest" {
		t.Errorf("got %q, want %q", got, "everest")
	}
}

func TestMetaTitleTruncation(t *testing.T) {
	long := strings.Repeat("Everest Base Camp ", 5) // 90 chars
	got := MetaTitle(long, "")

	if len(got) > 60 {
		t.Errorf("meta title length = %d, want <= 60", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("meta title %q does not end with ellipsis", got)
	}
}

func TestMetaTitleShortUnchanged(t *testing.T) {
	if got := MetaTitle("Short Trek", ""); got != "Short Trek" {
		t.Errorf("got %q, want unchanged title", got)
	}
}

func TestMetaTitleKeywordPrefix(t *testing.T) {
	got := MetaTitle("A Hidden Valley", "annapurna")
	if !strings.HasPrefix(got, "Annapurna | ") {
		t.Errorf("got %q, want keyword prefix", got)
	}
	if len(got) > 60 {
		t.Errorf("prefixed title exceeds limit: %d", len(got))
	}
}

func TestMetaDescription(t *testing.T) {
	got := MetaDescription("First sentence here. Second sentence that should not appear.")
	if got != "First sentence here." {
		t.Errorf("got %q, want first sentence only", got)
	}

	long := strings.Repeat("word ", 60) + "end."
	got = MetaDescription(long)
	if len(got) > 160 {
		t.Errorf("meta description length = %d, want <= 160", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long description %q not truncated with ellipsis", got)
	}
}

func TestMetaTitleMultibyte(t *testing.T) {
	exact := strings.Repeat("é", 60)
	if got := MetaTitle(exact, ""); got != exact {
		t.Errorf("60-rune title should be unchanged, got %q", got)
	}

	long := strings.Repeat("é", 80)
	got := MetaTitle(long, "")
	if !utf8.ValidString(got) {
		t.Fatalf("truncated title is not valid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) != 60 {
		t.Errorf("truncated title has %d runes, want 60", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated title %q does not end with ellipsis", got)
	}
}

func TestMetaDescriptionMultibyte(t *testing.T) {
	got := MetaDescription(strings.Repeat("म", 200))
	if !utf8.ValidString(got) {
		t.Fatalf("truncated description is not valid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) > 160 {
		t.Errorf("truncated description has %d runes, want <= 160", utf8.RuneCountInString(got))
	}
}

func TestExtractKeywords(t *testing.T) {
	content := "Everest trekking is hard. Everest trekking needs preparation. " +
		"Altitude matters, altitude acclimatization matters most on Everest."
	keywords := ExtractKeywords(content)

	if len(keywords) == 0 {
		t.Fatal("expected keywords, got none")
	}
	if keywords[0] != "everest" {
		t.Errorf("top keyword = %q, want %q", keywords[0], "everest")
	}
	for _, kw := range keywords {
		if len(kw) < 4 {
			t.Errorf("keyword %q shorter than minimum length", kw)
		}
		if stopwords[kw] {
			t.Errorf("stopword %q leaked into keywords", kw)
		}
	}
	if len(keywords) > 10 {
		t.Errorf("got %d keywords, want <= 10", len(keywords))
	}
}

func TestExtractKeywordsRequiresRepetition(t *testing.T) {
	keywords := ExtractKeywords("solitary unique singular words appearing once")
	if len(keywords) != 0 {
		t.Errorf("single-occurrence words should not qualify, got %v", keywords)
	}
}

func TestLongTailVariants(t *testing.T) {
	variants := LongTailVariants([]string{"everest", "annapurna", "langtang", "manaslu"}, "Nepal")

	if len(variants) > 15 {
		t.Errorf("got %d variants, want <= 15", len(variants))
	}

	seen := make(map[string]bool)
	for _, v := range variants {
		if seen[v] {
			t.Errorf("duplicate variant %q", v)
		}
		seen[v] = true
	}
}

func TestReadabilityScoreBounds(t *testing.T) {
	if got := ReadabilityScore(""); got != 0 {
		t.Errorf("empty content score = %d, want 0", got)
	}

	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("A short simple sentence about trekking in the mountains. ")
		if i%5 == 0 {
			b.WriteString("\n\n")
		}
	}
	got := ReadabilityScore(b.String())
	if got < 0 || got > 100 {
		t.Errorf("score %d outside 0..100", got)
	}
	if got != 100 {
		t.Errorf("well-structured long content score = %d, want 100", got)
	}
}

func TestMissingSections(t *testing.T) {
	content := "Day 1 itinerary covers the cost and difficulty of the route."
	missing := MissingSections(content, "trek")

	for _, m := range missing {
		if m == "itinerary" || m == "cost" || m == "difficulty" {
			t.Errorf("section %q is present but reported missing", m)
		}
	}

	found := false
	for _, m := range missing {
		if m == "permit" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'permit' to be reported missing")
	}
}

func TestMissingSectionsUnknownType(t *testing.T) {
	if got := MissingSections("anything", "podcast"); got != nil {
		t.Errorf("unknown content type should yield nil, got %v", got)
	}
}

func TestHeuristicOptimizer(t *testing.T) {
	in := Input{
		Title:       "The Ultimate EBC Guide!!",
		Content:     "Everest base camp trekking. Everest base camp requires fitness. Trekking rewards trekking lovers.",
		ContentType: "trek",
		Region:      "Khumbu",
	}

	result, err := NewHeuristicOptimizer().Optimize(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Slug != "the-ultimate-ebc-guide" {
		t.Errorf("slug = %q", result.Slug)
	}
	if result.Source != "heuristic" {
		t.Errorf("source = %q, want heuristic", result.Source)
	}
	if len(result.MetaTitle) > 60 {
		t.Errorf("meta title too long: %d", len(result.MetaTitle))
	}
	if len(result.MetaDescription) > 160 {
		t.Errorf("meta description too long: %d", len(result.MetaDescription))
	}
}
