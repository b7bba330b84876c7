package seo

import (
	"sort"
	"strings"
)

const (
	minKeywordLength    = 4
	minKeywordFrequency = 2
	maxKeywords         = 10
	maxLongTailVariants = 15
)

var stopwords = map[string]bool{
	"about": true, "after": true, "also": true, "been": true, "before": true,
	"being": true, "between": true, "both": true, "down": true, "during": true,
	"each": true, "from": true, "have": true, "here": true, "into": true,
	"just": true, "more": true, "most": true, "only": true, "other": true,
	"over": true, "same": true, "some": true, "such": true, "than": true,
	"that": true, "their": true, "them": true, "then": true, "there": true,
	"these": true, "they": true, "this": true, "through": true, "under": true,
	"very": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "will": true, "with": true, "your": true,
}

var wordSplitter = strings.NewReplacer(
	".", " ", ",", " ", "!", " ", "?", " ", ";", " ", ":", " ",
	"(", " ", ")", " ", "\"", " ", "'", " ", "\n", " ", "\t", " ",
)

// ExtractKeywords counts word frequency over the content, drops stopwords
// and short words, and returns the most frequent terms. Words must occur
// at least twice to qualify. Order is frequency-descending with first
// occurrence breaking ties, so output is deterministic.
func ExtractKeywords(content string) []string {
	words := strings.Fields(wordSplitter.Replace(strings.ToLower(content)))

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, w := range words {
		if len(w) < minKeywordLength || stopwords[w] {
			continue
		}
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
		}
		counts[w]++
	}

	candidates := make([]string, 0, len(counts))
	for w, n := range counts {
		if n >= minKeywordFrequency {
			candidates = append(candidates, w)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if counts[candidates[i]] != counts[candidates[j]] {
			return counts[candidates[i]] > counts[candidates[j]]
		}
		return firstSeen[candidates[i]] < firstSeen[candidates[j]]
	})

	if len(candidates) > maxKeywords {
		candidates = candidates[:maxKeywords]
	}
	return candidates
}

var longTailTemplates = []string{
	"best %s trek",
	"%s trekking guide",
	"%s trek cost",
	"%s trek itinerary",
	"%s trek difficulty",
}

// LongTailVariants expands keywords into multi-word search phrases by
// template concatenation, optionally anchored to a region. Duplicates are
// removed and the result is capped.
func LongTailVariants(keywords []string, region string) []string {
	seen := make(map[string]bool)
	variants := make([]string, 0, maxLongTailVariants)

	add := func(v string) {
		if len(variants) >= maxLongTailVariants || seen[v] {
			return
		}
		seen[v] = true
		variants = append(variants, v)
	}

	for _, kw := range keywords {
		for _, tpl := range longTailTemplates {
			add(strings.Replace(tpl, "%s", kw, 1))
		}
		if region != "" {
			add(kw + " trek in " + strings.ToLower(region))
		}
	}
	return variants
}
