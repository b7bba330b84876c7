package seo

import "strings"

// ReadabilityScore is a naive additive heuristic over word, sentence and
// paragraph counts. It rewards substantial content, short sentences and
// paragraph breaks, and clamps to the 0..100 range. It is not a Flesch
// score and makes no linguistic claims.
func ReadabilityScore(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}

	sentences := 0
	for _, r := range content {
		if r == '.' || r == '!' || r == '?' {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}

	paragraphs := 0
	for _, p := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	score := 0

	// Content volume, up to 40 points at 400+ words.
	if words >= 400 {
		score += 40
	} else {
		score += words / 10
	}

	// Sentence length, 30 points for an average under 20 words.
	avgWordsPerSentence := words / sentences
	switch {
	case avgWordsPerSentence <= 20:
		score += 30
	case avgWordsPerSentence <= 30:
		score += 15
	}

	// Paragraph structure, 10 points per break up to 30.
	if paragraphs > 3 {
		paragraphs = 3
	}
	score += paragraphs * 10

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
