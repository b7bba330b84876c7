package seo

import "strings"

// Expected sections per content type. The check is a crude lowercase
// substring presence test, matching how editors actually write these
// sections into marketing copy.
var expectedSections = map[string][]string{
	"trek": {
		"itinerary",
		"cost",
		"best season",
		"difficulty",
		"permit",
	},
	"blog": {
		"introduction",
		"conclusion",
		"tips",
	},
}

var improvementTemplates = map[string][]string{
	"trek": {
		"Add day-by-day altitude figures to the itinerary",
		"List what is included and excluded in the price",
		"Mention required permits and where to obtain them",
	},
	"blog": {
		"Add internal links to related treks",
		"Break long paragraphs into shorter ones",
		"Add a call to action at the end of the post",
	},
}

// MissingSections reports which expected sections for the content type do
// not appear anywhere in the text.
func MissingSections(content, contentType string) []string {
	sections, ok := expectedSections[contentType]
	if !ok {
		return nil
	}

	lower := strings.ToLower(content)
	missing := make([]string, 0, len(sections))
	for _, s := range sections {
		if !strings.Contains(lower, s) {
			missing = append(missing, s)
		}
	}
	return missing
}

// ContentImprovements returns generic improvement suggestions for the
// content type, plus a length warning for thin content.
func ContentImprovements(content, contentType string) []string {
	improvements := make([]string, 0, 4)
	if len(strings.Fields(content)) < 300 {
		improvements = append(improvements, "Expand the content to at least 300 words")
	}
	improvements = append(improvements, improvementTemplates[contentType]...)
	return improvements
}
