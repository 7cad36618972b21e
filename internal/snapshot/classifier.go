package snapshot

import (
	"strings"

	"spospordo/snapledger/internal/models"
)

// LineKind is the classifier's verdict for a normalized line.
type LineKind string

const (
	// LineCategory is a section header naming one of the four categories.
	LineCategory LineKind = "category"
	// LineSkip is noise: dates, relative-time strings, app boilerplate.
	LineSkip LineKind = "skip"
	// LineCandidate may be an account line and is handed to the tokenizer.
	LineCandidate LineKind = "candidate"
)

// Classification is the result of classifying one line. Category is set only
// when Kind is LineCategory.
type Classification struct {
	Kind     LineKind
	Category models.Category
}

// Classify decides whether a normalized line is a category header, noise, or
// a candidate account line. The classifier holds no state; the builder tracks
// the running category across calls.
//
// Category detection is exact-equality on the whole lowercased line, never
// substring: "Cash Account" contains "cash" but is a candidate. Skip
// detection uses whole-word containment against the skip list.
func (r *Rules) Classify(line string) Classification {
	lowered := strings.ToLower(strings.TrimSpace(line))
	if lowered == "" {
		return Classification{Kind: LineSkip}
	}

	if category, ok := models.ParseCategory(lowered); ok {
		return Classification{Kind: LineCategory, Category: category}
	}
	if category, ok := r.CategorySynonyms[lowered]; ok {
		return Classification{Kind: LineCategory, Category: category}
	}

	for _, pattern := range r.skipPatterns {
		if pattern.MatchString(lowered) {
			return Classification{Kind: LineSkip}
		}
	}

	return Classification{Kind: LineCandidate}
}
