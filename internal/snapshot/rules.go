// Package snapshot parses the OCR text of a net-worth screenshot into
// account records. Parsing is a single forward pass: category headers set the
// running category, noise lines are skipped, and the remaining candidate
// lines are tokenized into name/balance pairs.
package snapshot

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"spospordo/snapledger/internal/models"

	"gopkg.in/yaml.v3"
)

// Rules drives the classifier: which header labels map to which category and
// which lines are noise. Defaults are compiled in; a YAML file can override
// either list.
type Rules struct {
	// SkipWords are words or phrases that mark a line as noise. A line is
	// skipped when it equals a skip word or contains one as a whole word.
	SkipWords []string `yaml:"skip_words"`

	// CategorySynonyms maps additional lowercased header labels to category
	// values, e.g. "real estate" -> real_estate.
	CategorySynonyms map[string]models.Category `yaml:"category_synonyms"`

	skipPatterns []*regexp.Regexp
}

// DefaultRules returns the built-in skip words and synonyms. The skip list
// covers what the screenshots actually contain around account lines: dates,
// relative-time strings and app boilerplate. Bare category words ("cash") are
// deliberately absent so that account names containing them stay candidates.
func DefaultRules() *Rules {
	r := &Rules{
		SkipWords: []string{
			"january", "february", "march", "april", "may", "june",
			"july", "august", "september", "october", "november", "december",
			"seconds ago", "minutes ago", "hours ago", "days ago",
			"weeks ago", "months ago", "yesterday", "just now",
			"last updated", "updated",
			"apy", "employer plan", "wealthfront", "temporarily down",
			"net worth", "total assets", "total liabilities",
			"connect account", "add account",
		},
		CategorySynonyms: map[string]models.Category{
			"real estate":             models.CategoryRealEstate,
			"real-estate":             models.CategoryRealEstate,
			"property":                models.CategoryRealEstate,
			"investment":              models.CategoryInvestments,
			"liability":               models.CategoryLiabilities,
			"debts":                   models.CategoryLiabilities,
			"cash & cash equivalents": models.CategoryCash,
		},
	}
	r.compile()
	return r
}

// LoadRules reads a YAML rules file and overlays it on the defaults. A
// missing file is not an error, matching how other optional config files are
// treated.
func LoadRules(path string) (*Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rules, nil
		}
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var overlay Rules
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("error parsing rules file '%s': %w", path, err)
	}

	if len(overlay.SkipWords) > 0 {
		rules.SkipWords = overlay.SkipWords
	}
	for synonym, category := range overlay.CategorySynonyms {
		if !category.IsValid() {
			return nil, fmt.Errorf("rules file '%s': synonym '%s' maps to unknown category '%s'", path, synonym, category)
		}
		rules.CategorySynonyms[strings.ToLower(synonym)] = category
	}

	rules.compile()
	return rules, nil
}

// compile builds whole-word patterns for the skip words. Whole-word matching
// keeps "days ago" from rejecting an account that merely contains "ago" as a
// fragment of a longer word.
func (r *Rules) compile() {
	r.skipPatterns = make([]*regexp.Regexp, 0, len(r.SkipWords))
	for _, w := range r.SkipWords {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(w)) + `\b`)
		r.skipPatterns = append(r.skipPatterns, pattern)
	}
}
