package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"spospordo/snapledger/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name         string
		line         string
		wantKind     LineKind
		wantCategory models.Category
	}{
		{"Cash header", "Cash", LineCategory, models.CategoryCash},
		{"Investments header", "Investments", LineCategory, models.CategoryInvestments},
		{"Real estate header with space", "Real Estate", LineCategory, models.CategoryRealEstate},
		{"Liabilities header", "Liabilities", LineCategory, models.CategoryLiabilities},
		{"Synonym header", "Property", LineCategory, models.CategoryRealEstate},
		{"Category word inside name is a candidate", "Cash Account", LineCandidate, ""},
		{"Individual cash account is a candidate", "Individual Cash Account", LineCandidate, ""},
		{"Month line is noise", "December 2025", LineSkip, ""},
		{"Relative time is noise", "3 days ago", LineSkip, ""},
		{"Boilerplate is noise", "Temporarily down", LineSkip, ""},
		{"APY note is noise", "4.25% APY", LineSkip, ""},
		{"Empty line is noise", "", LineSkip, ""},
		{"Plain account name is a candidate", "My Roth IRA $5,000", LineCandidate, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := rules.Classify(tc.line)
			assert.Equal(t, tc.wantKind, got.Kind)
			if tc.wantKind == LineCategory {
				assert.Equal(t, tc.wantCategory, got.Category)
			}
		})
	}
}

func TestLoadRulesMissingFileUsesDefaults(t *testing.T) {
	rules, err := LoadRules("does/not/exist.yaml")
	assert.NoError(t, err)
	assert.Equal(t, LineSkip, rules.Classify("Wealthfront").Kind)
}

func TestLoadRulesOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := []byte("category_synonyms:\n  holdings: investments\n")
	assert.NoError(t, os.WriteFile(path, content, 0600))

	rules, err := LoadRules(path)
	assert.NoError(t, err)

	got := rules.Classify("Holdings")
	assert.Equal(t, LineCategory, got.Kind)
	assert.Equal(t, models.CategoryInvestments, got.Category)

	// Defaults survive the overlay.
	assert.Equal(t, LineSkip, rules.Classify("3 days ago").Kind)
}

func TestLoadRulesRejectsUnknownCategory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := []byte("category_synonyms:\n  stuff: junk\n")
	assert.NoError(t, os.WriteFile(path, content, 0600))

	_, err := LoadRules(path)
	assert.Error(t, err)
}
