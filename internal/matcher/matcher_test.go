package matcher

import (
	"testing"
	"time"

	"spospordo/snapledger/internal/logging"
	"spospordo/snapledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func account(name string, previousNames ...string) models.Account {
	return models.Account{
		ID:            name + "-id",
		Name:          name,
		PreviousNames: previousNames,
	}
}

func TestMatchTiers(t *testing.T) {
	accounts := []models.Account{
		account("My Personal Cash Account"),
		account("Roth IRA"),
		account("Home Projects"),
	}

	m := New(Policy{}, logging.NewMockLogger())

	tests := []struct {
		name       string
		recordName string
		wantIndex  int
		wantTier   string
		wantFound  bool
	}{
		{"exact", "Roth IRA", 1, "exact", true},
		{"exact is case-insensitive", "roth ira", 1, "exact", true},
		{"record is substring of account", "Personal Cash", 0, "substring", true},
		{"account is substring of record", "My Roth IRA Account", 1, "substring", true},
		{"normalized strips punctuation", "Home-Projects!", 2, "normalized", true},
		{"no match", "Vacation Fund", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, found := m.Match(models.AccountRecord{Name: tt.recordName}, accounts)
			assert.Equal(t, tt.wantFound, found)
			if !tt.wantFound {
				return
			}
			assert.Equal(t, tt.wantIndex, result.Index)
			assert.Equal(t, tt.wantTier, result.Tier)
		})
	}
}

func TestMatchPreviousNames(t *testing.T) {
	accounts := []models.Account{
		account("Fidelity Brokerage", "Old Brokerage"),
	}

	m := New(Policy{}, logging.NewMockLogger())

	result, found := m.Match(models.AccountRecord{Name: "Old Brokerage"}, accounts)
	require.True(t, found)
	assert.Equal(t, 0, result.Index)
	assert.Equal(t, "exact", result.Tier)
}

func TestMatchIgnoresDisplayName(t *testing.T) {
	displayName := "Rainy Day Fund"
	accounts := []models.Account{
		{ID: "a1", Name: "Savings", DisplayName: &displayName},
	}

	m := New(Policy{}, logging.NewMockLogger())

	_, found := m.Match(models.AccountRecord{Name: "Rainy Day Fund"}, accounts)
	assert.False(t, found)
}

func TestMatchExactBeatsSubstring(t *testing.T) {
	accounts := []models.Account{
		account("Cash Account Extended"),
		account("Cash Account"),
	}

	m := New(Policy{}, logging.NewMockLogger())

	result, found := m.Match(models.AccountRecord{Name: "Cash Account"}, accounts)
	require.True(t, found)
	assert.Equal(t, 1, result.Index)
	assert.Equal(t, "exact", result.Tier)
	assert.False(t, result.Ambiguous)
}

func TestMatchAmbiguityTieBreak(t *testing.T) {
	older := account("Checking")
	older.UpdatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := account("checking")
	newer.UpdatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	accounts := []models.Account{older, newer}

	log := logging.NewMockLogger()
	m := New(Policy{}, log)

	result, found := m.Match(models.AccountRecord{Name: "Checking"}, accounts)
	require.True(t, found)
	assert.Equal(t, 1, result.Index)
	assert.True(t, result.Ambiguous)
	assert.ElementsMatch(t, []string{"Checking", "checking"}, result.Candidates)
	assert.True(t, log.HasEntry("warn", "Ambiguous account match, using most recently updated"))
}

func TestMatchCaseSensitivePolicy(t *testing.T) {
	accounts := []models.Account{
		account("Roth IRA"),
	}

	m := New(Policy{CaseSensitive: true}, logging.NewMockLogger())

	// The exact and substring tiers now respect case, so a lowercased
	// record only reaches the account through the normalized tier.
	result, found := m.Match(models.AccountRecord{Name: "roth ira"}, accounts)
	require.True(t, found)
	assert.Equal(t, "normalized", result.Tier)

	_, found = m.Match(models.AccountRecord{Name: "unrelated"}, accounts)
	assert.False(t, found)
}
