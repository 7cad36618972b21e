package ledger

import (
	"testing"
	"time"

	"spospordo/snapledger/internal/logging"
	"spospordo/snapledger/internal/matcher"
	"spospordo/snapledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, historyLimit int) *Service {
	t.Helper()
	log := logging.NewMockLogger()
	return NewService(matcher.New(matcher.Policy{}, log), log, historyLimit)
}

func record(name string, category models.Category, balance int64) models.AccountRecord {
	return models.AccountRecord{
		Name:     name,
		Category: category,
		Balance:  decimal.NewFromInt(balance),
	}
}

func TestApplyCreatesAndUpdates(t *testing.T) {
	effective := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	existing := models.NewAccount("Checking", models.CategoryCash, decimal.NewFromInt(500), effective.AddDate(0, -1, 0), models.SourceManual)

	service := newService(t, 0)
	accounts, outcomes, err := service.Apply([]models.AccountRecord{
		record("Checking", models.CategoryCash, 750),
		record("Roth IRA", models.CategoryInvestments, 5000),
	}, []models.Account{existing}, effective)

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	require.Len(t, outcomes, 2)

	assert.Equal(t, models.ActionUpdated, outcomes[0].Action)
	assert.Equal(t, "Checking", outcomes[0].AccountName)
	assert.Equal(t, "exact", outcomes[0].MatchTier)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, effective, accounts[0].UpdatedAt)
	require.Len(t, accounts[0].History, 2)
	assert.True(t, accounts[0].History[1].Balance.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, models.SourceScreenshot, accounts[0].History[1].Source)

	assert.Equal(t, models.ActionCreated, outcomes[1].Action)
	assert.Equal(t, "Roth IRA", outcomes[1].AccountName)
	assert.NotEmpty(t, outcomes[1].AccountID)
	assert.Equal(t, models.CategoryInvestments, accounts[1].Category)
	require.Len(t, accounts[1].History, 1)
}

func TestApplyBatchSelfMatching(t *testing.T) {
	// Two records for the same brand-new account in one upload: the second
	// must update the account the first created, not create a duplicate.
	effective := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	service := newService(t, 0)
	accounts, outcomes, err := service.Apply([]models.AccountRecord{
		record("Vacation Fund", models.CategoryCash, 100),
		record("Vacation Fund", models.CategoryCash, 150),
	}, nil, effective)

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Len(t, outcomes, 2)

	assert.Equal(t, models.ActionCreated, outcomes[0].Action)
	assert.Equal(t, models.ActionUpdated, outcomes[1].Action)
	assert.Equal(t, outcomes[0].AccountID, outcomes[1].AccountID)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(150)))
	assert.Len(t, accounts[0].History, 2)
}

func TestApplyHistoryLimit(t *testing.T) {
	service := newService(t, 3)

	accounts := []models.Account{}
	var err error
	for day := 1; day <= 5; day++ {
		effective := time.Date(2025, 12, day, 0, 0, 0, 0, time.UTC)
		accounts, _, err = service.Apply([]models.AccountRecord{
			record("Checking", models.CategoryCash, int64(day*100)),
		}, accounts, effective)
		require.NoError(t, err)
	}

	require.Len(t, accounts, 1)
	history := accounts[0].History
	require.Len(t, history, 3)

	// Oldest entries are evicted; the survivors stay in date order.
	assert.Equal(t, 3, history[0].Date.Day())
	assert.Equal(t, 5, history[2].Date.Day())
	assert.True(t, history[2].Balance.Equal(decimal.NewFromInt(500)))
}

func TestApplyAmbiguousMatchWarning(t *testing.T) {
	effective := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	first := models.NewAccount("Checking", models.CategoryCash, decimal.NewFromInt(1), effective.AddDate(0, -2, 0), models.SourceManual)
	second := models.NewAccount("checking", models.CategoryCash, decimal.NewFromInt(2), effective.AddDate(0, -1, 0), models.SourceManual)

	service := newService(t, 0)
	accounts, outcomes, err := service.Apply([]models.AccountRecord{
		record("Checking", models.CategoryCash, 300),
	}, []models.Account{first, second}, effective)

	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Len(t, outcomes[0].Warnings, 1)
	assert.Contains(t, outcomes[0].Warnings[0], "ambiguous match")

	// The more recently updated account took the balance.
	assert.True(t, accounts[1].Balance.Equal(decimal.NewFromInt(300)))
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(1)))
}

func TestApplyWithoutMatcher(t *testing.T) {
	service := NewService(nil, logging.NewMockLogger(), 0)
	_, _, err := service.Apply(nil, nil, time.Now())
	assert.Error(t, err)
}
