package snapshot

import (
	"testing"

	"spospordo/snapledger/internal/logging"
	"spospordo/snapledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRecords(t *testing.T) {
	raw := "Cash\n" +
		"My Personal Cash Account  $1,000\n" +
		"Individual\n" +
		"Investments\n" +
		"My Roth IRA  $5,000\n"

	parser := NewParser(nil, logging.NewMockLogger())
	records := parser.BuildRecords(raw)

	require.Len(t, records, 2)

	assert.Equal(t, "My Personal Cash Account", records[0].Name)
	assert.Equal(t, models.CategoryCash, records[0].Category)
	assert.True(t, records[0].Balance.Equal(decimal.NewFromInt(1000)))

	assert.Equal(t, "My Roth IRA", records[1].Name)
	assert.Equal(t, models.CategoryInvestments, records[1].Category)
	assert.True(t, records[1].Balance.Equal(decimal.NewFromInt(5000)))
}

func TestBuildRecordsDropsCandidatesBeforeFirstHeader(t *testing.T) {
	raw := "Net Worth $10,000\n" +
		"Orphan Account $250\n" +
		"Cash\n" +
		"Checking $500\n"

	parser := NewParser(nil, logging.NewMockLogger())
	records := parser.BuildRecords(raw)

	require.Len(t, records, 1)
	assert.Equal(t, "Checking", records[0].Name)
	assert.Equal(t, models.CategoryCash, records[0].Category)
}

func TestBuildRecordsStickyCategory(t *testing.T) {
	raw := "Investments\n" +
		"Retirement\n" +
		"Employer 401k Plan $2,000\n" +
		"Brokerage $3,000\n"

	parser := NewParser(nil, logging.NewMockLogger())
	records := parser.BuildRecords(raw)

	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, models.CategoryInvestments, record.Category)
	}
}

func TestBuildRecordsIconContamination(t *testing.T) {
	raw := "Real Estate\n" +
		"anHome Projects $20,000\n"

	parser := NewParser(nil, logging.NewMockLogger())
	records := parser.BuildRecords(raw)

	require.Len(t, records, 1)
	assert.Equal(t, "Home Projects", records[0].Name)
	assert.Equal(t, models.CategoryRealEstate, records[0].Category)
}

func TestBuildRecordsSkipsNoise(t *testing.T) {
	raw := "Cash\n" +
		"December 2025\n" +
		"3 days ago\n" +
		"4.25% APY\n" +
		"Checking $750\n" +
		"\n" +
		"Temporarily down\n"

	parser := NewParser(nil, logging.NewMockLogger())
	records := parser.BuildRecords(raw)

	require.Len(t, records, 1)
	assert.Equal(t, "Checking", records[0].Name)
}

func TestBuildRecordsEmptyInput(t *testing.T) {
	parser := NewParser(nil, logging.NewMockLogger())
	assert.Empty(t, parser.BuildRecords(""))
}
