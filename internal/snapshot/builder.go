package snapshot

import (
	"strings"

	"spospordo/snapledger/internal/logging"
	"spospordo/snapledger/internal/models"
	"spospordo/snapledger/internal/textutils"
)

// Parser turns raw OCR text into account records.
type Parser struct {
	rules  *Rules
	logger logging.Logger
}

// NewParser creates a Parser with the given rules. A nil rules argument falls
// back to the defaults.
func NewParser(rules *Rules, logger logging.Logger) *Parser {
	if rules == nil {
		rules = DefaultRules()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{
		rules:  rules,
		logger: logger.WithField("component", "SnapshotParser"),
	}
}

// BuildRecords runs a single forward pass over the OCR text. The only state
// carried through the fold is the running category: header lines update it,
// noise lines are dropped, and candidate lines that tokenize are emitted in
// input order. Candidates seen before any header are discarded rather than
// assigned a default category, and unrecognized headers leave the running
// category unchanged.
func (p *Parser) BuildRecords(rawText string) []models.AccountRecord {
	var (
		records         []models.AccountRecord
		currentCategory models.Category
	)

	for _, rawLine := range strings.Split(rawText, "\n") {
		line := textutils.NormalizeLine(rawLine)
		if line == "" {
			continue
		}

		classification := p.rules.Classify(line)
		switch classification.Kind {
		case LineCategory:
			currentCategory = classification.Category
			p.logger.WithField("category", currentCategory).Debug("Entered category section")

		case LineSkip:
			p.logger.WithField("line", line).Debug("Skipping noise line")

		case LineCandidate:
			name, balance, ok := Tokenize(line)
			if !ok {
				p.logger.WithField("line", line).Debug("Candidate line did not tokenize, dropping")
				continue
			}
			if !currentCategory.IsValid() {
				p.logger.WithField("line", line).Debug("Candidate line before any category header, dropping")
				continue
			}
			records = append(records, models.AccountRecord{
				Name:     name,
				Balance:  balance,
				Category: currentCategory,
			})
		}
	}

	p.logger.WithField("count", len(records)).Debug("Parsed account records from snapshot text")
	return records
}
