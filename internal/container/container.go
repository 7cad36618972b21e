// Package container provides dependency injection for the snapledger
// application. It centralizes the creation and wiring of the parser, matcher,
// ledger and store so commands receive fully constructed components.
package container

import (
	"fmt"

	"spospordo/snapledger/internal/config"
	"spospordo/snapledger/internal/ledger"
	"spospordo/snapledger/internal/logging"
	"spospordo/snapledger/internal/matcher"
	"spospordo/snapledger/internal/snapshot"
	"spospordo/snapledger/internal/store"
)

// Container holds the wired application components. Fields are private and
// exposed through getters so dependencies cannot be swapped after
// construction.
type Container struct {
	logger  logging.Logger
	config  *config.Config
	store   *store.AccountStore
	parser  *snapshot.Parser
	matcher *matcher.Matcher
	ledger  *ledger.Service
}

// NewContainer wires all application dependencies from the configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	rules, err := snapshot.LoadRules(cfg.Rules.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load parsing rules: %w", err)
	}

	accountMatcher := matcher.New(matcher.Policy{
		CaseSensitive: cfg.Matching.CaseSensitive,
	}, logger)

	return &Container{
		logger:  logger,
		config:  cfg,
		store:   store.NewAccountStore(cfg.Store.Path, cfg.Store.Passphrase, logger),
		parser:  snapshot.NewParser(rules, logger),
		matcher: accountMatcher,
		ledger:  ledger.NewService(accountMatcher, logger, cfg.History.Limit),
	}, nil
}

// Logger returns the application logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the loaded configuration.
func (c *Container) Config() *config.Config { return c.config }

// Store returns the account store.
func (c *Container) Store() *store.AccountStore { return c.store }

// Parser returns the snapshot text parser.
func (c *Container) Parser() *snapshot.Parser { return c.parser }

// Matcher returns the fuzzy account matcher.
func (c *Container) Matcher() *matcher.Matcher { return c.matcher }

// Ledger returns the ledger service.
func (c *Container) Ledger() *ledger.Service { return c.ledger }
