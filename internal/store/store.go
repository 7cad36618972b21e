// Package store persists the account collection as an encrypted JSON file.
// The on-disk format is a JSON envelope carrying the KDF salt, the AEAD nonce
// and the AES-256-GCM ciphertext of the marshaled accounts. Unencrypted
// legacy files (a bare JSON array) are still readable.
package store

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"spospordo/snapledger/internal/ledgererror"
	"spospordo/snapledger/internal/logging"
	"spospordo/snapledger/internal/models"
)

// envelope is the on-disk wrapper around the encrypted account JSON.
type envelope struct {
	Version    int    `json:"version"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"data"`
}

const envelopeVersion = 1

// Per-path advisory locks. Two concurrent ingests against the same store file
// would otherwise race on the read-modify-write cycle and the second full-file
// write would silently drop the first one's updates.
var (
	locksMu sync.Mutex
	locks   = map[string]*sync.Mutex{}
)

func lockFor(path string) *sync.Mutex {
	locksMu.Lock()
	defer locksMu.Unlock()
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if locks[path] == nil {
		locks[path] = &sync.Mutex{}
	}
	return locks[path]
}

// AccountStore loads and saves the persisted account collection.
type AccountStore struct {
	path       string
	passphrase string
	logger     logging.Logger
}

// NewAccountStore creates a store for the given file. An empty passphrase
// disables encryption and the file is written as plain JSON.
func NewAccountStore(path, passphrase string, logger logging.Logger) *AccountStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &AccountStore{
		path:       path,
		passphrase: passphrase,
		logger:     logger.WithField("component", "AccountStore"),
	}
}

// Path returns the store's file path.
func (s *AccountStore) Path() string {
	return s.path
}

// Load reads the full account collection into memory. A missing file yields
// an empty collection, not an error.
func (s *AccountStore) Load() ([]models.Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", s.path).Warn("Account store not found, starting empty")
			return []models.Account{}, nil
		}
		return nil, &ledgererror.StoreError{Path: s.path, Op: "read", Err: err}
	}

	plaintext, err := s.decode(data)
	if err != nil {
		return nil, &ledgererror.StoreError{Path: s.path, Op: "decrypt", Err: err}
	}

	var accounts []models.Account
	if err := json.Unmarshal(plaintext, &accounts); err != nil {
		return nil, &ledgererror.StoreError{Path: s.path, Op: "parse", Err: err}
	}

	for i := range accounts {
		accounts[i].SortHistory()
	}

	s.logger.WithField("count", len(accounts)).Debug("Loaded accounts from store")
	return accounts, nil
}

// Save writes the full account collection back to disk, encrypting when a
// passphrase is configured. The parent directory is created if needed and the
// file is written with owner-only permissions.
func (s *AccountStore) Save(accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}
	for i := range accounts {
		accounts[i].SortHistory()
	}

	plaintext, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return &ledgererror.StoreError{Path: s.path, Op: "marshal", Err: err}
	}

	data, err := s.encode(plaintext)
	if err != nil {
		return &ledgererror.StoreError{Path: s.path, Op: "encrypt", Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return &ledgererror.StoreError{Path: s.path, Op: "mkdir", Err: err}
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return &ledgererror.StoreError{Path: s.path, Op: "write", Err: err}
	}

	s.logger.WithField("count", len(accounts)).Debug("Saved accounts to store")
	return nil
}

// Update runs fn inside the store's advisory lock: load, transform, save.
// The lock serializes concurrent read-modify-write cycles on the same file
// within this process.
func (s *AccountStore) Update(fn func(accounts []models.Account) ([]models.Account, error)) error {
	if fn == nil {
		return fmt.Errorf("store update function cannot be nil")
	}

	mu := lockFor(s.path)
	mu.Lock()
	defer mu.Unlock()

	accounts, err := s.Load()
	if err != nil {
		return err
	}

	updated, err := fn(accounts)
	if err != nil {
		return err
	}

	return s.Save(updated)
}

// decode unwraps the envelope and decrypts, falling back to treating data as
// a plain JSON array for unencrypted legacy files.
func (s *AccountStore) decode(data []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Ciphertext == "" {
		// Legacy plaintext store.
		return data, nil
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("unsupported store version %d", env.Version)
	}
	if s.passphrase == "" {
		return nil, fmt.Errorf("store is encrypted but no passphrase is configured")
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("malformed salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("malformed nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("malformed ciphertext: %w", err)
	}

	return open(s.passphrase, salt, nonce, ciphertext)
}

// encode encrypts the plaintext into an envelope, or returns it unchanged
// when encryption is disabled.
func (s *AccountStore) encode(plaintext []byte) ([]byte, error) {
	if s.passphrase == "" {
		s.logger.Warn("No passphrase configured, writing account store unencrypted")
		return plaintext, nil
	}

	salt, nonce, ciphertext, err := seal(s.passphrase, plaintext)
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(envelope{
		Version:    envelopeVersion,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}, "", "  ")
}
