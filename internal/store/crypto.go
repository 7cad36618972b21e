package store

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize  = 16
	keySize   = 32 // AES-256
	kdfRounds = 100000
)

// deriveKey stretches the passphrase into an AES-256 key with PBKDF2-SHA256
// and the per-file salt.
func deriveKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, kdfRounds, keySize, sha256.New)
}

// seal encrypts plaintext with AES-256-GCM under a key derived from the
// passphrase. It returns the random salt, the random nonce and the
// ciphertext.
func seal(passphrase string, plaintext []byte) (salt, nonce, ciphertext []byte, err error) {
	salt = make([]byte, saltSize)
	if _, err = rand.Read(salt); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	aead, err := newAEAD(passphrase, salt)
	if err != nil {
		return nil, nil, nil, err
	}

	nonce = make([]byte, aead.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return salt, nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

// open decrypts ciphertext produced by seal. A wrong passphrase surfaces as
// an authentication error.
func open(passphrase string, salt, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(passphrase, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt account store (wrong passphrase?): %w", err)
	}
	return plaintext, nil
}

func newAEAD(passphrase string, salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(deriveKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}
	return aead, nil
}
