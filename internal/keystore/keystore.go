// Package keystore encrypts provider API keys at rest. Keys are sealed with
// AES-GCM under a passphrase-derived scrypt key and persisted as opaque
// blobs; the plaintext never touches disk.
package keystore

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltSize = 16
	keySize  = 32

	// scrypt cost parameters
	scryptN = 32768
	scryptR = 8
	scryptP = 1
)

// DecryptError indicates a blob could not be opened: wrong passphrase,
// tampered ciphertext, or a truncated blob
type DecryptError struct {
	Message string
	Cause   error
}

func (e *DecryptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("keystore decrypt error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("keystore decrypt error: %s", e.Message)
}

func (e *DecryptError) Unwrap() error {
	return e.Cause
}

// BlobStore persists opaque encrypted blobs per provider
type BlobStore interface {
	SaveAPIKeyBlob(ctx context.Context, provider string, blob []byte) error
	APIKeyBlob(ctx context.Context, provider string) ([]byte, error)
	DeleteAPIKeyBlob(ctx context.Context, provider string) error
}

// Keystore seals and opens API keys over a BlobStore
type Keystore struct {
	store BlobStore
}

// New creates a keystore over the given blob store
func New(store BlobStore) *Keystore {
	return &Keystore{store: store}
}

// Store encrypts apiKey under passphrase and persists it for provider
func (k *Keystore) Store(ctx context.Context, provider, apiKey, passphrase string) error {
	blob, err := seal([]byte(apiKey), passphrase)
	if err != nil {
		return err
	}
	return k.store.SaveAPIKeyBlob(ctx, provider, blob)
}

// Retrieve loads and decrypts the API key for provider
func (k *Keystore) Retrieve(ctx context.Context, provider, passphrase string) (string, error) {
	blob, err := k.store.APIKeyBlob(ctx, provider)
	if err != nil {
		return "", err
	}
	plaintext, err := open(blob, passphrase)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Delete removes the stored key for provider
func (k *Keystore) Delete(ctx context.Context, provider string) error {
	return k.store.DeleteAPIKeyBlob(ctx, provider)
}

// Has reports whether a key is stored for provider without decrypting it
func (k *Keystore) Has(ctx context.Context, provider string) bool {
	_, err := k.store.APIKeyBlob(ctx, provider)
	return err == nil
}

// ValidateAPIKey applies provider-specific shape checks before storing
func ValidateAPIKey(apiKey, provider string) bool {
	apiKey = strings.TrimSpace(apiKey)
	if len(apiKey) < 20 {
		return false
	}
	if provider == "anthropic" {
		// Anthropic keys start with 'sk-ant-'
		return strings.HasPrefix(apiKey, "sk-ant-")
	}
	return true
}

// seal produces salt || nonce || ciphertext
func seal(plaintext []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plaintext, nil), nil
}

// open reverses seal
func open(blob []byte, passphrase string) ([]byte, error) {
	if len(blob) < saltSize {
		return nil, &DecryptError{Message: "blob too short"}
	}
	salt, rest := blob[:saltSize], blob[saltSize:]

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return nil, &DecryptError{Message: "blob too short"}
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, &DecryptError{Message: "failed to decrypt API key", Cause: err}
	}
	return plaintext, nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
