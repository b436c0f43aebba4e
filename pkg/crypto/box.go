// Package crypto seals document payloads and step texts at rest with
// AES-256-GCM. The data key is generated on first boot, sealed by the master
// key from ENCRYPTION_KEY, and stored in the system settings table.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// KeySize is the required key length in bytes (AES-256).
const KeySize = 32

// ErrInvalidKey is returned for keys that are not 32 bytes after decoding.
var ErrInvalidKey = errors.New("encryption key must be 32 bytes (base64-encoded)")

// Box seals and opens byte payloads with a single symmetric key. The nonce
// is generated per message and prepended to the ciphertext.
type Box struct {
	aead cipher.AEAD
}

// NewBox builds a Box from a raw 32-byte key.
func NewBox(key []byte) (*Box, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return &Box{aead: aead}, nil
}

// NewBoxFromBase64 builds a Box from a base64-encoded key, the format used
// by the ENCRYPTION_KEY environment variable and the stored data key.
func NewBoxFromBase64(encoded string) (*Box, error) {
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}
	return NewBox(key)
}

// GenerateKey returns a fresh random 32-byte key, base64-encoded.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("generating key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Seal encrypts plaintext. Nil input seals to nil so optional columns stay
// NULL.
func (b *Box) Seal(plaintext []byte) ([]byte, error) {
	if plaintext == nil {
		return nil, nil
	}
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	return b.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// SealString seals a string payload.
func (b *Box) SealString(plaintext string) ([]byte, error) {
	if plaintext == "" {
		return nil, nil
	}
	return b.Seal([]byte(plaintext))
}

// Open decrypts a sealed payload produced by Seal.
func (b *Box) Open(sealed []byte) ([]byte, error) {
	if sealed == nil {
		return nil, nil
	}
	ns := b.aead.NonceSize()
	if len(sealed) < ns {
		return nil, errors.New("sealed payload too short")
	}
	plaintext, err := b.aead.Open(nil, sealed[:ns], sealed[ns:], nil)
	if err != nil {
		return nil, fmt.Errorf("opening sealed payload: %w", err)
	}
	return plaintext, nil
}

// OpenString opens a sealed payload as a string.
func (b *Box) OpenString(sealed []byte) (string, error) {
	plaintext, err := b.Open(sealed)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// SealBase64 seals a string and returns the ciphertext base64-encoded, the
// form used for values inside JSON columns and system settings.
func (b *Box) SealBase64(plaintext string) (string, error) {
	sealed, err := b.SealString(plaintext)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenBase64 reverses SealBase64.
func (b *Box) OpenBase64(encoded string) (string, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decoding sealed payload: %w", err)
	}
	return b.OpenString(sealed)
}
