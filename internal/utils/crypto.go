package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/scrypt"
)

// FieldCipher encrypts the sensitive columns (device unlock secrets,
// person PII) before they reach the database. AES-256-GCM with a random
// nonce per value; the nonce is prepended to the ciphertext.
type FieldCipher struct {
	aead cipher.AEAD
}

func NewFieldCipher(secret string) (*FieldCipher, error) {
	if secret == "" {
		return nil, errors.New("fieldcipher: empty secret")
	}

	key, err := scrypt.Key([]byte(secret), []byte("repairdesk.fields"), 1<<15, 8, 1, 32)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &FieldCipher{aead: aead}, nil
}

// Encrypt returns the hex-encoded nonce+ciphertext, or "" for "".
func (f *FieldCipher) Encrypt(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}

	nonce := make([]byte, f.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := f.aead.Seal(nonce, nonce, []byte(plain), nil)
	return hex.EncodeToString(sealed), nil
}

func (f *FieldCipher) Decrypt(ciphered string) (string, error) {
	if ciphered == "" {
		return "", nil
	}

	raw, err := hex.DecodeString(ciphered)
	if err != nil {
		return "", err
	}

	if len(raw) < f.aead.NonceSize() {
		return "", errors.New("fieldcipher: ciphertext too short")
	}

	nonce, sealed := raw[:f.aead.NonceSize()], raw[f.aead.NonceSize():]
	plain, err := f.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// DecryptLenient is for read paths assembling API responses: a value that
// cannot be decrypted is returned empty instead of failing the whole
// response.
func (f *FieldCipher) DecryptLenient(ciphered string) string {
	plain, err := f.Decrypt(ciphered)
	if err != nil {
		return ""
	}
	return plain
}
