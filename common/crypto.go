package common

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const gcmNonceSize = 12

// EncryptSeed encrypts a partner seed phrase with AES-256-GCM. The output is
// hex encoded as "iv:authTag:ciphertext" so it can be stored as a string.
func EncryptSeed(plaintext string, key []byte) (string, error) {
	if len(key) != 32 {
		return "", errors.New("encryption key must be 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, gcmNonceSize)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcmNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	// gcm.Seal appends the auth tag to the ciphertext
	tagStart := len(sealed) - gcm.Overhead()
	ciphertext := sealed[:tagStart]
	tag := sealed[tagStart:]

	return fmt.Sprintf("%s:%s:%s", hex.EncodeToString(nonce), hex.EncodeToString(tag), hex.EncodeToString(ciphertext)), nil
}

// DecryptSeed reverses EncryptSeed. A tampered payload fails authentication.
func DecryptSeed(encrypted string, key []byte) (string, error) {
	if len(key) != 32 {
		return "", errors.New("encryption key must be 32 bytes")
	}

	parts := strings.Split(encrypted, ":")
	if len(parts) != 3 {
		return "", errors.New("invalid encrypted seed format")
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil {
		return "", errors.New("invalid encrypted seed nonce")
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil {
		return "", errors.New("invalid encrypted seed auth tag")
	}
	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", errors.New("invalid encrypted seed ciphertext")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, gcmNonceSize)
	if err != nil {
		return "", err
	}

	if len(nonce) != gcmNonceSize || len(tag) != gcm.Overhead() {
		return "", errors.New("invalid encrypted seed format")
	}

	plaintext, err := gcm.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return "", errors.New("seed decryption failed")
	}

	return string(plaintext), nil
}

// SeedEncryptionKeyFromHex parses the configured hex key into raw bytes.
func SeedEncryptionKeyFromHex(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, errors.New("seed encryption key is not valid hex")
	}
	if len(key) != 32 {
		return nil, errors.New("seed encryption key must be 32 bytes")
	}
	return key, nil
}
