// Package secret stores the API client secret as an encrypted blob on disk.
// The blob is sealed with AES-GCM under a key stretched (scrypt) from a
// random key file; both files are written 0600 and refused when readable by
// group or other, so the blob is usable only by the principal that created
// it. Raw secrets in plain configuration remain possible but are discouraged.
package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/scrypt"
)

const (
	saltSize = 16
	keySize  = 32

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// DefaultKeyPath places the key file next to the blob.
func DefaultKeyPath(blobPath string) string {
	return blobPath + ".key"
}

// Save encrypts secret and writes the blob to path. The key file is created
// on first use.
func Save(path, keyPath string, secret []byte) error {
	key, err := ensureKey(keyPath)
	if err != nil {
		return err
	}
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return err
	}
	gcm, err := sealer(key, salt)
	if err != nil {
		return err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	blob := append(salt, nonce...)
	blob = gcm.Seal(blob, nonce, secret, nil)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, blob, 0600)
}

// Load decrypts the blob at path.
func Load(path, keyPath string) ([]byte, error) {
	if err := checkPrivate(path); err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := readKey(keyPath)
	if err != nil {
		return nil, err
	}
	if len(blob) < saltSize {
		return nil, fmt.Errorf("credential blob too short")
	}
	salt, rest := blob[:saltSize], blob[saltSize:]
	gcm, err := sealer(key, salt)
	if err != nil {
		return nil, err
	}
	if len(rest) < gcm.NonceSize() {
		return nil, fmt.Errorf("credential blob too short")
	}
	nonce, ct := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	secret, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt credential blob: %w", err)
	}
	return secret, nil
}

func sealer(key, salt []byte) (cipher.AEAD, error) {
	derived, err := scrypt.Key(key, salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func ensureKey(keyPath string) ([]byte, error) {
	if _, err := os.Stat(keyPath); err == nil {
		return readKey(keyPath)
	}
	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(keyPath), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(keyPath, key, 0600); err != nil {
		return nil, err
	}
	return key, nil
}

func readKey(keyPath string) ([]byte, error) {
	if err := checkPrivate(keyPath); err != nil {
		return nil, err
	}
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}
	if len(key) != keySize {
		return nil, fmt.Errorf("key file %s has wrong size", keyPath)
	}
	return key, nil
}

func checkPrivate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0077 != 0 {
		return fmt.Errorf("%s is readable by group/other, refusing", path)
	}
	return nil
}
