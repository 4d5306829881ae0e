// Package service provides technical services for gateway sessions: opaque session
// token generation and encryption of the remote credential at rest.
package service

import "context"

// TokenService defines operations for session token generation and hashing.
type TokenService interface {
	// GenerateToken creates a new cryptographically secure random token.
	// Returns both the plain text token (handed to the operator once) and
	// the hashed version (stored in the database).
	GenerateToken() (plainToken string, tokenHash string, err error)

	// HashToken hashes a plain text token using SHA-256.
	HashToken(plainToken string) string
}

// CredentialCipher encrypts the remote API bearer token before it is persisted.
type CredentialCipher interface {
	Encrypt(ctx context.Context, plaintext string) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) (string, error)
	Close() error
}
