package service

import (
	"context"
	"fmt"

	"gocloud.dev/secrets"

	// Register keeper drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"

	apperrors "github.com/allisson/mediport/internal/errors"
)

// keeperCipher implements CredentialCipher with a gocloud.dev secrets keeper.
type keeperCipher struct {
	keeper *secrets.Keeper
}

// NewCredentialCipher opens the keeper at keeperURI.
// Supports: base64key://, hashivault://, awskms://, gcpkms://, azurekeyvault://
// A bare "base64key://" generates a random key that lives as long as the process.
func NewCredentialCipher(ctx context.Context, keeperURI string) (CredentialCipher, error) {
	keeper, err := secrets.OpenKeeper(ctx, keeperURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open session keeper: %w", err)
	}
	return &keeperCipher{keeper: keeper}, nil
}

// Encrypt seals plaintext with the keeper.
func (k *keeperCipher) Encrypt(ctx context.Context, plaintext string) ([]byte, error) {
	ciphertext, err := k.keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt session credential")
	}
	return ciphertext, nil
}

// Decrypt opens ciphertext with the keeper.
func (k *keeperCipher) Decrypt(ctx context.Context, ciphertext []byte) (string, error) {
	plaintext, err := k.keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to decrypt session credential")
	}
	return string(plaintext), nil
}

// Close releases the keeper.
func (k *keeperCipher) Close() error {
	return k.keeper.Close()
}
