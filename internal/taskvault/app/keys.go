package app

import (
	"crypto/ed25519"
	"fmt"
	"log/slog"
	"os"

	"github.com/quollsoft/taskvault/pkg/jwtx"
)

// initIdentityKey loads the Ed25519 identity-token key from the configured
// PEM file, or generates an ephemeral one. With an ephemeral key every
// previously minted identity token becomes unverifiable on restart, which is
// consistent with the rest of the state being volatile; point
// TASKVAULT_IDENTITY_KEY_FILE at a persisted key to keep principals stable
// across restarts.
func initIdentityKey(cfg Config, logger *slog.Logger) (ed25519.PrivateKey, error) {
	if cfg.IdentityKeyFile == "" {
		key, err := jwtx.GenerateKey()
		if err != nil {
			return nil, err
		}
		logger.Info("identity key generated (ephemeral mode)")
		return key, nil
	}

	pemBytes, err := os.ReadFile(cfg.IdentityKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read identity key file: %w", err)
	}

	key, err := jwtx.ParsePrivateKeyPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse identity key: %w", err)
	}

	logger.Info("identity key loaded", "path", cfg.IdentityKeyFile)
	return key, nil
}
