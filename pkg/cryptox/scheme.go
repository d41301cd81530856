package cryptox

import (
	"errors"
	"fmt"
)

// ErrMismatch reports that a presented credential does not match the stored
// encoding. Verify never distinguishes "wrong credential" from "corrupt
// stored encoding" to callers that only care about yes/no.
var ErrMismatch = errors.New("cryptox: credential mismatch")

// Scheme is the single seam through which credentials are encoded at
// registration and compared at login. The registry never touches credential
// bytes directly, so swapping plaintext comparison for a real KDF is a
// one-line wiring change.
type Scheme interface {
	// Name identifies the scheme ("plain", "argon2id").
	Name() string

	// Encode prepares a credential for storage.
	Encode(credential string) (string, error)

	// Verify compares a presented credential against a stored encoding.
	// Returns ErrMismatch on failure.
	Verify(credential, stored string) error
}

// SchemeByName returns the scheme for a config value.
func SchemeByName(name string) (Scheme, error) {
	switch name {
	case "plain":
		return PlainScheme{}, nil
	case "", "argon2id":
		return Argon2Scheme{}, nil
	default:
		return nil, fmt.Errorf("cryptox: unknown credential scheme %q", name)
	}
}
