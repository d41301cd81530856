package cryptox

import "crypto/subtle"

// PlainScheme stores credentials verbatim and compares them byte-for-byte in
// constant time. This reproduces the original system's behavior and exists
// only for compatibility; prefer Argon2Scheme.
type PlainScheme struct{}

func (PlainScheme) Name() string { return "plain" }

func (PlainScheme) Encode(credential string) (string, error) {
	return credential, nil
}

func (PlainScheme) Verify(credential, stored string) error {
	if subtle.ConstantTimeCompare([]byte(credential), []byte(stored)) == 1 {
		return nil
	}
	return ErrMismatch
}
