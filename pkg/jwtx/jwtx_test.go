package jwtx_test

import (
	"testing"
	"time"

	"github.com/quollsoft/taskvault/pkg/jwtx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	key, err := jwtx.GenerateKey()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA(key)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierEdDSA(signer.Public(), "taskvault")

	claims := jwtx.NewIdentityClaims("01J0PRINCIPAL", "taskvault", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "01J0PRINCIPAL", got.Subject)
	assert.Equal(t, "taskvault", got.Issuer)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	key, err := jwtx.GenerateKey()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA(key)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierEdDSA(signer.Public(), "taskvault")

	token, err := signer.Sign(jwtx.NewIdentityClaims("p", "someone-else", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	keyA, err := jwtx.GenerateKey()
	require.NoError(t, err)
	keyB, err := jwtx.GenerateKey()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(keyA)
	require.NoError(t, err)
	other, err := jwtx.NewSignerEdDSA(keyB)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierEdDSA(other.Public(), "taskvault")

	token, err := signer.Sign(jwtx.NewIdentityClaims("p", "taskvault", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	key, err := jwtx.GenerateKey()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA(key)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierEdDSA(signer.Public(), "taskvault")

	issued := time.Now().UTC().Add(-2 * time.Hour)
	token, err := signer.Sign(jwtx.NewIdentityClaims("p", "taskvault", time.Hour, issued))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	key, err := jwtx.GenerateKey()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA(key)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierEdDSA(signer.Public(), "taskvault")

	// Issued far in the past with no expiry set.
	issued := time.Now().UTC().Add(-24 * 365 * time.Hour)
	token, err := signer.Sign(jwtx.NewIdentityClaims("p", "taskvault", 0, issued))
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Nil(t, got.ExpiresAt)
}

func TestPrivateKeyPEMRoundTrip(t *testing.T) {
	t.Parallel()

	key, err := jwtx.GenerateKey()
	require.NoError(t, err)

	pemBytes, err := jwtx.EncodePrivateKeyPEM(key)
	require.NoError(t, err)

	parsed, err := jwtx.ParsePrivateKeyPEM(pemBytes)
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestParsePrivateKeyPEMRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := jwtx.ParsePrivateKeyPEM([]byte("not pem at all"))
	assert.Error(t, err)

	_, err = jwtx.ParsePrivateKeyPEM([]byte("-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n"))
	assert.Error(t, err)
}
