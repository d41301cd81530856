package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/quollsoft/taskvault/internal/taskvault/domain"
	"github.com/quollsoft/taskvault/pkg/idx"
	"github.com/quollsoft/taskvault/pkg/jwtx"
	"github.com/quollsoft/taskvault/pkg/slogx"
)

// IdentityService mints caller principals. This is transport plumbing, not
// core state: a principal is just a ULID wrapped in a signed token, and the
// service keeps no record of which principals exist.
type IdentityService struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration // zero means tokens never expire
}

// Mint creates a fresh principal and the bearer token that proves it.
func (s *IdentityService) Mint(ctx context.Context) (domain.Identity, string, error) {
	principal := idx.New().String()

	claims := jwtx.NewIdentityClaims(principal, s.Issuer, s.TTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to sign identity token", slog.Any("error", err))
		return "", "", err
	}

	return domain.Identity(principal), token, nil
}
