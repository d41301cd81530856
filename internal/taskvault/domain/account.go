package domain

import "time"

// Account is a registered user. Accounts are immutable after creation and
// live for the process lifetime.
type Account struct {
	Username   string
	Credential string // encoded via a cryptox scheme, compared at login only
	CreatedAt  time.Time
}
