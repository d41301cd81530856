package domain

import "time"

// Session binds a caller identity to an authenticated username. At most one
// session exists per identity; a later login silently replaces it. Sessions
// never expire and are lost on process restart.
type Session struct {
	Identity  Identity
	Username  string
	StartedAt time.Time
}
