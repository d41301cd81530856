package domain

// Identity is the opaque, transport-authenticated token identifying a caller
// across requests. The core only ever compares identities for equality and
// uses them as map keys; it never looks inside one.
type Identity string

// Anonymous is the identity attached to requests that carry no identity
// token. Anonymous callers can still register, log in, and own tasks.
const Anonymous Identity = "anonymous"

func (i Identity) String() string { return string(i) }

// IsAnonymous reports whether the identity is the shared anonymous principal.
func (i Identity) IsAnonymous() bool { return i == Anonymous }
