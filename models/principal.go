package models

// Principal is the authenticated actor behind a request, materialized by
// the session middleware from the signed token plus a guest-row lookup.
// A nil *Principal means "no authenticated session".
type Principal struct {
	GuestID uint
	Email   string
}
