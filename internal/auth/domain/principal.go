// Package domain defines the authenticated caller. Users are managed by an external
// identity provider; this service only trusts the JWT subject.
package domain

import "time"

// Principal is the caller identified by a verified token.
type Principal struct {
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
