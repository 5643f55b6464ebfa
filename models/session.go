// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side record of an authenticated login.
//
// Sessions live only in process memory and are destroyed on logout or, lazily,
// the first time they are looked up after ExpiresAt.
type Session struct {
	ID        string
	UserID    string
	Username  string
	Role      Role
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Authenticated is the outcome of a successful login: the account with its
// credential hash stripped, and the token of the session issued for it.
type Authenticated struct {
	User  User
	Token SessionToken
}
