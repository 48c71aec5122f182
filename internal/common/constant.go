// Package common contains shared constants and sentinel errors used across
// the site components.
package common

const (
	// SessionCookieName is the cookie that marks an authenticated dashboard session.
	SessionCookieName = "dashboard_auth"

	// SessionSubject is the marker carried by a valid session token.
	SessionSubject = "authenticated"

	// LoginPath is where the session gate sends anonymous dashboard requests.
	LoginPath = "/login"

	// DashboardPrefix is the path prefix protected by the session gate.
	DashboardPrefix = "/dashboard"
)
