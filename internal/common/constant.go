// Package common contains shared constants and sentinel errors used across
// TabSense components.
package common

// AuthTokenHeaderName is the HTTP header used to carry the session token on
// authenticated requests.
const AuthTokenHeaderName = "x-auth-token"

// AdminUserName is the username of the account seeded at first server boot.
const AdminUserName = "admin"
