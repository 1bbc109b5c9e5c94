package auth

import "time"

// RoleAdmin is the only role allowed to call operational endpoints.
const RoleAdmin = "admin"

// Config drives operator token behavior.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// Claims are extracted from a validated operator token.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}
