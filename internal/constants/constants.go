package constants

// Session
const (
	SessionCookieName = "asset_session"
	ContextKeyUserID  = "user_id"
)

// Auth
const (
	MinPasswordLength = 8
)

// Pagination
const (
	DefaultPageSize = 5
	MinPageSize     = 1
	MaxPageSize     = 100
)
