package ports

// Identity is the authenticated caller resolved from a session token and
// attached to a request by the auth middleware.
type Identity struct {
	UserID string
	Role   string
}
