package domain

// User is the verified identity behind the current session token.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Session is the authentication state of the client. A non-empty token
// with a nil user is a valid transient state: the token was restored or
// freshly issued but not yet confirmed by the backend.
type Session struct {
	Token string
	User  *User
}

// IsLoggedIn reports whether a token is present. This is weaker than a
// verified identity; callers needing a confirmed user must check User.
func (s Session) IsLoggedIn() bool {
	return s.Token != ""
}
