package domain

// Credential is the caller's bearer token together with the identity it resolved to.
// It lives for one request and is passed explicitly to every backend call.
type Credential struct {
	AccessToken string
	User        *User
}

// NewCredential returns a Credential for token and user.
func NewCredential(token string, user *User) Credential {
	return Credential{AccessToken: token, User: user}
}

// UserID returns the caller's identity key, or "" for an anonymous credential.
func (c Credential) UserID() string {
	if c.User == nil {
		return ""
	}
	return c.User.ID
}
