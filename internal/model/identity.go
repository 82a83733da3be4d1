package model

// Identity is the caller resolved from the identity provider's access token.
// It is passed explicitly into every service operation instead of being
// looked up from ambient request state.
type Identity struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Picture       string `json:"picture"`
	Authenticated bool   `json:"-"`
}

// AuthorID is the identifier stamped onto posts created by this caller.
func (i Identity) AuthorID() string {
	if i.ID == "" {
		return "unknown"
	}
	return i.ID
}

// DisplayName falls back to the email, then to "Unknown".
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if i.Email != "" {
		return i.Email
	}
	return "Unknown"
}
