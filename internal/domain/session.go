package domain

// Local storage keys holding the persisted session. They are written as a pair.
const (
	SessionProfileKey = "user_profile"
	SessionTokenKey   = "auth_token"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Session is the identity held for the lifetime of the app.
// A guest session is authenticated with no user and no token.
type Session struct {
	Authenticated bool
	User          *User
	Token         string
}

func (s Session) IsGuest() bool {
	return s.Authenticated && s.User == nil
}

// OwnerID identifies whose cart and wishlist are in use.
func (s Session) OwnerID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}
