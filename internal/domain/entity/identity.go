package entity

// Identity is the authenticated caller resolved from an access token.
type Identity struct {
	UserID    string `json:"_id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
