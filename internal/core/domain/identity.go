package domain

// Identity is the resolved principal of a request. The zero value is
// Anonymous.
type Identity struct {
	UserID string
	Name   string
}

// Anonymous is the identity of a request without a valid session.
var Anonymous = Identity{}

func (i Identity) IsAnonymous() bool { return i.UserID == "" }
