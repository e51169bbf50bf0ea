package model

import "time"

const (
	// PositionAdmin marks an administrator account. Any other value is a
	// regular user.
	PositionAdmin = "A"
	PositionUser  = "U"
)

type User struct {
	ID             int32
	FullName       string
	Email          string
	Username       string
	PasswordHash   string
	Position       string
	ProfileSetting string
	Created        time.Time
}

func (u *User) IsAdmin() bool {
	return u.Position == PositionAdmin
}

// Session is a server-side login session. Username and Admin are read
// from the user row every time the session is resolved, so a demoted
// admin loses access on their next request.
type Session struct {
	Token    string
	UserID   int32
	Username string
	Admin    bool
	Created  time.Time
	Expires  time.Time
}

// Identity is the request-scoped result of resolving a session. The zero
// value is the anonymous identity.
type Identity struct {
	UserID   int32
	Username string
	Admin    bool
}

func (i Identity) Anonymous() bool {
	return i.UserID == 0
}
