package models

// User represents an account entity stored in the "users" table.
// Name and Email are each unique across all users.
type User struct {
	// UserID is the system-generated identifier of the user.
	UserID int64 `json:"-"`

	// Name is the unique, human-chosen identifier of the user.
	Name string `json:"name"`

	// Email is unique as well and serves as the primary lookup key
	// during authentication.
	Email string `json:"email"`

	// Password holds the salted bcrypt hash of the user's password.
	// It is never the plaintext and never leaves the server.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Data returns the public-safe projection of the user.
func (u User) Data() UserData {
	return UserData{
		Email: u.Email,
		Name:  u.Name,
	}
}

// UserData is the part of a user that may be returned to callers.
type UserData struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
