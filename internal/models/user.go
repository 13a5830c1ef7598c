package models

import "time"

// User is the persisted account record. PasswordHash is a bcrypt digest and
// must never leave the server; handlers expose users via Profile instead.
type User struct {
	ID           string      `json:"id"`          // user UUID
	Username     string      `json:"username"`    // unique username
	Email        string      `json:"email"`       // unique email address
	PasswordHash string      `json:"-"`           // bcrypt hash of the password
	SavedBooks   []SavedBook `json:"saved_books"` // saved collection, one entry per book id
	CreatedAt    time.Time   `json:"created_at"`  // creation time
}

// Identity is the authenticated principal for a single request.
// Produced by token verification or by a successful login/register,
// it never carries credentials.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Identity returns the principal embedded in the user record.
func (u *User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// Profile returns the public projection of the user: everything except
// the password hash.
func (u *User) Profile() Profile {
	books := u.SavedBooks
	if books == nil {
		books = []SavedBook{}
	}
	return Profile{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		SavedBooks: books,
		BookCount:  len(books),
	}
}

// Profile is what the API returns for a user.
type Profile struct {
	ID         string      `json:"id"`
	Username   string      `json:"username"`
	Email      string      `json:"email"`
	SavedBooks []SavedBook `json:"saved_books"`
	BookCount  int         `json:"book_count"`
}
