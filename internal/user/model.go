package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the full account record, including the password hash. It must not
// cross the service boundary; see Sanitize.
type User struct {
	ID           string
	Role         Role
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SessionUser is the password-free projection of a User. It is the only user
// shape services return and the principal stored in the session.
type SessionUser struct {
	ID         string    `json:"id"`
	Role       Role      `json:"role"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Sanitize strips the password hash from a user record. Every path that hands
// a user to a caller goes through it, without exception.
func Sanitize(u User) SessionUser {
	return SessionUser{
		ID:         u.ID,
		Role:       u.Role,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
