package domain

import "time"

// Role is the access level carried inside issued tokens. The set is closed;
// authorization decisions use the copy baked into the token, not live storage.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the domain model for registered accounts.
type User struct {
	ID           uint64
	Email        string
	FullName     string
	Username     string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the client-facing view of a user. No password hash.
type Profile struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile projects the user onto its client-facing view.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
