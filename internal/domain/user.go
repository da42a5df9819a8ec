package domain

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleTechnician Role = "technician"
	RoleClient     Role = "client"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleTechnician, RoleClient:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	Picture      string    `json:"picture,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session binds an opaque cookie token to a user. Expiry is checked
// lazily on resolve; rows are deleted on logout.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
