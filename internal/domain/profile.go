package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of identity roles. Earlier versions of the
// system carried loose role strings; ParseRole maps the legacy spellings
// onto this enum so every gate can switch exhaustively.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCaregiver Role = "caregiver"
	RoleFamily    Role = "family"
	RoleGuest     Role = "guest"
)

// ParseRole normalizes a stored role string. Legacy Spanish spellings
// ("familia", "cuidadora") are still accepted; anything unknown is a guest.
func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "caregiver", "cuidadora":
		return RoleCaregiver
	case "family", "familia":
		return RoleFamily
	default:
		return RoleGuest
	}
}

// CanManageAvailability reports whether the role may edit open hours.
func (r Role) CanManageAvailability() bool {
	switch r {
	case RoleAdmin, RoleCaregiver:
		return true
	case RoleFamily, RoleGuest:
		return false
	default:
		return false
	}
}

// CanManageBookings reports whether the role may change booking statuses
// and list all bookings.
func (r Role) CanManageBookings() bool {
	switch r {
	case RoleAdmin, RoleCaregiver:
		return true
	case RoleFamily, RoleGuest:
		return false
	default:
		return false
	}
}

// Identity is the authenticated caller of a request: the profile id
// and role carried by the session token.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// Profile links a session identity to a role and contact metadata.
type Profile struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	FullName     *string
	Phone        *string
	City         string

	CreatedAt time.Time
	UpdatedAt time.Time
}
