package usecase

import (
	"court-booking/internal/data/entity"

	"github.com/google/uuid"
)

// Identity is the resolved caller passed explicitly into every service
// call. It is built by the auth middleware from a validated session and
// never read from ambient state inside the services.
type Identity struct {
	UserID uuid.UUID
	Role   entity.UserRole
}

// Anonymous is the identity of an unauthenticated caller.
var Anonymous = Identity{}

func (i Identity) Authenticated() bool {
	return i.UserID != uuid.Nil
}

func (i Identity) IsAdmin() bool {
	return i.Authenticated() && i.Role == entity.RoleAdmin
}
