package domain

import "github.com/google/uuid"

// Principal is the caller identity resolved once at the edge and handed to
// the services as an immutable value. A nil UserID means no authenticated
// principal.
type Principal struct {
	UserID    *uuid.UUID
	FirstName string
	LastName  string
	Username  string
	Role      string
}

func (p Principal) IsAuthenticated() bool {
	return p.UserID != nil
}
