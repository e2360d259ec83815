package actor

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through NewActor or Guest. This ensures all actors carry a validated role.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor or Guest")

// Actor represents the resolved identity behind a request.
//
// Actor follows these invariants:
//   - A signed-in actor has a valid identifier and an authenticated role
//   - A guest actor has no identifier and the guest role
//   - Can only be created through NewActor or Guest
//
// Actor is a value object: it is immutable and compared by its identifier.
type Actor struct {
	// id is the user identifier of a signed-in actor (zero for guests)
	id kernel.UUID

	// role is the actor's permission level
	role Role

	// isConstructed ensures the actor was created via a constructor
	isConstructed bool
}

// NewActor creates a signed-in Actor with validation.
// The identifier must be a valid UUID and the role must be an authenticated
// role (buyer, seller, or admin); use Guest for anonymous visitors.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	if !role.IsAuthenticated() {
		return Actor{}, ErrActorIsNotConstructed
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Guest creates an anonymous Actor. Guests carry no identifier and may only
// perform public reads.
func Guest() Actor {
	return Actor{
		role:          RoleGuest,
		isConstructed: true,
	}
}

// Validate ensures the Actor instance was properly constructed.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's user identifier. The zero UUID for guests.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAuthenticated reports whether the actor is a signed-in user.
func (a Actor) IsAuthenticated() bool {
	return a.isConstructed && a.role.IsAuthenticated()
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}
