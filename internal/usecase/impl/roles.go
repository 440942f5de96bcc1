package impl

import (
	"strings"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
)

// requireRole refuses actors whose role is not one of roles.
func requireRole(actor entity.Actor, roles ...entity.Role) error {
	if entity.Roles(roles).Contains(actor.Role) {
		return nil
	}

	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}

	return domainerrors.ErrRoleNotPermitted.WithDetails("requires " + strings.Join(names, " or "))
}
