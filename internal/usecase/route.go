package usecase

import "task-allocation/internal/domain/user"

// Paths of the role-specific pages.
const (
	PathSupervisor    = "/supervisor"
	PathEmployee      = "/employee"
	PathRoleSelection = "/role-selection"
)

// Destination is where the role router sends an authenticated user.
// DestinationStay means the current page is already role-specific and no
// redirect should happen.
type Destination string

const (
	DestinationStay          Destination = ""
	DestinationSupervisor    Destination = PathSupervisor
	DestinationEmployee      Destination = PathEmployee
	DestinationRoleSelection Destination = PathRoleSelection
)

// DecideDestination routes an authenticated user by role. The persisted
// role always wins over the role query parameter; with neither set the user
// goes to role selection.
func DecideDestination(path string, queryRole string, persisted *user.Role) Destination {
	if path == PathSupervisor || path == PathEmployee {
		return DestinationStay
	}

	if persisted != nil {
		return DestinationForRole(*persisted)
	}

	if role, ok := user.ParseRole(queryRole); ok {
		return DestinationForRole(role)
	}

	return DestinationRoleSelection
}

func DestinationForRole(role user.Role) Destination {
	switch role {
	case user.RoleSupervisor:
		return DestinationSupervisor
	case user.RoleEmployee:
		return DestinationEmployee
	default:
		return DestinationRoleSelection
	}
}
