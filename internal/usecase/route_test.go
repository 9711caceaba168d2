package usecase

import (
	"testing"

	"task-allocation/internal/domain/user"
)

func rolePtr(r user.Role) *user.Role {
	return &r
}

func TestDecideDestination(t *testing.T) {
	cases := []struct {
		name      string
		path      string
		queryRole string
		persisted *user.Role
		want      Destination
	}{
		{
			name: "already on supervisor page",
			path: PathSupervisor,
			want: DestinationStay,
		},
		{
			name: "already on employee page",
			path: PathEmployee,
			want: DestinationStay,
		},
		{
			name:      "persisted supervisor",
			path:      "/",
			persisted: rolePtr(user.RoleSupervisor),
			want:      DestinationSupervisor,
		},
		{
			name:      "persisted employee",
			path:      "/",
			persisted: rolePtr(user.RoleEmployee),
			want:      DestinationEmployee,
		},
		{
			name:      "persisted role wins over query role",
			path:      "/",
			queryRole: "supervisor",
			persisted: rolePtr(user.RoleEmployee),
			want:      DestinationEmployee,
		},
		{
			name:      "query role used when nothing persisted",
			path:      "/",
			queryRole: "supervisor",
			want:      DestinationSupervisor,
		},
		{
			name:      "unknown query role falls through to selection",
			path:      "/",
			queryRole: "admin",
			want:      DestinationRoleSelection,
		},
		{
			name: "no role at all",
			path: "/",
			want: DestinationRoleSelection,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecideDestination(tc.path, tc.queryRole, tc.persisted)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
