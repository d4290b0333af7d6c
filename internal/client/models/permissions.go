package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sitekeeper/internal/common"
)

// View is a top-level screen of the console.
type View string

const (
	ViewDashboard     View = "dashboard"
	ViewProjects      View = "projects"
	ViewStaff         View = "staff"
	ViewCreateStaff   View = "create_staff"
	ViewInventory     View = "inventory"
	ViewReports       View = "reports"
	ViewCommunication View = "communication"
	ViewSettings      View = "settings"
)

var Views = []View{
	ViewDashboard, ViewProjects, ViewStaff, ViewCreateStaff,
	ViewInventory, ViewReports, ViewCommunication, ViewSettings,
}

func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("view %q: %w", s, common.ErrInvalidValue)
}

// Action is a mutating or privileged operation gated by role.
type Action string

const (
	ActionManageProjects    Action = "manage_projects"
	ActionManageStaff       Action = "manage_staff"
	ActionAdjustInventory   Action = "adjust_inventory"
	ActionManageTasks       Action = "manage_tasks"
	ActionRunAudit          Action = "run_audit"
	ActionViewSiteMap       Action = "view_site_map"
	ActionResetData         Action = "reset_data"
	ActionViewAssignedTasks Action = "view_assigned_tasks"
	ActionStartWork         Action = "start_work"
	ActionUpdateTaskStatus  Action = "update_task_status"
)

// Grant is what one role may see and do.
type Grant struct {
	Views   []View
	Actions []Action
}

var fieldGrant = Grant{
	Views: []View{ViewDashboard, ViewCommunication, ViewSettings},
	Actions: []Action{
		ActionViewAssignedTasks,
		ActionStartWork,
		ActionUpdateTaskStatus,
	},
}

// Permissions is the role to grant table. All role branching goes through it.
var Permissions = map[Role]Grant{
	RoleSuperAdmin: {
		Views: Views,
		Actions: []Action{
			ActionManageProjects,
			ActionManageStaff,
			ActionAdjustInventory,
			ActionManageTasks,
			ActionRunAudit,
			ActionViewSiteMap,
			ActionResetData,
		},
	},
	RoleSiteSupervisor:   fieldGrant,
	RoleTechnician:       fieldGrant,
	RoleWarehouseManager: fieldGrant,
	RoleElectrician:      fieldGrant,
}

// CanView reports whether role may open v. Unknown roles may open nothing.
func CanView(role Role, v View) bool {
	for _, allowed := range Permissions[role].Views {
		if allowed == v {
			return true
		}
	}
	return false
}

// Can reports whether role may perform a.
func Can(role Role, a Action) bool {
	for _, allowed := range Permissions[role].Actions {
		if allowed == a {
			return true
		}
	}
	return false
}

