package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sitekeeper/internal/common"
)

// Role is the closed set of identities a user can act as.
type Role string

const (
	RoleSuperAdmin       Role = "SUPER_ADMIN"
	RoleSiteSupervisor   Role = "SITE_SUPERVISOR"
	RoleTechnician       Role = "TECHNICIAN"
	RoleWarehouseManager Role = "WAREHOUSE_MANAGER"
	RoleElectrician      Role = "ELECTRICIAN"
)

// Roles lists every role in display order.
var Roles = []Role{
	RoleSuperAdmin,
	RoleSiteSupervisor,
	RoleTechnician,
	RoleWarehouseManager,
	RoleElectrician,
}

// ParseRole accepts the serialised role name in any letter case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Roles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("role %q: %w", s, common.ErrInvalidValue)
}

func (r Role) IsAdmin() bool { return r == RoleSuperAdmin }

// Label is the human form, e.g. "Site Supervisor".
func (r Role) Label() string {
	words := strings.Split(strings.ToLower(string(r)), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
