package models

import (
	"fmt"
	"net/url"
	"strings"
)

type StaffStatus string

const (
	StaffActive      StaffStatus = "ACTIVE"
	StaffOnLeave     StaffStatus = "ON_LEAVE"
	StaffSick        StaffStatus = "SICK"
	StaffUnavailable StaffStatus = "UNAVAILABLE"
)

// StaffMember is a field user. Administrators are never listed as staff.
type StaffMember struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Role         Role        `json:"role"`
	Email        string      `json:"email,omitempty"`
	Avatar       string      `json:"avatar,omitempty"`
	Organization string      `json:"organization,omitempty"`
	Status       StaffStatus `json:"status,omitempty"`
	Workload     int         `json:"workload"`
}

func (s StaffMember) Key() string { return s.ID }

// StaffDraft is the user-entered part of a new staff member.
type StaffDraft struct {
	Name     string
	Username string
	Role     Role
	Email    string
}

func NewStaffMember(d StaffDraft) StaffMember {
	seed := d.Username
	if seed == "" {
		seed = d.Name
	}
	return StaffMember{
		ID:           NewID("S"),
		Name:         d.Name,
		Role:         d.Role,
		Email:        d.Email,
		Avatar:       fmt.Sprintf("https://i.pravatar.cc/150?u=%s", url.QueryEscape(seed)),
		Organization: DefaultOrganization,
		Status:       StaffActive,
		Workload:     0,
	}
}

// RoleFilterAll matches every role in FilterStaff.
const RoleFilterAll = "ALL"

// Matches applies the staff screen filter: a role (or RoleFilterAll) and a
// case-insensitive name query.
func (s StaffMember) Matches(role string, q string) bool {
	if role != "" && !strings.EqualFold(role, RoleFilterAll) && !strings.EqualFold(role, string(s.Role)) {
		return false
	}
	return strings.Contains(strings.ToLower(s.Name), strings.ToLower(q))
}
