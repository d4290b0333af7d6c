package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/sitekeeper/internal/common"
)

type ProjectStatus string

const (
	ProjectPlanning          ProjectStatus = "PLANNING"
	ProjectInProgress        ProjectStatus = "IN_PROGRESS"
	ProjectAttentionNeeded   ProjectStatus = "ATTENTION_NEEDED"
	ProjectCompleted         ProjectStatus = "COMPLETED"
	ProjectAwaitingMaterials ProjectStatus = "AWAITING_MATERIALS"
)

var projectStatuses = []ProjectStatus{
	ProjectPlanning, ProjectInProgress, ProjectAttentionNeeded,
	ProjectCompleted, ProjectAwaitingMaterials,
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	return parseEnum(s, projectStatuses, "project status")
}

// InitialPhase is the phase every new project starts in.
const InitialPhase = "Site Survey"

type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Client      string        `json:"client"`
	Status      ProjectStatus `json:"status"`
	Progress    int           `json:"progress"`
	Deadline    string        `json:"deadline"`
	Location    string        `json:"location"`
	Description string        `json:"description"`
	Budget      float64       `json:"budget"`
	Phase       string        `json:"phase"`
}

func (p Project) Key() string { return p.ID }

// ProjectDraft is the user-entered part of a new project.
type ProjectDraft struct {
	Name        string
	Client      string
	Deadline    string
	Location    string
	Description string
	Budget      float64
}

// NewProject fills in id, status, progress and phase for a draft.
func NewProject(d ProjectDraft) Project {
	return Project{
		ID:          NewID("P"),
		Name:        d.Name,
		Client:      d.Client,
		Status:      ProjectPlanning,
		Progress:    0,
		Deadline:    d.Deadline,
		Location:    d.Location,
		Description: d.Description,
		Budget:      d.Budget,
		Phase:       InitialPhase,
	}
}

// MatchesQuery reports whether q occurs in the name or client, ignoring case.
func (p Project) MatchesQuery(q string) bool {
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Client), q)
}

// ClampProgress limits a progress value to 0..100.
func ClampProgress(v int) int {
	return min(max(v, 0), 100)
}

func parseEnum[T ~string](s string, known []T, what string) (T, error) {
	v := T(strings.ToUpper(strings.TrimSpace(s)))
	for _, k := range known {
		if v == k {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %q: %w", what, s, common.ErrInvalidValue)
}
