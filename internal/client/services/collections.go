package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sitekeeper/internal/client/models"
	"github.com/dmitrijs2005/sitekeeper/internal/client/store"
	"github.com/dmitrijs2005/sitekeeper/internal/common"
)

func (s *State) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects.All()
}

// AddProject creates a project from d and puts it at the top of the list.
func (s *State) AddProject(ctx context.Context, d models.ProjectDraft) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.NewProject(d)
	s.projects.Prepend(ctx, p)
	return p
}

// SearchProjects matches q against project name and client, ignoring case.
func (s *State) SearchProjects(q string) []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects.Filter(func(p models.Project) bool { return p.MatchesQuery(q) })
}

func (s *State) UpdateProjectStatus(ctx context.Context, id string, status models.ProjectStatus) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects.Update(ctx, id, func(p models.Project) models.Project {
		p.Status = status
		return p
	})
}

// UpdateProjectProgress sets progress, clamped to 0..100.
func (s *State) UpdateProjectProgress(ctx context.Context, id string, progress int) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects.Update(ctx, id, func(p models.Project) models.Project {
		p.Progress = models.ClampProgress(progress)
		return p
	})
}

func (s *State) Staff() []models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.staff.All()
}

// AddStaff appends a new active field member. Administrators cannot be added.
func (s *State) AddStaff(ctx context.Context, d models.StaffDraft) (models.StaffMember, error) {
	if d.Role.IsAdmin() {
		return models.StaffMember{}, fmt.Errorf("staff role %s: %w", d.Role, common.ErrInvalidValue)
	}
	if d.Name == "" {
		return models.StaffMember{}, fmt.Errorf("staff name is empty: %w", common.ErrInvalidValue)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	m := models.NewStaffMember(d)
	s.staff.Append(ctx, m)
	return m, nil
}

// FilterStaff returns members with the given role (or models.RoleFilterAll)
// whose name contains q.
func (s *State) FilterStaff(role, q string) []models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.staff.Filter(func(m models.StaffMember) bool { return m.Matches(role, q) })
}

func (s *State) Inventory() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.All()
}

// AdjustStock moves amount units in or out and recomputes the stock level.
func (s *State) AdjustStock(ctx context.Context, id string, dir models.Direction, amount int) (models.InventoryItem, error) {
	if amount < 0 {
		return models.InventoryItem{}, fmt.Errorf("amount %d: %w", amount, common.ErrInvalidValue)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Update(ctx, id, func(it models.InventoryItem) models.InventoryItem {
		return it.Adjust(dir, amount)
	})
}

// LowStock lists items whose level is not sufficient.
func (s *State) LowStock() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Filter(func(it models.InventoryItem) bool { return it.Status != models.StockSufficient })
}

func (s *State) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.All()
}

// AddTask appends a pending task. A missing project name is copied from the
// referenced project when it exists.
func (s *State) AddTask(ctx context.Context, d models.TaskDraft) (models.Task, error) {
	if d.Title == "" {
		return models.Task{}, fmt.Errorf("task title is empty: %w", common.ErrInvalidValue)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ProjectName == "" {
		if p, err := s.projects.Get(d.ProjectID); err == nil {
			d.ProjectName = p.Name
		}
	}
	t := models.NewTask(d)
	s.tasks.Append(ctx, t)
	return t, nil
}

func (s *State) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.Update(ctx, id, func(t models.Task) models.Task {
		t.Status = status
		return t
	})
}

// TasksFor lists the tasks assigned to staffID.
func (s *State) TasksFor(staffID string) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.Filter(func(t models.Task) bool { return t.IsAssignedTo(staffID) })
}

// ResetCollections restores all four collections to the seed data in one
// transaction. Memory is only replaced once the write succeeded.
func (s *State) ResetCollections(ctx context.Context) error {
	projects := models.DefaultProjects()
	staff := models.DefaultStaff()
	inventory := models.DefaultInventory()
	tasks := models.DefaultTasks()

	err := s.store.WriteAll(ctx, map[string]any{
		store.KeyProjects:  projects,
		store.KeyStaff:     staff,
		store.KeyInventory: inventory,
		store.KeyTasks:     tasks,
	})
	if err != nil {
		return fmt.Errorf("reset collections: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects.replace(projects)
	s.staff.replace(staff)
	s.inventory.replace(inventory)
	s.tasks.replace(tasks)
	return nil
}
