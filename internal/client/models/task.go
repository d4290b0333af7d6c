package models

import "slices"

type TaskStatus string

const (
	TaskPending    TaskStatus = "PENDING"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
	TaskUrgent     TaskStatus = "URGENT"
	TaskBlocked    TaskStatus = "BLOCKED"
)

func ParseTaskStatus(s string) (TaskStatus, error) {
	return parseEnum(s, []TaskStatus{TaskPending, TaskInProgress, TaskCompleted, TaskUrgent, TaskBlocked}, "task status")
}

type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	ProjectID    string     `json:"projectId"`
	ProjectName  string     `json:"projectName"`
	AssignedTo   []string   `json:"assignedTo"`
	Deadline     string     `json:"deadline"`
	Status       TaskStatus `json:"status"`
	Location     string     `json:"location"`
	Instructions string     `json:"instructions"`
}

func (t Task) Key() string { return t.ID }

// IsAssignedTo reports whether staffID is on the task.
func (t Task) IsAssignedTo(staffID string) bool {
	return slices.Contains(t.AssignedTo, staffID)
}

// TaskDraft is the user-entered part of a new task.
type TaskDraft struct {
	Title        string
	ProjectID    string
	ProjectName  string
	AssignedTo   []string
	Deadline     string
	Location     string
	Instructions string
}

func NewTask(d TaskDraft) Task {
	return Task{
		ID:           NewID("T"),
		Title:        d.Title,
		ProjectID:    d.ProjectID,
		ProjectName:  d.ProjectName,
		AssignedTo:   slices.Clone(d.AssignedTo),
		Deadline:     d.Deadline,
		Status:       TaskPending,
		Location:     d.Location,
		Instructions: d.Instructions,
	}
}
