package task

import (
	"errors"
	"time"
)

// Task status values. Any status may move to any other; the only side
// effects are the startedAt/completedAt stamps set by the store.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusReview     = "review"
	StatusDone       = "done"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID              string     `json:"id"`
	ProjectID       string     `json:"projectId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	DueDate         string     `json:"dueDate"`
	DueTime         string     `json:"dueTime"`
	AssignedUserIDs []string   `json:"assignedUserIds"`
	StartedAt       *time.Time `json:"startedAt,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

var (
	ErrNotFound    = errors.New("task not found")
	ErrNoAssignees = errors.New("assign at least one user")
)

type CreateTaskRequest struct {
	Title           string   `json:"title" binding:"required,min=1,max=200"`
	Description     string   `json:"description" binding:"required,max=2000"`
	Status          string   `json:"status" binding:"required,oneof=todo in-progress review done"`
	Priority        string   `json:"priority" binding:"required,oneof=low medium high"`
	DueDate         string   `json:"dueDate" binding:"required,datetime=2006-01-02"`
	DueTime         string   `json:"dueTime" binding:"required"`
	ProjectID       string   `json:"projectId" binding:"required"`
	AssignedUserIDs []string `json:"assignedUserIds" binding:"required,min=1"`
}

// Updates carry the same required field set as creation. The owning project
// cannot be changed through an update.
type UpdateTaskRequest struct {
	Title           string   `json:"title" binding:"required,min=1,max=200"`
	Description     string   `json:"description" binding:"required,max=2000"`
	Status          string   `json:"status" binding:"required,oneof=todo in-progress review done"`
	Priority        string   `json:"priority" binding:"required,oneof=low medium high"`
	DueDate         string   `json:"dueDate" binding:"required,datetime=2006-01-02"`
	DueTime         string   `json:"dueTime" binding:"required"`
	AssignedUserIDs []string `json:"assignedUserIds" binding:"required,min=1"`
}
