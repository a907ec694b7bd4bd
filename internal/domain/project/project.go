package project

import (
	"errors"
	"time"
)

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	EndDate     string    `json:"endDate"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

var ErrNotFound = errors.New("project not found")

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=120"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Category    string `json:"category" binding:"omitempty,max=80"`
	EndDate     string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}

// Partial update: nil pointers leave the stored value untouched. A field
// present with the wrong JSON type is rejected at bind time instead of being
// silently ignored.
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Category    *string `json:"category" binding:"omitempty,max=80"`
	EndDate     *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
}
