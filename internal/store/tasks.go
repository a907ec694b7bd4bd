package store

import (
	"github.com/taskflow/taskflow/internal/domain/activity"
	"github.com/taskflow/taskflow/internal/domain/project"
	"github.com/taskflow/taskflow/internal/domain/task"
)

// CreateTask creates a task under one of the caller's projects. The project
// must exist and belong to the caller.
func (s *Store) CreateTask(ownerID string, req task.CreateTaskRequest) (task.Task, error) {
	var t task.Task

	err := s.observe("task_create", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		p, ok := s.projects[req.ProjectID]
		if !ok || p.OwnerID != ownerID {
			return project.ErrNotFound
		}

		if len(req.AssignedUserIDs) == 0 {
			return task.ErrNoAssignees
		}

		now := s.now().UTC()

		t = task.Task{
			ID:              newID(),
			ProjectID:       req.ProjectID,
			Title:           req.Title,
			Description:     req.Description,
			Status:          req.Status,
			Priority:        req.Priority,
			DueDate:         req.DueDate,
			DueTime:         req.DueTime,
			AssignedUserIDs: req.AssignedUserIDs,
		}

		switch req.Status {
		case task.StatusInProgress:
			t.StartedAt = &now
		case task.StatusDone:
			t.CompletedAt = &now
		}

		s.tasks[t.ID] = t
		s.taskIDs = append(s.taskIDs, t.ID)
		s.appendActivity(ownerID, activity.ActionCreate, activity.EntityTask, t.Title)
		s.rev++

		return nil
	})

	return t, err
}

// ListTasks returns the tasks of the given project in creation order,
// provided the project belongs to the caller. A missing or foreign project
// yields an empty list.
func (s *Store) ListTasks(ownerID, projectID string) []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []task.Task{}

	p, ok := s.projects[projectID]
	if !ok || p.OwnerID != ownerID {
		return out
	}

	for _, id := range s.taskIDs {
		t := s.tasks[id]
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}

	return out
}

// UpdateTask replaces the task's mutable fields. startedAt is stamped the
// first time the task enters in-progress and never reset; completedAt is
// stamped on a transition into done and cleared on any transition away
// from done.
func (s *Store) UpdateTask(ownerID, id string, req task.UpdateTaskRequest) (task.Task, error) {
	var t task.Task

	err := s.observe("task_update", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		cur, ok := s.tasks[id]
		if !ok {
			return task.ErrNotFound
		}

		p, ok := s.projects[cur.ProjectID]
		if !ok || p.OwnerID != ownerID {
			// Do not reveal foreign tasks.
			return task.ErrNotFound
		}

		if len(req.AssignedUserIDs) == 0 {
			return task.ErrNoAssignees
		}

		now := s.now().UTC()
		statusChanged := req.Status != cur.Status

		if statusChanged && req.Status == task.StatusInProgress && cur.StartedAt == nil {
			cur.StartedAt = &now
		}

		switch {
		case statusChanged && req.Status == task.StatusDone:
			cur.CompletedAt = &now
		case req.Status != task.StatusDone:
			cur.CompletedAt = nil
		}

		cur.Title = req.Title
		cur.Description = req.Description
		cur.Status = req.Status
		cur.Priority = req.Priority
		cur.DueDate = req.DueDate
		cur.DueTime = req.DueTime
		cur.AssignedUserIDs = req.AssignedUserIDs

		s.tasks[id] = cur
		s.appendActivity(ownerID, activity.ActionUpdate, activity.EntityTask, cur.Title)
		s.rev++
		t = cur

		return nil
	})

	return t, err
}

// DeleteTask removes a task after verifying its project belongs to the
// caller. Deleting an already-absent task is a no-op; a task owned by
// someone else is reported as not found.
func (s *Store) DeleteTask(ownerID, id string) error {
	return s.observe("task_delete", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		t, ok := s.tasks[id]
		if !ok {
			return nil
		}

		p, ok := s.projects[t.ProjectID]
		if !ok || p.OwnerID != ownerID {
			return task.ErrNotFound
		}

		delete(s.tasks, id)
		s.taskIDs = removeID(s.taskIDs, id)
		s.appendActivity(ownerID, activity.ActionDelete, activity.EntityTask, t.Title)
		s.rev++

		return nil
	})
}
