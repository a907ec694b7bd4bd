package store

import (
	"github.com/taskflow/taskflow/internal/domain/activity"
	"github.com/taskflow/taskflow/internal/domain/project"
)

func (s *Store) CreateProject(ownerID string, req project.CreateProjectRequest) (project.Project, error) {
	var p project.Project

	err := s.observe("project_create", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		p = project.Project{
			ID:          newID(),
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			EndDate:     req.EndDate,
			OwnerID:     ownerID,
			CreatedAt:   s.now().UTC(),
		}

		s.projects[p.ID] = p
		s.projectIDs = append(s.projectIDs, p.ID)
		s.appendActivity(ownerID, activity.ActionCreate, activity.EntityProject, p.Name)
		s.rev++

		return nil
	})

	return p, err
}

// ListProjects returns the caller's projects in creation order.
func (s *Store) ListProjects(ownerID string) []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []project.Project{}

	for _, id := range s.projectIDs {
		p := s.projects[id]
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}

	return out
}

// UpdateProject merges the non-nil fields of req into the caller's project.
// Absent fields keep their stored values.
func (s *Store) UpdateProject(ownerID, id string, req project.UpdateProjectRequest) (project.Project, error) {
	var p project.Project

	err := s.observe("project_update", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		cur, ok := s.projects[id]
		if !ok || cur.OwnerID != ownerID {
			return project.ErrNotFound
		}

		if req.Name != nil {
			cur.Name = *req.Name
		}
		if req.Description != nil {
			cur.Description = *req.Description
		}
		if req.Category != nil {
			cur.Category = *req.Category
		}
		if req.EndDate != nil {
			cur.EndDate = *req.EndDate
		}

		s.projects[id] = cur
		s.appendActivity(ownerID, activity.ActionUpdate, activity.EntityProject, cur.Name)
		s.rev++
		p = cur

		return nil
	})

	return p, err
}

// DeleteProject removes the caller's project and every task referencing it
// as one atomic step. Deleting an absent or foreign project is a no-op.
func (s *Store) DeleteProject(ownerID, id string) error {
	return s.observe("project_delete", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		p, ok := s.projects[id]
		if !ok || p.OwnerID != ownerID {
			return nil
		}

		delete(s.projects, id)
		s.projectIDs = removeID(s.projectIDs, id)

		kept := s.taskIDs[:0]
		for _, tid := range s.taskIDs {
			if s.tasks[tid].ProjectID == id {
				delete(s.tasks, tid)
				continue
			}
			kept = append(kept, tid)
		}
		s.taskIDs = kept

		s.appendActivity(ownerID, activity.ActionDelete, activity.EntityProject, p.Name)
		s.rev++

		return nil
	})
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
