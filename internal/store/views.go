package store

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/taskflow/taskflow/internal/domain/activity"
	"github.com/taskflow/taskflow/internal/domain/task"
)

// Stats is the dashboard aggregate for one user.
type Stats struct {
	FinishedProjects       int `json:"finishedProjects"`
	TimeTrackedMinutesWeek int `json:"timeTrackedMinutesWeek"`
	TotalTasks             int `json:"totalTasks"`
	CompletedTasks         int `json:"completedTasks"`
	PendingTasks           int `json:"pendingTasks"`
	TotalMembers           int `json:"totalMembers"`
}

// ActivityRow is one line of the per-assignee activity table.
type ActivityRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TaskName    string `json:"taskName"`
	ProjectName string `json:"projectName"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
}

// UserStats aggregates over the caller's projects and tasks. TotalMembers
// counts all registered users, not just collaborators.
func (s *Store) UserStats(userID string) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now().UTC()
	oneWeekAgo := now.Add(-7 * 24 * time.Hour)

	owned := make(map[string]bool, len(s.projects))
	tasksPerProject := make(map[string]int)
	donePerProject := make(map[string]int)

	for id, p := range s.projects {
		if p.OwnerID == userID {
			owned[id] = true
		}
	}

	stats := Stats{TotalMembers: len(s.users)}
	trackedMinutes := 0.0

	for _, id := range s.taskIDs {
		t := s.tasks[id]
		if !owned[t.ProjectID] {
			continue
		}

		stats.TotalTasks++
		tasksPerProject[t.ProjectID]++

		if t.Status == task.StatusDone {
			stats.CompletedTasks++
			donePerProject[t.ProjectID]++
		}

		if t.StartedAt == nil {
			continue
		}

		end := now
		if t.CompletedAt != nil {
			end = *t.CompletedAt
		}

		clampedStart := *t.StartedAt
		if clampedStart.Before(oneWeekAgo) {
			clampedStart = oneWeekAgo
		}

		clampedEnd := end
		if clampedEnd.Before(clampedStart) {
			clampedEnd = clampedStart
		}

		if m := clampedEnd.Sub(clampedStart).Minutes(); m > 0 {
			trackedMinutes += m
		}
	}

	stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks

	for id := range owned {
		if tasksPerProject[id] > 0 && tasksPerProject[id] == donePerProject[id] {
			stats.FinishedProjects++
		}
	}

	if trackedMinutes > 0 {
		stats.TimeTrackedMinutesWeek = int(math.Round(trackedMinutes))
	}

	return stats
}

// ActivityTable lists one row per (task, assignee) over the caller's
// projects, tasks in creation order. A task with no assignees yields a
// single "Unassigned" row.
func (s *Store) ActivityTable(userID string) []ActivityRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := []ActivityRow{}

	for _, id := range s.taskIDs {
		t := s.tasks[id]

		p, ok := s.projects[t.ProjectID]
		if !ok || p.OwnerID != userID {
			continue
		}

		deadline := "—"
		if t.DueDate != "" {
			deadline = t.DueDate
			if t.DueTime != "" {
				deadline += " " + t.DueTime
			}
		}

		assigned := t.AssignedUserIDs
		if len(assigned) == 0 {
			assigned = []string{""}
		}

		for i, uid := range assigned {
			name := "Unassigned"
			if uid != "" {
				name = "User"
				if u, ok := s.users[uid]; ok {
					name = u.Name
				}
			}

			rows = append(rows, ActivityRow{
				ID:          fmt.Sprintf("%s-%d", t.ID, i),
				Name:        name,
				TaskName:    t.Title,
				ProjectName: p.Name,
				Deadline:    deadline,
				Status:      t.Status,
			})
		}
	}

	return rows
}

// RecentActivities returns up to limit change-log entries, newest first.
func (s *Store) RecentActivities(limit int) []activity.FeedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]activity.Activity, len(s.activities))
	copy(sorted, s.activities)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	items := make([]activity.FeedItem, 0, len(sorted))

	for _, a := range sorted {
		name := "User"
		if u, ok := s.users[a.UserID]; ok {
			name = u.Name
		}

		items = append(items, activity.FeedItem{
			ID:       a.ID,
			Name:     name,
			Activity: describe(a),
			Time:     a.CreatedAt,
		})
	}

	return items
}

func describe(a activity.Activity) string {
	verb := "Deleted"

	switch a.Action {
	case activity.ActionCreate:
		verb = "Created"
	case activity.ActionUpdate:
		verb = "Edited"
	}

	return fmt.Sprintf("%s %s %s", verb, a.Entity, a.Title)
}
