package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskflow/taskflow/internal/domain/activity"
	"github.com/taskflow/taskflow/internal/domain/project"
	"github.com/taskflow/taskflow/internal/domain/task"
	"github.com/taskflow/taskflow/internal/domain/timeentry"
	"github.com/taskflow/taskflow/internal/domain/user"
)

// Observer wraps one logical store operation, e.g. for metrics.
type Observer interface {
	ObserveStore(op string, fn func() error) error
}

// Store is the single source of truth for all entities. One mutex guards
// all state: every mutation (cascade delete included) is atomic relative to
// every other request, and read-only view computations never interleave
// with a mutation mid-scan.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time
	obs Observer

	// rev increments on every mutation; derived-view caches key off it.
	rev uint64

	users    map[string]user.User
	userIDs  []string
	emailIdx map[string]string

	projects   map[string]project.Project
	projectIDs []string

	tasks   map[string]task.Task
	taskIDs []string

	entries    []timeentry.TimeEntry
	activities []activity.Activity
}

type Option func(*Store)

// WithNowFunc overrides the clock, mainly for tests.
func WithNowFunc(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithObserver attaches an operation observer (metrics).
func WithObserver(obs Observer) Option {
	return func(s *Store) {
		s.obs = obs
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		now:      time.Now,
		users:    make(map[string]user.User),
		emailIdx: make(map[string]string),
		projects: make(map[string]project.Project),
		tasks:    make(map[string]task.Task),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Revision reports the mutation counter. Two reads at the same revision see
// identical state.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.rev
}

func (s *Store) observe(op string, fn func() error) error {
	if s.obs != nil {
		return s.obs.ObserveStore(op, fn)
	}

	return fn()
}

func newID() string {
	return uuid.NewString()
}

// appendActivity records a change-log entry. Caller must hold the write lock.
func (s *Store) appendActivity(userID, action, entity, title string) {
	s.activities = append(s.activities, activity.Activity{
		ID:        newID(),
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		Title:     title,
		CreatedAt: s.now().UTC(),
	})
}
