package store

import (
	"github.com/taskflow/taskflow/internal/domain/user"
)

// CreateUser registers a new user. The password must already be hashed;
// the store never sees plaintext credentials.
func (s *Store) CreateUser(name, email, passwordHash string) (user.User, error) {
	var u user.User

	err := s.observe("user_create", func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, taken := s.emailIdx[email]; taken {
			return user.ErrEmailTaken
		}

		u = user.User{
			ID:           newID(),
			Email:        email,
			Name:         name,
			PasswordHash: passwordHash,
		}

		s.users[u.ID] = u
		s.userIDs = append(s.userIDs, u.ID)
		s.emailIdx[email] = u.ID
		s.rev++

		return nil
	})

	return u, err
}

func (s *Store) UserByEmail(email string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emailIdx[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}

	return s.users[id], nil
}

func (s *Store) UserByID(id string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}

	return u, nil
}

// ListUsers returns all registered users in registration order.
func (s *Store) ListUsers() []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, 0, len(s.userIDs))

	for _, id := range s.userIDs {
		out = append(out, s.users[id])
	}

	return out
}
