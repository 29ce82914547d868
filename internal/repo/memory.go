package repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryUserStore keeps users in process memory. Accounts are lost on restart.
type MemoryUserStore struct {
	mu      sync.RWMutex
	byID    map[string]User
	byEmail map[string]string
	now     func() time.Time
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    make(map[string]User),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (s *MemoryUserStore) Create(_ context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.Email = NormalizeEmail(u.Email)
	if _, exists := s.byEmail[u.Email]; exists {
		return User{}, ErrUserExists
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if _, exists := s.byID[u.ID]; exists {
		return User{}, ErrUserExists
	}
	u = clone(u)
	u.CreatedAt = s.now()
	s.byID[u.ID] = u
	s.byEmail[u.Email] = u.ID
	return clone(u), nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[NormalizeEmail(email)]
	if !ok {
		return User{}, ErrNotFound
	}
	return clone(s.byID[id]), nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return clone(u), nil
}

func (s *MemoryUserStore) UpdateProfile(_ context.Context, id string, p ProfileUpdate) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	p.apply(&u)
	s.byID[id] = u
	return clone(u), nil
}

func clone(u User) User {
	u.CropTypes = append([]string{}, u.CropTypes...)
	return u
}
