package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/ojt-tracker/internal/domain/user"
	"github.com/BruksfildServices01/ojt-tracker/internal/models"
)

type UserStore struct {
	mu        sync.Mutex
	byID      map[string]*models.User
	bySubject map[string]string
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:      map[string]*models.User{},
		bySubject: map[string]string{},
	}
}

func (s *UserStore) UpsertByGoogleSubject(_ context.Context, p user.Profile) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if id, ok := s.bySubject[p.Subject]; ok {
		u := s.byID[id]
		u.Email, u.Name, u.AvatarURL = p.Email, p.Name, p.Picture
		u.UpdatedAt = now
		c := *u
		return &c, nil
	}

	u := &models.User{
		ID:            uuid.NewString(),
		GoogleSubject: p.Subject,
		Email:         p.Email,
		Name:          p.Name,
		AvatarURL:     p.Picture,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.byID[u.ID] = u
	s.bySubject[p.Subject] = u.ID

	c := *u
	return &c, nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	c := *u
	return &c, nil
}

var _ user.Repository = (*UserStore)(nil)
