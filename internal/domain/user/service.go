// internal/domain/user/service.go
package user

import (
	"context"
	"strings"
	"time"

	"github.com/hfashion/storefront/internal/infrastructure/storage"
	"github.com/sirupsen/logrus"
)

// Service handles user profile logic
type Service struct {
	docs *storage.Documents
	now  func() time.Time
	log  logrus.FieldLogger
}

// NewService creates a new user service
func NewService(store storage.Store, log logrus.FieldLogger) *Service {
	return &Service{
		docs: storage.NewDocuments(store, log),
		now:  time.Now,
		log:  log,
	}
}

// UpdateProfileRequest represents profile update data. Omitted fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name  *string `json:"name" form:"name" binding:"omitempty,min=1,max=100"`
	Email *string `json:"email" form:"email" binding:"omitempty,email"`
}

// GetProfile returns the session's profile, or the demo profile when none
// is stored
func (s *Service) GetProfile(ctx context.Context, sessionID string) *User {
	u := &User{}
	if !s.docs.Load(ctx, storage.Key(sessionID, storage.DocUser), u) || u.ID == "" {
		return Demo()
	}
	return u
}

// UpdateProfile applies req to the session's profile
func (s *Service) UpdateProfile(ctx context.Context, sessionID string, req UpdateProfileRequest) (*User, error) {
	u := s.GetProfile(ctx, sessionID)
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	u.UpdatedAt = s.now().UTC()

	if err := s.docs.Save(ctx, storage.Key(sessionID, storage.DocUser), u); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"session_id": sessionID,
		"user_id":    u.ID,
	}).Info("Profile updated")

	return u, nil
}
