package users

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	Repo Repo
}

// UpsertFromAuth records or refreshes the account after a successful OAuth
// exchange. Profile fields are left untouched.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s.Repo == nil {
		return errors.New("users: repo not configured")
	}
	if strings.TrimSpace(user.ID) == "" {
		return ErrInvalidInput
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s.Repo == nil {
		return User{}, errors.New("users: repo not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID)
}

// UpdateProfile sets the judging body and role shown on the account page.
func (s *Service) UpdateProfile(ctx context.Context, userID, judgingBody, role string) (User, error) {
	if s.Repo == nil {
		return User{}, errors.New("users: repo not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrInvalidInput
	}
	judgingBody = strings.TrimSpace(judgingBody)
	role = strings.TrimSpace(role)
	if judgingBody == "" || role == "" {
		return User{}, ErrInvalidInput
	}
	if err := s.Repo.UpdateProfile(ctx, userID, judgingBody, role); err != nil {
		return User{}, err
	}
	return s.Repo.GetByID(ctx, userID)
}
