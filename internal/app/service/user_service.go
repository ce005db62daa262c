package service

import (
	"context"
	"errors"

	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"
	"gym_admin/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].HashedPassword = ""
	}
	return users, nil
}

// UpdateRole changes another user's role. Admins cannot modify their own
// role through this path; a different admin has to do it. This keeps the
// last admin from locking themselves out.
func (s *UserService) UpdateRole(ctx context.Context, actorID, targetID, role string) (*model.User, error) {
	if !model.ValidRole(role) {
		return nil, common.Errorf("invalid role value: %w", common.ErrValidation)
	}
	if actorID == targetID {
		return nil, common.Errorf("cannot change own role: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.UpdateRole(ctx, targetID, role)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("user not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	user.HashedPassword = ""
	return user, nil
}
