package service

import (
	"context"
	"strings"
	"time"

	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"
	"gym_admin/internal/domain/repository"

	"github.com/google/uuid"
)

type MemberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// CreateMemberRequest has no status field: new members always start
// inactive and only become active through membership creation.
type CreateMemberRequest struct {
	FirstName        string                  `json:"first_name"`
	LastName         string                  `json:"last_name"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone"`
	DateOfBirth      time.Time               `json:"date_of_birth"`
	Gender           model.Gender            `json:"gender"`
	Address          string                  `json:"address,omitempty"`
	EmergencyContact *model.EmergencyContact `json:"emergency_contact,omitempty"`
}

type UpdateMemberRequest struct {
	FirstName        *string                 `json:"first_name,omitempty"`
	LastName         *string                 `json:"last_name,omitempty"`
	Email            *string                 `json:"email,omitempty"`
	Phone            *string                 `json:"phone,omitempty"`
	DateOfBirth      *time.Time              `json:"date_of_birth,omitempty"`
	Gender           *model.Gender           `json:"gender,omitempty"`
	Address          *string                 `json:"address,omitempty"`
	EmergencyContact *model.EmergencyContact `json:"emergency_contact,omitempty"`
	Status           *model.MemberStatus     `json:"status,omitempty"`
}

func (s *MemberService) CreateMember(ctx context.Context, req CreateMemberRequest) (*model.Member, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" || req.DateOfBirth.IsZero() || req.Gender == "" {
		return nil, common.Errorf("first name, last name, email, phone, date of birth and gender are required: %w", common.ErrValidation)
	}
	if !req.Gender.Valid() {
		return nil, common.Errorf("invalid gender value: %w", common.ErrValidation)
	}

	now := time.Now()
	member := &model.Member{
		ID:               uuid.NewString(),
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:            strings.TrimSpace(req.Phone),
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		Address:          strings.TrimSpace(req.Address),
		EmergencyContact: req.EmergencyContact,
		Status:           model.MemberStatusInactive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) GetMember(ctx context.Context, id string) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) ListMembers(ctx context.Context, filters repository.MemberFilters) ([]model.Member, int64, error) {
	if filters.Status != "" && !filters.Status.Valid() {
		return nil, 0, common.Errorf("invalid status filter: %w", common.ErrValidation)
	}
	return s.memberRepo.List(ctx, filters)
}

func (s *MemberService) UpdateMember(ctx context.Context, id string, req UpdateMemberRequest) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if *req.FirstName == "" {
			return nil, common.Errorf("first name cannot be empty: %w", common.ErrValidation)
		}
		member.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if *req.LastName == "" {
			return nil, common.Errorf("last name cannot be empty: %w", common.ErrValidation)
		}
		member.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, common.Errorf("email cannot be empty: %w", common.ErrValidation)
		}
		member.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			return nil, common.Errorf("phone cannot be empty: %w", common.ErrValidation)
		}
		member.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.DateOfBirth != nil {
		member.DateOfBirth = *req.DateOfBirth
	}
	if req.Gender != nil {
		if !req.Gender.Valid() {
			return nil, common.Errorf("invalid gender value: %w", common.ErrValidation)
		}
		member.Gender = *req.Gender
	}
	if req.Address != nil {
		member.Address = strings.TrimSpace(*req.Address)
	}
	if req.EmergencyContact != nil {
		member.EmergencyContact = req.EmergencyContact
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, common.Errorf("invalid status value: %w", common.ErrValidation)
		}
		member.Status = *req.Status
	}
	member.UpdatedAt = time.Now()

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) DeleteMember(ctx context.Context, id string) error {
	return s.memberRepo.Delete(ctx, id)
}
