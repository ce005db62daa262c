package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"
	"gym_admin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ExpiryWindowDays is the "expiring soon" horizon: active memberships with
// an end date up to this many days away are reported.
const ExpiryWindowDays = 7

type MembershipService struct {
	membershipRepo repository.MembershipRepository
	memberRepo     repository.MemberRepository
	packageRepo    repository.PackageRepository
	userRepo       repository.UserRepository
}

func NewMembershipService(
	membershipRepo repository.MembershipRepository,
	memberRepo repository.MemberRepository,
	packageRepo repository.PackageRepository,
	userRepo repository.UserRepository,
) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		memberRepo:     memberRepo,
		packageRepo:    packageRepo,
		userRepo:       userRepo,
	}
}

type CreateMembershipRequest struct {
	MemberID      string    `json:"member_id"`
	PackageID     string    `json:"package_id"`
	StartDate     time.Time `json:"start_date"`
	Price         *float64  `json:"price,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

type UpdateMembershipRequest struct {
	PackageID     *string                 `json:"package_id,omitempty"`
	StartDate     *time.Time              `json:"start_date,omitempty"`
	Price         *float64                `json:"price,omitempty"`
	Status        *model.MembershipStatus `json:"status,omitempty"`
	PaymentMethod *string                 `json:"payment_method,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
}

func (s *MembershipService) CreateMembership(ctx context.Context, req CreateMembershipRequest) (*model.Membership, error) {
	if req.MemberID == "" || req.PackageID == "" || req.StartDate.IsZero() {
		return nil, common.Errorf("member, package and start date are required: %w", common.ErrValidation)
	}

	pkg, err := s.packageRepo.FindByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("package not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	member, err := s.memberRepo.FindByID(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("member not found: %w", common.ErrNotFound)
		}
		return nil, err
	}

	price := pkg.Price
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, common.Errorf("price cannot be negative: %w", common.ErrValidation)
		}
		price = *req.Price
	}

	now := time.Now()
	membership := &model.Membership{
		ID:            uuid.NewString(),
		MemberID:      member.ID,
		PackageID:     pkg.ID,
		StartDate:     req.StartDate,
		EndDate:       model.ComputeEndDate(req.StartDate, pkg.Duration),
		Status:        model.MembershipStatusActive,
		Price:         price,
		DurationDays:  pkg.Duration,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Notes:         strings.TrimSpace(req.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	// Creating a membership always activates the member.
	if err := s.memberRepo.UpdateStatus(ctx, member.ID, model.MemberStatusActive); err != nil {
		return nil, common.Errorf("failed to update member status: %w", err)
	}

	membership.Member = memberSummary(member)
	membership.Package = packageSummary(pkg)
	return membership, nil
}

func (s *MembershipService) GetMembership(ctx context.Context, id string) (*model.Membership, error) {
	membership, err := s.membershipRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("membership not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	s.populate(ctx, membership)
	return membership, nil
}

func (s *MembershipService) ListMemberships(ctx context.Context, filters repository.MembershipFilters) ([]model.Membership, int64, error) {
	if filters.Status != "" && !filters.Status.Valid() {
		return nil, 0, common.Errorf("invalid status filter: %w", common.ErrValidation)
	}
	memberships, total, err := s.membershipRepo.List(ctx, filters)
	if err != nil {
		return nil, 0, err
	}
	for i := range memberships {
		s.populate(ctx, &memberships[i])
	}
	return memberships, total, nil
}

func (s *MembershipService) UpdateMembership(ctx context.Context, id string, req UpdateMembershipRequest) (*model.Membership, error) {
	membership, err := s.membershipRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("membership not found: %w", common.ErrNotFound)
		}
		return nil, err
	}

	// A new package or start date invalidates the stored end date: resolve
	// the effective package and recompute.
	if req.PackageID != nil || req.StartDate != nil {
		packageID := membership.PackageID
		if req.PackageID != nil {
			packageID = *req.PackageID
		}
		pkg, err := s.packageRepo.FindByID(ctx, packageID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.Errorf("package not found: %w", common.ErrNotFound)
			}
			return nil, err
		}

		if req.StartDate != nil {
			membership.StartDate = *req.StartDate
		}
		if req.PackageID != nil {
			// The price stays as captured at creation; only an explicit
			// price in the request changes it.
			membership.PackageID = pkg.ID
		}
		membership.DurationDays = pkg.Duration
		membership.EndDate = model.ComputeEndDate(membership.StartDate, pkg.Duration)
	}

	if req.Price != nil {
		if *req.Price < 0 {
			return nil, common.Errorf("price cannot be negative: %w", common.ErrValidation)
		}
		membership.Price = *req.Price
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, common.Errorf("invalid status value: %w", common.ErrValidation)
		}
		membership.Status = *req.Status
	}
	if req.PaymentMethod != nil {
		membership.PaymentMethod = strings.TrimSpace(*req.PaymentMethod)
	}
	if req.Notes != nil {
		membership.Notes = strings.TrimSpace(*req.Notes)
	}
	membership.UpdatedAt = time.Now()

	if err := s.membershipRepo.Update(ctx, membership); err != nil {
		return nil, err
	}
	s.populate(ctx, membership)
	return membership, nil
}

// CancelMembership is a soft delete: the record stays retrievable with
// status cancelled. The member's status is deliberately left untouched.
func (s *MembershipService) CancelMembership(ctx context.Context, id string) (*model.Membership, error) {
	membership, err := s.membershipRepo.UpdateStatus(ctx, id, model.MembershipStatusCancelled)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("membership not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return membership, nil
}

// MyMembership returns the caller's active membership with the latest end
// date, or nil when the user has no member record or no active membership.
func (s *MembershipService) MyMembership(ctx context.Context, userID string) (*model.Membership, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("user not found: %w", common.ErrNotFound)
		}
		return nil, err
	}

	member, err := s.memberRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	membership, err := s.membershipRepo.FindActiveByMember(ctx, member.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	s.populate(ctx, membership)
	daysLeft := model.DaysUntilExpiry(membership.EndDate, time.Now())
	membership.DaysLeft = &daysLeft
	return membership, nil
}

// populate attaches member and package summaries for responses. Lookup
// failures are logged and skipped; a dangling reference must not break the
// read path.
func (s *MembershipService) populate(ctx context.Context, membership *model.Membership) {
	populateMembership(ctx, s.memberRepo, s.packageRepo, membership)
}

func populateMembership(ctx context.Context, memberRepo repository.MemberRepository, packageRepo repository.PackageRepository, membership *model.Membership) {
	member, err := memberRepo.FindByID(ctx, membership.MemberID)
	if err == nil {
		membership.Member = memberSummary(member)
	} else if !errors.Is(err, common.ErrNotFound) {
		logrus.WithError(err).WithField("member_id", membership.MemberID).Warn("failed to populate member")
	}

	pkg, err := packageRepo.FindByID(ctx, membership.PackageID)
	if err == nil {
		membership.Package = packageSummary(pkg)
	} else if !errors.Is(err, common.ErrNotFound) {
		logrus.WithError(err).WithField("package_id", membership.PackageID).Warn("failed to populate package")
	}
}

func memberSummary(m *model.Member) *model.MemberSummary {
	return &model.MemberSummary{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
	}
}

func packageSummary(p *model.Package) *model.PackageSummary {
	return &model.PackageSummary{
		ID:       p.ID,
		Name:     p.Name,
		Duration: p.Duration,
		Price:    p.Price,
	}
}
