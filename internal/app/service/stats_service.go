package service

import (
	"context"
	"time"

	"gym_admin/internal/domain/model"
	"gym_admin/internal/domain/repository"
)

type StatsService struct {
	memberRepo     repository.MemberRepository
	membershipRepo repository.MembershipRepository
	packageRepo    repository.PackageRepository
}

func NewStatsService(
	memberRepo repository.MemberRepository,
	membershipRepo repository.MembershipRepository,
	packageRepo repository.PackageRepository,
) *StatsService {
	return &StatsService{
		memberRepo:     memberRepo,
		membershipRepo: membershipRepo,
		packageRepo:    packageRepo,
	}
}

type OverviewStats struct {
	TotalMembers        int64   `json:"total_members"`
	ActiveMembers       int64   `json:"active_members"`
	NewMembersThisMonth int64   `json:"new_members_this_month"`
	ActiveMemberships   int64   `json:"active_memberships"`
	RevenueThisMonth    float64 `json:"revenue_this_month"`
}

type DashboardStats struct {
	Overview            OverviewStats             `json:"overview"`
	ExpiringMemberships []model.Membership        `json:"expiring_memberships"`
	RecentMembers       []model.Member            `json:"recent_members"`
	PackageStats        []repository.PackageUsage `json:"package_stats"`
}

const (
	expiringListLimit = 10
	recentMemberLimit = 5
)

func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0)
	windowEnd := now.Add(ExpiryWindowDays * 24 * time.Hour)

	totalMembers, err := s.memberRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeMembers, err := s.memberRepo.CountByStatus(ctx, model.MemberStatusActive)
	if err != nil {
		return nil, err
	}
	newMembers, err := s.memberRepo.CountCreatedBetween(ctx, startOfMonth, endOfMonth)
	if err != nil {
		return nil, err
	}
	activeMemberships, err := s.membershipRepo.CountByStatus(ctx, model.MembershipStatusActive)
	if err != nil {
		return nil, err
	}
	revenue, err := s.membershipRepo.RevenueBetween(ctx, startOfMonth, endOfMonth)
	if err != nil {
		return nil, err
	}

	expiring, err := s.membershipRepo.FindExpiring(ctx, now, windowEnd, expiringListLimit)
	if err != nil {
		return nil, err
	}
	for i := range expiring {
		populateMembership(ctx, s.memberRepo, s.packageRepo, &expiring[i])
		daysLeft := model.DaysUntilExpiry(expiring[i].EndDate, now)
		expiring[i].DaysLeft = &daysLeft
	}

	recent, err := s.memberRepo.Recent(ctx, recentMemberLimit)
	if err != nil {
		return nil, err
	}

	packageStats, err := s.membershipRepo.PackageUsage(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Overview: OverviewStats{
			TotalMembers:        totalMembers,
			ActiveMembers:       activeMembers,
			NewMembersThisMonth: newMembers,
			ActiveMemberships:   activeMemberships,
			RevenueThisMonth:    revenue,
		},
		ExpiringMemberships: expiring,
		RecentMembers:       recent,
		PackageStats:        packageStats,
	}, nil
}
