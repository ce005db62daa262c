package service

import (
	"context"
	"testing"
	"time"

	"gym_admin/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	now := time.Now()
	memberRepo := &fakeMemberRepo{members: []*model.Member{
		{ID: "m1", Email: "m1@example.com", Status: model.MemberStatusActive, CreatedAt: now.Add(-time.Hour)},
		{ID: "m2", Email: "m2@example.com", Status: model.MemberStatusActive, CreatedAt: now.AddDate(0, -2, 0)},
		{ID: "m3", Email: "m3@example.com", Status: model.MemberStatusInactive, CreatedAt: now.AddDate(0, -3, 0)},
	}}
	packageRepo := &fakePackageRepo{packages: []*model.Package{
		{ID: "pkg-30", Name: "Monthly", Duration: 30, Price: 50},
	}}
	membershipRepo := &fakeMembershipRepo{memberships: []*model.Membership{
		{
			ID: "ms1", MemberID: "m1", PackageID: "pkg-30",
			Status:  model.MembershipStatusActive,
			Price:   50,
			EndDate: now.Add(3 * 24 * time.Hour),
			// Created this month only if we are past the 1st; anchor inside
			// the current month explicitly instead.
			CreatedAt: time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()),
		},
		{
			ID: "ms2", MemberID: "m2", PackageID: "pkg-30",
			Status:    model.MembershipStatusCancelled,
			Price:     50,
			EndDate:   now.Add(2 * 24 * time.Hour),
			CreatedAt: time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, now.Location()),
		},
	}}

	svc := NewStatsService(memberRepo, membershipRepo, packageRepo)
	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.Overview.TotalMembers)
	assert.Equal(t, int64(2), stats.Overview.ActiveMembers)
	assert.Equal(t, int64(1), stats.Overview.ActiveMemberships)
	assert.Equal(t, 50.0, stats.Overview.RevenueThisMonth, "cancelled memberships do not count")

	// Expiry window: now to now+7d, capped at 10 entries.
	assert.Equal(t, 10, membershipRepo.expiringLimit)
	assert.WithinDuration(t, now, membershipRepo.expiringFrom, time.Minute)
	assert.WithinDuration(t, now.Add(7*24*time.Hour), membershipRepo.expiringTo, time.Minute)

	require.Len(t, stats.ExpiringMemberships, 1, "only the active membership inside the window")
	expiring := stats.ExpiringMemberships[0]
	assert.Equal(t, "ms1", expiring.ID)
	require.NotNil(t, expiring.DaysLeft)
	assert.Equal(t, 3, *expiring.DaysLeft)
	require.NotNil(t, expiring.Package)
	assert.Equal(t, "Monthly", expiring.Package.Name)

	assert.Len(t, stats.RecentMembers, 3)

	require.Len(t, stats.PackageStats, 1)
	assert.Equal(t, "pkg-30", stats.PackageStats[0].PackageID)
	assert.Equal(t, int64(1), stats.PackageStats[0].Count)
}
