package service

import (
	"context"
	"testing"

	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePackage(t *testing.T) {
	svc := NewPackageService(&fakePackageRepo{})

	pkg, err := svc.CreatePackage(context.Background(), CreatePackageRequest{
		Name:     "3 Month Package",
		Duration: 90,
		Price:    120,
	})
	require.NoError(t, err)

	assert.Equal(t, "3-month-package", pkg.Slug)
	assert.True(t, pkg.IsActive, "active by default")
	assert.NotNil(t, pkg.Features, "features default to an empty list, not null")
	assert.Empty(t, pkg.Features)
}

func TestCreatePackageValidation(t *testing.T) {
	svc := NewPackageService(&fakePackageRepo{})

	tests := []struct {
		name    string
		req     CreatePackageRequest
		message string
	}{
		{"missing name", CreatePackageRequest{Duration: 30, Price: 10}, "package name is required"},
		{"zero duration", CreatePackageRequest{Name: "Day Pass", Duration: 0, Price: 10}, "duration must be at least 1 day"},
		{"negative price", CreatePackageRequest{Name: "Monthly", Duration: 30, Price: -5}, "price cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePackage(context.Background(), tt.req)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestUpdatePackageRegeneratesSlug(t *testing.T) {
	repo := &fakePackageRepo{packages: []*model.Package{
		{ID: "pkg-1", Name: "Monthly", Slug: "monthly", Duration: 30, Price: 50, IsActive: true},
	}}
	svc := NewPackageService(repo)

	newName := "Premium Monthly"
	pkg, err := svc.UpdatePackage(context.Background(), "pkg-1", UpdatePackageRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "premium-monthly", pkg.Slug)

	// Updating other fields leaves the slug alone.
	newPrice := 60.0
	pkg, err = svc.UpdatePackage(context.Background(), "pkg-1", UpdatePackageRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "premium-monthly", pkg.Slug)
	assert.Equal(t, 60.0, pkg.Price)
}

func TestListPackagesFilter(t *testing.T) {
	repo := &fakePackageRepo{packages: []*model.Package{
		{ID: "pkg-1", Name: "Monthly", IsActive: true},
		{ID: "pkg-2", Name: "Legacy", IsActive: false},
	}}
	svc := NewPackageService(repo)

	all, err := svc.ListPackages(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active := true
	filtered, err := svc.ListPackages(context.Background(), &active)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Monthly", filtered[0].Name)
}
