package service

import (
	"context"
	"strings"
	"time"

	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"
	"gym_admin/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type PackageService struct {
	packageRepo repository.PackageRepository
}

func NewPackageService(packageRepo repository.PackageRepository) *PackageService {
	return &PackageService{packageRepo: packageRepo}
}

type CreatePackageRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Duration    int      `json:"duration"`
	Price       float64  `json:"price"`
	Features    []string `json:"features,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

type UpdatePackageRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Duration    *int      `json:"duration,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

func (s *PackageService) CreatePackage(ctx context.Context, req CreatePackageRequest) (*model.Package, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, common.Errorf("package name is required: %w", common.ErrValidation)
	}
	if req.Duration < 1 {
		return nil, common.Errorf("duration must be at least 1 day: %w", common.ErrValidation)
	}
	if req.Price < 0 {
		return nil, common.Errorf("price cannot be negative: %w", common.ErrValidation)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	features := req.Features
	if features == nil {
		features = []string{}
	}

	now := time.Now()
	name := strings.TrimSpace(req.Name)
	pkg := &model.Package{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: strings.TrimSpace(req.Description),
		Duration:    req.Duration,
		Price:       req.Price,
		Features:    features,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *PackageService) GetPackage(ctx context.Context, id string) (*model.Package, error) {
	return s.packageRepo.FindByID(ctx, id)
}

func (s *PackageService) ListPackages(ctx context.Context, isActive *bool) ([]model.Package, error) {
	return s.packageRepo.List(ctx, isActive)
}

func (s *PackageService) UpdatePackage(ctx context.Context, id string, req UpdatePackageRequest) (*model.Package, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, common.Errorf("package name cannot be empty: %w", common.ErrValidation)
		}
		pkg.Name = name
		pkg.Slug = slug.Make(name)
	}
	if req.Description != nil {
		pkg.Description = strings.TrimSpace(*req.Description)
	}
	if req.Duration != nil {
		if *req.Duration < 1 {
			return nil, common.Errorf("duration must be at least 1 day: %w", common.ErrValidation)
		}
		pkg.Duration = *req.Duration
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, common.Errorf("price cannot be negative: %w", common.ErrValidation)
		}
		pkg.Price = *req.Price
	}
	if req.Features != nil {
		pkg.Features = *req.Features
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}
	pkg.UpdatedAt = time.Now()

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// DeletePackage removes the package document only. Existing memberships keep
// the price and duration they captured at creation time.
func (s *PackageService) DeletePackage(ctx context.Context, id string) error {
	return s.packageRepo.Delete(ctx, id)
}
