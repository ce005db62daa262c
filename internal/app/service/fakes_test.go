package service

import (
	"context"
	"fmt"
	"time"

	"gym_admin/internal/common"
	"gym_admin/internal/domain/model"
	"gym_admin/internal/domain/repository"
)

// In-memory repository fakes. They mirror the observable behavior of the
// mongo implementations closely enough for service-level tests.

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id, role string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Role = role
			u.UpdatedAt = time.Now()
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

type fakeMemberRepo struct {
	members []*model.Member
}

func (f *fakeMemberRepo) Create(_ context.Context, member *model.Member) error {
	for _, m := range f.members {
		if m.Email == member.Email {
			return fmt.Errorf("member with given email already exists: %w", common.ErrConflict)
		}
	}
	cp := *member
	f.members = append(f.members, &cp)
	return nil
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id string) (*model.Member, error) {
	for _, m := range f.members {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeMemberRepo) FindByEmail(_ context.Context, email string) (*model.Member, error) {
	for _, m := range f.members {
		if m.Email == email {
			cp := *m
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeMemberRepo) List(_ context.Context, filters repository.MemberFilters) ([]model.Member, int64, error) {
	matched := []model.Member{}
	for _, m := range f.members {
		if filters.Status != "" && m.Status != filters.Status {
			continue
		}
		matched = append(matched, *m)
	}
	total := int64(len(matched))
	if filters.Offset < len(matched) {
		matched = matched[filters.Offset:]
	} else {
		matched = []model.Member{}
	}
	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched, total, nil
}

func (f *fakeMemberRepo) Update(_ context.Context, member *model.Member) error {
	for i, m := range f.members {
		if m.ID == member.ID {
			cp := *member
			f.members[i] = &cp
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeMemberRepo) UpdateStatus(_ context.Context, id string, status model.MemberStatus) error {
	for _, m := range f.members {
		if m.ID == id {
			m.Status = status
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeMemberRepo) Delete(_ context.Context, id string) error {
	for i, m := range f.members {
		if m.ID == id {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeMemberRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.members)), nil
}

func (f *fakeMemberRepo) CountByStatus(_ context.Context, status model.MemberStatus) (int64, error) {
	var n int64
	for _, m := range f.members {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeMemberRepo) CountCreatedBetween(_ context.Context, from, to time.Time) (int64, error) {
	var n int64
	for _, m := range f.members {
		if !m.CreatedAt.Before(from) && m.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeMemberRepo) Recent(_ context.Context, limit int) ([]model.Member, error) {
	out := []model.Member{}
	for i := len(f.members) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *f.members[i])
	}
	return out, nil
}

type fakePackageRepo struct {
	packages []*model.Package
}

func (f *fakePackageRepo) Create(_ context.Context, pkg *model.Package) error {
	cp := *pkg
	f.packages = append(f.packages, &cp)
	return nil
}

func (f *fakePackageRepo) FindByID(_ context.Context, id string) (*model.Package, error) {
	for _, p := range f.packages {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakePackageRepo) List(_ context.Context, isActive *bool) ([]model.Package, error) {
	out := []model.Package{}
	for _, p := range f.packages {
		if isActive != nil && p.IsActive != *isActive {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePackageRepo) Update(_ context.Context, pkg *model.Package) error {
	for i, p := range f.packages {
		if p.ID == pkg.ID {
			cp := *pkg
			f.packages[i] = &cp
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakePackageRepo) Delete(_ context.Context, id string) error {
	for i, p := range f.packages {
		if p.ID == id {
			f.packages = append(f.packages[:i], f.packages[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeMembershipRepo struct {
	memberships []*model.Membership

	// FindExpiring call capture for dashboard assertions.
	expiringFrom  time.Time
	expiringTo    time.Time
	expiringLimit int
}

func (f *fakeMembershipRepo) Create(_ context.Context, membership *model.Membership) error {
	cp := *membership
	f.memberships = append(f.memberships, &cp)
	return nil
}

func (f *fakeMembershipRepo) FindByID(_ context.Context, id string) (*model.Membership, error) {
	for _, m := range f.memberships {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeMembershipRepo) List(_ context.Context, filters repository.MembershipFilters) ([]model.Membership, int64, error) {
	matched := []model.Membership{}
	for _, m := range f.memberships {
		if filters.Status != "" && m.Status != filters.Status {
			continue
		}
		if filters.MemberID != "" && m.MemberID != filters.MemberID {
			continue
		}
		matched = append(matched, *m)
	}
	total := int64(len(matched))
	if filters.Offset < len(matched) {
		matched = matched[filters.Offset:]
	} else {
		matched = []model.Membership{}
	}
	if filters.Limit > 0 && len(matched) > filters.Limit {
		matched = matched[:filters.Limit]
	}
	return matched, total, nil
}

func (f *fakeMembershipRepo) Update(_ context.Context, membership *model.Membership) error {
	for i, m := range f.memberships {
		if m.ID == membership.ID {
			cp := *membership
			f.memberships[i] = &cp
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeMembershipRepo) UpdateStatus(_ context.Context, id string, status model.MembershipStatus) (*model.Membership, error) {
	for _, m := range f.memberships {
		if m.ID == id {
			m.Status = status
			m.UpdatedAt = time.Now()
			cp := *m
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeMembershipRepo) CountByStatus(_ context.Context, status model.MembershipStatus) (int64, error) {
	var n int64
	for _, m := range f.memberships {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeMembershipRepo) FindExpiring(_ context.Context, from, to time.Time, limit int) ([]model.Membership, error) {
	f.expiringFrom, f.expiringTo, f.expiringLimit = from, to, limit

	out := []model.Membership{}
	for _, m := range f.memberships {
		if m.Status != model.MembershipStatusActive {
			continue
		}
		if m.EndDate.Before(from) || m.EndDate.After(to) {
			continue
		}
		out = append(out, *m)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) FindActiveByMember(_ context.Context, memberID string) (*model.Membership, error) {
	var best *model.Membership
	for _, m := range f.memberships {
		if m.MemberID != memberID || m.Status != model.MembershipStatusActive {
			continue
		}
		if best == nil || m.EndDate.After(best.EndDate) {
			best = m
		}
	}
	if best == nil {
		return nil, common.ErrNotFound
	}
	cp := *best
	return &cp, nil
}

func (f *fakeMembershipRepo) RevenueBetween(_ context.Context, from, to time.Time) (float64, error) {
	var total float64
	for _, m := range f.memberships {
		if m.Status == model.MembershipStatusCancelled {
			continue
		}
		if m.CreatedAt.Before(from) || !m.CreatedAt.Before(to) {
			continue
		}
		total += m.Price
	}
	return total, nil
}

func (f *fakeMembershipRepo) PackageUsage(_ context.Context) ([]repository.PackageUsage, error) {
	byPackage := map[string]*repository.PackageUsage{}
	order := []string{}
	for _, m := range f.memberships {
		if m.Status == model.MembershipStatusCancelled {
			continue
		}
		usage, ok := byPackage[m.PackageID]
		if !ok {
			usage = &repository.PackageUsage{PackageID: m.PackageID}
			byPackage[m.PackageID] = usage
			order = append(order, m.PackageID)
		}
		usage.Count++
		usage.Revenue += m.Price
	}
	out := []repository.PackageUsage{}
	for _, id := range order {
		out = append(out, *byPackage[id])
	}
	return out, nil
}
