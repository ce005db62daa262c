package model

import (
	"math"
	"time"
)

type MembershipStatus string

const (
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusExpired   MembershipStatus = "expired"
	MembershipStatusCancelled MembershipStatus = "cancelled"
)

func (s MembershipStatus) Valid() bool {
	return s == MembershipStatusActive || s == MembershipStatusExpired || s == MembershipStatusCancelled
}

// Membership is a subscription instance. Price and DurationDays are
// snapshots taken when the membership is created or its package changes, so
// historical records are insulated from later package edits.
type Membership struct {
	ID            string           `json:"id" bson:"_id"`
	MemberID      string           `json:"member_id" bson:"member_id"`
	PackageID     string           `json:"package_id" bson:"package_id"`
	StartDate     time.Time        `json:"start_date" bson:"start_date"`
	EndDate       time.Time        `json:"end_date" bson:"end_date"`
	Status        MembershipStatus `json:"status" bson:"status"`
	Price         float64          `json:"price" bson:"price"`
	DurationDays  int              `json:"duration_days" bson:"duration_days"`
	PaymentMethod string           `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	Notes         string           `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" bson:"updated_at"`

	// Populated for responses, never persisted.
	Member   *MemberSummary  `json:"member,omitempty" bson:"-"`
	Package  *PackageSummary `json:"package,omitempty" bson:"-"`
	DaysLeft *int            `json:"days_left,omitempty" bson:"-"`
}

type MemberSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type PackageSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Price    float64 `json:"price"`
}

// ComputeEndDate returns the end date for a start date and a package
// duration in days.
func ComputeEndDate(startDate time.Time, durationDays int) time.Time {
	return startDate.AddDate(0, 0, durationDays)
}

// DaysUntilExpiry returns ceil((endDate - now) / 1 day). Recomputed on every
// read, never stored.
func DaysUntilExpiry(endDate, now time.Time) int {
	return int(math.Ceil(endDate.Sub(now).Hours() / 24))
}
