package model

import (
	"time"
)

type Gender string
type MemberStatus string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"

	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusExpired  MemberStatus = "expired"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

func (s MemberStatus) Valid() bool {
	return s == MemberStatusActive || s == MemberStatusInactive || s == MemberStatusExpired
}

type EmergencyContact struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
}

// Member is a gym member record. Status is never derived on read; it is set
// to active as a side effect of membership creation.
type Member struct {
	ID               string            `json:"id" bson:"_id"`
	FirstName        string            `json:"first_name" bson:"first_name"`
	LastName         string            `json:"last_name" bson:"last_name"`
	Email            string            `json:"email" bson:"email"`
	Phone            string            `json:"phone" bson:"phone"`
	DateOfBirth      time.Time         `json:"date_of_birth" bson:"date_of_birth"`
	Gender           Gender            `json:"gender" bson:"gender"`
	Address          string            `json:"address,omitempty" bson:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty" bson:"emergency_contact,omitempty"`
	Status           MemberStatus      `json:"status" bson:"status"`
	CreatedAt        time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" bson:"updated_at"`
}
