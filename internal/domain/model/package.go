package model

import (
	"time"
)

// Package is a subscription package. Price and duration changes never
// retroactively affect existing memberships, which carry their own snapshot.
type Package struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Duration    int       `json:"duration" bson:"duration"` // days
	Price       float64   `json:"price" bson:"price"`
	Features    []string  `json:"features" bson:"features"`
	IsActive    bool      `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
