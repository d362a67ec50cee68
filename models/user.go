package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleDriver   UserRole = "driver"
	RoleAdmin    UserRole = "admin"
	RoleVendor   UserRole = "vendor"
)

// Location is a free-form address/geo document.
type Location map[string]any

// User is a registered account. Email is deliberately not unique.
type User struct {
	ID        string    `json:"id" bson:"id" gorm:"primaryKey"`
	Email     string    `json:"email" bson:"email" binding:"required"`
	Name      string    `json:"name" bson:"name" binding:"required"`
	Phone     string    `json:"phone" bson:"phone" binding:"required"`
	Role      UserRole  `json:"role" bson:"role" binding:"user_role"`
	Location  Location  `json:"location" bson:"location" gorm:"serializer:json;type:text"`
	IsActive  bool      `json:"is_active" bson:"is_active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewUser returns a user carrying the defaults a request body may override.
func NewUser() *User {
	return &User{Role: RoleCustomer, Location: Location{}, IsActive: true}
}

// Stamp assigns a missing identifier and the server creation time.
func (u *User) Stamp(now time.Time) {
	u.ID = idOrNew(u.ID)
	u.CreatedAt = now
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	if u.Location == nil {
		u.Location = Location{}
	}
}

func idOrNew(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func (u *User) RecordID() string { return u.ID }
