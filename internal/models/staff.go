package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRole represents the dashboard role of a team member
type TeamRole string

const (
	RoleAdmin   TeamRole = "admin"
	RoleManager TeamRole = "manager"
	RoleViewer  TeamRole = "viewer"
)

// DeliveryStaffStatus represents the availability of a delivery person
type DeliveryStaffStatus string

const (
	DeliveryStatusAvailable DeliveryStaffStatus = "AVAILABLE"
	DeliveryStatusBusy      DeliveryStaffStatus = "BUSY"
	DeliveryStatusOffline   DeliveryStaffStatus = "OFFLINE"
)

// DeliveryStaff represents a delivery person
type DeliveryStaff struct {
	ID        uuid.UUID           `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FullName  string              `json:"fullName" gorm:"not null"`
	Phone     *string             `json:"phone,omitempty"`
	Vehicle   *string             `json:"vehicle,omitempty"`
	Status    DeliveryStaffStatus `json:"status" gorm:"not null;default:'OFFLINE';index"`
	IsActive  bool                `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	DeletedAt *gorm.DeletedAt     `json:"deletedAt,omitempty" gorm:"index"`
}

func (DeliveryStaff) TableName() string {
	return "delivery_staff"
}

// TeamMember represents a dashboard user
type TeamMember struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FullName  string          `json:"fullName" gorm:"not null"`
	Email     string          `json:"email" gorm:"not null;uniqueIndex:idx_team_members_email"`
	Role      TeamRole        `json:"role" gorm:"not null;default:'viewer'"`
	IsActive  bool            `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

// CreateDeliveryStaffRequest represents a request to register a delivery person
type CreateDeliveryStaffRequest struct {
	FullName string  `json:"fullName" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
	Vehicle  *string `json:"vehicle,omitempty"`
}

// UpdateDeliveryStaffRequest represents a request to update a delivery person
type UpdateDeliveryStaffRequest struct {
	FullName *string              `json:"fullName,omitempty"`
	Phone    *string              `json:"phone,omitempty"`
	Vehicle  *string              `json:"vehicle,omitempty"`
	Status   *DeliveryStaffStatus `json:"status,omitempty"`
	IsActive *bool                `json:"isActive,omitempty"`
}

// CreateTeamMemberRequest represents a request to add a team member
type CreateTeamMemberRequest struct {
	FullName string   `json:"fullName" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Role     TeamRole `json:"role" binding:"required"`
}

// UpdateTeamMemberRequest represents a request to update a team member
type UpdateTeamMemberRequest struct {
	FullName *string   `json:"fullName,omitempty"`
	Role     *TeamRole `json:"role,omitempty"`
	IsActive *bool     `json:"isActive,omitempty"`
}

// DeliveryStaffResponse represents a single delivery staff response
type DeliveryStaffResponse struct {
	Success bool           `json:"success"`
	Data    *DeliveryStaff `json:"data"`
	Message *string        `json:"message,omitempty"`
}

// DeliveryStaffListResponse represents a list of delivery staff response
type DeliveryStaffListResponse struct {
	Success bool            `json:"success"`
	Data    []DeliveryStaff `json:"data"`
}

// TeamMemberResponse represents a single team member response
type TeamMemberResponse struct {
	Success bool        `json:"success"`
	Data    *TeamMember `json:"data"`
	Message *string     `json:"message,omitempty"`
}

// TeamMemberListResponse represents a list of team members response
type TeamMemberListResponse struct {
	Success bool         `json:"success"`
	Data    []TeamMember `json:"data"`
}
