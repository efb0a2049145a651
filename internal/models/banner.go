package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Banner represents a marketing banner shown in the storefront carousel
type Banner struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string          `json:"title" gorm:"not null"`
	ImageURL  string          `json:"imageUrl" gorm:"not null"`
	LinkURL   *string         `json:"linkUrl,omitempty"`
	Position  int             `json:"position" gorm:"not null;default:1;index"`
	IsActive  bool            `json:"isActive" gorm:"not null;default:true;index"`
	StartsAt  *time.Time      `json:"startsAt,omitempty"`
	EndsAt    *time.Time      `json:"endsAt,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (Banner) TableName() string {
	return "banners"
}

// CreateBannerRequest represents a request to create a banner
type CreateBannerRequest struct {
	Title    string     `json:"title" binding:"required"`
	ImageURL string     `json:"imageUrl" binding:"required"`
	LinkURL  *string    `json:"linkUrl,omitempty"`
	Position *int       `json:"position,omitempty"`
	IsActive *bool      `json:"isActive,omitempty"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

// UpdateBannerRequest represents a request to update a banner
type UpdateBannerRequest struct {
	Title    *string    `json:"title,omitempty"`
	ImageURL *string    `json:"imageUrl,omitempty"`
	LinkURL  *string    `json:"linkUrl,omitempty"`
	Position *int       `json:"position,omitempty"`
	IsActive *bool      `json:"isActive,omitempty"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

// BannerResponse represents a single banner response
type BannerResponse struct {
	Success bool    `json:"success"`
	Data    *Banner `json:"data"`
	Message *string `json:"message,omitempty"`
}

// BannerListResponse represents a list of banners response
type BannerListResponse struct {
	Success bool     `json:"success"`
	Data    []Banner `json:"data"`
}
