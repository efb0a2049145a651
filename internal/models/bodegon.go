package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bodegon represents a store location in the marketplace
type Bodegon struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string          `json:"name" gorm:"not null;uniqueIndex:idx_bodegones_name"`
	Address   *string         `json:"address,omitempty"`
	Phone     *string         `json:"phone,omitempty"`
	LogoURL   *string         `json:"logoUrl,omitempty"`
	IsActive  bool            `json:"isActive" gorm:"not null;default:true;index"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

func (Bodegon) TableName() string {
	return "bodegones"
}

// CreateBodegonRequest represents a request to create a bodegon
type CreateBodegonRequest struct {
	Name     string  `json:"name" binding:"required"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	LogoURL  *string `json:"logoUrl,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// UpdateBodegonRequest represents a request to update a bodegon
type UpdateBodegonRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	LogoURL  *string `json:"logoUrl,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// BodegonResponse represents a single bodegon response
type BodegonResponse struct {
	Success bool     `json:"success"`
	Data    *Bodegon `json:"data"`
	Message *string  `json:"message,omitempty"`
}

// BodegonListResponse represents a list of bodegones response
type BodegonListResponse struct {
	Success bool      `json:"success"`
	Data    []Bodegon `json:"data"`
}
