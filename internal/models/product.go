package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product represents a catalog product sold through the bodegones.
// SKU is the natural key used by the bulk import to match rows against
// existing products; it is nullable and unique only when present.
type Product struct {
	ID            uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string          `json:"name" gorm:"not null;index"`
	Description   *string         `json:"description,omitempty"`
	SKU           *string         `json:"sku,omitempty" gorm:"uniqueIndex:idx_products_sku"`
	Barcode       *string         `json:"barcode,omitempty"`
	Price         float64         `json:"price" gorm:"type:decimal(12,2);not null"`
	CategoryID    *uuid.UUID      `json:"categoryId,omitempty" gorm:"index"`
	SubcategoryID *uuid.UUID      `json:"subcategoryId,omitempty" gorm:"index"`
	IsActive      bool            `json:"isActive" gorm:"not null;default:true;index"`
	Images        datatypes.JSON  `json:"images,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Category    *Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Subcategory *Subcategory `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
}

func (Product) TableName() string {
	return "products"
}

// ImageList decodes the stored JSONB image array. An empty or malformed
// column yields an empty slice, never an error.
func (p *Product) ImageList() []string {
	if len(p.Images) == 0 {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal(p.Images, &urls); err != nil {
		return []string{}
	}
	return urls
}

// SetImageList encodes a URL list into the JSONB image column.
func (p *Product) SetImageList(urls []string) {
	if urls == nil {
		urls = []string{}
	}
	data, _ := json.Marshal(urls)
	p.Images = datatypes.JSON(data)
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name          string     `json:"name" binding:"required"`
	Description   *string    `json:"description,omitempty"`
	SKU           *string    `json:"sku,omitempty"`
	Barcode       *string    `json:"barcode,omitempty"`
	Price         float64    `json:"price" binding:"min=0"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	SubcategoryID *uuid.UUID `json:"subcategoryId,omitempty"`
	IsActive      *bool      `json:"isActive,omitempty"`
	Images        []string   `json:"images,omitempty"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string    `json:"name,omitempty"`
	Description   *string    `json:"description,omitempty"`
	SKU           *string    `json:"sku,omitempty"`
	Barcode       *string    `json:"barcode,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	SubcategoryID *uuid.UUID `json:"subcategoryId,omitempty"`
	IsActive      *bool      `json:"isActive,omitempty"`
	Images        []string   `json:"images,omitempty"`
}

// ProductFilters represents filters for product list queries
type ProductFilters struct {
	Search        string
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	IsActive      *bool
	Page          int
	Limit         int
}

// ProductResponse represents a single product response
type ProductResponse struct {
	Success bool     `json:"success"`
	Data    *Product `json:"data"`
	Message *string  `json:"message,omitempty"`
}

// ProductListResponse represents a list of products response
type ProductListResponse struct {
	Success    bool            `json:"success"`
	Data       []Product       `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}
