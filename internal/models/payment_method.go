package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentMethodType represents how customers pay for an order
type PaymentMethodType string

const (
	PaymentTypeCash         PaymentMethodType = "CASH"
	PaymentTypeTransfer     PaymentMethodType = "TRANSFER"
	PaymentTypeMobile       PaymentMethodType = "MOBILE"
	PaymentTypeZelle        PaymentMethodType = "ZELLE"
	PaymentTypeCryptoWallet PaymentMethodType = "CRYPTO"
)

// PaymentMethod represents a payment option shown at checkout.
// Details holds type-specific fields (account number, bank, wallet address)
// as free-form JSON configured from the dashboard.
type PaymentMethod struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string            `json:"name" gorm:"not null"`
	Type      PaymentMethodType `json:"type" gorm:"not null;index"`
	Details   datatypes.JSON    `json:"details,omitempty" gorm:"type:jsonb"`
	IsActive  bool              `json:"isActive" gorm:"not null;default:true;index"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	DeletedAt *gorm.DeletedAt   `json:"deletedAt,omitempty" gorm:"index"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// CreatePaymentMethodRequest represents a request to create a payment method
type CreatePaymentMethodRequest struct {
	Name     string            `json:"name" binding:"required"`
	Type     PaymentMethodType `json:"type" binding:"required"`
	Details  datatypes.JSON    `json:"details,omitempty"`
	IsActive *bool             `json:"isActive,omitempty"`
}

// UpdatePaymentMethodRequest represents a request to update a payment method
type UpdatePaymentMethodRequest struct {
	Name     *string            `json:"name,omitempty"`
	Type     *PaymentMethodType `json:"type,omitempty"`
	Details  datatypes.JSON     `json:"details,omitempty"`
	IsActive *bool              `json:"isActive,omitempty"`
}

// PaymentMethodResponse represents a single payment method response
type PaymentMethodResponse struct {
	Success bool           `json:"success"`
	Data    *PaymentMethod `json:"data"`
	Message *string        `json:"message,omitempty"`
}

// PaymentMethodListResponse represents a list of payment methods response
type PaymentMethodListResponse struct {
	Success bool            `json:"success"`
	Data    []PaymentMethod `json:"data"`
}
