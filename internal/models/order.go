package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusPreparing  OrderStatus = "PREPARING"
	OrderStatusDelivering OrderStatus = "DELIVERING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// ValidOrderTransitions defines valid state transitions for OrderStatus
// Flow: PENDING → CONFIRMED → PREPARING → DELIVERING → DELIVERED
// CANCELLED can be reached from any non-terminal state
var ValidOrderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusPreparing, OrderStatusDelivering, OrderStatusCancelled}, // Can skip PREPARING
	OrderStatusPreparing:  {OrderStatusDelivering, OrderStatusCancelled},
	OrderStatusDelivering: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {}, // Terminal state
	OrderStatusCancelled:  {}, // Terminal state
}

// CanTransitionOrderStatus checks if a transition between order statuses is valid
func CanTransitionOrderStatus(from, to OrderStatus) bool {
	validTransitions, exists := ValidOrderTransitions[from]
	if !exists {
		return false
	}
	for _, validTo := range validTransitions {
		if validTo == to {
			return true
		}
	}
	return false
}

// ValidateOrderTransition returns a descriptive error for invalid transitions
func ValidateOrderTransition(from, to OrderStatus) error {
	if !CanTransitionOrderStatus(from, to) {
		return fmt.Errorf("invalid order status transition from %s to %s", from, to)
	}
	return nil
}

// Order represents a customer order placed against a bodegon
type Order struct {
	ID              uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber     string          `json:"orderNumber" gorm:"not null;uniqueIndex:idx_orders_number"`
	BodegonID       *uuid.UUID      `json:"bodegonId,omitempty" gorm:"index"`
	CustomerName    string          `json:"customerName" gorm:"not null"`
	CustomerPhone   *string         `json:"customerPhone,omitempty"`
	DeliveryAddress *string         `json:"deliveryAddress,omitempty"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'PENDING';index"`
	Total           float64         `json:"total" gorm:"type:decimal(12,2);not null"`
	PaymentMethodID *uuid.UUID      `json:"paymentMethodId,omitempty" gorm:"index"`
	DeliveryStaffID *uuid.UUID      `json:"deliveryStaffId,omitempty" gorm:"index"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	DeletedAt       *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a single line in an order
type OrderItem struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID  `json:"orderId" gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID `json:"productId,omitempty" gorm:"index"`
	Name      string     `json:"name" gorm:"not null"`
	Quantity  int        `json:"quantity" gorm:"not null"`
	UnitPrice float64    `json:"unitPrice" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// UpdateOrderStatusRequest represents a request to change an order's status
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

// AssignDeliveryRequest represents a request to assign delivery staff to an order
type AssignDeliveryRequest struct {
	DeliveryStaffID uuid.UUID `json:"deliveryStaffId" binding:"required"`
}

// OrderFilters represents filters for order list queries
type OrderFilters struct {
	Status    *OrderStatus
	BodegonID *uuid.UUID
	Page      int
	Limit     int
}

// OrderResponse represents a single order response
type OrderResponse struct {
	Success bool    `json:"success"`
	Data    *Order  `json:"data"`
	Message *string `json:"message,omitempty"`
}

// OrderListResponse represents a list of orders response
type OrderListResponse struct {
	Success    bool            `json:"success"`
	Data       []Order         `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}
