package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"llanero-admin-service/internal/models"
)

// OrdersRepository persists orders and their line items
type OrdersRepository struct {
	db *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{db: db}
}

// ListOrders returns a filtered, paginated order page
func (r *OrdersRepository) ListOrders(ctx context.Context, filters models.OrderFilters) ([]models.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{})

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.BodegonID != nil {
		query = query.Where("bodegon_id = ?", *filters.BodegonID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	offset := (filters.Page - 1) * filters.Limit
	err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(filters.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// GetOrderByID retrieves an order with its items
func (r *OrdersRepository) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus transitions an order after validating the transition
func (r *OrdersRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if err := models.ValidateOrderTransition(order.Status, status); err != nil {
			return err
		}
		order.Status = status
		order.UpdatedAt = time.Now()
		return tx.Model(&order).Updates(map[string]interface{}{
			"status":     status,
			"updated_at": order.UpdatedAt,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// AssignDeliveryStaff sets the delivery person for an order
func (r *OrdersRepository) AssignDeliveryStaff(ctx context.Context, orderID, staffID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"delivery_staff_id": staffID,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
