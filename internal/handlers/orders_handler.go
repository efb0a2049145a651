package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"llanero-admin-service/internal/events"
	"llanero-admin-service/internal/models"
	"llanero-admin-service/internal/repository"
)

// OrdersHandler serves the order management endpoints
type OrdersHandler struct {
	repo      *repository.OrdersRepository
	staffRepo *repository.StaffRepository
	publisher *events.Publisher
}

func NewOrdersHandler(repo *repository.OrdersRepository, staffRepo *repository.StaffRepository, publisher *events.Publisher) *OrdersHandler {
	return &OrdersHandler{repo: repo, staffRepo: staffRepo, publisher: publisher}
}

// GetOrders returns a filtered, paginated order list
// GET /api/v1/orders
func (h *OrdersHandler) GetOrders(c *gin.Context) {
	page, limit := parsePagination(c, 20, 100)

	filters := models.OrderFilters{
		Page:  page,
		Limit: limit,
	}
	if v := c.Query("status"); v != "" {
		status := models.OrderStatus(strings.ToUpper(v))
		filters.Status = &status
	}
	if v := c.Query("bodegonId"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filters.BodegonID = &id
		}
	}

	orders, total, err := h.repo.ListOrders(c.Request.Context(), filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.OrderListResponse{
		Success:    true,
		Data:       orders,
		Pagination: models.NewPaginationInfo(page, limit, total),
	})
}

// GetOrder returns a single order with its items
// GET /api/v1/orders/:id
func (h *OrdersHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.repo.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondRepoError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, models.OrderResponse{Success: true, Data: order})
}

// UpdateOrderStatus transitions an order to a new status
// PUT /api/v1/orders/:id/status
func (h *OrdersHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	current, err := h.repo.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondRepoError(c, err, "Order not found")
		return
	}
	oldStatus := current.Status

	order, err := h.repo.UpdateOrderStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		if strings.Contains(err.Error(), "invalid order status transition") {
			respondError(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
			return
		}
		respondRepoError(c, err, "Order not found")
		return
	}

	if h.publisher != nil {
		h.publisher.PublishOrderStatusChanged(c.Request.Context(), order, oldStatus, userIDFromContext(c))
	}

	c.JSON(http.StatusOK, models.OrderResponse{Success: true, Data: order})
}

// AssignDelivery assigns a delivery person to an order
// PUT /api/v1/orders/:id/delivery
func (h *OrdersHandler) AssignDelivery(c *gin.Context) {
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.AssignDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	staff, err := h.staffRepo.GetDeliveryStaffByID(c.Request.Context(), req.DeliveryStaffID)
	if err != nil {
		respondRepoError(c, err, "Delivery staff not found")
		return
	}
	if !staff.IsActive {
		respondError(c, http.StatusConflict, "STAFF_INACTIVE", "Delivery staff is not active")
		return
	}

	if err := h.repo.AssignDeliveryStaff(c.Request.Context(), orderID, req.DeliveryStaffID); err != nil {
		respondRepoError(c, err, "Order not found")
		return
	}

	order, err := h.repo.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondRepoError(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, models.OrderResponse{Success: true, Data: order})
}
