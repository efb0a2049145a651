package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"llanero-admin-service/internal/models"
	"llanero-admin-service/internal/repository"
)

// StaffHandler serves delivery staff and team member endpoints
type StaffHandler struct {
	repo *repository.StaffRepository
}

func NewStaffHandler(repo *repository.StaffRepository) *StaffHandler {
	return &StaffHandler{repo: repo}
}

// Delivery staff

// GetDeliveryStaff returns all delivery staff
// GET /api/v1/delivery-staff
func (h *StaffHandler) GetDeliveryStaff(c *gin.Context) {
	staff, err := h.repo.ListDeliveryStaff(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.DeliveryStaffListResponse{Success: true, Data: staff})
}

// CreateDeliveryStaff registers a new delivery person
// POST /api/v1/delivery-staff
func (h *StaffHandler) CreateDeliveryStaff(c *gin.Context) {
	var req models.CreateDeliveryStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	staff := &models.DeliveryStaff{
		FullName: req.FullName,
		Phone:    req.Phone,
		Vehicle:  req.Vehicle,
		Status:   models.DeliveryStatusOffline,
		IsActive: true,
	}
	if err := h.repo.CreateDeliveryStaff(c.Request.Context(), staff); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusCreated, models.DeliveryStaffResponse{Success: true, Data: staff})
}

// UpdateDeliveryStaff applies a partial update to a delivery person
// PUT /api/v1/delivery-staff/:id
func (h *StaffHandler) UpdateDeliveryStaff(c *gin.Context) {
	staffID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateDeliveryStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Vehicle != nil {
		updates["vehicle"] = *req.Vehicle
	}
	if req.Status != nil {
		switch *req.Status {
		case models.DeliveryStatusAvailable, models.DeliveryStatusBusy, models.DeliveryStatusOffline:
		default:
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid delivery staff status")
			return
		}
		updates["status"] = *req.Status
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
		return
	}

	if err := h.repo.PatchDeliveryStaff(c.Request.Context(), staffID, updates); err != nil {
		respondRepoError(c, err, "Delivery staff not found")
		return
	}

	staff, err := h.repo.GetDeliveryStaffByID(c.Request.Context(), staffID)
	if err != nil {
		respondRepoError(c, err, "Delivery staff not found")
		return
	}
	c.JSON(http.StatusOK, models.DeliveryStaffResponse{Success: true, Data: staff})
}

// DeleteDeliveryStaff soft-deletes a delivery person
// DELETE /api/v1/delivery-staff/:id
func (h *StaffHandler) DeleteDeliveryStaff(c *gin.Context) {
	staffID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteDeliveryStaff(c.Request.Context(), staffID); err != nil {
		respondRepoError(c, err, "Delivery staff not found")
		return
	}

	message := "Delivery staff deleted"
	c.JSON(http.StatusOK, models.DeliveryStaffResponse{Success: true, Message: &message})
}

// Team members

// GetTeamMembers returns all dashboard users
// GET /api/v1/team-members
func (h *StaffHandler) GetTeamMembers(c *gin.Context) {
	members, err := h.repo.ListTeamMembers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.TeamMemberListResponse{Success: true, Data: members})
}

// CreateTeamMember adds a dashboard user
// POST /api/v1/team-members
func (h *StaffHandler) CreateTeamMember(c *gin.Context) {
	var req models.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	switch req.Role {
	case models.RoleAdmin, models.RoleManager, models.RoleViewer:
	default:
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid team role")
		return
	}

	member := &models.TeamMember{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
		IsActive: true,
	}
	if err := h.repo.CreateTeamMember(c.Request.Context(), member); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusCreated, models.TeamMemberResponse{Success: true, Data: member})
}

// UpdateTeamMember applies a partial update to a dashboard user
// PUT /api/v1/team-members/:id
func (h *StaffHandler) UpdateTeamMember(c *gin.Context) {
	memberID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Role != nil {
		switch *req.Role {
		case models.RoleAdmin, models.RoleManager, models.RoleViewer:
		default:
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid team role")
			return
		}
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
		return
	}

	if err := h.repo.PatchTeamMember(c.Request.Context(), memberID, updates); err != nil {
		respondRepoError(c, err, "Team member not found")
		return
	}

	member, err := h.repo.GetTeamMemberByID(c.Request.Context(), memberID)
	if err != nil {
		respondRepoError(c, err, "Team member not found")
		return
	}
	c.JSON(http.StatusOK, models.TeamMemberResponse{Success: true, Data: member})
}

// DeleteTeamMember soft-deletes a dashboard user
// DELETE /api/v1/team-members/:id
func (h *StaffHandler) DeleteTeamMember(c *gin.Context) {
	memberID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteTeamMember(c.Request.Context(), memberID); err != nil {
		respondRepoError(c, err, "Team member not found")
		return
	}

	message := "Team member deleted"
	c.JSON(http.StatusOK, models.TeamMemberResponse{Success: true, Message: &message})
}
