package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"llanero-admin-service/internal/models"
	"llanero-admin-service/internal/repository"
)

// SettingsHandler serves bodegon, payment method and banner endpoints
type SettingsHandler struct {
	repo *repository.SettingsRepository
}

func NewSettingsHandler(repo *repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// Bodegones

// GetBodegones returns all bodegones
// GET /api/v1/bodegones
func (h *SettingsHandler) GetBodegones(c *gin.Context) {
	bodegones, err := h.repo.ListBodegones(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.BodegonListResponse{Success: true, Data: bodegones})
}

// GetBodegon returns a single bodegon
// GET /api/v1/bodegones/:id
func (h *SettingsHandler) GetBodegon(c *gin.Context) {
	bodegonID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	bodegon, err := h.repo.GetBodegonByID(c.Request.Context(), bodegonID)
	if err != nil {
		respondRepoError(c, err, "Bodegon not found")
		return
	}
	c.JSON(http.StatusOK, models.BodegonResponse{Success: true, Data: bodegon})
}

// CreateBodegon creates a bodegon
// POST /api/v1/bodegones
func (h *SettingsHandler) CreateBodegon(c *gin.Context) {
	var req models.CreateBodegonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	bodegon := &models.Bodegon{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		LogoURL:  req.LogoURL,
		IsActive: true,
	}
	if req.IsActive != nil {
		bodegon.IsActive = *req.IsActive
	}

	if err := h.repo.CreateBodegon(c.Request.Context(), bodegon); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusCreated, models.BodegonResponse{Success: true, Data: bodegon})
}

// UpdateBodegon applies a partial update to a bodegon
// PUT /api/v1/bodegones/:id
func (h *SettingsHandler) UpdateBodegon(c *gin.Context) {
	bodegonID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateBodegonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
		return
	}

	if err := h.repo.PatchBodegon(c.Request.Context(), bodegonID, updates); err != nil {
		respondRepoError(c, err, "Bodegon not found")
		return
	}

	bodegon, err := h.repo.GetBodegonByID(c.Request.Context(), bodegonID)
	if err != nil {
		respondRepoError(c, err, "Bodegon not found")
		return
	}
	c.JSON(http.StatusOK, models.BodegonResponse{Success: true, Data: bodegon})
}

// DeleteBodegon soft-deletes a bodegon
// DELETE /api/v1/bodegones/:id
func (h *SettingsHandler) DeleteBodegon(c *gin.Context) {
	bodegonID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteBodegon(c.Request.Context(), bodegonID); err != nil {
		respondRepoError(c, err, "Bodegon not found")
		return
	}

	message := "Bodegon deleted"
	c.JSON(http.StatusOK, models.BodegonResponse{Success: true, Message: &message})
}

// Payment methods

// GetPaymentMethods returns all payment methods
// GET /api/v1/payment-methods
func (h *SettingsHandler) GetPaymentMethods(c *gin.Context) {
	methods, err := h.repo.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.PaymentMethodListResponse{Success: true, Data: methods})
}

// CreatePaymentMethod creates a payment method
// POST /api/v1/payment-methods
func (h *SettingsHandler) CreatePaymentMethod(c *gin.Context) {
	var req models.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	switch req.Type {
	case models.PaymentTypeCash, models.PaymentTypeTransfer, models.PaymentTypeMobile,
		models.PaymentTypeZelle, models.PaymentTypeCryptoWallet:
	default:
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment method type")
		return
	}

	method := &models.PaymentMethod{
		Name:     req.Name,
		Type:     req.Type,
		Details:  req.Details,
		IsActive: true,
	}
	if req.IsActive != nil {
		method.IsActive = *req.IsActive
	}

	if err := h.repo.CreatePaymentMethod(c.Request.Context(), method); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusCreated, models.PaymentMethodResponse{Success: true, Data: method})
}

// UpdatePaymentMethod applies a partial update to a payment method
// PUT /api/v1/payment-methods/:id
func (h *SettingsHandler) UpdatePaymentMethod(c *gin.Context) {
	methodID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		switch *req.Type {
		case models.PaymentTypeCash, models.PaymentTypeTransfer, models.PaymentTypeMobile,
			models.PaymentTypeZelle, models.PaymentTypeCryptoWallet:
		default:
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment method type")
			return
		}
		updates["type"] = *req.Type
	}
	if req.Details != nil {
		updates["details"] = req.Details
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
		return
	}

	if err := h.repo.PatchPaymentMethod(c.Request.Context(), methodID, updates); err != nil {
		respondRepoError(c, err, "Payment method not found")
		return
	}

	method, err := h.repo.GetPaymentMethodByID(c.Request.Context(), methodID)
	if err != nil {
		respondRepoError(c, err, "Payment method not found")
		return
	}
	c.JSON(http.StatusOK, models.PaymentMethodResponse{Success: true, Data: method})
}

// DeletePaymentMethod soft-deletes a payment method
// DELETE /api/v1/payment-methods/:id
func (h *SettingsHandler) DeletePaymentMethod(c *gin.Context) {
	methodID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeletePaymentMethod(c.Request.Context(), methodID); err != nil {
		respondRepoError(c, err, "Payment method not found")
		return
	}

	message := "Payment method deleted"
	c.JSON(http.StatusOK, models.PaymentMethodResponse{Success: true, Message: &message})
}

// Banners

// GetBanners returns all banners ordered by position
// GET /api/v1/banners
func (h *SettingsHandler) GetBanners(c *gin.Context) {
	banners, err := h.repo.ListBanners(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.BannerListResponse{Success: true, Data: banners})
}

// CreateBanner creates a banner
// POST /api/v1/banners
func (h *SettingsHandler) CreateBanner(c *gin.Context) {
	var req models.CreateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if req.StartsAt != nil && req.EndsAt != nil && req.EndsAt.Before(*req.StartsAt) {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "endsAt must be after startsAt")
		return
	}

	banner := &models.Banner{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: 1,
		IsActive: true,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
	if req.Position != nil {
		banner.Position = *req.Position
	}
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}

	if err := h.repo.CreateBanner(c.Request.Context(), banner); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusCreated, models.BannerResponse{Success: true, Data: banner})
}

// UpdateBanner applies a partial update to a banner
// PUT /api/v1/banners/:id
func (h *SettingsHandler) UpdateBanner(c *gin.Context) {
	bannerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.LinkURL != nil {
		updates["link_url"] = *req.LinkURL
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
		return
	}

	if err := h.repo.PatchBanner(c.Request.Context(), bannerID, updates); err != nil {
		respondRepoError(c, err, "Banner not found")
		return
	}

	banner, err := h.repo.GetBannerByID(c.Request.Context(), bannerID)
	if err != nil {
		respondRepoError(c, err, "Banner not found")
		return
	}
	c.JSON(http.StatusOK, models.BannerResponse{Success: true, Data: banner})
}

// DeleteBanner soft-deletes a banner
// DELETE /api/v1/banners/:id
func (h *SettingsHandler) DeleteBanner(c *gin.Context) {
	bannerID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteBanner(c.Request.Context(), bannerID); err != nil {
		respondRepoError(c, err, "Banner not found")
		return
	}

	message := "Banner deleted"
	c.JSON(http.StatusOK, models.BannerResponse{Success: true, Message: &message})
}
