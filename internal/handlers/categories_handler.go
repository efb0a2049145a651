package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"llanero-admin-service/internal/models"
	"llanero-admin-service/internal/repository"
)

// CategoriesHandler serves category and subcategory management endpoints
type CategoriesHandler struct {
	repo *repository.CatalogRepository
}

func NewCategoriesHandler(repo *repository.CatalogRepository) *CategoriesHandler {
	return &CategoriesHandler{repo: repo}
}

// GetCategories returns all categories
// GET /api/v1/categories
func (h *CategoriesHandler) GetCategories(c *gin.Context) {
	categories, err := h.repo.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.CategoryListResponse{Success: true, Data: categories})
}

// GetCategory returns one category with its subcategories
// GET /api/v1/categories/:id
func (h *CategoriesHandler) GetCategory(c *gin.Context) {
	categoryID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	category, err := h.repo.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		respondRepoError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, models.CategoryResponse{Success: true, Data: category})
}

// CreateCategory creates a category
// POST /api/v1/categories
func (h *CategoriesHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Position:    1,
		IsActive:    true,
	}
	if req.Position != nil {
		category.Position = *req.Position
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.repo.CreateCategory(c.Request.Context(), category); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusCreated, models.CategoryResponse{Success: true, Data: category})
}

// UpdateCategory applies a partial update to a category
// PUT /api/v1/categories/:id
func (h *CategoriesHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
		return
	}

	if err := h.repo.PatchCategory(c.Request.Context(), categoryID, updates); err != nil {
		respondRepoError(c, err, "Category not found")
		return
	}

	category, err := h.repo.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		respondRepoError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, models.CategoryResponse{Success: true, Data: category})
}

// DeleteCategory soft-deletes a category
// DELETE /api/v1/categories/:id
func (h *CategoriesHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		respondRepoError(c, err, "Category not found")
		return
	}

	message := "Category deleted"
	c.JSON(http.StatusOK, models.CategoryResponse{Success: true, Message: &message})
}

// GetSubcategories returns the subcategories of a category
// GET /api/v1/categories/:id/subcategories
func (h *CategoriesHandler) GetSubcategories(c *gin.Context) {
	categoryID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	subcategories, err := h.repo.ListSubcategoriesByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.SubcategoryListResponse{Success: true, Data: subcategories})
}

// CreateSubcategory creates a subcategory under a category
// POST /api/v1/subcategories
func (h *CategoriesHandler) CreateSubcategory(c *gin.Context) {
	var req models.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	// Parent must exist; subcategory names are scoped to their category
	if _, err := h.repo.GetCategoryByID(c.Request.Context(), req.CategoryID); err != nil {
		respondRepoError(c, err, "Category not found")
		return
	}

	subcategory := &models.Subcategory{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		IsActive:   true,
	}
	if req.IsActive != nil {
		subcategory.IsActive = *req.IsActive
	}

	if err := h.repo.CreateSubcategory(c.Request.Context(), subcategory); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": subcategory})
}

// UpdateSubcategory applies a partial update to a subcategory
// PUT /api/v1/subcategories/:id
func (h *CategoriesHandler) UpdateSubcategory(c *gin.Context) {
	subcategoryID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
		return
	}

	if err := h.repo.PatchSubcategory(c.Request.Context(), subcategoryID, updates); err != nil {
		respondRepoError(c, err, "Subcategory not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteSubcategory soft-deletes a subcategory
// DELETE /api/v1/subcategories/:id
func (h *CategoriesHandler) DeleteSubcategory(c *gin.Context) {
	subcategoryID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteSubcategory(c.Request.Context(), subcategoryID); err != nil {
		respondRepoError(c, err, "Subcategory not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subcategory deleted"})
}
