package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"llanero-admin-service/internal/events"
	"llanero-admin-service/internal/models"
	"llanero-admin-service/internal/repository"
)

// ProductsHandler serves the product CRUD and export endpoints
type ProductsHandler struct {
	repo      *repository.CatalogRepository
	publisher *events.Publisher
}

func NewProductsHandler(repo *repository.CatalogRepository, publisher *events.Publisher) *ProductsHandler {
	return &ProductsHandler{repo: repo, publisher: publisher}
}

// GetProducts returns a filtered, paginated product list
// GET /api/v1/products
func (h *ProductsHandler) GetProducts(c *gin.Context) {
	page, limit := parsePagination(c, 20, 100)

	filters := models.ProductFilters{
		Search: strings.TrimSpace(c.Query("search")),
		Page:   page,
		Limit:  limit,
	}
	if v := c.Query("categoryId"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filters.CategoryID = &id
		}
	}
	if v := c.Query("subcategoryId"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			filters.SubcategoryID = &id
		}
	}
	if v := c.Query("isActive"); v != "" {
		if active, err := strconv.ParseBool(v); err == nil {
			filters.IsActive = &active
		}
	}

	products, total, err := h.repo.ListProducts(c.Request.Context(), filters)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ProductListResponse{
		Success:    true,
		Data:       products,
		Pagination: models.NewPaginationInfo(page, limit, total),
	})
}

// GetProduct returns a single product
// GET /api/v1/products/:id
func (h *ProductsHandler) GetProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.repo.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondRepoError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, models.ProductResponse{Success: true, Data: product})
}

// CreateProduct creates a new product
// POST /api/v1/products
func (h *ProductsHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		SKU:           req.SKU,
		Barcode:       req.Barcode,
		Price:         req.Price,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		IsActive:      true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.SetImageList(req.Images)

	if err := h.repo.CreateProduct(c.Request.Context(), product); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}

	if h.publisher != nil {
		h.publisher.PublishProductCreated(c.Request.Context(), product, userIDFromContext(c))
	}

	c.JSON(http.StatusCreated, models.ProductResponse{Success: true, Data: product})
}

// UpdateProduct applies a partial update to a product
// PUT /api/v1/products/:id
func (h *ProductsHandler) UpdateProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
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
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.Barcode != nil {
		updates["barcode"] = *req.Barcode
	}
	if req.Price != nil {
		if *req.Price < 0 {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "price must be non-negative")
			return
		}
		updates["price"] = *req.Price
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.SubcategoryID != nil {
		updates["subcategory_id"] = *req.SubcategoryID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Images != nil {
		p := models.Product{}
		p.SetImageList(req.Images)
		updates["images"] = p.Images
	}
	if len(updates) == 0 {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
		return
	}

	if err := h.repo.PatchProduct(c.Request.Context(), productID, updates); err != nil {
		respondRepoError(c, err, "Product not found")
		return
	}

	product, err := h.repo.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondRepoError(c, err, "Product not found")
		return
	}

	if h.publisher != nil {
		h.publisher.PublishProductUpdated(c.Request.Context(), product, userIDFromContext(c))
	}

	c.JSON(http.StatusOK, models.ProductResponse{Success: true, Data: product})
}

// DeleteProduct soft-deletes a product
// DELETE /api/v1/products/:id
func (h *ProductsHandler) DeleteProduct(c *gin.Context) {
	productID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteProduct(c.Request.Context(), productID); err != nil {
		respondRepoError(c, err, "Product not found")
		return
	}

	if h.publisher != nil {
		h.publisher.PublishProductDeleted(c.Request.Context(), productID, userIDFromContext(c))
	}

	message := "Product deleted"
	c.JSON(http.StatusOK, models.ProductResponse{Success: true, Message: &message})
}

// ExportProducts downloads the whole catalog as CSV in the same column
// order the import expects, so an exported file can be re-imported.
// GET /api/v1/products/export
func (h *ProductsHandler) ExportProducts(c *gin.Context) {
	products, err := h.repo.ListAllProducts(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=productos.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Nombre", "Descripción", "SKU", "Código de barras", "Precio", "Categoría", "Subcategoría", "Estado", "Imágenes"})

	for _, p := range products {
		estado := "Activo"
		if !p.IsActive {
			estado = "Inactivo"
		}
		categoryName := ""
		if p.Category != nil {
			categoryName = p.Category.Name
		}
		subcategoryName := ""
		if p.Subcategory != nil {
			subcategoryName = p.Subcategory.Name
		}
		writer.Write([]string{
			p.Name,
			deref(p.Description),
			deref(p.SKU),
			deref(p.Barcode),
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			categoryName,
			subcategoryName,
			estado,
			strings.Join(p.ImageList(), "|"),
		})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
