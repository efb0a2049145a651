package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llanero-admin-service/internal/importer"
	"llanero-admin-service/internal/models"
)

// stubCatalogStore backs the import handler without a database
type stubCatalogStore struct {
	categories []models.Category
	products   []*models.Product
}

var _ importer.CatalogStore = (*stubCatalogStore)(nil)

func (s *stubCatalogStore) GetProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	for _, p := range s.products {
		if p.SKU != nil && *p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubCatalogStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories, nil
}

func (s *stubCatalogStore) ListSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	return nil, nil
}

func (s *stubCatalogStore) CreateProduct(ctx context.Context, product *models.Product) error {
	product.ID = uuid.New()
	s.products = append(s.products, product)
	return nil
}

func (s *stubCatalogStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	return nil
}

func setupImportRouter(store importer.CatalogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewImportHandler(store, nil, nil, nil)
	router := gin.New()
	router.POST("/api/v1/products/import", handler.ImportProducts)
	router.GET("/api/v1/products/import/template", handler.GetImportTemplate)
	return router
}

func uploadCSV(t *testing.T, router *gin.Engine, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestImportProductsEndpoint(t *testing.T) {
	store := &stubCatalogStore{
		categories: []models.Category{{ID: uuid.New(), Name: "Bebidas", IsActive: true}},
	}
	router := setupImportRouter(store)

	csv := "Nombre,Descripción,SKU,Código de barras,Precio,Categoría,Subcategoría,Estado,Imágenes\n" +
		"Coca-Cola 2L,,COKE-2L,,1.50,Bebidas,,,\n" +
		",,X-1,,1.00,,,,\n"

	w := uploadCSV(t, router, "productos.csv", csv)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 1, resp.Result.CreatedCount)
	assert.Equal(t, 0, resp.Result.UpdatedCount)
	assert.Equal(t, []string{"Fila 3: Nombre es requerido"}, resp.ErrorMessages)
	assert.Len(t, store.products, 1)
}

func TestImportProductsRejectsMissingFile(t *testing.T) {
	router := setupImportRouter(&stubCatalogStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/import", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "FILE_REQUIRED", resp.Error.Code)
}

func TestImportProductsRejectsUnknownExtension(t *testing.T) {
	router := setupImportRouter(&stubCatalogStore{})

	w := uploadCSV(t, router, "productos.pdf", "whatever")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_FORMAT", resp.Error.Code)
}

func TestImportProductsRejectsEmptyFile(t *testing.T) {
	router := setupImportRouter(&stubCatalogStore{})

	w := uploadCSV(t, router, "productos.csv", "Nombre,Descripción,SKU\n")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EMPTY_FILE", resp.Error.Code)
}

func TestGetImportTemplateJSON(t *testing.T) {
	router := setupImportRouter(&stubCatalogStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/import/template", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success  bool                  `json:"success"`
		Template models.ImportTemplate `json:"template"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "products", resp.Template.Entity)
	assert.Len(t, resp.Template.Columns, 9)
}

func TestGetImportTemplateCSV(t *testing.T) {
	router := setupImportRouter(&stubCatalogStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/import/template?format=csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "plantilla_productos.csv")
	header := strings.TrimSpace(w.Body.String())
	assert.Equal(t, "Nombre,Descripción,SKU,Código de barras,Precio,Categoría,Subcategoría,Estado,Imágenes", header)
}
