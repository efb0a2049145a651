package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"llanero-admin-service/internal/models"
)

// Cache TTL constants
const (
	productCacheTTL  = 5 * time.Minute  // Single product cache
	listCacheTTL     = 2 * time.Minute  // Product list cache (shorter due to frequent changes)
	categoryCacheTTL = 30 * time.Minute // Categories rarely change

	cacheKeyPrefix = "llanero:catalog:"
)

// CatalogRepository persists products, categories and subcategories.
// It also implements importer.CatalogStore for the bulk import routine.
type CatalogRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewCatalogRepository(db *gorm.DB, redisClient *redis.Client) *CatalogRepository {
	return &CatalogRepository{db: db, redis: redisClient}
}

func (r *CatalogRepository) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if r.redis == nil {
		return false
	}
	val, err := r.redis.Get(ctx, cacheKeyPrefix+key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func (r *CatalogRepository) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if r.redis == nil {
		return
	}
	if data, err := json.Marshal(value); err == nil {
		r.redis.Set(ctx, cacheKeyPrefix+key, data, ttl)
	}
}

func (r *CatalogRepository) cacheDeletePattern(ctx context.Context, pattern string) {
	if r.redis == nil {
		return
	}
	iter := r.redis.Scan(ctx, 0, cacheKeyPrefix+pattern, 100).Iterator()
	for iter.Next(ctx) {
		r.redis.Del(ctx, iter.Val())
	}
}

func (r *CatalogRepository) invalidateProductCaches(ctx context.Context) {
	r.cacheDeletePattern(ctx, "product:*")
	r.cacheDeletePattern(ctx, "products:*")
}

func (r *CatalogRepository) invalidateCategoryCaches(ctx context.Context) {
	r.cacheDeletePattern(ctx, "categories:*")
	r.cacheDeletePattern(ctx, "subcategories:*")
}

// Product operations

// CreateProduct inserts a new product
func (r *CatalogRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).Create(product).Error
	if err == nil {
		r.invalidateProductCaches(ctx)
	}
	return err
}

// UpdateProduct saves the full product record. The import reconciler relies
// on full-record semantics so that cleared fields (barcode, inactive status)
// are actually persisted.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Save(product).Error
	if err == nil {
		r.invalidateProductCaches(ctx)
	}
	return err
}

// PatchProduct applies a partial update from column/value pairs
func (r *CatalogRepository) PatchProduct(ctx context.Context, productID uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(updates).Error
	if err == nil {
		r.invalidateProductCaches(ctx)
	}
	return err
}

// GetProductByID retrieves a product by ID with caching
func (r *CatalogRepository) GetProductByID(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	cacheKey := fmt.Sprintf("product:%s", productID)

	var cached models.Product
	if r.cacheGet(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Subcategory").
		First(&product, "id = ?", productID).Error; err != nil {
		return nil, err
	}

	r.cacheSet(ctx, cacheKey, product, productCacheTTL)
	return &product, nil
}

// GetProductBySKU retrieves a product by its SKU natural key.
// Returns (nil, nil) when no product carries the SKU. Not cached: the
// import loop depends on reads observing writes from earlier rows.
func (r *CatalogRepository) GetProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).First(&product, "sku = ?", sku).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns a filtered, paginated product page
func (r *CatalogRepository) ListProducts(ctx context.Context, filters models.ProductFilters) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if filters.Search != "" {
		like := "%" + filters.Search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", like, like)
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.SubcategoryID != nil {
		query = query.Where("subcategory_id = ?", *filters.SubcategoryID)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	offset := (filters.Page - 1) * filters.Limit
	err := query.
		Preload("Category").
		Preload("Subcategory").
		Order("created_at DESC").
		Offset(offset).
		Limit(filters.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// ListAllProducts returns every product, for CSV export
func (r *CatalogRepository) ListAllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Subcategory").
		Order("name ASC").
		Find(&products).Error
	return products, err
}

// DeleteProduct soft-deletes a product
func (r *CatalogRepository) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.invalidateProductCaches(ctx)
	return nil
}

// Category operations

// ListCategories returns all categories with caching
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if r.cacheGet(ctx, "categories:all", &cached) {
		return cached, nil
	}

	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("position ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	r.cacheSet(ctx, "categories:all", categories, categoryCacheTTL)
	return categories, nil
}

// GetCategoryByID retrieves a category with its subcategories
func (r *CatalogRepository) GetCategoryByID(ctx context.Context, categoryID uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories").
		First(&category, "id = ?", categoryID).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory inserts a new category
func (r *CatalogRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Create(category).Error
	if err == nil {
		r.invalidateCategoryCaches(ctx)
	}
	return err
}

// PatchCategory applies a partial category update
func (r *CatalogRepository) PatchCategory(ctx context.Context, categoryID uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("id = ?", categoryID).
		Updates(updates).Error
	if err == nil {
		r.invalidateCategoryCaches(ctx)
	}
	return err
}

// DeleteCategory soft-deletes a category
func (r *CatalogRepository) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", categoryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.invalidateCategoryCaches(ctx)
	return nil
}

// Subcategory operations

// ListSubcategories returns all subcategories with caching
func (r *CatalogRepository) ListSubcategories(ctx context.Context) ([]models.Subcategory, error) {
	var cached []models.Subcategory
	if r.cacheGet(ctx, "subcategories:all", &cached) {
		return cached, nil
	}

	var subcategories []models.Subcategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&subcategories).Error; err != nil {
		return nil, err
	}

	r.cacheSet(ctx, "subcategories:all", subcategories, categoryCacheTTL)
	return subcategories, nil
}

// ListSubcategoriesByCategory returns the subcategories of one category
func (r *CatalogRepository) ListSubcategoriesByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&subcategories).Error
	return subcategories, err
}

// CreateSubcategory inserts a new subcategory
func (r *CatalogRepository) CreateSubcategory(ctx context.Context, subcategory *models.Subcategory) error {
	subcategory.CreatedAt = time.Now()
	subcategory.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Create(subcategory).Error
	if err == nil {
		r.invalidateCategoryCaches(ctx)
	}
	return err
}

// PatchSubcategory applies a partial subcategory update
func (r *CatalogRepository) PatchSubcategory(ctx context.Context, subcategoryID uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	err := r.db.WithContext(ctx).Model(&models.Subcategory{}).
		Where("id = ?", subcategoryID).
		Updates(updates).Error
	if err == nil {
		r.invalidateCategoryCaches(ctx)
	}
	return err
}

// DeleteSubcategory soft-deletes a subcategory
func (r *CatalogRepository) DeleteSubcategory(ctx context.Context, subcategoryID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Subcategory{}, "id = ?", subcategoryID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.invalidateCategoryCaches(ctx)
	return nil
}
