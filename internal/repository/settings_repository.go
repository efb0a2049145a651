package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"llanero-admin-service/internal/models"
)

// SettingsRepository persists bodegones, payment methods and banners —
// the dashboard's configuration entities.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Bodegones

func (r *SettingsRepository) ListBodegones(ctx context.Context) ([]models.Bodegon, error) {
	var bodegones []models.Bodegon
	err := r.db.WithContext(ctx).Order("name ASC").Find(&bodegones).Error
	return bodegones, err
}

func (r *SettingsRepository) GetBodegonByID(ctx context.Context, bodegonID uuid.UUID) (*models.Bodegon, error) {
	var bodegon models.Bodegon
	if err := r.db.WithContext(ctx).First(&bodegon, "id = ?", bodegonID).Error; err != nil {
		return nil, err
	}
	return &bodegon, nil
}

func (r *SettingsRepository) CreateBodegon(ctx context.Context, bodegon *models.Bodegon) error {
	bodegon.CreatedAt = time.Now()
	bodegon.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(bodegon).Error
}

func (r *SettingsRepository) PatchBodegon(ctx context.Context, bodegonID uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&models.Bodegon{}).
		Where("id = ?", bodegonID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SettingsRepository) DeleteBodegon(ctx context.Context, bodegonID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Bodegon{}, "id = ?", bodegonID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Payment methods

func (r *SettingsRepository) ListPaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var methods []models.PaymentMethod
	err := r.db.WithContext(ctx).Order("name ASC").Find(&methods).Error
	return methods, err
}

func (r *SettingsRepository) GetPaymentMethodByID(ctx context.Context, methodID uuid.UUID) (*models.PaymentMethod, error) {
	var method models.PaymentMethod
	if err := r.db.WithContext(ctx).First(&method, "id = ?", methodID).Error; err != nil {
		return nil, err
	}
	return &method, nil
}

func (r *SettingsRepository) CreatePaymentMethod(ctx context.Context, method *models.PaymentMethod) error {
	method.CreatedAt = time.Now()
	method.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(method).Error
}

func (r *SettingsRepository) PatchPaymentMethod(ctx context.Context, methodID uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&models.PaymentMethod{}).
		Where("id = ?", methodID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SettingsRepository) DeletePaymentMethod(ctx context.Context, methodID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PaymentMethod{}, "id = ?", methodID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Banners

func (r *SettingsRepository) ListBanners(ctx context.Context) ([]models.Banner, error) {
	var banners []models.Banner
	err := r.db.WithContext(ctx).Order("position ASC, created_at DESC").Find(&banners).Error
	return banners, err
}

func (r *SettingsRepository) GetBannerByID(ctx context.Context, bannerID uuid.UUID) (*models.Banner, error) {
	var banner models.Banner
	if err := r.db.WithContext(ctx).First(&banner, "id = ?", bannerID).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *SettingsRepository) CreateBanner(ctx context.Context, banner *models.Banner) error {
	banner.CreatedAt = time.Now()
	banner.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *SettingsRepository) PatchBanner(ctx context.Context, bannerID uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&models.Banner{}).
		Where("id = ?", bannerID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SettingsRepository) DeleteBanner(ctx context.Context, bannerID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Banner{}, "id = ?", bannerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
