package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"llanero-admin-service/internal/models"
)

// StaffRepository persists delivery staff and dashboard team members
type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Delivery staff

func (r *StaffRepository) ListDeliveryStaff(ctx context.Context) ([]models.DeliveryStaff, error) {
	var staff []models.DeliveryStaff
	err := r.db.WithContext(ctx).Order("full_name ASC").Find(&staff).Error
	return staff, err
}

func (r *StaffRepository) GetDeliveryStaffByID(ctx context.Context, staffID uuid.UUID) (*models.DeliveryStaff, error) {
	var staff models.DeliveryStaff
	if err := r.db.WithContext(ctx).First(&staff, "id = ?", staffID).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepository) CreateDeliveryStaff(ctx context.Context, staff *models.DeliveryStaff) error {
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *StaffRepository) PatchDeliveryStaff(ctx context.Context, staffID uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&models.DeliveryStaff{}).
		Where("id = ?", staffID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *StaffRepository) DeleteDeliveryStaff(ctx context.Context, staffID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DeliveryStaff{}, "id = ?", staffID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Team members

func (r *StaffRepository) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.WithContext(ctx).Order("full_name ASC").Find(&members).Error
	return members, err
}

func (r *StaffRepository) GetTeamMemberByID(ctx context.Context, memberID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "id = ?", memberID).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *StaffRepository) GetTeamMemberByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.WithContext(ctx).First(&member, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *StaffRepository) CreateTeamMember(ctx context.Context, member *models.TeamMember) error {
	member.CreatedAt = time.Now()
	member.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *StaffRepository) PatchTeamMember(ctx context.Context, memberID uuid.UUID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).Model(&models.TeamMember{}).
		Where("id = ?", memberID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *StaffRepository) DeleteTeamMember(ctx context.Context, memberID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", memberID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
