package repository

import (
	"hospital-staff-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shift definitions
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetAll retrieves all shifts with pagination
func (r *ShiftRepository) GetAll(limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	if err := r.db.Model(&models.Shift{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// GetActive retrieves every shift with active status. This is the shift set
// assignments may reference; it is intentionally unpaginated since the
// catalog is small.
func (r *ShiftRepository) GetActive() ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.Where("status = ?", models.ShiftStatusActive).Order("name ASC").Find(&shifts).Error
	return shifts, err
}

// GetByArea retrieves shifts scoped to an area plus the general (areless) ones
func (r *ShiftRepository) GetByArea(area string, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	query := r.db.Model(&models.Shift{}).Where("area = ? OR area = ''", area)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("area = ? OR area = ''", area).Order("name ASC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// GetByStatus retrieves shifts by status
func (r *ShiftRepository) GetByStatus(status models.ShiftStatus, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	if err := r.db.Model(&models.Shift{}).Where("status = ?", status).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("status = ?", status).Order("name ASC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}
