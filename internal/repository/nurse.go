package repository

import (
	"hospital-staff-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NurseRepository handles database operations for nursing staff
type NurseRepository struct {
	db *gorm.DB
}

// NewNurseRepository creates a new nurse repository
func NewNurseRepository(db *gorm.DB) *NurseRepository {
	return &NurseRepository{db: db}
}

// Create creates a new nurse
func (r *NurseRepository) Create(nurse *models.Nurse) error {
	return r.db.Create(nurse).Error
}

// GetByID retrieves a nurse by ID
func (r *NurseRepository) GetByID(id uuid.UUID) (*models.Nurse, error) {
	var nurse models.Nurse
	err := r.db.First(&nurse, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &nurse, nil
}

// GetByCURP retrieves a nurse by CURP
func (r *NurseRepository) GetByCURP(curp string) (*models.Nurse, error) {
	var nurse models.Nurse
	err := r.db.First(&nurse, "curp = ?", curp).Error
	if err != nil {
		return nil, err
	}
	return &nurse, nil
}

// GetAll retrieves all nurses with pagination
func (r *NurseRepository) GetAll(limit, offset int) ([]models.Nurse, int64, error) {
	var nurses []models.Nurse
	var total int64

	if err := r.db.Model(&models.Nurse{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("full_name ASC").Limit(limit).Offset(offset).Find(&nurses).Error
	return nurses, total, err
}

// GetActive retrieves every active nurse. This feeds the selectable nurse
// list when creating assignments.
func (r *NurseRepository) GetActive() ([]models.Nurse, error) {
	var nurses []models.Nurse
	err := r.db.Where("status = ?", models.NurseStatusActive).Order("full_name ASC").Find(&nurses).Error
	return nurses, err
}

// Search retrieves nurses matching a name, CURP or area fragment
func (r *NurseRepository) Search(q string, limit, offset int) ([]models.Nurse, int64, error) {
	var nurses []models.Nurse
	var total int64

	pattern := "%" + q + "%"
	query := r.db.Model(&models.Nurse{}).
		Where("full_name ILIKE ? OR curp ILIKE ? OR area ILIKE ?", pattern, pattern, pattern)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("full_name ASC").Limit(limit).Offset(offset).Find(&nurses).Error
	return nurses, total, err
}

// GetByArea retrieves nurses assigned to an area
func (r *NurseRepository) GetByArea(area string, limit, offset int) ([]models.Nurse, int64, error) {
	var nurses []models.Nurse
	var total int64

	if err := r.db.Model(&models.Nurse{}).Where("area = ?", area).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("area = ?", area).Order("full_name ASC").Limit(limit).Offset(offset).Find(&nurses).Error
	return nurses, total, err
}

// Update updates a nurse
func (r *NurseRepository) Update(nurse *models.Nurse) error {
	return r.db.Save(nurse).Error
}

// Delete deletes a nurse
func (r *NurseRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Nurse{}, "id = ?", id).Error
}
