package repository

import (
	"time"

	"hospital-staff-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for shift assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetAll retrieves all assignments with pagination, newest date first
func (r *AssignmentRepository) GetAll(limit, offset int) ([]models.Assignment, int64, error) {
	var assignments []models.Assignment
	var total int64

	if err := r.db.Model(&models.Assignment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("date DESC").Limit(limit).Offset(offset).Find(&assignments).Error
	return assignments, total, err
}

// GetByNurseID retrieves all assignments for a nurse
func (r *AssignmentRepository) GetByNurseID(nurseID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("nurse_id = ?", nurseID).Order("date DESC").Find(&assignments).Error
	return assignments, err
}

// GetByDate retrieves all assignments for a calendar day
func (r *AssignmentRepository) GetByDate(date time.Time, limit, offset int) ([]models.Assignment, int64, error) {
	var assignments []models.Assignment
	var total int64

	day := date.Format(models.DateLayout)
	if err := r.db.Model(&models.Assignment{}).Where("date = ?", day).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("date = ?", day).Limit(limit).Offset(offset).Find(&assignments).Error
	return assignments, total, err
}

// GetByStatus retrieves assignments by lifecycle status
func (r *AssignmentRepository) GetByStatus(status models.AssignmentStatus, limit, offset int) ([]models.Assignment, int64, error) {
	var assignments []models.Assignment
	var total int64

	if err := r.db.Model(&models.Assignment{}).Where("status = ?", status).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("status = ?", status).Order("date DESC").Limit(limit).Offset(offset).Find(&assignments).Error
	return assignments, total, err
}

// CountActiveByShiftID counts active assignments referencing a shift. A
// non-zero count blocks shift deletion.
func (r *AssignmentRepository) CountActiveByShiftID(shiftID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).
		Where("shift_id = ? AND status = ?", shiftID, models.AssignmentStatusActive).
		Count(&count).Error
	return count, err
}

// Update updates an assignment
func (r *AssignmentRepository) Update(assignment *models.Assignment) error {
	return r.db.Save(assignment).Error
}

// Delete deletes an assignment
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Assignment{}, "id = ?", id).Error
}
