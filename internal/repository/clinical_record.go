package repository

import (
	"hospital-staff-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClinicalRecordRepository handles database operations for clinical history entries
type ClinicalRecordRepository struct {
	db *gorm.DB
}

// NewClinicalRecordRepository creates a new clinical record repository
func NewClinicalRecordRepository(db *gorm.DB) *ClinicalRecordRepository {
	return &ClinicalRecordRepository{db: db}
}

// Create creates a new clinical record entry
func (r *ClinicalRecordRepository) Create(record *models.ClinicalRecord) error {
	return r.db.Create(record).Error
}

// GetByID retrieves a clinical record by ID
func (r *ClinicalRecordRepository) GetByID(id uuid.UUID) (*models.ClinicalRecord, error) {
	var record models.ClinicalRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetAll retrieves clinical records with pagination, newest first, optionally
// filtered by entry type
func (r *ClinicalRecordRepository) GetAll(entryType models.ClinicalEntryType, limit, offset int) ([]models.ClinicalRecord, int64, error) {
	var records []models.ClinicalRecord
	var total int64

	query := r.db.Model(&models.ClinicalRecord{})
	if entryType != "" {
		query = query.Where("entry_type = ?", entryType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("recorded_at DESC").Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}

// GetByPatientID retrieves the clinical history of one patient, newest first
func (r *ClinicalRecordRepository) GetByPatientID(patientID uuid.UUID, limit, offset int) ([]models.ClinicalRecord, int64, error) {
	var records []models.ClinicalRecord
	var total int64

	if err := r.db.Model(&models.ClinicalRecord{}).Where("patient_id = ?", patientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("patient_id = ?", patientID).Order("recorded_at DESC").Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}

// Update updates a clinical record
func (r *ClinicalRecordRepository) Update(record *models.ClinicalRecord) error {
	return r.db.Save(record).Error
}

// Delete deletes a clinical record
func (r *ClinicalRecordRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ClinicalRecord{}, "id = ?", id).Error
}
