package repository

import (
	"time"

	"hospital-staff-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetAll(limit, offset int) ([]models.Shift, int64, error)
	GetActive() ([]models.Shift, error)
	GetByArea(area string, limit, offset int) ([]models.Shift, int64, error)
	GetByStatus(status models.ShiftStatus, limit, offset int) ([]models.Shift, int64, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	GetByID(id uuid.UUID) (*models.Assignment, error)
	GetAll(limit, offset int) ([]models.Assignment, int64, error)
	GetByNurseID(nurseID uuid.UUID) ([]models.Assignment, error)
	GetByDate(date time.Time, limit, offset int) ([]models.Assignment, int64, error)
	GetByStatus(status models.AssignmentStatus, limit, offset int) ([]models.Assignment, int64, error)
	CountActiveByShiftID(shiftID uuid.UUID) (int64, error)
	Update(assignment *models.Assignment) error
	Delete(id uuid.UUID) error
}

// NurseRepositoryInterface defines the interface for nurse repository operations
type NurseRepositoryInterface interface {
	Create(nurse *models.Nurse) error
	GetByID(id uuid.UUID) (*models.Nurse, error)
	GetByCURP(curp string) (*models.Nurse, error)
	GetAll(limit, offset int) ([]models.Nurse, int64, error)
	GetActive() ([]models.Nurse, error)
	Search(q string, limit, offset int) ([]models.Nurse, int64, error)
	GetByArea(area string, limit, offset int) ([]models.Nurse, int64, error)
	Update(nurse *models.Nurse) error
	Delete(id uuid.UUID) error
}

// PatientRepositoryInterface defines the interface for patient repository operations
type PatientRepositoryInterface interface {
	Create(patient *models.Patient) error
	GetByID(id uuid.UUID) (*models.Patient, error)
	GetAll(limit, offset int) ([]models.Patient, int64, error)
	Search(q string, status models.PatientStatus, area string, limit, offset int) ([]models.Patient, int64, error)
	Update(patient *models.Patient) error
	Delete(id uuid.UUID) error
}

// ClinicalRecordRepositoryInterface defines the interface for clinical record repository operations
type ClinicalRecordRepositoryInterface interface {
	Create(record *models.ClinicalRecord) error
	GetByID(id uuid.UUID) (*models.ClinicalRecord, error)
	GetAll(entryType models.ClinicalEntryType, limit, offset int) ([]models.ClinicalRecord, int64, error)
	GetByPatientID(patientID uuid.UUID, limit, offset int) ([]models.ClinicalRecord, int64, error)
	Update(record *models.ClinicalRecord) error
	Delete(id uuid.UUID) error
}

// InventoryItemRepositoryInterface defines the interface for inventory repository operations
type InventoryItemRepositoryInterface interface {
	Create(item *models.InventoryItem) error
	GetByID(id uuid.UUID) (*models.InventoryItem, error)
	GetByNameAndPresentation(name, presentation string) (*models.InventoryItem, error)
	Search(q string, itemType models.InventoryItemType, limit, offset int) ([]models.InventoryItem, int64, error)
	GetLowStock(threshold int, limit, offset int) ([]models.InventoryItem, int64, error)
	Update(item *models.InventoryItem) error
	Delete(id uuid.UUID) error
}
