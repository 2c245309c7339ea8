package service

import (
	"hospital-staff-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ShiftServiceInterface defines the interface for shift operations
type ShiftServiceInterface interface {
	Create(req *CreateShiftRequest) (*ShiftResponse, error)
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	GetAll(status models.ShiftStatus, area string, page, pageSize int) (*ShiftListResponse, error)
	Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error)
	Duplicate(id uuid.UUID) (*ShiftResponse, error)
	ToggleStatus(id uuid.UUID) (*ShiftResponse, error)
	Delete(id uuid.UUID) error
}

// AssignmentServiceInterface defines the interface for assignment operations
type AssignmentServiceInterface interface {
	Create(req *CreateAssignmentRequest) (*AssignmentResponse, error)
	GetByID(id uuid.UUID) (*AssignmentResponse, error)
	GetAll(status models.AssignmentStatus, date string, page, pageSize int) (*AssignmentListResponse, error)
	GetByNurseID(nurseID uuid.UUID) ([]AssignmentResponse, error)
	GetAllowedAreas(shiftID uuid.UUID) (*AllowedAreasResponse, error)
	Update(id uuid.UUID, req *UpdateAssignmentRequest) (*AssignmentResponse, error)
	Release(id uuid.UUID) (*AssignmentResponse, error)
	Delete(id uuid.UUID) error
}

// NurseServiceInterface defines the interface for nurse directory operations
type NurseServiceInterface interface {
	Create(req *CreateNurseRequest) (*NurseResponse, error)
	GetByID(id uuid.UUID) (*NurseResponse, error)
	GetAll(q, area string, page, pageSize int) (*NurseListResponse, error)
	GetActive() ([]NurseResponse, error)
	Update(id uuid.UUID, req *UpdateNurseRequest) (*NurseResponse, error)
	Delete(id uuid.UUID) error
}

// PatientServiceInterface defines the interface for patient operations
type PatientServiceInterface interface {
	Create(req *CreatePatientRequest) (*PatientResponse, error)
	GetByID(id uuid.UUID) (*PatientResponse, error)
	GetAll(q string, status models.PatientStatus, area string, page, pageSize int) (*PatientListResponse, error)
	Update(id uuid.UUID, req *UpdatePatientRequest) (*PatientResponse, error)
	Delete(id uuid.UUID) error
}

// ClinicalRecordServiceInterface defines the interface for clinical history operations
type ClinicalRecordServiceInterface interface {
	Create(req *CreateClinicalRecordRequest) (*ClinicalRecordResponse, error)
	GetByID(id uuid.UUID) (*ClinicalRecordResponse, error)
	GetAll(entryType models.ClinicalEntryType, page, pageSize int) (*ClinicalRecordListResponse, error)
	GetByPatientID(patientID uuid.UUID, page, pageSize int) (*ClinicalRecordListResponse, error)
	Update(id uuid.UUID, req *UpdateClinicalRecordRequest) (*ClinicalRecordResponse, error)
	Delete(id uuid.UUID) error
}

// InventoryServiceInterface defines the interface for pharmacy stock operations
type InventoryServiceInterface interface {
	Create(req *CreateInventoryItemRequest) (*InventoryItemResponse, error)
	GetByID(id uuid.UUID) (*InventoryItemResponse, error)
	GetAll(q string, itemType models.InventoryItemType, page, pageSize int) (*InventoryListResponse, error)
	GetLowStock(threshold, page, pageSize int) (*InventoryListResponse, error)
	Update(id uuid.UUID, req *UpdateInventoryItemRequest) (*InventoryItemResponse, error)
	AdjustStock(id uuid.UUID, req *AdjustStockRequest) (*InventoryItemResponse, error)
	Delete(id uuid.UUID) error
}
