package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"
	"hospital-staff-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClinicalRecordService handles business logic for clinical history entries
type ClinicalRecordService struct {
	repo        repository.ClinicalRecordRepositoryInterface
	patientRepo repository.PatientRepositoryInterface
	validator   *validator.Validate
}

// Ensure ClinicalRecordService implements ClinicalRecordServiceInterface
var _ ClinicalRecordServiceInterface = (*ClinicalRecordService)(nil)

// NewClinicalRecordService creates a new clinical record service
func NewClinicalRecordService(repo repository.ClinicalRecordRepositoryInterface, patientRepo repository.PatientRepositoryInterface, validator *validator.Validate) *ClinicalRecordService {
	return &ClinicalRecordService{
		repo:        repo,
		patientRepo: patientRepo,
		validator:   validator,
	}
}

// CreateClinicalRecordRequest represents the request to create a clinical entry
type CreateClinicalRecordRequest struct {
	PatientID       uuid.UUID                `json:"patient_id" validate:"required"`
	EntryType       models.ClinicalEntryType `json:"entry_type" validate:"required"`
	ReasonForAdmit  string                   `json:"reason_for_admission,omitempty"`
	InitialDiag     string                   `json:"initial_diagnosis,omitempty"`
	Vitals          models.VitalSigns        `json:"vitals,omitempty"`
	MedicalHistory  string                   `json:"medical_history,omitempty"`
	Allergies       string                   `json:"allergies,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
	EvolutionNotes  string                   `json:"evolution_notes,omitempty"`
	Professional    string                   `json:"professional,omitempty" validate:"max=100"`
	Status          *models.ClinicalStatus   `json:"status,omitempty"`
	RecordedAt      string                   `json:"recorded_at,omitempty"`
	DischargeDate   string                   `json:"discharge_date,omitempty"`
	DischargeReason string                   `json:"discharge_reason,omitempty" validate:"max=200"`
}

// UpdateClinicalRecordRequest represents the request to update a clinical entry
type UpdateClinicalRecordRequest struct {
	ReasonForAdmit  *string                `json:"reason_for_admission,omitempty"`
	InitialDiag     *string                `json:"initial_diagnosis,omitempty"`
	Vitals          *models.VitalSigns     `json:"vitals,omitempty"`
	MedicalHistory  *string                `json:"medical_history,omitempty"`
	Allergies       *string                `json:"allergies,omitempty"`
	Notes           *string                `json:"notes,omitempty"`
	EvolutionNotes  *string                `json:"evolution_notes,omitempty"`
	Professional    *string                `json:"professional,omitempty" validate:"omitempty,max=100"`
	Status          *models.ClinicalStatus `json:"status,omitempty"`
	DischargeDate   *string                `json:"discharge_date,omitempty"`
	DischargeReason *string                `json:"discharge_reason,omitempty" validate:"omitempty,max=200"`
}

// ClinicalRecordResponse represents the response for clinical record operations
type ClinicalRecordResponse struct {
	ID              uuid.UUID                `json:"id"`
	PatientID       uuid.UUID                `json:"patient_id"`
	PatientName     string                   `json:"patient_name"`
	PatientArea     string                   `json:"patient_area,omitempty"`
	PatientBed      string                   `json:"patient_bed,omitempty"`
	EntryType       models.ClinicalEntryType `json:"entry_type"`
	ReasonForAdmit  string                   `json:"reason_for_admission,omitempty"`
	InitialDiag     string                   `json:"initial_diagnosis,omitempty"`
	Vitals          models.VitalSigns        `json:"vitals"`
	MedicalHistory  string                   `json:"medical_history,omitempty"`
	Allergies       string                   `json:"allergies,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
	EvolutionNotes  string                   `json:"evolution_notes,omitempty"`
	Professional    string                   `json:"professional,omitempty"`
	Status          models.ClinicalStatus    `json:"status"`
	RecordedAt      string                   `json:"recorded_at"`
	DischargeDate   string                   `json:"discharge_date,omitempty"`
	DischargeReason string                   `json:"discharge_reason,omitempty"`
	CreatedAt       string                   `json:"created_at"`
	UpdatedAt       string                   `json:"updated_at"`
}

// ClinicalRecordListResponse represents a paginated list of clinical records
type ClinicalRecordListResponse struct {
	Records  []ClinicalRecordResponse `json:"records"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// Create validates and stores a new clinical entry, snapshotting the
// patient's display fields at write time.
func (s *ClinicalRecordService) Create(req *CreateClinicalRecordRequest) (*ClinicalRecordResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EntryType.IsValid() {
		return nil, apperrors.NewValidationError("entry_type", fmt.Sprintf("unknown entry type %q", req.EntryType))
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	patient, err := s.patientRepo.GetByID(req.PatientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	record := &models.ClinicalRecord{
		PatientID:      patient.ID,
		PatientName:    patient.FullName,
		PatientArea:    patient.Area,
		PatientBed:     patient.Bed,
		EntryType:      req.EntryType,
		ReasonForAdmit: req.ReasonForAdmit,
		InitialDiag:    req.InitialDiag,
		Vitals:         req.Vitals,
		MedicalHistory: req.MedicalHistory,
		Allergies:      req.Allergies,
		Notes:          req.Notes,
		EvolutionNotes: req.EvolutionNotes,
		Professional:   req.Professional,
		Status:         models.ClinicalStatusStable,
		RecordedAt:     time.Now(),
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.RecordedAt != "" {
		at, err := time.Parse(time.RFC3339, req.RecordedAt)
		if err != nil {
			return nil, apperrors.NewValidationError("recorded_at", "must be an RFC3339 timestamp")
		}
		record.RecordedAt = at
	}
	if req.DischargeDate != "" {
		day, err := time.Parse(models.DateLayout, req.DischargeDate)
		if err != nil {
			return nil, apperrors.NewValidationError("discharge_date", "must be in YYYY-MM-DD format")
		}
		record.DischargeDate = &day
	}
	record.DischargeReason = req.DischargeReason

	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create clinical record: %w", err)
	}

	return toClinicalRecordResponse(record), nil
}

// GetByID retrieves a clinical record by ID
func (s *ClinicalRecordService) GetByID(id uuid.UUID) (*ClinicalRecordResponse, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClinicalRecordNotFound
		}
		return nil, fmt.Errorf("failed to get clinical record: %w", err)
	}
	return toClinicalRecordResponse(record), nil
}

// GetAll retrieves clinical records with pagination, optionally filtered by
// entry type
func (s *ClinicalRecordService) GetAll(entryType models.ClinicalEntryType, page, pageSize int) (*ClinicalRecordListResponse, error) {
	if entryType != "" && !entryType.IsValid() {
		return nil, apperrors.NewValidationError("entry_type", fmt.Sprintf("unknown entry type %q", entryType))
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	records, total, err := s.repo.GetAll(entryType, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinical records: %w", err)
	}

	responses := make([]ClinicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *toClinicalRecordResponse(&records[i])
	}

	return &ClinicalRecordListResponse{
		Records:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByPatientID retrieves one patient's clinical history, newest first
func (s *ClinicalRecordService) GetByPatientID(patientID uuid.UUID, page, pageSize int) (*ClinicalRecordListResponse, error) {
	if _, err := s.patientRepo.GetByID(patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	records, total, err := s.repo.GetByPatientID(patientID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinical records: %w", err)
	}

	responses := make([]ClinicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *toClinicalRecordResponse(&records[i])
	}

	return &ClinicalRecordListResponse{
		Records:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a clinical entry. The patient snapshot
// and entry type are immutable; write a new entry for a new event.
func (s *ClinicalRecordService) Update(id uuid.UUID, req *UpdateClinicalRecordRequest) (*ClinicalRecordResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClinicalRecordNotFound
		}
		return nil, fmt.Errorf("failed to get clinical record: %w", err)
	}

	if req.ReasonForAdmit != nil {
		record.ReasonForAdmit = *req.ReasonForAdmit
	}
	if req.InitialDiag != nil {
		record.InitialDiag = *req.InitialDiag
	}
	if req.Vitals != nil {
		record.Vitals = *req.Vitals
	}
	if req.MedicalHistory != nil {
		record.MedicalHistory = *req.MedicalHistory
	}
	if req.Allergies != nil {
		record.Allergies = *req.Allergies
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if req.EvolutionNotes != nil {
		record.EvolutionNotes = *req.EvolutionNotes
	}
	if req.Professional != nil {
		record.Professional = *req.Professional
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		record.Status = *req.Status
	}
	if req.DischargeDate != nil {
		day, err := time.Parse(models.DateLayout, *req.DischargeDate)
		if err != nil {
			return nil, apperrors.NewValidationError("discharge_date", "must be in YYYY-MM-DD format")
		}
		record.DischargeDate = &day
	}
	if req.DischargeReason != nil {
		record.DischargeReason = *req.DischargeReason
	}

	if err := s.repo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update clinical record: %w", err)
	}

	return toClinicalRecordResponse(record), nil
}

// Delete removes a clinical entry
func (s *ClinicalRecordService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClinicalRecordNotFound
		}
		return fmt.Errorf("failed to get clinical record: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete clinical record: %w", err)
	}
	return nil
}

// toClinicalRecordResponse converts a ClinicalRecord model to API response
func toClinicalRecordResponse(r *models.ClinicalRecord) *ClinicalRecordResponse {
	resp := &ClinicalRecordResponse{
		ID:              r.ID,
		PatientID:       r.PatientID,
		PatientName:     r.PatientName,
		PatientArea:     r.PatientArea,
		PatientBed:      r.PatientBed,
		EntryType:       r.EntryType,
		ReasonForAdmit:  r.ReasonForAdmit,
		InitialDiag:     r.InitialDiag,
		Vitals:          r.Vitals,
		MedicalHistory:  r.MedicalHistory,
		Allergies:       r.Allergies,
		Notes:           r.Notes,
		EvolutionNotes:  r.EvolutionNotes,
		Professional:    r.Professional,
		Status:          r.Status,
		RecordedAt:      r.RecordedAt.Format(time.RFC3339),
		DischargeReason: r.DischargeReason,
		CreatedAt:       r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:       r.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if r.DischargeDate != nil {
		resp.DischargeDate = r.DischargeDate.Format(models.DateLayout)
	}
	return resp
}
