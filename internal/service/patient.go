package service

import (
	"errors"
	"fmt"

	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"
	"hospital-staff-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientService handles business logic for patient records
type PatientService struct {
	repo      repository.PatientRepositoryInterface
	validator *validator.Validate
}

// Ensure PatientService implements PatientServiceInterface
var _ PatientServiceInterface = (*PatientService)(nil)

// NewPatientService creates a new patient service
func NewPatientService(repo repository.PatientRepositoryInterface, validator *validator.Validate) *PatientService {
	return &PatientService{repo: repo, validator: validator}
}

// CreatePatientRequest represents the request to create a patient
type CreatePatientRequest struct {
	FullName      string                `json:"full_name" validate:"required,min=1,max=100"`
	CURP          string                `json:"curp,omitempty" validate:"omitempty,len=18"`
	Area          string                `json:"area" validate:"required"`
	Bed           string                `json:"bed,omitempty" validate:"max=20"`
	Sex           string                `json:"sex,omitempty" validate:"max=20"`
	Status        *models.PatientStatus `json:"status,omitempty"`
	AssignedNurse string                `json:"assigned_nurse,omitempty" validate:"max=100"`
}

// UpdatePatientRequest represents the request to update a patient
type UpdatePatientRequest struct {
	FullName      *string               `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	CURP          *string               `json:"curp,omitempty" validate:"omitempty,len=18"`
	Area          *string               `json:"area,omitempty"`
	Bed           *string               `json:"bed,omitempty" validate:"omitempty,max=20"`
	Sex           *string               `json:"sex,omitempty" validate:"omitempty,max=20"`
	Status        *models.PatientStatus `json:"status,omitempty"`
	AssignedNurse *string               `json:"assigned_nurse,omitempty" validate:"omitempty,max=100"`
}

// PatientResponse represents the response for patient operations
type PatientResponse struct {
	ID            uuid.UUID            `json:"id"`
	FullName      string               `json:"full_name"`
	CURP          string               `json:"curp,omitempty"`
	Area          string               `json:"area"`
	Bed           string               `json:"bed,omitempty"`
	Sex           string               `json:"sex,omitempty"`
	Status        models.PatientStatus `json:"status"`
	AssignedNurse string               `json:"assigned_nurse,omitempty"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}

// PatientListResponse represents a paginated list of patients
type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create validates and stores a new patient
func (s *PatientService) Create(req *CreatePatientRequest) (*PatientResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !models.IsKnownArea(req.Area) {
		return nil, apperrors.NewValidationError("area", fmt.Sprintf("unknown area %q", req.Area))
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	patient := &models.Patient{
		FullName:      req.FullName,
		CURP:          req.CURP,
		Area:          req.Area,
		Bed:           req.Bed,
		Sex:           req.Sex,
		Status:        models.PatientStatusActive,
		AssignedNurse: req.AssignedNurse,
	}
	if req.Status != nil {
		patient.Status = *req.Status
	}

	if err := s.repo.Create(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	return toPatientResponse(patient), nil
}

// GetByID retrieves a patient by ID
func (s *PatientService) GetByID(id uuid.UUID) (*PatientResponse, error) {
	patient, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return toPatientResponse(patient), nil
}

// GetAll retrieves patients with pagination, optionally filtered by a search
// query, status or area
func (s *PatientService) GetAll(q string, status models.PatientStatus, area string, page, pageSize int) (*PatientListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		patients []models.Patient
		total    int64
		err      error
	)
	if q != "" || status != "" || area != "" {
		patients, total, err = s.repo.Search(q, status, area, pageSize, offset)
	} else {
		patients, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patients: %w", err)
	}

	responses := make([]PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *toPatientResponse(&patients[i])
	}

	return &PatientListResponse{
		Patients: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a patient
func (s *PatientService) Update(id uuid.UUID, req *UpdatePatientRequest) (*PatientResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	patient, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if req.FullName != nil {
		patient.FullName = *req.FullName
	}
	if req.CURP != nil {
		patient.CURP = *req.CURP
	}
	if req.Area != nil {
		if !models.IsKnownArea(*req.Area) {
			return nil, apperrors.NewValidationError("area", fmt.Sprintf("unknown area %q", *req.Area))
		}
		patient.Area = *req.Area
	}
	if req.Bed != nil {
		patient.Bed = *req.Bed
	}
	if req.Sex != nil {
		patient.Sex = *req.Sex
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		patient.Status = *req.Status
	}
	if req.AssignedNurse != nil {
		patient.AssignedNurse = *req.AssignedNurse
	}

	if err := s.repo.Update(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	return toPatientResponse(patient), nil
}

// Delete removes a patient record
func (s *PatientService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPatientNotFound
		}
		return fmt.Errorf("failed to get patient: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

// toPatientResponse converts a Patient model to API response
func toPatientResponse(p *models.Patient) *PatientResponse {
	return &PatientResponse{
		ID:            p.ID,
		FullName:      p.FullName,
		CURP:          p.CURP,
		Area:          p.Area,
		Bed:           p.Bed,
		Sex:           p.Sex,
		Status:        p.Status,
		AssignedNurse: p.AssignedNurse,
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
