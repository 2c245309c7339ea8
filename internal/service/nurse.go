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

// NurseService handles business logic for the nursing staff directory
type NurseService struct {
	repo      repository.NurseRepositoryInterface
	validator *validator.Validate
}

// Ensure NurseService implements NurseServiceInterface
var _ NurseServiceInterface = (*NurseService)(nil)

// NewNurseService creates a new nurse service
func NewNurseService(repo repository.NurseRepositoryInterface, validator *validator.Validate) *NurseService {
	return &NurseService{repo: repo, validator: validator}
}

// CreateNurseRequest represents the request to create a nurse
type CreateNurseRequest struct {
	FullName       string              `json:"full_name" validate:"required,min=1,max=100"`
	CURP           string              `json:"curp" validate:"required,len=18"`
	Area           string              `json:"area" validate:"required"`
	Position       string              `json:"position,omitempty" validate:"max=100"`
	Specialty      string              `json:"specialty,omitempty" validate:"max=100"`
	EmployeeNumber string              `json:"employee_number,omitempty" validate:"max=20"`
	Phone          string              `json:"phone,omitempty" validate:"max=20"`
	Email          string              `json:"email,omitempty" validate:"omitempty,email"`
	HireDate       string              `json:"hire_date,omitempty"`
	Status         *models.NurseStatus `json:"status,omitempty"`
	Available      *bool               `json:"available,omitempty"`
}

// UpdateNurseRequest represents the request to update a nurse
type UpdateNurseRequest struct {
	FullName       *string             `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	Area           *string             `json:"area,omitempty"`
	Position       *string             `json:"position,omitempty" validate:"omitempty,max=100"`
	Specialty      *string             `json:"specialty,omitempty" validate:"omitempty,max=100"`
	EmployeeNumber *string             `json:"employee_number,omitempty" validate:"omitempty,max=20"`
	Phone          *string             `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email          *string             `json:"email,omitempty" validate:"omitempty,email"`
	HireDate       *string             `json:"hire_date,omitempty"`
	Status         *models.NurseStatus `json:"status,omitempty"`
	Available      *bool               `json:"available,omitempty"`
}

// NurseResponse represents the response for nurse operations
type NurseResponse struct {
	ID             uuid.UUID          `json:"id"`
	FullName       string             `json:"full_name"`
	CURP           string             `json:"curp"`
	Area           string             `json:"area"`
	Position       string             `json:"position,omitempty"`
	Specialty      string             `json:"specialty,omitempty"`
	EmployeeNumber string             `json:"employee_number,omitempty"`
	Phone          string             `json:"phone,omitempty"`
	Email          string             `json:"email,omitempty"`
	HireDate       string             `json:"hire_date,omitempty"`
	Status         models.NurseStatus `json:"status"`
	Available      bool               `json:"available"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

// NurseListResponse represents a paginated list of nurses
type NurseListResponse struct {
	Nurses   []NurseResponse `json:"nurses"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create validates and stores a new nurse. CURP is the national identity
// key and must be unique across the directory.
func (s *NurseService) Create(req *CreateNurseRequest) (*NurseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !models.IsKnownArea(req.Area) {
		return nil, apperrors.NewValidationError("area", fmt.Sprintf("unknown area %q", req.Area))
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.repo.GetByCURP(req.CURP); err == nil {
		return nil, apperrors.ErrNurseExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check CURP: %w", err)
	}

	nurse := &models.Nurse{
		FullName:       req.FullName,
		CURP:           req.CURP,
		Area:           req.Area,
		Position:       req.Position,
		Specialty:      req.Specialty,
		EmployeeNumber: req.EmployeeNumber,
		Phone:          req.Phone,
		Email:          req.Email,
		Status:         models.NurseStatusActive,
		Available:      true,
	}
	if req.Status != nil {
		nurse.Status = *req.Status
	}
	if req.Available != nil {
		nurse.Available = *req.Available
	}
	if req.HireDate != "" {
		day, err := time.Parse(models.DateLayout, req.HireDate)
		if err != nil {
			return nil, apperrors.NewValidationError("hire_date", "must be in YYYY-MM-DD format")
		}
		nurse.HireDate = &day
	}

	if err := s.repo.Create(nurse); err != nil {
		return nil, fmt.Errorf("failed to create nurse: %w", err)
	}

	return toNurseResponse(nurse), nil
}

// GetByID retrieves a nurse by ID
func (s *NurseService) GetByID(id uuid.UUID) (*NurseResponse, error) {
	nurse, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNurseNotFound
		}
		return nil, fmt.Errorf("failed to get nurse: %w", err)
	}
	return toNurseResponse(nurse), nil
}

// GetAll retrieves nurses with pagination, optionally filtered by a search
// query or area
func (s *NurseService) GetAll(q, area string, page, pageSize int) (*NurseListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		nurses []models.Nurse
		total  int64
		err    error
	)
	switch {
	case q != "":
		nurses, total, err = s.repo.Search(q, pageSize, offset)
	case area != "":
		nurses, total, err = s.repo.GetByArea(area, pageSize, offset)
	default:
		nurses, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nurses: %w", err)
	}

	responses := make([]NurseResponse, len(nurses))
	for i := range nurses {
		responses[i] = *toNurseResponse(&nurses[i])
	}

	return &NurseListResponse{
		Nurses:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetActive lists every active nurse, name-ordered. This is the selectable
// pool offered when creating an assignment.
func (s *NurseService) GetActive() ([]NurseResponse, error) {
	nurses, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active nurses: %w", err)
	}

	responses := make([]NurseResponse, len(nurses))
	for i := range nurses {
		responses[i] = *toNurseResponse(&nurses[i])
	}
	return responses, nil
}

// Update applies a partial update to a nurse. CURP is immutable once set.
func (s *NurseService) Update(id uuid.UUID, req *UpdateNurseRequest) (*NurseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	nurse, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNurseNotFound
		}
		return nil, fmt.Errorf("failed to get nurse: %w", err)
	}

	if req.FullName != nil {
		nurse.FullName = *req.FullName
	}
	if req.Area != nil {
		if !models.IsKnownArea(*req.Area) {
			return nil, apperrors.NewValidationError("area", fmt.Sprintf("unknown area %q", *req.Area))
		}
		nurse.Area = *req.Area
	}
	if req.Position != nil {
		nurse.Position = *req.Position
	}
	if req.Specialty != nil {
		nurse.Specialty = *req.Specialty
	}
	if req.EmployeeNumber != nil {
		nurse.EmployeeNumber = *req.EmployeeNumber
	}
	if req.Phone != nil {
		nurse.Phone = *req.Phone
	}
	if req.Email != nil {
		nurse.Email = *req.Email
	}
	if req.HireDate != nil {
		day, err := time.Parse(models.DateLayout, *req.HireDate)
		if err != nil {
			return nil, apperrors.NewValidationError("hire_date", "must be in YYYY-MM-DD format")
		}
		nurse.HireDate = &day
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		nurse.Status = *req.Status
	}
	if req.Available != nil {
		nurse.Available = *req.Available
	}

	if err := s.repo.Update(nurse); err != nil {
		return nil, fmt.Errorf("failed to update nurse: %w", err)
	}

	return toNurseResponse(nurse), nil
}

// Delete removes a nurse from the directory
func (s *NurseService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNurseNotFound
		}
		return fmt.Errorf("failed to get nurse: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete nurse: %w", err)
	}
	return nil
}

// toNurseResponse converts a Nurse model to API response
func toNurseResponse(n *models.Nurse) *NurseResponse {
	resp := &NurseResponse{
		ID:             n.ID,
		FullName:       n.FullName,
		CURP:           n.CURP,
		Area:           n.Area,
		Position:       n.Position,
		Specialty:      n.Specialty,
		EmployeeNumber: n.EmployeeNumber,
		Phone:          n.Phone,
		Email:          n.Email,
		Status:         n.Status,
		Available:      n.Available,
		CreatedAt:      n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      n.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if n.HireDate != nil {
		resp.HireDate = n.HireDate.Format(models.DateLayout)
	}
	return resp
}
