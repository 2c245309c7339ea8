package service

import (
	"errors"
	"fmt"
	"sync"

	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"
	"hospital-staff-backend/internal/logger"
	"hospital-staff-backend/internal/repository"
	"hospital-staff-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// catalogPageSize bounds the shift set loaded for overlap checks. The shift
// catalog is a small, hand-maintained collection.
const catalogPageSize = 1000

// ShiftService handles business logic for shift definitions
type ShiftService struct {
	repo           repository.ShiftRepositoryInterface
	assignmentRepo repository.AssignmentRepositoryInterface
	validator      *validator.Validate

	// Overlap and delete checks are read-modify-write over the whole
	// catalog, so writers must not interleave.
	mu sync.Mutex
}

// Ensure ShiftService implements ShiftServiceInterface
var _ ShiftServiceInterface = (*ShiftService)(nil)

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftRepositoryInterface, assignmentRepo repository.AssignmentRepositoryInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repo:           repo,
		assignmentRepo: assignmentRepo,
		validator:      validator,
	}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	Name        string             `json:"name" validate:"required,min=1,max=100"`
	Kind        *models.ShiftKind  `json:"kind,omitempty"`
	StartTime   string             `json:"start_time" validate:"required"`
	EndTime     string             `json:"end_time" validate:"required"`
	Status      *models.ShiftStatus `json:"status,omitempty"`
	Area        string             `json:"area,omitempty"`
	Description string             `json:"description,omitempty" validate:"max=200"`
	Weekdays    []string           `json:"weekdays,omitempty"`
	// Confirm commits the shift through an overlap warning.
	Confirm bool `json:"confirm,omitempty"`
}

// UpdateShiftRequest represents the request to update a shift
type UpdateShiftRequest struct {
	Name        *string             `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Kind        *models.ShiftKind   `json:"kind,omitempty"`
	StartTime   *string             `json:"start_time,omitempty"`
	EndTime     *string             `json:"end_time,omitempty"`
	Status      *models.ShiftStatus `json:"status,omitempty"`
	Area        *string             `json:"area,omitempty"`
	Description *string             `json:"description,omitempty" validate:"omitempty,max=200"`
	Weekdays    *[]string           `json:"weekdays,omitempty"`
	Confirm     bool                `json:"confirm,omitempty"`
}

// ShiftResponse represents the response for shift operations
type ShiftResponse struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Kind           models.ShiftKind   `json:"kind"`
	StartTime      string             `json:"start_time"`
	EndTime        string             `json:"end_time"`
	Status         models.ShiftStatus `json:"status"`
	Area           string             `json:"area,omitempty"`
	Description    string             `json:"description,omitempty"`
	Weekdays       []string           `json:"weekdays,omitempty"`
	HasAssignments bool               `json:"has_assignments"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

// ShiftListResponse represents a paginated list of shifts
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// validateShiftFields checks the catalog-level field constraints shared by
// create and update.
func (s *ShiftService) validateShiftFields(startTime, endTime, area string, weekdays []string) error {
	if _, err := scheduling.ParseMinutes(startTime); err != nil {
		return apperrors.NewValidationError("start_time", "must be in HH:MM 24h format")
	}
	if _, err := scheduling.ParseMinutes(endTime); err != nil {
		return apperrors.NewValidationError("end_time", "must be in HH:MM 24h format")
	}
	if area != "" && !models.IsKnownArea(area) {
		return apperrors.NewValidationError("area", fmt.Sprintf("unknown area %q", area))
	}
	for _, d := range weekdays {
		known := false
		for _, w := range models.Weekdays {
			if d == w {
				known = true
				break
			}
		}
		if !known {
			return apperrors.NewValidationError("weekdays", fmt.Sprintf("unknown weekday %q", d))
		}
	}
	return nil
}

// resolveKind applies the classification rule: an explicitly forced special
// kind is respected, everything else is re-derived from the times whenever
// they change. Re-deriving discards manual overrides of the other kinds;
// that mirrors the product behavior of the shift form.
func resolveKind(requested *models.ShiftKind, startTime, endTime string) (models.ShiftKind, error) {
	if requested != nil && *requested == models.ShiftKindSpecial {
		return models.ShiftKindSpecial, nil
	}
	return scheduling.ClassifyKind(startTime, endTime)
}

// Create validates, classifies and stores a new shift. An overlap with an
// existing shift is advisory: the request is rejected with the conflict
// details unless Confirm is set.
func (s *ShiftService) Create(req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.validateShiftFields(req.StartTime, req.EndTime, req.Area, req.Weekdays); err != nil {
		return nil, err
	}
	if req.Kind != nil && !req.Kind.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	kind, err := resolveKind(req.Kind, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	status := models.ShiftStatusActive
	if req.Status != nil {
		status = *req.Status
	}

	shift := &models.Shift{
		Name:        req.Name,
		Kind:        kind,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      status,
		Area:        req.Area,
		Description: req.Description,
		Weekdays:    models.StringList(req.Weekdays),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, _, err := s.repo.GetAll(catalogPageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift catalog: %w", err)
	}

	decision := scheduling.CheckShift(shift, existing, uuid.Nil)
	switch decision.Outcome {
	case scheduling.OutcomeReject:
		return nil, decision.Err
	case scheduling.OutcomeWarn:
		if !req.Confirm {
			return nil, overlapConflict(decision.Conflicting)
		}
		logger.New().WithFields(map[string]interface{}{
			"shift_name":     shift.Name,
			"conflicts_with": decision.Conflicting.Name,
		}).Warn("shift created over a confirmed overlap")
	}

	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return s.toResponse(shift)
}

// GetByID retrieves a shift by ID
func (s *ShiftService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return s.toResponse(shift)
}

// GetAll retrieves shifts with pagination, optionally filtered by status or area
func (s *ShiftService) GetAll(status models.ShiftStatus, area string, page, pageSize int) (*ShiftListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		shifts []models.Shift
		total  int64
		err    error
	)
	switch {
	case status != "":
		shifts, total, err = s.repo.GetByStatus(status, pageSize, offset)
	case area != "":
		shifts, total, err = s.repo.GetByArea(area, pageSize, offset)
	default:
		shifts, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		resp, err := s.toResponse(&shifts[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *resp
	}

	return &ShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a shift, re-running classification and
// overlap detection against the rest of the catalog.
func (s *ShiftService) Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	timesChanged := false
	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
		timesChanged = true
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
		timesChanged = true
	}
	if req.Area != nil {
		shift.Area = *req.Area
	}
	if req.Description != nil {
		shift.Description = *req.Description
	}
	if req.Weekdays != nil {
		shift.Weekdays = models.StringList(*req.Weekdays)
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		shift.Status = *req.Status
	}

	if err := s.validateShiftFields(shift.StartTime, shift.EndTime, shift.Area, shift.Weekdays); err != nil {
		return nil, err
	}

	// Kind: an explicit special wins; otherwise a time change re-derives
	// the kind, discarding any previous manual override.
	switch {
	case req.Kind != nil && *req.Kind == models.ShiftKindSpecial:
		shift.Kind = models.ShiftKindSpecial
	case req.Kind != nil && !req.Kind.IsValid():
		return nil, apperrors.ErrInvalidStatus
	case timesChanged:
		kind, err := scheduling.ClassifyKind(shift.StartTime, shift.EndTime)
		if err != nil {
			return nil, err
		}
		shift.Kind = kind
	case req.Kind != nil:
		shift.Kind = *req.Kind
	}

	existing, _, err := s.repo.GetAll(catalogPageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift catalog: %w", err)
	}

	decision := scheduling.CheckShift(shift, existing, shift.ID)
	switch decision.Outcome {
	case scheduling.OutcomeReject:
		return nil, decision.Err
	case scheduling.OutcomeWarn:
		if !req.Confirm {
			return nil, overlapConflict(decision.Conflicting)
		}
		logger.New().WithFields(map[string]interface{}{
			"shift_name":     shift.Name,
			"conflicts_with": decision.Conflicting.Name,
		}).Warn("shift updated over a confirmed overlap")
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	return s.toResponse(shift)
}

// Duplicate copies a shift into a new definition with a fresh id and a copy
// marker on the name.
func (s *ShiftService) Duplicate(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	dup := scheduling.Duplicate(shift)
	if err := s.repo.Create(&dup); err != nil {
		return nil, fmt.Errorf("failed to duplicate shift: %w", err)
	}

	return s.toResponse(&dup)
}

// ToggleStatus flips a shift between active and inactive
func (s *ShiftService) ToggleStatus(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if shift.Status == models.ShiftStatusActive {
		shift.Status = models.ShiftStatusInactive
	} else {
		shift.Status = models.ShiftStatusActive
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	return s.toResponse(shift)
}

// Delete removes a shift. Shifts still referenced by active assignments are
// protected; release those assignments first.
func (s *ShiftService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	count, err := s.assignmentRepo.CountActiveByShiftID(shift.ID)
	if err != nil {
		return fmt.Errorf("failed to count assignments: %w", err)
	}
	if !scheduling.CanDeleteShift(count > 0) {
		return apperrors.NewConflictError(apperrors.ErrShiftHasAssignments, map[string]string{
			"shift_name":         shift.Name,
			"active_assignments": fmt.Sprintf("%d", count),
		})
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// overlapConflict wraps an overlap warning with the conflicting shift's details.
func overlapConflict(conflicting *models.Shift) error {
	details := map[string]string{}
	if conflicting != nil {
		details["shift_id"] = conflicting.ID.String()
		details["shift_name"] = conflicting.Name
		details["start_time"] = conflicting.StartTime
		details["end_time"] = conflicting.EndTime
		if conflicting.Area != "" {
			details["area"] = conflicting.Area
		}
	}
	return apperrors.NewConflictError(apperrors.ErrShiftOverlap, details)
}

// toResponse converts a Shift model to API response, deriving the
// assignment flag from the ledger.
func (s *ShiftService) toResponse(shift *models.Shift) (*ShiftResponse, error) {
	count, err := s.assignmentRepo.CountActiveByShiftID(shift.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}

	return &ShiftResponse{
		ID:             shift.ID,
		Name:           shift.Name,
		Kind:           shift.Kind,
		StartTime:      shift.StartTime,
		EndTime:        shift.EndTime,
		Status:         shift.Status,
		Area:           shift.Area,
		Description:    shift.Description,
		Weekdays:       shift.Weekdays,
		HasAssignments: count > 0,
		CreatedAt:      shift.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      shift.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
