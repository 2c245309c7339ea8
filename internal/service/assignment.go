package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"
	"hospital-staff-backend/internal/logger"
	"hospital-staff-backend/internal/repository"
	"hospital-staff-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService handles business logic for nurse-shift assignments
type AssignmentService struct {
	repo      repository.AssignmentRepositoryInterface
	shiftRepo repository.ShiftRepositoryInterface
	nurseRepo repository.NurseRepositoryInterface
	validator *validator.Validate

	// Conflict detection reads the nurse's existing assignments before
	// writing, so concurrent writers must be serialized.
	mu sync.Mutex
}

// Ensure AssignmentService implements AssignmentServiceInterface
var _ AssignmentServiceInterface = (*AssignmentService)(nil)

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repo repository.AssignmentRepositoryInterface, shiftRepo repository.ShiftRepositoryInterface, nurseRepo repository.NurseRepositoryInterface, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		repo:      repo,
		shiftRepo: shiftRepo,
		nurseRepo: nurseRepo,
		validator: validator,
	}
}

// CreateAssignmentRequest represents the request to create an assignment
type CreateAssignmentRequest struct {
	NurseID uuid.UUID `json:"nurse_id" validate:"required"`
	ShiftID uuid.UUID `json:"shift_id" validate:"required"`
	Area    string    `json:"area" validate:"required"`
	Date    string    `json:"date" validate:"required"`
}

// UpdateAssignmentRequest represents the request to update an assignment
type UpdateAssignmentRequest struct {
	NurseID *uuid.UUID `json:"nurse_id,omitempty"`
	ShiftID *uuid.UUID `json:"shift_id,omitempty"`
	Area    *string    `json:"area,omitempty"`
	Date    *string    `json:"date,omitempty"`
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID        uuid.UUID               `json:"id"`
	NurseID   uuid.UUID               `json:"nurse_id"`
	NurseName string                  `json:"nurse_name"`
	ShiftID   uuid.UUID               `json:"shift_id"`
	ShiftName string                  `json:"shift_name"`
	Area      string                  `json:"area"`
	Date      string                  `json:"date"`
	Status    models.AssignmentStatus `json:"status"`
	EndDate   string                  `json:"end_date,omitempty"`
	StartTime string                  `json:"start_time,omitempty"`
	EndTime   string                  `json:"end_time,omitempty"`
	CreatedAt string                  `json:"created_at"`
	UpdatedAt string                  `json:"updated_at"`
}

// AssignmentListResponse represents a paginated list of assignments
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// AllowedAreasResponse lists the areas an assignment may target for a shift
type AllowedAreasResponse struct {
	ShiftID uuid.UUID `json:"shift_id"`
	Areas   []string  `json:"areas"`
}

func parseDate(value string) (time.Time, error) {
	day, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
	}
	return day, nil
}

// Create validates and stores a new assignment. The nurse must be active,
// the shift reference must resolve against the active shift catalog, the
// chosen area must be allowed for the shift, and the nurse must not already
// hold an active assignment on the same date.
func (s *AssignmentService) Create(req *CreateAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if !models.IsKnownArea(req.Area) {
		return nil, apperrors.NewValidationError("area", fmt.Sprintf("unknown area %q", req.Area))
	}

	nurse, err := s.nurseRepo.GetByID(req.NurseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNurseNotFound
		}
		return nil, fmt.Errorf("failed to get nurse: %w", err)
	}
	if nurse.Status != models.NurseStatusActive {
		return nil, apperrors.ErrNurseNotActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	activeShifts, err := s.shiftRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load active shifts: %w", err)
	}
	snapshot, err := scheduling.ResolveShiftDetails(req.ShiftID, activeShifts)
	if err != nil {
		return nil, err
	}
	if snapshot.Area != "" && snapshot.Area != req.Area {
		return nil, apperrors.NewValidationError("area", fmt.Sprintf("shift is restricted to area %q", snapshot.Area))
	}

	assignment := &models.Assignment{
		NurseID:   nurse.ID,
		NurseName: nurse.FullName,
		ShiftID:   req.ShiftID,
		ShiftName: snapshot.ShiftName,
		Area:      req.Area,
		Date:      day,
		Status:    models.AssignmentStatusActive,
		StartTime: snapshot.StartTime,
		EndTime:   snapshot.EndTime,
	}

	existing, err := s.repo.GetByNurseID(nurse.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load nurse assignments: %w", err)
	}
	if conflict := scheduling.FindConflict(assignment, existing, uuid.Nil); conflict != nil {
		return nil, duplicateAssignmentConflict(conflict)
	}

	if err := s.repo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return toAssignmentResponse(assignment), nil
}

// GetByID retrieves an assignment by ID
func (s *AssignmentService) GetByID(id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return toAssignmentResponse(assignment), nil
}

// GetAll retrieves assignments with pagination, optionally filtered by
// status or date
func (s *AssignmentService) GetAll(status models.AssignmentStatus, date string, page, pageSize int) (*AssignmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		assignments []models.Assignment
		total       int64
		err         error
	)
	switch {
	case date != "":
		var day time.Time
		day, err = parseDate(date)
		if err != nil {
			return nil, err
		}
		assignments, total, err = s.repo.GetByDate(day, pageSize, offset)
	case status != "":
		assignments, total, err = s.repo.GetByStatus(status, pageSize, offset)
	default:
		assignments, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *toAssignmentResponse(&assignments[i])
	}

	return &AssignmentListResponse{
		Assignments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// GetByNurseID retrieves all assignments of one nurse
func (s *AssignmentService) GetByNurseID(nurseID uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.nurseRepo.GetByID(nurseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNurseNotFound
		}
		return nil, fmt.Errorf("failed to get nurse: %w", err)
	}

	assignments, err := s.repo.GetByNurseID(nurseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *toAssignmentResponse(&assignments[i])
	}
	return responses, nil
}

// GetAllowedAreas returns the areas an assignment may target for a shift
func (s *AssignmentService) GetAllowedAreas(shiftID uuid.UUID) (*AllowedAreasResponse, error) {
	shift, err := s.shiftRepo.GetByID(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return &AllowedAreasResponse{
		ShiftID: shift.ID,
		Areas:   scheduling.AllowedAreas(shift),
	}, nil
}

// Update applies a partial update to an assignment. Changing the shift
// re-snapshots its details from the active catalog; keeping a shift that has
// since left the active catalog is rejected as a stale reference.
func (s *AssignmentService) Update(id uuid.UUID, req *UpdateAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	if req.NurseID != nil && *req.NurseID != assignment.NurseID {
		nurse, err := s.nurseRepo.GetByID(*req.NurseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNurseNotFound
			}
			return nil, fmt.Errorf("failed to get nurse: %w", err)
		}
		if nurse.Status != models.NurseStatusActive {
			return nil, apperrors.ErrNurseNotActive
		}
		assignment.NurseID = nurse.ID
		assignment.NurseName = nurse.FullName
	}

	if req.Date != nil {
		day, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		assignment.Date = day
	}
	if req.Area != nil {
		if !models.IsKnownArea(*req.Area) {
			return nil, apperrors.NewValidationError("area", fmt.Sprintf("unknown area %q", *req.Area))
		}
		assignment.Area = *req.Area
	}
	if req.ShiftID != nil {
		assignment.ShiftID = *req.ShiftID
	}

	activeShifts, err := s.shiftRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load active shifts: %w", err)
	}
	snapshot, err := scheduling.ResolveShiftDetails(assignment.ShiftID, activeShifts)
	if err != nil {
		return nil, err
	}
	assignment.ShiftName = snapshot.ShiftName
	assignment.StartTime = snapshot.StartTime
	assignment.EndTime = snapshot.EndTime
	if snapshot.Area != "" && snapshot.Area != assignment.Area {
		return nil, apperrors.NewValidationError("area", fmt.Sprintf("shift is restricted to area %q", snapshot.Area))
	}

	existing, err := s.repo.GetByNurseID(assignment.NurseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load nurse assignments: %w", err)
	}
	if conflict := scheduling.FindConflict(assignment, existing, assignment.ID); conflict != nil {
		return nil, duplicateAssignmentConflict(conflict)
	}

	if err := s.repo.Update(assignment); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	return toAssignmentResponse(assignment), nil
}

// Release transitions an active assignment to finished, stamping today as
// its end date. Releasing an already finished assignment returns the record
// unchanged together with an informational state error.
func (s *AssignmentService) Release(id uuid.UUID) (*AssignmentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := scheduling.Release(assignment, time.Now()); err != nil {
		return toAssignmentResponse(assignment), err
	}

	if err := s.repo.Update(assignment); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"nurse_name": assignment.NurseName,
		"shift_name": assignment.ShiftName,
		"end_date":   assignment.EndDate.Format(models.DateLayout),
	}).Info("assignment released")

	return toAssignmentResponse(assignment), nil
}

// Delete removes an assignment. Only finished assignments may be deleted;
// active ones must be released first.
func (s *AssignmentService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	if !scheduling.CanDeleteAssignment(assignment) {
		return apperrors.NewConflictError(apperrors.ErrAssignmentStillActive, map[string]string{
			"nurse_name": assignment.NurseName,
			"shift_name": assignment.ShiftName,
			"date":       assignment.Date.Format(models.DateLayout),
		})
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// duplicateAssignmentConflict wraps the one-active-assignment-per-date
// violation with the blocking assignment's details.
func duplicateAssignmentConflict(conflict *models.Assignment) error {
	return apperrors.NewConflictError(apperrors.ErrDuplicateAssignment, map[string]string{
		"assignment_id": conflict.ID.String(),
		"nurse_name":    conflict.NurseName,
		"shift_name":    conflict.ShiftName,
		"area":          conflict.Area,
		"date":          conflict.Date.Format(models.DateLayout),
	})
}

// toAssignmentResponse converts an Assignment model to API response
func toAssignmentResponse(a *models.Assignment) *AssignmentResponse {
	resp := &AssignmentResponse{
		ID:        a.ID,
		NurseID:   a.NurseID,
		NurseName: a.NurseName,
		ShiftID:   a.ShiftID,
		ShiftName: a.ShiftName,
		Area:      a.Area,
		Date:      a.Date.Format(models.DateLayout),
		Status:    a.Status,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: a.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if a.EndDate != nil {
		resp.EndDate = a.EndDate.Format(models.DateLayout)
	}
	return resp
}
