package scheduling

import (
	"time"

	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"

	"github.com/google/uuid"
)

// FindConflict returns the first existing assignment that would violate the
// single-active-assignment-per-nurse-per-date invariant for the candidate:
// same nurse, same calendar date, still active, and not the record being
// edited. Returns nil when the candidate is clean.
func FindConflict(candidate *models.Assignment, existing []models.Assignment, excludeID uuid.UUID) *models.Assignment {
	for i := range existing {
		other := &existing[i]
		if other.ID == excludeID {
			continue
		}
		if other.NurseID != candidate.NurseID {
			continue
		}
		if other.Status != models.AssignmentStatusActive {
			continue
		}
		if !other.SameDate(candidate.Date) {
			continue
		}
		return other
	}
	return nil
}

// ShiftSnapshot is the denormalized shift detail copied onto an assignment
// at write time.
type ShiftSnapshot struct {
	ShiftName string
	StartTime string
	EndTime   string
	Area      string
}

// ResolveShiftDetails snapshots the referenced shift's current name, times
// and area from the active shift set. When the shift id is absent from that
// set the reference is stale (shift deactivated or deleted after the
// assignment was created) and the caller must require re-selection before
// saving.
func ResolveShiftDetails(shiftID uuid.UUID, activeShifts []models.Shift) (*ShiftSnapshot, error) {
	for i := range activeShifts {
		s := &activeShifts[i]
		if s.ID == shiftID {
			return &ShiftSnapshot{
				ShiftName: s.Name,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				Area:      s.Area,
			}, nil
		}
	}
	return nil, apperrors.ErrStaleShiftReference
}

// AllowedAreas returns the areas an assignment may target for the given
// shift: the shift's own area when it has one, otherwise the full ward
// catalog.
func AllowedAreas(shift *models.Shift) []string {
	if shift != nil && shift.Area != "" {
		return []string{shift.Area}
	}
	return models.Areas
}

// AreaAllowed reports whether the chosen area is valid for the given shift.
func AreaAllowed(shift *models.Shift, area string) bool {
	for _, a := range AllowedAreas(shift) {
		if a == area {
			return true
		}
	}
	return false
}

// Release transitions an active assignment to finished, stamping its end
// date with the provided day. Releasing an already finished assignment is
// reported as informational and leaves the record untouched, so repeated
// calls are idempotent in effect.
func Release(a *models.Assignment, today time.Time) error {
	if a.Status == models.AssignmentStatusFinished {
		return apperrors.ErrAssignmentAlreadyFinished
	}
	a.Status = models.AssignmentStatusFinished
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	a.EndDate = &day
	return nil
}

// CanDeleteAssignment reports whether an assignment may be deleted. Active
// assignments must be released first.
func CanDeleteAssignment(a *models.Assignment) bool {
	return a.Status == models.AssignmentStatusFinished
}
