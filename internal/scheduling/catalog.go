// Package scheduling holds the pure rule engines behind shift and
// assignment management: shift kind classification, overlap detection across
// midnight-wrapping time ranges, and the one-active-assignment-per-nurse-
// per-date guard. Functions here never touch storage; they operate on
// snapshots handed in by the service layer.
package scheduling

import (
	"fmt"
	"strconv"
	"strings"

	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"

	"github.com/google/uuid"
)

const minutesPerDay = 24 * 60

// ParseMinutes converts an "HH:MM" wall-clock value to minutes since
// midnight in [0, 1439].
func ParseMinutes(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, apperrors.ErrInvalidTimeFormat
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, apperrors.ErrInvalidTimeFormat
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, apperrors.ErrInvalidTimeFormat
	}
	return h*60 + m, nil
}

// ClassifyKind derives a shift's kind from its time range. A range whose end
// precedes its start crosses midnight and is always a night shift;
// otherwise classification goes by start time alone:
//
//	[06:00, 12:00) morning, [12:00, 20:00) afternoon, the rest night.
//
// The special kind is only ever reached as a fallback; callers force it
// explicitly for special shifts.
func ClassifyKind(startTime, endTime string) (models.ShiftKind, error) {
	start, err := ParseMinutes(startTime)
	if err != nil {
		return "", fmt.Errorf("start time: %w", err)
	}
	end, err := ParseMinutes(endTime)
	if err != nil {
		return "", fmt.Errorf("end time: %w", err)
	}

	if end < start {
		return models.ShiftKindNight, nil
	}

	switch {
	case start >= 6*60 && start < 12*60:
		return models.ShiftKindMorning, nil
	case start >= 12*60 && start < 20*60:
		return models.ShiftKindAfternoon, nil
	case start >= 20*60 || start < 6*60:
		return models.ShiftKindNight, nil
	}

	return models.ShiftKindSpecial, nil
}

// ValidateDuration rejects zero-duration shifts. A 24h shift must be
// expressed as two different wrapping times (00:00-23:59), never as equal
// start and end.
func ValidateDuration(startTime, endTime string) error {
	start, err := ParseMinutes(startTime)
	if err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	end, err := ParseMinutes(endTime)
	if err != nil {
		return fmt.Errorf("end time: %w", err)
	}
	if start == end {
		return apperrors.ErrZeroDuration
	}
	return nil
}

// normalizeRange converts a shift's times to a half-open minute interval,
// extending the end past 1440 when the range wraps midnight.
func normalizeRange(startTime, endTime string) (int, int, error) {
	start, err := ParseMinutes(startTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseMinutes(endTime)
	if err != nil {
		return 0, 0, err
	}
	if end < start {
		end += minutesPerDay
	}
	return start, end, nil
}

// intervalsOverlap reports whether two normalized half-open minute
// intervals intersect on the 24h clock. A wrapped range extends past 1440
// after normalization, so its tail lands on the next day; comparing each
// interval against the other shifted by a full day in both directions
// catches a tail meeting the other shift's early-morning hours.
func intervalsOverlap(s1, e1, s2, e2 int) bool {
	for _, offset := range []int{0, minutesPerDay, -minutesPerDay} {
		if s1 < e2+offset && s2+offset < e1 {
			return true
		}
	}
	return false
}

// areasCompatible reports whether two shifts can collide at all by area.
// A shift without an area is general and compatible with every ward.
func areasCompatible(a, b string) bool {
	return a == "" || b == "" || a == b
}

// weekdaysShared reports whether two weekday sets can coincide. Empty sets
// mean "every day" and therefore always share days.
func weekdaysShared(a, b models.StringList) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	for _, day := range a {
		for _, other := range b {
			if day == other {
				return true
			}
		}
	}
	return false
}

// Overlaps scans the existing shifts for one whose active time interval
// intersects the candidate's, considering area and weekday compatibility
// and midnight wraparound. The shift identified by excludeID is skipped so
// an edited shift never conflicts with itself. Returns the first
// conflicting shift found, or nil.
func Overlaps(candidate *models.Shift, existing []models.Shift, excludeID uuid.UUID) (*models.Shift, error) {
	s1, e1, err := normalizeRange(candidate.StartTime, candidate.EndTime)
	if err != nil {
		return nil, err
	}

	for i := range existing {
		other := &existing[i]
		if other.ID == excludeID {
			continue
		}
		if !areasCompatible(candidate.Area, other.Area) {
			continue
		}
		if !weekdaysShared(candidate.Weekdays, other.Weekdays) {
			continue
		}

		s2, e2, err := normalizeRange(other.StartTime, other.EndTime)
		if err != nil {
			return nil, err
		}
		if intervalsOverlap(s1, e1, s2, e2) {
			return other, nil
		}
	}
	return nil, nil
}

// CheckShift runs the full pre-commit validation for a candidate shift:
// zero duration is a hard reject, an overlap with an existing shift is an
// advisory warning the caller may confirm through.
func CheckShift(candidate *models.Shift, existing []models.Shift, excludeID uuid.UUID) Decision {
	if err := ValidateDuration(candidate.StartTime, candidate.EndTime); err != nil {
		return Decision{Outcome: OutcomeReject, Err: err}
	}

	conflicting, err := Overlaps(candidate, existing, excludeID)
	if err != nil {
		return Decision{Outcome: OutcomeReject, Err: err}
	}
	if conflicting != nil {
		return Decision{
			Outcome:     OutcomeWarn,
			Err:         apperrors.ErrShiftOverlap,
			Conflicting: conflicting,
		}
	}
	return Decision{Outcome: OutcomeAccept}
}

// Duplicate copies a shift into a new definition with a fresh identity and
// a copy marker on the name. All other fields carry over verbatim.
func Duplicate(s *models.Shift) models.Shift {
	dup := *s
	dup.BaseModel = models.BaseModel{ID: uuid.New()}
	dup.Name = s.Name + " (Copy)"
	dup.Weekdays = append(models.StringList(nil), s.Weekdays...)
	return dup
}

// CanDeleteShift reports whether a shift may be deleted. Shifts with active
// assignments are protected regardless of their own status.
func CanDeleteShift(hasAssignments bool) bool {
	return !hasAssignments
}
