package scheduling

import (
	"testing"
	"time"

	"hospital-staff-backend/internal/database/models"
	apperrors "hospital-staff-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	d, err := time.Parse(models.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return d
}

func newAssignment(nurseID uuid.UUID, date string, status models.AssignmentStatus) models.Assignment {
	return models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		NurseID:   nurseID,
		NurseName: "Ana Sanchez",
		ShiftID:   uuid.New(),
		ShiftName: "Morning Regular",
		Area:      "Emergency",
		Date:      day(date),
		Status:    status,
		StartTime: "08:00",
		EndTime:   "16:00",
	}
}

func TestFindConflict(t *testing.T) {
	nurse := uuid.New()

	t.Run("same nurse, same date, both active", func(t *testing.T) {
		existing := newAssignment(nurse, "2025-11-24", models.AssignmentStatusActive)
		candidate := newAssignment(nurse, "2025-11-24", models.AssignmentStatusActive)

		got := FindConflict(&candidate, []models.Assignment{existing}, uuid.Nil)
		require.NotNil(t, got)
		assert.Equal(t, existing.ID, got.ID)
	})

	t.Run("finished existing assignment does not conflict", func(t *testing.T) {
		existing := newAssignment(nurse, "2025-11-24", models.AssignmentStatusFinished)
		candidate := newAssignment(nurse, "2025-11-24", models.AssignmentStatusActive)

		assert.Nil(t, FindConflict(&candidate, []models.Assignment{existing}, uuid.Nil))
	})

	t.Run("different date does not conflict", func(t *testing.T) {
		existing := newAssignment(nurse, "2025-11-23", models.AssignmentStatusActive)
		candidate := newAssignment(nurse, "2025-11-24", models.AssignmentStatusActive)

		assert.Nil(t, FindConflict(&candidate, []models.Assignment{existing}, uuid.Nil))
	})

	t.Run("different nurse does not conflict", func(t *testing.T) {
		existing := newAssignment(uuid.New(), "2025-11-24", models.AssignmentStatusActive)
		candidate := newAssignment(nurse, "2025-11-24", models.AssignmentStatusActive)

		assert.Nil(t, FindConflict(&candidate, []models.Assignment{existing}, uuid.Nil))
	})

	t.Run("editing the conflicting record itself is allowed", func(t *testing.T) {
		existing := newAssignment(nurse, "2025-11-24", models.AssignmentStatusActive)
		candidate := existing

		assert.Nil(t, FindConflict(&candidate, []models.Assignment{existing}, existing.ID))
	})

	t.Run("date comparison ignores time of day", func(t *testing.T) {
		existing := newAssignment(nurse, "2025-11-24", models.AssignmentStatusActive)
		candidate := newAssignment(nurse, "2025-11-24", models.AssignmentStatusActive)
		candidate.Date = existing.Date.Add(11 * time.Hour)

		assert.NotNil(t, FindConflict(&candidate, []models.Assignment{existing}, uuid.Nil))
	})

	t.Run("second shift on the same day is blocked", func(t *testing.T) {
		first := newAssignment(nurse, "2025-11-24", models.AssignmentStatusActive)
		second := newAssignment(nurse, "2025-11-24", models.AssignmentStatusActive)
		second.ShiftName = "Saturday ICU Night"

		got := FindConflict(&second, []models.Assignment{first}, uuid.Nil)
		require.NotNil(t, got)
		assert.Equal(t, "Morning Regular", got.ShiftName)

		// excluding the first record (edit mode) clears the conflict
		assert.Nil(t, FindConflict(&second, []models.Assignment{first}, first.ID))
	})
}

func TestResolveShiftDetails(t *testing.T) {
	active := []models.Shift{
		newShift("Morning Regular", "08:00", "16:00", ""),
		newShift("Weekend ICU", "08:00", "20:00", "ICU", "Saturday", "Sunday"),
	}

	t.Run("snapshots the referenced shift", func(t *testing.T) {
		snap, err := ResolveShiftDetails(active[1].ID, active)
		require.NoError(t, err)
		assert.Equal(t, "Weekend ICU", snap.ShiftName)
		assert.Equal(t, "08:00", snap.StartTime)
		assert.Equal(t, "20:00", snap.EndTime)
		assert.Equal(t, "ICU", snap.Area)
	})

	t.Run("missing shift id means a stale reference", func(t *testing.T) {
		snap, err := ResolveShiftDetails(uuid.New(), active)
		assert.Nil(t, snap)
		assert.ErrorIs(t, err, apperrors.ErrStaleShiftReference)
	})

	t.Run("empty active set means everything is stale", func(t *testing.T) {
		_, err := ResolveShiftDetails(active[0].ID, nil)
		assert.ErrorIs(t, err, apperrors.ErrStaleShiftReference)
	})
}

func TestAllowedAreas(t *testing.T) {
	t.Run("shift with an area constrains the choice", func(t *testing.T) {
		icu := newShift("ICU Day", "08:00", "16:00", "ICU")
		assert.Equal(t, []string{"ICU"}, AllowedAreas(&icu))
		assert.True(t, AreaAllowed(&icu, "ICU"))
		assert.False(t, AreaAllowed(&icu, "Pediatrics"))
	})

	t.Run("areless shift opens the full catalog", func(t *testing.T) {
		general := newShift("General", "08:00", "16:00", "")
		assert.Equal(t, models.Areas, AllowedAreas(&general))
		assert.True(t, AreaAllowed(&general, "Maternity"))
		assert.False(t, AreaAllowed(&general, "Cafeteria"))
	})

	t.Run("nil shift behaves like areless", func(t *testing.T) {
		assert.Equal(t, models.Areas, AllowedAreas(nil))
	})
}

func TestRelease(t *testing.T) {
	today := time.Date(2025, 11, 24, 15, 30, 0, 0, time.UTC)

	t.Run("active assignment is finished and stamped", func(t *testing.T) {
		a := newAssignment(uuid.New(), "2025-11-24", models.AssignmentStatusActive)

		require.NoError(t, Release(&a, today))
		assert.Equal(t, models.AssignmentStatusFinished, a.Status)
		require.NotNil(t, a.EndDate)
		assert.Equal(t, "2025-11-24", a.EndDate.Format(models.DateLayout))
	})

	t.Run("second release is informational and mutates nothing", func(t *testing.T) {
		a := newAssignment(uuid.New(), "2025-11-24", models.AssignmentStatusActive)
		require.NoError(t, Release(&a, today))
		firstEnd := *a.EndDate

		err := Release(&a, today.AddDate(0, 0, 3))
		assert.ErrorIs(t, err, apperrors.ErrAssignmentAlreadyFinished)
		assert.True(t, apperrors.IsState(err))
		assert.Equal(t, models.AssignmentStatusFinished, a.Status)
		assert.Equal(t, firstEnd, *a.EndDate)
	})
}

func TestCanDeleteAssignment(t *testing.T) {
	active := newAssignment(uuid.New(), "2025-11-24", models.AssignmentStatusActive)
	finished := newAssignment(uuid.New(), "2025-11-23", models.AssignmentStatusFinished)

	assert.False(t, CanDeleteAssignment(&active))
	assert.True(t, CanDeleteAssignment(&finished))
}
