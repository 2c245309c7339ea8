package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment binds one nurse to one shift on one calendar date. NurseName,
// ShiftName, StartTime, EndTime and Area are snapshots taken from the nurse
// and shift at write time so the record stays displayable even if the
// referenced shift is later deactivated or deleted.
type Assignment struct {
	BaseModel
	NurseID   uuid.UUID        `json:"nurse_id" gorm:"type:uuid;not null;index" validate:"required"`
	NurseName string           `json:"nurse_name" gorm:"size:100;not null"`
	ShiftID   uuid.UUID        `json:"shift_id" gorm:"type:uuid;not null;index" validate:"required"`
	ShiftName string           `json:"shift_name" gorm:"size:100;not null"`
	Area      string           `json:"area" gorm:"size:50;not null" validate:"required"`
	Date      time.Time        `json:"date" gorm:"type:date;not null;index" validate:"required"`
	Status    AssignmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	EndDate   *time.Time       `json:"end_date,omitempty" gorm:"type:date"`
	StartTime string           `json:"start_time" gorm:"size:5"`
	EndTime   string           `json:"end_time" gorm:"size:5"`

	// Relationships
	Nurse Nurse `json:"nurse,omitempty" gorm:"foreignKey:NurseID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}

// SameDate reports whether the assignment applies to the given calendar day.
func (a *Assignment) SameDate(day time.Time) bool {
	return a.Date.Format(DateLayout) == day.Format(DateLayout)
}
