package models

// Shift represents a named, timed work period (turno) that nurses can be
// assigned to. StartTime and EndTime are wall-clock "HH:MM" values; an
// EndTime earlier than StartTime means the shift spans midnight. An empty
// Area means the shift applies to every ward; an empty Weekdays set means
// the shift recurs every day.
type Shift struct {
	BaseModel
	Name        string      `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Kind        ShiftKind   `json:"kind" gorm:"type:varchar(20);not null"`
	StartTime   string      `json:"start_time" gorm:"size:5;not null" validate:"required"`
	EndTime     string      `json:"end_time" gorm:"size:5;not null" validate:"required"`
	Status      ShiftStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	Area        string      `json:"area,omitempty" gorm:"size:50;index"`
	Description string      `json:"description,omitempty" gorm:"size:200" validate:"max=200"`
	Weekdays    StringList  `json:"weekdays,omitempty"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}
