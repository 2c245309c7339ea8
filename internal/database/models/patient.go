package models

// Patient represents an admitted patient record
type Patient struct {
	BaseModel
	FullName      string        `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	CURP          string        `json:"curp" gorm:"size:18;index" validate:"omitempty,len=18"`
	Area          string        `json:"area" gorm:"size:50;index" validate:"required"`
	Bed           string        `json:"bed" gorm:"size:20"`
	Sex           string        `json:"sex" gorm:"size:20"`
	Status        PatientStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	AssignedNurse string        `json:"assigned_nurse,omitempty" gorm:"size:100"`
}

// TableName returns the table name for Patient
func (Patient) TableName() string {
	return "patients"
}
