package models

import "time"

// Nurse represents a member of the nursing staff
type Nurse struct {
	BaseModel
	FullName       string      `json:"full_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	CURP           string      `json:"curp" gorm:"size:18;uniqueIndex" validate:"required,len=18"`
	Area           string      `json:"area" gorm:"size:50;index" validate:"required"`
	Position       string      `json:"position" gorm:"size:100"`
	Specialty      string      `json:"specialty,omitempty" gorm:"size:100"`
	EmployeeNumber string      `json:"employee_number,omitempty" gorm:"size:20"`
	Phone          string      `json:"phone,omitempty" gorm:"size:20"`
	Email          string      `json:"email,omitempty" gorm:"size:100" validate:"omitempty,email"`
	HireDate       *time.Time  `json:"hire_date,omitempty" gorm:"type:date"`
	Status         NurseStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	Available      bool        `json:"available" gorm:"default:true"`
}

// TableName returns the table name for Nurse
func (Nurse) TableName() string {
	return "nurses"
}
