package models

import (
	"time"

	"github.com/google/uuid"
)

// VitalSigns holds the vital sign readings captured on a clinical entry.
// Values are free-form strings as charted by nursing staff (e.g. "120/80").
type VitalSigns struct {
	Temperature     string `json:"temperature,omitempty" gorm:"size:20"`
	HeartRate       string `json:"heart_rate,omitempty" gorm:"size:20"`
	BloodPressure   string `json:"blood_pressure,omitempty" gorm:"size:20"`
	RespiratoryRate string `json:"respiratory_rate,omitempty" gorm:"size:20"`
	SpO2            string `json:"spo2,omitempty" gorm:"size:20"`
}

// ClinicalRecord represents one entry in a patient's clinical history:
// admission notes, evolution notes, consults and discharge summaries.
// Patient display fields are snapshots taken when the entry is written.
type ClinicalRecord struct {
	BaseModel
	PatientID       uuid.UUID         `json:"patient_id" gorm:"type:uuid;not null;index" validate:"required"`
	PatientName     string            `json:"patient_name" gorm:"size:100;not null"`
	PatientArea     string            `json:"patient_area,omitempty" gorm:"size:50"`
	PatientBed      string            `json:"patient_bed,omitempty" gorm:"size:20"`
	EntryType       ClinicalEntryType `json:"entry_type" gorm:"type:varchar(20);not null" validate:"required"`
	ReasonForAdmit  string            `json:"reason_for_admission,omitempty" gorm:"type:text"`
	InitialDiag     string            `json:"initial_diagnosis,omitempty" gorm:"type:text"`
	Vitals          VitalSigns        `json:"vitals" gorm:"embedded;embeddedPrefix:vitals_"`
	MedicalHistory  string            `json:"medical_history,omitempty" gorm:"type:text"`
	Allergies       string            `json:"allergies,omitempty" gorm:"type:text"`
	Notes           string            `json:"notes,omitempty" gorm:"type:text"`
	EvolutionNotes  string            `json:"evolution_notes,omitempty" gorm:"type:text"`
	Professional    string            `json:"professional,omitempty" gorm:"size:100"`
	Status          ClinicalStatus    `json:"status" gorm:"type:varchar(20);not null;default:'stable'"`
	RecordedAt      time.Time         `json:"recorded_at" gorm:"not null" validate:"required"`
	DischargeDate   *time.Time        `json:"discharge_date,omitempty" gorm:"type:date"`
	DischargeReason string            `json:"discharge_reason,omitempty" gorm:"size:200"`

	// Relationships
	Patient Patient `json:"patient,omitempty" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ClinicalRecord
func (ClinicalRecord) TableName() string {
	return "clinical_records"
}
