package testutils

import (
	"time"

	"hospital-staff-backend/internal/database/models"

	"github.com/google/uuid"
)

// NurseFactory provides methods to create test Nurse data
type NurseFactory struct{}

// NewNurseFactory creates a new NurseFactory
func NewNurseFactory() *NurseFactory {
	return &NurseFactory{}
}

// Create creates a test Nurse with default values
func (f *NurseFactory) Create() *models.Nurse {
	id := uuid.New()
	// Generate a unique CURP-shaped value to avoid unique index conflicts
	curp := "TEST" + id.String()[:8] + "MDFXXX"

	hireDate := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	return &models.Nurse{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:       "Maria Lopez",
		CURP:           curp[:18],
		Area:           "ICU",
		Position:       "Staff Nurse",
		Specialty:      "Intensive Care",
		EmployeeNumber: "EMP-" + id.String()[:4],
		Phone:          "+52-555-0100",
		Email:          "maria.lopez@test.com",
		HireDate:       &hireDate,
		Status:         models.NurseStatusActive,
		Available:      true,
	}
}

// WithName sets a custom full name for the nurse
func (f *NurseFactory) WithName(name string) *models.Nurse {
	nurse := f.Create()
	nurse.FullName = name
	return nurse
}

// WithArea sets a custom area for the nurse
func (f *NurseFactory) WithArea(area string) *models.Nurse {
	nurse := f.Create()
	nurse.Area = area
	return nurse
}

// WithStatus sets a custom status for the nurse
func (f *NurseFactory) WithStatus(status models.NurseStatus) *models.Nurse {
	nurse := f.Create()
	nurse.Status = status
	return nurse
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a test Shift with default values
func (f *ShiftFactory) Create() *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Day Shift",
		Kind:      models.ShiftKindMorning,
		StartTime: "08:00",
		EndTime:   "16:00",
		Status:    models.ShiftStatusActive,
	}
}

// WithName sets a custom name for the shift
func (f *ShiftFactory) WithName(name string) *models.Shift {
	shift := f.Create()
	shift.Name = name
	return shift
}

// WithTimes sets custom start and end times for the shift
func (f *ShiftFactory) WithTimes(start, end string) *models.Shift {
	shift := f.Create()
	shift.StartTime = start
	shift.EndTime = end
	return shift
}

// WithArea sets a custom area for the shift
func (f *ShiftFactory) WithArea(area string) *models.Shift {
	shift := f.Create()
	shift.Area = area
	return shift
}

// WithStatus sets a custom status for the shift
func (f *ShiftFactory) WithStatus(status models.ShiftStatus) *models.Shift {
	shift := f.Create()
	shift.Status = status
	return shift
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test Assignment with default values. NurseID must be set
// to an existing nurse before persisting.
func (f *AssignmentFactory) Create() *models.Assignment {
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		NurseID:   uuid.New(),
		NurseName: "Maria Lopez",
		ShiftID:   uuid.New(),
		ShiftName: "Day Shift",
		Area:      "ICU",
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:    models.AssignmentStatusActive,
		StartTime: "08:00",
		EndTime:   "16:00",
	}
}

// ForNurse sets the nurse reference and snapshot name
func (f *AssignmentFactory) ForNurse(nurse *models.Nurse) *models.Assignment {
	a := f.Create()
	a.NurseID = nurse.ID
	a.NurseName = nurse.FullName
	return a
}

// ForShift sets the shift reference and snapshot details
func (f *AssignmentFactory) ForShift(shift *models.Shift) *models.Assignment {
	a := f.Create()
	a.ShiftID = shift.ID
	a.ShiftName = shift.Name
	a.StartTime = shift.StartTime
	a.EndTime = shift.EndTime
	return a
}

// WithDate sets a custom date for the assignment
func (f *AssignmentFactory) WithDate(date time.Time) *models.Assignment {
	a := f.Create()
	a.Date = date
	return a
}

// PatientFactory provides methods to create test Patient data
type PatientFactory struct{}

// NewPatientFactory creates a new PatientFactory
func NewPatientFactory() *PatientFactory {
	return &PatientFactory{}
}

// Create creates a test Patient with default values
func (f *PatientFactory) Create() *models.Patient {
	return &models.Patient{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName: "Juan Perez",
		Area:     "Internal Medicine",
		Bed:      "IM-12",
		Sex:      "male",
		Status:   models.PatientStatusActive,
	}
}

// WithName sets a custom full name for the patient
func (f *PatientFactory) WithName(name string) *models.Patient {
	patient := f.Create()
	patient.FullName = name
	return patient
}

// WithStatus sets a custom status for the patient
func (f *PatientFactory) WithStatus(status models.PatientStatus) *models.Patient {
	patient := f.Create()
	patient.Status = status
	return patient
}

// ClinicalRecordFactory provides methods to create test ClinicalRecord data
type ClinicalRecordFactory struct{}

// NewClinicalRecordFactory creates a new ClinicalRecordFactory
func NewClinicalRecordFactory() *ClinicalRecordFactory {
	return &ClinicalRecordFactory{}
}

// Create creates a test ClinicalRecord with default values. PatientID must be
// set to an existing patient before persisting.
func (f *ClinicalRecordFactory) Create() *models.ClinicalRecord {
	return &models.ClinicalRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PatientID:   uuid.New(),
		PatientName: "Juan Perez",
		PatientArea: "Internal Medicine",
		PatientBed:  "IM-12",
		EntryType:   models.ClinicalEntryNote,
		Notes:       "Patient stable, no complaints overnight.",
		Vitals: models.VitalSigns{
			Temperature:   "36.8",
			HeartRate:     "72",
			BloodPressure: "120/80",
		},
		Professional: "Dr. Garcia",
		Status:       models.ClinicalStatusStable,
		RecordedAt:   time.Now(),
	}
}

// ForPatient sets the patient reference and snapshot fields
func (f *ClinicalRecordFactory) ForPatient(patient *models.Patient) *models.ClinicalRecord {
	r := f.Create()
	r.PatientID = patient.ID
	r.PatientName = patient.FullName
	r.PatientArea = patient.Area
	r.PatientBed = patient.Bed
	return r
}

// WithEntryType sets a custom entry type
func (f *ClinicalRecordFactory) WithEntryType(entryType models.ClinicalEntryType) *models.ClinicalRecord {
	r := f.Create()
	r.EntryType = entryType
	return r
}

// InventoryItemFactory provides methods to create test InventoryItem data
type InventoryItemFactory struct{}

// NewInventoryItemFactory creates a new InventoryItemFactory
func NewInventoryItemFactory() *InventoryItemFactory {
	return &InventoryItemFactory{}
}

// Create creates a test InventoryItem with default values
func (f *InventoryItemFactory) Create() *models.InventoryItem {
	return &models.InventoryItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "Paracetamol",
		Presentation:    "500mg tablets",
		ItemType:        models.ItemTypeMedication,
		Quantity:        50,
		RecommendedDose: "500mg every 8 hours",
	}
}

// WithName sets a custom name for the item
func (f *InventoryItemFactory) WithName(name string) *models.InventoryItem {
	item := f.Create()
	item.Name = name
	return item
}

// WithQuantity sets a custom quantity for the item
func (f *InventoryItemFactory) WithQuantity(quantity int) *models.InventoryItem {
	item := f.Create()
	item.Quantity = quantity
	return item
}

// FactorySet provides access to all factories
type FactorySet struct {
	Nurse          *NurseFactory
	Shift          *ShiftFactory
	Assignment     *AssignmentFactory
	Patient        *PatientFactory
	ClinicalRecord *ClinicalRecordFactory
	InventoryItem  *InventoryItemFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Nurse:          NewNurseFactory(),
		Shift:          NewShiftFactory(),
		Assignment:     NewAssignmentFactory(),
		Patient:        NewPatientFactory(),
		ClinicalRecord: NewClinicalRecordFactory(),
		InventoryItem:  NewInventoryItemFactory(),
	}
}
