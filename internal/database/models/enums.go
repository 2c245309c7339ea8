package models

// ShiftKind classifies a shift by its time range
type ShiftKind string

const (
	ShiftKindMorning   ShiftKind = "morning"
	ShiftKindAfternoon ShiftKind = "afternoon"
	ShiftKindNight     ShiftKind = "night"
	ShiftKindSpecial   ShiftKind = "special"
)

// IsValid checks if the ShiftKind is valid
func (k ShiftKind) IsValid() bool {
	switch k {
	case ShiftKindMorning, ShiftKindAfternoon, ShiftKindNight, ShiftKindSpecial:
		return true
	}
	return false
}

// ShiftStatus defines the lifecycle state of a shift definition
type ShiftStatus string

const (
	ShiftStatusActive   ShiftStatus = "active"
	ShiftStatusInactive ShiftStatus = "inactive"
	ShiftStatusSpecial  ShiftStatus = "special"
)

// IsValid checks if the ShiftStatus is valid
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusActive, ShiftStatusInactive, ShiftStatusSpecial:
		return true
	}
	return false
}

// AssignmentStatus defines the lifecycle state of a shift assignment.
// Transitions are one-directional: active -> finished.
type AssignmentStatus string

const (
	AssignmentStatusActive   AssignmentStatus = "active"
	AssignmentStatusFinished AssignmentStatus = "finished"
)

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusActive, AssignmentStatusFinished:
		return true
	}
	return false
}

// NurseStatus defines the employment state of a nurse
type NurseStatus string

const (
	NurseStatusActive   NurseStatus = "active"
	NurseStatusInactive NurseStatus = "inactive"
	NurseStatusOnLeave  NurseStatus = "on_leave"
)

// IsValid checks if the NurseStatus is valid
func (s NurseStatus) IsValid() bool {
	switch s {
	case NurseStatusActive, NurseStatusInactive, NurseStatusOnLeave:
		return true
	}
	return false
}

// PatientStatus defines the admission state of a patient
type PatientStatus string

const (
	PatientStatusActive      PatientStatus = "active"
	PatientStatusObservation PatientStatus = "observation"
	PatientStatusDischarged  PatientStatus = "discharged"
	PatientStatusTransferred PatientStatus = "transferred"
)

// IsValid checks if the PatientStatus is valid
func (s PatientStatus) IsValid() bool {
	switch s {
	case PatientStatusActive, PatientStatusObservation, PatientStatusDischarged, PatientStatusTransferred:
		return true
	}
	return false
}

// ClinicalEntryType defines the kind of clinical record entry
type ClinicalEntryType string

const (
	ClinicalEntryNote      ClinicalEntryType = "note"
	ClinicalEntryEvolution ClinicalEntryType = "evolution"
	ClinicalEntryConsult   ClinicalEntryType = "consult"
	ClinicalEntryDischarge ClinicalEntryType = "discharge"
)

// IsValid checks if the ClinicalEntryType is valid
func (t ClinicalEntryType) IsValid() bool {
	switch t {
	case ClinicalEntryNote, ClinicalEntryEvolution, ClinicalEntryConsult, ClinicalEntryDischarge:
		return true
	}
	return false
}

// ClinicalStatus defines the condition recorded on a clinical entry
type ClinicalStatus string

const (
	ClinicalStatusStable      ClinicalStatus = "stable"
	ClinicalStatusCritical    ClinicalStatus = "critical"
	ClinicalStatusObservation ClinicalStatus = "observation"
	ClinicalStatusDischarged  ClinicalStatus = "discharged"
)

// IsValid checks if the ClinicalStatus is valid
func (s ClinicalStatus) IsValid() bool {
	switch s {
	case ClinicalStatusStable, ClinicalStatusCritical, ClinicalStatusObservation, ClinicalStatusDischarged:
		return true
	}
	return false
}

// InventoryItemType distinguishes medications from consumable supplies
type InventoryItemType string

const (
	ItemTypeMedication InventoryItemType = "medication"
	ItemTypeSupply     InventoryItemType = "supply"
)

// IsValid checks if the InventoryItemType is valid
func (t InventoryItemType) IsValid() bool {
	switch t {
	case ItemTypeMedication, ItemTypeSupply:
		return true
	}
	return false
}

// Areas is the fixed catalog of hospital wards an assignment may target
// when its shift does not constrain the area.
var Areas = []string{
	"Emergency",
	"ICU",
	"Pediatrics",
	"Surgery",
	"Inpatient",
	"Maternity",
	"Outpatient",
}

// IsKnownArea reports whether the given area belongs to the fixed catalog.
func IsKnownArea(area string) bool {
	for _, a := range Areas {
		if a == area {
			return true
		}
	}
	return false
}

// Weekdays is the canonical ordering of weekday names used by shift
// recurrence sets.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}
