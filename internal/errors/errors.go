package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this CURP"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a scheduling or lifecycle conflict. Advisory
// conflicts (shift overlaps) may be confirmed through by the caller;
// non-advisory conflicts are hard blocks.
type ConflictError struct {
	Reason   string
	Advisory bool
	Details  map[string]string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// Is enables errors.Is() comparison for ConflictError by reason
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// StateError represents an operation applied to an entity whose lifecycle
// state already satisfies the requested transition. Informational, not a
// failure that blocks the caller.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrNurseNotFound          = &NotFoundError{Entity: "nurse"}
	ErrShiftNotFound          = &NotFoundError{Entity: "shift"}
	ErrAssignmentNotFound     = &NotFoundError{Entity: "assignment"}
	ErrPatientNotFound        = &NotFoundError{Entity: "patient"}
	ErrClinicalRecordNotFound = &NotFoundError{Entity: "clinical record"}
	ErrInventoryItemNotFound  = &NotFoundError{Entity: "inventory item"}
)

// Already Exists Errors
var (
	ErrNurseExists         = &AlreadyExistsError{Entity: "nurse", Context: "with this CURP"}
	ErrInventoryItemExists = &AlreadyExistsError{Entity: "inventory item", Context: "with this name and presentation"}
)

// Scheduling Conflict Errors
var (
	// ErrShiftOverlap is advisory: the caller may confirm through it.
	ErrShiftOverlap = &ConflictError{Reason: "shift overlaps an existing shift in the same area and days", Advisory: true}

	// ErrDuplicateAssignment is a hard block: one active assignment per
	// nurse per date.
	ErrDuplicateAssignment = &ConflictError{Reason: "nurse already has an active assignment on this date"}

	// ErrStaleShiftReference means the assignment's shift is no longer in
	// the active shift set and a replacement must be selected.
	ErrStaleShiftReference = &ConflictError{Reason: "referenced shift is no longer active"}

	// Delete guards
	ErrShiftHasAssignments    = &ConflictError{Reason: "shift has active assignments and cannot be deleted"}
	ErrAssignmentStillActive  = &ConflictError{Reason: "assignment is still active; release it before deleting"}
	ErrAreaNotAllowedForShift = &ConflictError{Reason: "area does not match the area required by the selected shift"}

	// ErrInsufficientStock blocks dispensing more than the available quantity.
	ErrInsufficientStock = &ConflictError{Reason: "insufficient stock for requested adjustment"}
)

// Lifecycle State Errors
var (
	ErrAssignmentAlreadyFinished = &StateError{Message: "assignment is already finished"}
)

// Business Logic Errors
var (
	ErrZeroDuration      = errors.New("shift start and end times must differ")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM 24h format")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrUnknownArea       = errors.New("unknown area")
	ErrUnknownWeekday    = errors.New("unknown weekday")
	ErrNurseNotActive    = errors.New("nurse is not active")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAdvisoryConflict checks if an error is an advisory (confirmable) conflict
func IsAdvisoryConflict(err error) bool {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Advisory
	}
	return false
}

// IsState checks if an error is an informational StateError
func IsState(err error) bool {
	var stateErr *StateError
	return errors.As(err, &stateErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a ConflictError carrying context details, keeping
// the base reason so errors.Is still matches the sentinel.
func NewConflictError(base *ConflictError, details map[string]string) error {
	return &ConflictError{Reason: base.Reason, Advisory: base.Advisory, Details: details}
}
