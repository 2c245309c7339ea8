package scheduling

import "hospital-staff-backend/internal/database/models"

// Outcome is the result class of a scheduling check
type Outcome string

const (
	// OutcomeAccept means the candidate can be committed as-is.
	OutcomeAccept Outcome = "accept"
	// OutcomeWarn means the candidate conflicts in an advisory way; the
	// caller may commit after explicit confirmation.
	OutcomeWarn Outcome = "warn"
	// OutcomeReject means the candidate violates an invariant and must not
	// be committed.
	OutcomeReject Outcome = "reject"
)

// Decision is the two-phase check result handed back to callers. Committing
// the candidate into the owning collection is the caller's responsibility
// and must only happen on Accept, or on Warn after the user confirmed.
type Decision struct {
	Outcome Outcome
	Err     error
	// Conflicting holds the shift that triggered an overlap warning, when any.
	Conflicting *models.Shift
}

// Accepted reports whether the candidate may be committed without confirmation.
func (d Decision) Accepted() bool {
	return d.Outcome == OutcomeAccept
}
