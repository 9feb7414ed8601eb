// Package lifecycle governs the review state machine of a project:
// pending -> validated | rejected by a validator, rejected -> pending by
// the owning contractor resubmitting. validated is terminal.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/paintraffle/internal/model"
)

// DefaultValidationNote is stored when a validator approves a project
// without writing anything.
const DefaultValidationNote = "Validated after physical verification"

var (
	ErrMissingRejectionReason = errors.New("rejection requires a reason")
	ErrMissingConfirmation    = errors.New("physical verification must be confirmed")
	ErrNotOwner               = errors.New("only the owning contractor can resubmit")
)

// Violation is raised when a transition not defined by the state machine
// is attempted. Always recoverable: the caller picks a valid transition.
type Violation struct {
	From        model.ProjectStatus
	AttemptedTo model.ProjectStatus
}

func (v *Violation) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", v.From, v.AttemptedTo)
}

type Decision string

const (
	DecisionValidate Decision = "validate"
	DecisionReject   Decision = "reject"
)

type Review struct {
	ValidatorID   uuid.UUID
	Decision      Decision
	Notes         string
	PhysicalCheck bool
	At            time.Time
}

// Apply mutates the project according to the validator's decision. All
// preconditions are checked before any field changes, so a failed review
// leaves the record untouched.
func Apply(p *model.Project, review Review) error {
	target := model.ProjectStatusValidated
	if review.Decision == DecisionReject {
		target = model.ProjectStatusRejected
	}
	if !p.Status.IsOpen() {
		return &Violation{From: p.Status, AttemptedTo: target}
	}
	if review.ValidatorID == uuid.Nil {
		return fmt.Errorf("validator id is required")
	}

	notes := strings.TrimSpace(review.Notes)
	switch review.Decision {
	case DecisionValidate:
		if !review.PhysicalCheck {
			return ErrMissingConfirmation
		}
		if notes == "" {
			notes = DefaultValidationNote
		}
	case DecisionReject:
		if notes == "" {
			return ErrMissingRejectionReason
		}
	default:
		return fmt.Errorf("unknown review decision %q", review.Decision)
	}

	at := review.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	p.Status = target
	p.ValidationNotes = &notes
	validatorID := review.ValidatorID
	p.ValidatorID = &validatorID
	p.ValidatedAt = &at
	return nil
}

// Resubmit returns a rejected project to pending after the owner edits it.
// The previous review outcome is cleared; image ordering is untouched.
func Resubmit(p *model.Project, contractorID uuid.UUID) error {
	if p.Status != model.ProjectStatusRejected {
		return &Violation{From: p.Status, AttemptedTo: model.ProjectStatusPending}
	}
	if p.ContractorID != contractorID {
		return ErrNotOwner
	}
	p.Status = model.ProjectStatusPending
	p.ValidationNotes = nil
	p.ValidatorID = nil
	p.ValidatedAt = nil
	return nil
}
