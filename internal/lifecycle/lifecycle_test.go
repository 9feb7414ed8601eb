package lifecycle

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/paintraffle/internal/model"
)

func pendingProject(contractorID uuid.UUID) *model.Project {
	return &model.Project{
		ID:           uuid.New(),
		ContractorID: contractorID,
		Status:       model.ProjectStatusPending,
	}
}

func TestApplyValidate(t *testing.T) {
	validatorID := uuid.New()
	p := pendingProject(uuid.New())
	at := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	err := Apply(p, Review{
		ValidatorID:   validatorID,
		Decision:      DecisionValidate,
		Notes:         "Walls match the photos",
		PhysicalCheck: true,
		At:            at,
	})
	require.NoError(t, err)

	assert.Equal(t, model.ProjectStatusValidated, p.Status)
	require.NotNil(t, p.ValidationNotes)
	assert.Equal(t, "Walls match the photos", *p.ValidationNotes)
	require.NotNil(t, p.ValidatorID)
	assert.Equal(t, validatorID, *p.ValidatorID)
	require.NotNil(t, p.ValidatedAt)
	assert.Equal(t, at, *p.ValidatedAt)
}

func TestApplyValidateDefaultNote(t *testing.T) {
	p := pendingProject(uuid.New())

	err := Apply(p, Review{
		ValidatorID:   uuid.New(),
		Decision:      DecisionValidate,
		PhysicalCheck: true,
	})
	require.NoError(t, err)
	require.NotNil(t, p.ValidationNotes)
	assert.Equal(t, DefaultValidationNote, *p.ValidationNotes)
	assert.False(t, p.ValidatedAt.IsZero())
}

func TestApplyValidateRequiresPhysicalCheck(t *testing.T) {
	p := pendingProject(uuid.New())

	err := Apply(p, Review{ValidatorID: uuid.New(), Decision: DecisionValidate})
	assert.ErrorIs(t, err, ErrMissingConfirmation)

	// A failed review leaves the record untouched.
	assert.Equal(t, model.ProjectStatusPending, p.Status)
	assert.Nil(t, p.ValidatorID)
	assert.Nil(t, p.ValidationNotes)
}

func TestApplyRejectRequiresNotes(t *testing.T) {
	p := pendingProject(uuid.New())

	err := Apply(p, Review{ValidatorID: uuid.New(), Decision: DecisionReject})
	assert.ErrorIs(t, err, ErrMissingRejectionReason)
	assert.Equal(t, model.ProjectStatusPending, p.Status)

	err = Apply(p, Review{ValidatorID: uuid.New(), Decision: DecisionReject, Notes: "  \t "})
	assert.ErrorIs(t, err, ErrMissingRejectionReason)
	assert.Equal(t, model.ProjectStatusPending, p.Status)

	err = Apply(p, Review{
		ValidatorID: uuid.New(),
		Decision:    DecisionReject,
		Notes:       "Photos show a different building",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusRejected, p.Status)
}

func TestApplyOnTerminalStatus(t *testing.T) {
	p := pendingProject(uuid.New())
	p.Status = model.ProjectStatusValidated

	err := Apply(p, Review{
		ValidatorID:   uuid.New(),
		Decision:      DecisionReject,
		Notes:         "changed my mind",
		PhysicalCheck: true,
	})

	var violation *Violation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, model.ProjectStatusValidated, violation.From)
	assert.Equal(t, model.ProjectStatusRejected, violation.AttemptedTo)
}

func TestApplyReviewingIsOpen(t *testing.T) {
	p := pendingProject(uuid.New())
	p.Status = model.ProjectStatusReviewing

	err := Apply(p, Review{
		ValidatorID:   uuid.New(),
		Decision:      DecisionValidate,
		PhysicalCheck: true,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusValidated, p.Status)
}

func TestResubmit(t *testing.T) {
	owner := uuid.New()
	validatorID := uuid.New()
	notes := "Blurry photos"
	at := time.Now().UTC()

	p := pendingProject(owner)
	p.Status = model.ProjectStatusRejected
	p.ValidationNotes = &notes
	p.ValidatorID = &validatorID
	p.ValidatedAt = &at

	require.NoError(t, Resubmit(p, owner))

	assert.Equal(t, model.ProjectStatusPending, p.Status)
	assert.Nil(t, p.ValidationNotes)
	assert.Nil(t, p.ValidatorID)
	assert.Nil(t, p.ValidatedAt)
}

func TestResubmitOnlyOwner(t *testing.T) {
	p := pendingProject(uuid.New())
	p.Status = model.ProjectStatusRejected

	assert.ErrorIs(t, Resubmit(p, uuid.New()), ErrNotOwner)
	assert.Equal(t, model.ProjectStatusRejected, p.Status)
}

func TestResubmitOnlyFromRejected(t *testing.T) {
	owner := uuid.New()
	p := pendingProject(owner)
	p.Status = model.ProjectStatusValidated

	var violation *Violation
	require.ErrorAs(t, Resubmit(p, owner), &violation)
	assert.Equal(t, model.ProjectStatusValidated, violation.From)
}
