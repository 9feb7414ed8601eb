package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusPending   ProjectStatus = "pending"
	ProjectStatusReviewing ProjectStatus = "reviewing"
	ProjectStatusValidated ProjectStatus = "validated"
	ProjectStatusRejected  ProjectStatus = "rejected"
)

// IsOpen reports whether the project still awaits a review decision.
// "reviewing" is a display alias of "pending" and carries no transitions
// of its own.
func (s ProjectStatus) IsOpen() bool {
	return s == ProjectStatusPending || s == ProjectStatusReviewing
}

type Project struct {
	ID              uuid.UUID     `json:"id"`
	ContractorID    uuid.UUID     `json:"contractorId"`
	Name            string        `json:"name"`
	Location        string        `json:"location"`
	SquareMeters    float64       `json:"squareMeters"`
	Liters          int           `json:"liters"`
	PaintType       *string       `json:"paintType,omitempty"`
	Description     *string       `json:"description,omitempty"`
	Status          ProjectStatus `json:"status"`
	ValidationNotes *string       `json:"validationNotes,omitempty"`
	ValidatorID     *uuid.UUID    `json:"validatorId,omitempty"`
	ValidatedAt     *time.Time    `json:"validatedAt,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	Images []ProjectImage `json:"images,omitempty" gorm:"-"`
}

type ProjectImage struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"projectId"`
	ImageURL   string    `json:"imageUrl"`
	ImageOrder int       `json:"imageOrder"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ProjectWithContractor is the admin-list row: the project joined with the
// owning contractor, whose region scopes the list filters.
type ProjectWithContractor struct {
	Project
	Contractor Contractor `json:"contractor"`
}
