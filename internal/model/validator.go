package model

import (
	"time"

	"github.com/google/uuid"
)

// Validator is an admin reviewer. Region and sub-region, when set,
// describe the territory the validator covers; they do not restrict the
// admin endpoints.
type Validator struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	RegionCode    *string   `json:"regionCode,omitempty"`
	SubRegionCode *string   `json:"subRegionCode,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
