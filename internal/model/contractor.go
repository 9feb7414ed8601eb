package model

import (
	"time"

	"github.com/google/uuid"
)

type Contractor struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	TaxID         *string   `json:"taxId,omitempty"`
	RegionCode    *string   `json:"regionCode,omitempty"` // nil for accounts created before region capture
	SubRegionCode *string   `json:"subRegionCode,omitempty"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
