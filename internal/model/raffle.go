package model

import (
	"time"

	"github.com/google/uuid"
)

// RaffleEntry is one contractor's standing in a region raffle. Tickets are
// derived from validated projects on every read, never stored.
type RaffleEntry struct {
	ContractorID    uuid.UUID `json:"contractorId"`
	ContractorName  string    `json:"contractorName"`
	ContractorEmail string    `json:"contractorEmail"`
	Tickets         int       `json:"tickets"`
}

type RaffleSummary struct {
	RegionCode   string        `json:"regionCode"`
	RegionName   string        `json:"regionName"`
	GeneratedAt  time.Time     `json:"generatedAt"`
	Participants int           `json:"participants"`
	TotalTickets int           `json:"totalTickets"`
	Entries      []RaffleEntry `json:"entries"`
}
