// Package raffle derives raffle eligibility from project sets. Tickets
// are never stored: they are recomputed from validated projects on every
// read, so a review decision is reflected on the next fetch.
package raffle

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/paintraffle/internal/model"
	"github.com/nurpe/paintraffle/internal/region"
)

// TicketCount is one virtual ticket per validated project.
func TicketCount(projects []model.Project) int {
	count := 0
	for _, p := range projects {
		if p.Status == model.ProjectStatusValidated {
			count++
		}
	}
	return count
}

// ParticipantCount is the number of distinct contractors with at least
// one validated project in the set.
func ParticipantCount(projects []model.Project) int {
	seen := make(map[uuid.UUID]struct{})
	for _, p := range projects {
		if p.Status == model.ProjectStatusValidated {
			seen[p.ContractorID] = struct{}{}
		}
	}
	return len(seen)
}

// Summarize builds the region raffle standing from the joined project
// rows of that region. Entries are sorted by ticket count, then name.
func Summarize(regionCode string, rows []model.ProjectWithContractor) model.RaffleSummary {
	regionName := regionCode
	if cfg, err := region.Get(regionCode); err == nil {
		regionName = cfg.Name
	}

	byContractor := make(map[uuid.UUID]*model.RaffleEntry)
	for _, row := range rows {
		if row.Status != model.ProjectStatusValidated {
			continue
		}
		entry, ok := byContractor[row.ContractorID]
		if !ok {
			entry = &model.RaffleEntry{
				ContractorID:    row.Contractor.ID,
				ContractorName:  row.Contractor.Name,
				ContractorEmail: row.Contractor.Email,
			}
			byContractor[row.ContractorID] = entry
		}
		entry.Tickets++
	}

	summary := model.RaffleSummary{
		RegionCode:  regionCode,
		RegionName:  regionName,
		GeneratedAt: time.Now().UTC(),
	}
	for _, entry := range byContractor {
		summary.Entries = append(summary.Entries, *entry)
		summary.TotalTickets += entry.Tickets
	}
	summary.Participants = len(summary.Entries)

	sort.Slice(summary.Entries, func(i, j int) bool {
		if summary.Entries[i].Tickets != summary.Entries[j].Tickets {
			return summary.Entries[i].Tickets > summary.Entries[j].Tickets
		}
		return summary.Entries[i].ContractorName < summary.Entries[j].ContractorName
	})
	return summary
}
