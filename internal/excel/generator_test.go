package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/paintraffle/internal/model"
)

func TestGenerate(t *testing.T) {
	summary := model.RaffleSummary{
		RegionCode:   "HN",
		RegionName:   "Honduras",
		Participants: 2,
		TotalTickets: 3,
		GeneratedAt:  time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		Entries: []model.RaffleEntry{
			{ContractorID: uuid.New(), ContractorName: "Beto", ContractorEmail: "beto@example.com", Tickets: 2},
			{ContractorID: uuid.New(), ContractorName: "Ana", ContractorEmail: "ana@example.com", Tickets: 1},
		},
	}

	content, err := NewGenerator().Generate(summary)
	require.NoError(t, err)
	require.NotEmpty(t, content)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	cell := func(ref string) string {
		value, err := file.GetCellValue("Raffle", ref)
		require.NoError(t, err)
		return value
	}

	assert.Equal(t, "Honduras", cell("B1"))
	assert.Equal(t, "2", cell("B3"))
	assert.Equal(t, "3", cell("B4"))
	assert.Equal(t, "Beto", cell("A7"))
	assert.Equal(t, "ana@example.com", cell("B8"))
}
