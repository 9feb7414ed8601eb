package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/paintraffle/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the region raffle summary as a workbook: one summary
// sheet with the entry table.
func (g *Generator) Generate(summary model.RaffleSummary) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Raffle"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Region")
	set("B1", summary.RegionName)
	set("A2", "Generated")
	set("B2", summary.GeneratedAt.Format("2006-01-02 15:04"))
	set("A3", "Participants")
	set("B3", summary.Participants)
	set("A4", "Total tickets")
	set("B4", summary.TotalTickets)

	tableRow := 6
	set(fmt.Sprintf("A%d", tableRow), "Contractor")
	set(fmt.Sprintf("B%d", tableRow), "Email")
	set(fmt.Sprintf("C%d", tableRow), "Tickets")

	for i, entry := range summary.Entries {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), entry.ContractorName)
		set(fmt.Sprintf("B%d", row), entry.ContractorEmail)
		set(fmt.Sprintf("C%d", row), entry.Tickets)
	}

	_ = file.SetColWidth(sheet, "A", "A", 35)
	_ = file.SetColWidth(sheet, "B", "B", 35)
	_ = file.SetColWidth(sheet, "C", "C", 12)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
