package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nurpe/paintraffle/internal/auth"
	"github.com/nurpe/paintraffle/internal/model"
	"github.com/nurpe/paintraffle/internal/raffle"
	"github.com/nurpe/paintraffle/internal/region"
)

type ExcelGenerator interface {
	Generate(summary model.RaffleSummary) ([]byte, error)
}

type PDFGenerator interface {
	Generate(summary model.RaffleSummary) ([]byte, error)
}

type RaffleService struct {
	projects    ProjectStore
	contractors ContractorStore
	excel       ExcelGenerator
	pdf         PDFGenerator
}

func NewRaffleService(projects ProjectStore, contractors ContractorStore, excel ExcelGenerator, pdf PDFGenerator) *RaffleService {
	return &RaffleService{projects: projects, contractors: contractors, excel: excel, pdf: pdf}
}

// Standing is a contractor's own view of the current raffle: the region
// draw plus ticket counts derived from the live project set.
type Standing struct {
	Draw            raffle.DrawConfig `json:"draw"`
	Tickets         int               `json:"tickets"`
	PendingProjects int               `json:"pendingProjects"`
}

func (s *RaffleService) ContractorStanding(ctx context.Context, principal auth.Principal) (*Standing, error) {
	if !principal.IsContractor() {
		return nil, ErrPermissionDenied
	}
	contractor, err := s.contractors.GetByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	projects, err := s.projects.ListByContractor(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	regionCode := ""
	if contractor.RegionCode != nil {
		regionCode = *contractor.RegionCode
	}
	standing := &Standing{
		Draw:    raffle.DrawForRegion(regionCode),
		Tickets: raffle.TicketCount(projects),
	}
	for _, p := range projects {
		if p.Status.IsOpen() {
			standing.PendingProjects++
		}
	}
	return standing, nil
}

// RegionSummary recomputes the raffle standing of a region from the
// current project set. Never cached: review decisions must show up on
// the next read.
func (s *RaffleService) RegionSummary(ctx context.Context, principal auth.Principal, regionCode string) (*model.RaffleSummary, error) {
	if !principal.IsValidator() {
		return nil, ErrPermissionDenied
	}
	if _, err := region.Get(regionCode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	rows, err := s.projects.ListWithContractors(ctx, &regionCode, nil)
	if err != nil {
		return nil, err
	}
	summary := raffle.Summarize(regionCode, rows)
	return &summary, nil
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *RaffleService) ExportExcel(ctx context.Context, principal auth.Principal, regionCode string) (*ExportResult, error) {
	summary, err := s.RegionSummary(ctx, principal, regionCode)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.Generate(*summary)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: exportFileName(*summary, "xlsx"), Content: content}, nil
}

func (s *RaffleService) ExportPDF(ctx context.Context, principal auth.Principal, regionCode string) (*ExportResult, error) {
	summary, err := s.RegionSummary(ctx, principal, regionCode)
	if err != nil {
		return nil, err
	}
	content, err := s.pdf.Generate(*summary)
	if err != nil {
		return nil, err
	}
	return &ExportResult{FileName: exportFileName(*summary, "pdf"), Content: content}, nil
}

func exportFileName(summary model.RaffleSummary, ext string) string {
	return fmt.Sprintf("raffle-%s-%s.%s",
		strings.ToLower(summary.RegionCode),
		summary.GeneratedAt.Format("20060102"),
		ext)
}
