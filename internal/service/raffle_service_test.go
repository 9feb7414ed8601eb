package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/paintraffle/internal/auth"
	"github.com/nurpe/paintraffle/internal/model"
)

type stubGenerator struct {
	content []byte
	err     error
	last    *model.RaffleSummary
}

func (g *stubGenerator) Generate(summary model.RaffleSummary) ([]byte, error) {
	g.last = &summary
	return g.content, g.err
}

type raffleFixture struct {
	svc       *RaffleService
	projects  *fakeProjectStore
	excel     *stubGenerator
	pdf       *stubGenerator
	owner     auth.Principal
	validator auth.Principal
}

func newRaffleFixture(t *testing.T) *raffleFixture {
	t.Helper()

	contractors := newFakeContractorStore()
	projects := newFakeProjectStore()

	regionCode := "MX"
	owner := &model.Contractor{
		ID:         uuid.New(),
		Name:       "Ana López",
		Email:      "ana@example.com",
		RegionCode: &regionCode,
	}
	require.NoError(t, contractors.Create(context.Background(), owner))

	excel := &stubGenerator{content: []byte("xlsx")}
	pdf := &stubGenerator{content: []byte("pdf")}
	return &raffleFixture{
		svc:       NewRaffleService(projects, contractors, excel, pdf),
		projects:  projects,
		excel:     excel,
		pdf:       pdf,
		owner:     auth.Principal{ID: owner.ID, Role: auth.RoleContractor},
		validator: auth.Principal{ID: uuid.New(), Role: auth.RoleValidator},
	}
}

func (f *raffleFixture) seedProject(t *testing.T, status model.ProjectStatus) {
	t.Helper()
	require.NoError(t, f.projects.Create(context.Background(), &model.Project{
		ID:           uuid.New(),
		ContractorID: f.owner.ID,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}))
}

func TestContractorStanding(t *testing.T) {
	f := newRaffleFixture(t)
	f.seedProject(t, model.ProjectStatusValidated)
	f.seedProject(t, model.ProjectStatusValidated)
	f.seedProject(t, model.ProjectStatusPending)
	f.seedProject(t, model.ProjectStatusRejected)

	standing, err := f.svc.ContractorStanding(context.Background(), f.owner)
	require.NoError(t, err)

	assert.Equal(t, 2, standing.Tickets)
	assert.Equal(t, 1, standing.PendingProjects)
	assert.Equal(t, "$15,000 MXN", standing.Draw.Prize.Value)
}

func TestContractorStandingValidatorDenied(t *testing.T) {
	f := newRaffleFixture(t)

	_, err := f.svc.ContractorStanding(context.Background(), f.validator)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestRegionSummary(t *testing.T) {
	f := newRaffleFixture(t)

	contractor := model.Contractor{ID: f.owner.ID, Name: "Ana López", Email: "ana@example.com"}
	f.projects.joinedRows = []model.ProjectWithContractor{
		{
			Project:    model.Project{ID: uuid.New(), ContractorID: contractor.ID, Status: model.ProjectStatusValidated},
			Contractor: contractor,
		},
		{
			Project:    model.Project{ID: uuid.New(), ContractorID: contractor.ID, Status: model.ProjectStatusPending},
			Contractor: contractor,
		},
	}

	summary, err := f.svc.RegionSummary(context.Background(), f.validator, "MX")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalTickets)
	assert.Equal(t, 1, summary.Participants)
}

func TestRegionSummaryUnknownRegion(t *testing.T) {
	f := newRaffleFixture(t)

	_, err := f.svc.RegionSummary(context.Background(), f.validator, "XX")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegionSummaryContractorDenied(t *testing.T) {
	f := newRaffleFixture(t)

	_, err := f.svc.RegionSummary(context.Background(), f.owner, "MX")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExport(t *testing.T) {
	f := newRaffleFixture(t)

	excel, err := f.svc.ExportExcel(context.Background(), f.validator, "HN")
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), excel.Content)
	assert.Equal(t, "raffle-hn-"+time.Now().UTC().Format("20060102")+".xlsx", excel.FileName)
	require.NotNil(t, f.excel.last)
	assert.Equal(t, "Honduras", f.excel.last.RegionName)

	pdf, err := f.svc.ExportPDF(context.Background(), f.validator, "HN")
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf"), pdf.Content)
	assert.Equal(t, "raffle-hn-"+time.Now().UTC().Format("20060102")+".pdf", pdf.FileName)
}

func TestExportGeneratorFailure(t *testing.T) {
	f := newRaffleFixture(t)
	f.excel.err = assert.AnError

	_, err := f.svc.ExportExcel(context.Background(), f.validator, "MX")
	assert.Error(t, err)
}
