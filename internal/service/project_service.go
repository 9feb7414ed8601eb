package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/paintraffle/internal/auth"
	"github.com/nurpe/paintraffle/internal/lifecycle"
	"github.com/nurpe/paintraffle/internal/model"
	"github.com/nurpe/paintraffle/internal/storage"
	"github.com/nurpe/paintraffle/internal/validation"
)

type ProjectStore interface {
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListByContractor(ctx context.Context, contractorID uuid.UUID) ([]model.Project, error)
	ListWithContractors(ctx context.Context, regionCode, subRegionCode *string) ([]model.ProjectWithContractor, error)
	CreateImage(ctx context.Context, img *model.ProjectImage) error
	ListImages(ctx context.Context, projectID uuid.UUID) ([]model.ProjectImage, error)
	GetImage(ctx context.Context, imageID uuid.UUID) (*model.ProjectImage, error)
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
	NextImageOrder(ctx context.Context, projectID uuid.UUID) (int, error)
}

type ProjectService struct {
	projects    ProjectStore
	contractors ContractorStore
	images      storage.ImageStore
	log         zerolog.Logger
}

func NewProjectService(projects ProjectStore, contractors ContractorStore, images storage.ImageStore, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, contractors: contractors, images: images, log: log}
}

type ProjectInput struct {
	Name         string
	Location     string
	SquareMeters float64
	Liters       int
	PaintType    string
	Description  string
}

// Submit creates a pending project for the contractor. When no liters
// were entered and a paint type is chosen, the suggested quantity is
// filled in; a manually entered positive value is kept as-is.
func (s *ProjectService) Submit(ctx context.Context, principal auth.Principal, input ProjectInput) (*model.Project, error) {
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

	if input.Liters == 0 {
		if suggested, ok := validation.SuggestLiters(input.SquareMeters, input.PaintType); ok {
			input.Liters = suggested
		}
	}

	errs := validation.ValidateProject(validation.ProjectSubmission{
		Name:         input.Name,
		Location:     input.Location,
		SquareMeters: input.SquareMeters,
		Liters:       input.Liters,
		PaintType:    input.PaintType,
		Description:  input.Description,
	}, contractor.RegionCode, contractor.SubRegionCode)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project := &model.Project{
		ID:           uuid.New(),
		ContractorID: contractor.ID,
		Name:         strings.TrimSpace(input.Name),
		Location:     strings.TrimSpace(input.Location),
		SquareMeters: input.SquareMeters,
		Liters:       input.Liters,
		Status:       model.ProjectStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if input.PaintType != "" {
		paintType := input.PaintType
		project.PaintType = &paintType
	}
	if desc := strings.TrimSpace(input.Description); desc != "" {
		project.Description = &desc
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) ListMine(ctx context.Context, principal auth.Principal) ([]model.Project, error) {
	if !principal.IsContractor() {
		return nil, ErrPermissionDenied
	}
	return s.projects.ListByContractor(ctx, principal.ID)
}

// Get returns a project with its images. Contractors see only their own
// projects; validators see any.
func (s *ProjectService) Get(ctx context.Context, principal auth.Principal, id uuid.UUID) (*model.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !principal.IsValidator() && project.ContractorID != principal.ID {
		return nil, ErrPermissionDenied
	}

	images, err := s.projects.ListImages(ctx, id)
	if err != nil {
		return nil, err
	}
	project.Images = images
	return project, nil
}

// Update lets the owning contractor edit an open project, or edit and
// resubmit a rejected one. Resubmission returns the project to pending
// and clears the previous review outcome. Validated projects are final.
func (s *ProjectService) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, input ProjectInput) (*model.Project, error) {
	if !principal.IsContractor() {
		return nil, ErrPermissionDenied
	}
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if project.ContractorID != principal.ID {
		return nil, ErrPermissionDenied
	}

	contractor, err := s.contractors.GetByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	if input.Liters == 0 {
		if suggested, ok := validation.SuggestLiters(input.SquareMeters, input.PaintType); ok {
			input.Liters = suggested
		}
	}
	errs := validation.ValidateProject(validation.ProjectSubmission{
		Name:         input.Name,
		Location:     input.Location,
		SquareMeters: input.SquareMeters,
		Liters:       input.Liters,
		PaintType:    input.PaintType,
		Description:  input.Description,
	}, contractor.RegionCode, contractor.SubRegionCode)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	if project.Status == model.ProjectStatusRejected {
		if err := lifecycle.Resubmit(project, principal.ID); err != nil {
			return nil, err
		}
	} else if !project.Status.IsOpen() {
		return nil, &lifecycle.Violation{From: project.Status, AttemptedTo: model.ProjectStatusPending}
	}

	project.Name = strings.TrimSpace(input.Name)
	project.Location = strings.TrimSpace(input.Location)
	project.SquareMeters = input.SquareMeters
	project.Liters = input.Liters
	project.PaintType = nil
	if input.PaintType != "" {
		paintType := input.PaintType
		project.PaintType = &paintType
	}
	project.Description = nil
	if desc := strings.TrimSpace(input.Description); desc != "" {
		project.Description = &desc
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

type ReviewInput struct {
	Decision      lifecycle.Decision
	Notes         string
	PhysicalCheck bool
}

// Review applies a validator's decision to a pending project. Lifecycle
// preconditions are checked before any write, so a refused review leaves
// the stored record untouched.
func (s *ProjectService) Review(ctx context.Context, principal auth.Principal, id uuid.UUID, input ReviewInput) (*model.Project, error) {
	if !principal.IsValidator() {
		return nil, ErrPermissionDenied
	}
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := lifecycle.Review{
		ValidatorID:   principal.ID,
		Decision:      input.Decision,
		Notes:         strings.TrimSpace(input.Notes),
		PhysicalCheck: input.PhysicalCheck,
		At:            time.Now().UTC(),
	}
	if err := lifecycle.Apply(project, review); err != nil {
		return nil, err
	}
	project.UpdatedAt = *project.ValidatedAt

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// AdminList returns every project joined with its contractor, optionally
// narrowed to the contractors of one region or sub-region.
func (s *ProjectService) AdminList(ctx context.Context, principal auth.Principal, regionCode, subRegionCode *string) ([]model.ProjectWithContractor, error) {
	if !principal.IsValidator() {
		return nil, ErrPermissionDenied
	}
	return s.projects.ListWithContractors(ctx, regionCode, subRegionCode)
}

type ImageUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// ImageResult reports the outcome for one uploaded file. A failed file
// never aborts the batch: the remaining files are still attempted and
// the caller shows per-file warnings.
type ImageResult struct {
	FileName string              `json:"fileName"`
	Image    *model.ProjectImage `json:"image,omitempty"`
	Error    string              `json:"error,omitempty"`
}

func (s *ProjectService) UploadImages(ctx context.Context, principal auth.Principal, projectID uuid.UUID, uploads []ImageUpload) ([]ImageResult, error) {
	project, err := s.ownedProject(ctx, principal, projectID)
	if err != nil {
		return nil, err
	}

	order, err := s.projects.NextImageOrder(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	results := make([]ImageResult, 0, len(uploads))
	for _, upload := range uploads {
		result := ImageResult{FileName: upload.FileName}

		key := imageKey(project.ID, upload.FileName)
		url, err := s.images.Upload(ctx, key, upload.Body, upload.ContentType)
		if err != nil {
			s.log.Warn().Err(err).Str("project_id", project.ID.String()).Str("file", upload.FileName).Msg("image upload failed")
			result.Error = "upload failed"
			results = append(results, result)
			continue
		}

		img := &model.ProjectImage{
			ID:         uuid.New(),
			ProjectID:  project.ID,
			ImageURL:   url,
			ImageOrder: order,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.projects.CreateImage(ctx, img); err != nil {
			s.log.Warn().Err(err).Str("project_id", project.ID.String()).Str("file", upload.FileName).Msg("image record failed")
			result.Error = "upload failed"
			results = append(results, result)
			continue
		}
		order++
		result.Image = img
		results = append(results, result)
	}
	return results, nil
}

// DeleteImage removes the stored object best-effort and then the record.
// A storage failure is logged and does not block the record delete.
func (s *ProjectService) DeleteImage(ctx context.Context, principal auth.Principal, projectID, imageID uuid.UUID) error {
	project, err := s.ownedProject(ctx, principal, projectID)
	if err != nil {
		return err
	}

	img, err := s.projects.GetImage(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if img.ProjectID != project.ID {
		return ErrNotFound
	}

	if key, ok := s.images.KeyFromURL(img.ImageURL); ok {
		if err := s.images.Delete(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("image_id", imageID.String()).Msg("storage delete failed, removing record anyway")
		}
	}
	return s.projects.DeleteImage(ctx, imageID)
}

func (s *ProjectService) ownedProject(ctx context.Context, principal auth.Principal, projectID uuid.UUID) (*model.Project, error) {
	if !principal.IsContractor() {
		return nil, ErrPermissionDenied
	}
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if project.ContractorID != principal.ID {
		return nil, ErrPermissionDenied
	}
	return project, nil
}

func imageKey(projectID uuid.UUID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("projects/%s/%s%s", projectID, uuid.NewString(), ext)
}
