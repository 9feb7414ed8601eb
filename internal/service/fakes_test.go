package service

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/paintraffle/internal/model"
	"github.com/nurpe/paintraffle/internal/repository"
)

type fakeContractorStore struct {
	contractors map[uuid.UUID]*model.Contractor
}

func newFakeContractorStore() *fakeContractorStore {
	return &fakeContractorStore{contractors: make(map[uuid.UUID]*model.Contractor)}
}

func (s *fakeContractorStore) Create(_ context.Context, c *model.Contractor) error {
	for _, existing := range s.contractors {
		if strings.EqualFold(existing.Email, c.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *c
	s.contractors[c.ID] = &clone
	return nil
}

func (s *fakeContractorStore) GetByID(_ context.Context, id uuid.UUID) (*model.Contractor, error) {
	c, ok := s.contractors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *fakeContractorStore) GetByEmail(_ context.Context, email string) (*model.Contractor, error) {
	for _, c := range s.contractors {
		if strings.EqualFold(c.Email, email) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeContractorStore) Update(_ context.Context, c *model.Contractor) error {
	if _, ok := s.contractors[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for id, existing := range s.contractors {
		if id != c.ID && strings.EqualFold(existing.Email, c.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *c
	s.contractors[c.ID] = &clone
	return nil
}

type fakeValidatorStore struct {
	validators map[uuid.UUID]*model.Validator
}

func newFakeValidatorStore() *fakeValidatorStore {
	return &fakeValidatorStore{validators: make(map[uuid.UUID]*model.Validator)}
}

func (s *fakeValidatorStore) Create(_ context.Context, v *model.Validator) error {
	for _, existing := range s.validators {
		if strings.EqualFold(existing.Email, v.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *v
	s.validators[v.ID] = &clone
	return nil
}

func (s *fakeValidatorStore) GetByEmail(_ context.Context, email string) (*model.Validator, error) {
	for _, v := range s.validators {
		if strings.EqualFold(v.Email, email) {
			clone := *v
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeProjectStore struct {
	projects map[uuid.UUID]*model.Project
	images   map[uuid.UUID]*model.ProjectImage

	joinedRows []model.ProjectWithContractor
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{
		projects: make(map[uuid.UUID]*model.Project),
		images:   make(map[uuid.UUID]*model.ProjectImage),
	}
}

func (s *fakeProjectStore) Create(_ context.Context, p *model.Project) error {
	clone := *p
	s.projects[p.ID] = &clone
	return nil
}

func (s *fakeProjectStore) Update(_ context.Context, p *model.Project) error {
	if _, ok := s.projects[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *p
	s.projects[p.ID] = &clone
	return nil
}

func (s *fakeProjectStore) GetByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *fakeProjectStore) ListByContractor(_ context.Context, contractorID uuid.UUID) ([]model.Project, error) {
	var out []model.Project
	for _, p := range s.projects {
		if p.ContractorID == contractorID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeProjectStore) ListWithContractors(_ context.Context, _, _ *string) ([]model.ProjectWithContractor, error) {
	return s.joinedRows, nil
}

func (s *fakeProjectStore) CreateImage(_ context.Context, img *model.ProjectImage) error {
	clone := *img
	s.images[img.ID] = &clone
	return nil
}

func (s *fakeProjectStore) ListImages(_ context.Context, projectID uuid.UUID) ([]model.ProjectImage, error) {
	var out []model.ProjectImage
	for _, img := range s.images {
		if img.ProjectID == projectID {
			out = append(out, *img)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ImageOrder < out[j].ImageOrder })
	return out, nil
}

func (s *fakeProjectStore) GetImage(_ context.Context, imageID uuid.UUID) (*model.ProjectImage, error) {
	img, ok := s.images[imageID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *img
	return &clone, nil
}

func (s *fakeProjectStore) DeleteImage(_ context.Context, imageID uuid.UUID) error {
	if _, ok := s.images[imageID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.images, imageID)
	return nil
}

func (s *fakeProjectStore) NextImageOrder(_ context.Context, projectID uuid.UUID) (int, error) {
	next := 1
	for _, img := range s.images {
		if img.ProjectID == projectID && img.ImageOrder >= next {
			next = img.ImageOrder + 1
		}
	}
	return next, nil
}

const fakeImageBaseURL = "https://images.test/"

type fakeImageStore struct {
	uploads   []string
	deleted   []string
	failKeys  map[string]error
	deleteErr error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{failKeys: make(map[string]error)}
}

func (s *fakeImageStore) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	for prefix, err := range s.failKeys {
		if strings.Contains(key, prefix) {
			return "", err
		}
	}
	s.uploads = append(s.uploads, key)
	return fakeImageBaseURL + key, nil
}

func (s *fakeImageStore) Delete(_ context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeImageStore) KeyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, fakeImageBaseURL) {
		return "", false
	}
	return strings.TrimPrefix(url, fakeImageBaseURL), true
}
