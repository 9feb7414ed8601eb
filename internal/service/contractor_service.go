package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nurpe/paintraffle/internal/auth"
	"github.com/nurpe/paintraffle/internal/model"
	"github.com/nurpe/paintraffle/internal/repository"
	"github.com/nurpe/paintraffle/internal/validation"
)

type ContractorStore interface {
	Create(ctx context.Context, c *model.Contractor) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contractor, error)
	GetByEmail(ctx context.Context, email string) (*model.Contractor, error)
	Update(ctx context.Context, c *model.Contractor) error
}

type ContractorService struct {
	contractors ContractorStore
	tokens      *auth.Tokens
}

func NewContractorService(contractors ContractorStore, tokens *auth.Tokens) *ContractorService {
	return &ContractorService{contractors: contractors, tokens: tokens}
}

type RegisterInput struct {
	Name          string
	Email         string
	Phone         string
	TaxID         string
	Password      string
	RegionCode    string
	SubRegionCode string
}

func (s *ContractorService) Register(ctx context.Context, input RegisterInput) (*model.Contractor, error) {
	errs := validation.ValidateRegistration(validation.Registration{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		TaxID:         input.TaxID,
		Password:      input.Password,
		RegionCode:    input.RegionCode,
		SubRegionCode: input.SubRegionCode,
	})
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contractor := &model.Contractor{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if taxID := strings.ToUpper(strings.TrimSpace(input.TaxID)); taxID != "" {
		contractor.TaxID = &taxID
	}
	regionCode := input.RegionCode
	contractor.RegionCode = &regionCode
	if input.SubRegionCode != "" {
		subRegionCode := input.SubRegionCode
		contractor.SubRegionCode = &subRegionCode
	}

	if err := s.contractors.Create(ctx, contractor); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return contractor, nil
}

func (s *ContractorService) Login(ctx context.Context, email, password string) (string, *model.Contractor, error) {
	contractor, err := s.contractors.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(contractor.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(contractor.ID, auth.RoleContractor)
	if err != nil {
		return "", nil, err
	}
	return token, contractor, nil
}

func (s *ContractorService) Profile(ctx context.Context, principal auth.Principal) (*model.Contractor, error) {
	contractor, err := s.contractors.GetByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contractor, nil
}

type ProfileUpdateInput struct {
	Name  string
	Email string
	Phone string
	TaxID string
}

// UpdateProfile edits name, email, phone and tax id. The region chosen at
// registration stays fixed and keeps scoping later validations.
func (s *ContractorService) UpdateProfile(ctx context.Context, principal auth.Principal, input ProfileUpdateInput) (*model.Contractor, error) {
	contractor, err := s.Profile(ctx, principal)
	if err != nil {
		return nil, err
	}

	errs := validation.ValidateProfile(input.Name, input.Email, input.Phone, input.TaxID, contractor.RegionCode)
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	contractor.Name = strings.TrimSpace(input.Name)
	contractor.Email = strings.TrimSpace(input.Email)
	contractor.Phone = strings.TrimSpace(input.Phone)
	contractor.TaxID = nil
	if taxID := strings.ToUpper(strings.TrimSpace(input.TaxID)); taxID != "" {
		contractor.TaxID = &taxID
	}
	contractor.UpdatedAt = time.Now().UTC()

	if err := s.contractors.Update(ctx, contractor); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return contractor, nil
}
