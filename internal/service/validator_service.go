package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nurpe/paintraffle/internal/auth"
	"github.com/nurpe/paintraffle/internal/model"
	"github.com/nurpe/paintraffle/internal/repository"
)

type ValidatorStore interface {
	Create(ctx context.Context, v *model.Validator) error
	GetByEmail(ctx context.Context, email string) (*model.Validator, error)
}

type ValidatorService struct {
	validators ValidatorStore
	tokens     *auth.Tokens
	log        zerolog.Logger
}

func NewValidatorService(validators ValidatorStore, tokens *auth.Tokens, log zerolog.Logger) *ValidatorService {
	return &ValidatorService{validators: validators, tokens: tokens, log: log}
}

// Login authenticates an admin reviewer and issues a validator token,
// the only way a validator role enters circulation.
func (s *ValidatorService) Login(ctx context.Context, email, password string) (string, *model.Validator, error) {
	validator, err := s.validators.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(validator.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(validator.ID, auth.RoleValidator)
	if err != nil {
		return "", nil, err
	}
	return token, validator, nil
}

// EnsureBootstrap provisions the initial admin account from config at
// startup. A no-op when the credentials are unset or the account already
// exists, so restarts never duplicate or overwrite it.
func (s *ValidatorService) EnsureBootstrap(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil
	}

	if _, err := s.validators.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	validator := &model.Validator{
		ID:           uuid.New(),
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.validators.Create(ctx, validator); err != nil {
		// A concurrent boot may have won the race on the unique index.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil
		}
		return err
	}
	s.log.Info().Str("email", email).Msg("bootstrap validator account created")
	return nil
}
