package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/paintraffle/internal/model"
)

type ValidatorRepository struct {
	db *gorm.DB
}

func NewValidatorRepository(db *gorm.DB) *ValidatorRepository {
	return &ValidatorRepository{db: db}
}

func (r *ValidatorRepository) Create(ctx context.Context, v *model.Validator) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO validators (id, name, email, password_hash, region_code, sub_region_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, v.ID, v.Name, v.Email, v.PasswordHash, v.RegionCode, v.SubRegionCode, v.CreatedAt, v.UpdatedAt).Error
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *ValidatorRepository) GetByEmail(ctx context.Context, email string) (*model.Validator, error) {
	var row model.Validator
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, email, password_hash, region_code, sub_region_code, created_at, updated_at
		FROM validators
		WHERE LOWER(email) = LOWER(?)
	`, email).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
