package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/nurpe/paintraffle/internal/model"
)

// ErrDuplicateEmail maps the unique index on contractors.email.
var ErrDuplicateEmail = errors.New("email already registered")

type ContractorRepository struct {
	db *gorm.DB
}

func NewContractorRepository(db *gorm.DB) *ContractorRepository {
	return &ContractorRepository{db: db}
}

func (r *ContractorRepository) Create(ctx context.Context, c *model.Contractor) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO contractors (id, name, email, phone, tax_id, region_code, sub_region_code, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Email, c.Phone, c.TaxID, c.RegionCode, c.SubRegionCode, c.PasswordHash, c.CreatedAt, c.UpdatedAt).Error
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *ContractorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Contractor, error) {
	var row model.Contractor
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, email, phone, tax_id, region_code, sub_region_code, password_hash, created_at, updated_at
		FROM contractors
		WHERE id = ?
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *ContractorRepository) GetByEmail(ctx context.Context, email string) (*model.Contractor, error) {
	var row model.Contractor
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, email, phone, tax_id, region_code, sub_region_code, password_hash, created_at, updated_at
		FROM contractors
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

// Update writes the profile fields only. Region and sub-region are fixed
// at registration and never rewritten here.
func (r *ContractorRepository) Update(ctx context.Context, c *model.Contractor) error {
	err := r.db.WithContext(ctx).Exec(`
		UPDATE contractors
		SET name = ?, email = ?, phone = ?, tax_id = ?, updated_at = ?
		WHERE id = ?
	`, c.Name, c.Email, c.Phone, c.TaxID, c.UpdatedAt, c.ID).Error
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
