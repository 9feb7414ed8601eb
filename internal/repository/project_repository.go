package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/paintraffle/internal/model"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO projects (id, contractor_id, name, location, square_meters, liters, paint_type, description,
			status, validation_notes, validator_id, validated_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.ContractorID, p.Name, p.Location, p.SquareMeters, p.Liters, p.PaintType, p.Description,
		p.Status, p.ValidationNotes, p.ValidatorID, p.ValidatedAt, p.CreatedAt, p.UpdatedAt).Error
}

// Update rewrites every mutable field. Single-record conditional updates
// with last-writer-wins semantics: no version check is performed, a race
// between two validators is an accepted limitation of the storage model.
func (r *ProjectRepository) Update(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE projects
		SET name = ?, location = ?, square_meters = ?, liters = ?, paint_type = ?, description = ?,
			status = ?, validation_notes = ?, validator_id = ?, validated_at = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, p.Location, p.SquareMeters, p.Liters, p.PaintType, p.Description,
		p.Status, p.ValidationNotes, p.ValidatorID, p.ValidatedAt, p.UpdatedAt, p.ID).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var row model.Project
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contractor_id, name, location, square_meters, liters, paint_type, description,
			status, validation_notes, validator_id, validated_at, created_at, updated_at
		FROM projects
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

func (r *ProjectRepository) ListByContractor(ctx context.Context, contractorID uuid.UUID) ([]model.Project, error) {
	var rows []model.Project
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contractor_id, name, location, square_meters, liters, paint_type, description,
			status, validation_notes, validator_id, validated_at, created_at, updated_at
		FROM projects
		WHERE contractor_id = ?
		ORDER BY created_at DESC
	`, contractorID).Scan(&rows).Error
	return rows, err
}

type projectContractorRow struct {
	model.Project
	CID            uuid.UUID `gorm:"column:c_id"`
	CName          string    `gorm:"column:c_name"`
	CEmail         string    `gorm:"column:c_email"`
	CPhone         string    `gorm:"column:c_phone"`
	CRegionCode    *string   `gorm:"column:c_region_code"`
	CSubRegionCode *string   `gorm:"column:c_sub_region_code"`
}

// ListWithContractors returns projects joined with their owning
// contractor, newest first. Region filters apply through the contractor
// who owns the project; projects of contractors outside the filter are
// dropped from the result.
func (r *ProjectRepository) ListWithContractors(ctx context.Context, regionCode, subRegionCode *string) ([]model.ProjectWithContractor, error) {
	query := `
		SELECT p.id, p.contractor_id, p.name, p.location, p.square_meters, p.liters, p.paint_type, p.description,
			p.status, p.validation_notes, p.validator_id, p.validated_at, p.created_at, p.updated_at,
			c.id AS c_id, c.name AS c_name, c.email AS c_email, c.phone AS c_phone,
			c.region_code AS c_region_code, c.sub_region_code AS c_sub_region_code
		FROM projects p
		JOIN contractors c ON c.id = p.contractor_id
	`
	where, args := contractorScope(regionCode, subRegionCode)
	query += where + " ORDER BY p.created_at DESC"

	var raw []projectContractorRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&raw).Error; err != nil {
		return nil, err
	}

	rows := make([]model.ProjectWithContractor, 0, len(raw))
	for _, row := range raw {
		rows = append(rows, model.ProjectWithContractor{
			Project: row.Project,
			Contractor: model.Contractor{
				ID:            row.CID,
				Name:          row.CName,
				Email:         row.CEmail,
				Phone:         row.CPhone,
				RegionCode:    row.CRegionCode,
				SubRegionCode: row.CSubRegionCode,
			},
		})
	}
	return rows, nil
}

// contractorScope builds the WHERE clause narrowing the join to one
// region or sub-region. Each filter stands on its own: sub-region codes
// are globally prefixed, so a sub-region query needs no region.
func contractorScope(regionCode, subRegionCode *string) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if regionCode != nil && *regionCode != "" {
		conds = append(conds, "c.region_code = ?")
		args = append(args, *regionCode)
	}
	if subRegionCode != nil && *subRegionCode != "" {
		conds = append(conds, "c.sub_region_code = ?")
		args = append(args, *subRegionCode)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *ProjectRepository) CreateImage(ctx context.Context, img *model.ProjectImage) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO project_images (id, project_id, image_url, image_order, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, img.ID, img.ProjectID, img.ImageURL, img.ImageOrder, img.CreatedAt).Error
}

func (r *ProjectRepository) ListImages(ctx context.Context, projectID uuid.UUID) ([]model.ProjectImage, error) {
	var rows []model.ProjectImage
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, project_id, image_url, image_order, created_at
		FROM project_images
		WHERE project_id = ?
		ORDER BY image_order ASC
	`, projectID).Scan(&rows).Error
	return rows, err
}

func (r *ProjectRepository) GetImage(ctx context.Context, imageID uuid.UUID) (*model.ProjectImage, error) {
	var row model.ProjectImage
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, project_id, image_url, image_order, created_at
		FROM project_images
		WHERE id = ?
	`, imageID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *ProjectRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM project_images WHERE id = ?`, imageID).Error
}

// NextImageOrder returns one past the highest display order for the
// project. Gaps in the sequence are tolerated, only relative order matters.
func (r *ProjectRepository) NextImageOrder(ctx context.Context, projectID uuid.UUID) (int, error) {
	var row struct {
		MaxOrder *int
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT MAX(image_order) AS max_order FROM project_images WHERE project_id = ?
	`, projectID).Scan(&row).Error
	if err != nil {
		return 0, err
	}
	if row.MaxOrder == nil {
		return 0, nil
	}
	return *row.MaxOrder + 1, nil
}
