package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'project_status') THEN
			CREATE TYPE project_status AS ENUM ('pending', 'reviewing', 'validated', 'rejected');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS contractors (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(32) NOT NULL,
		tax_id VARCHAR(32),
		region_code VARCHAR(8),
		sub_region_code VARCHAR(32),
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_contractors_email ON contractors (LOWER(email));`,
	`CREATE TABLE IF NOT EXISTS validators (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		region_code VARCHAR(8),
		sub_region_code VARCHAR(32),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_validators_email ON validators (LOWER(email));`,
	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contractor_id UUID NOT NULL REFERENCES contractors(id),
		name VARCHAR(255) NOT NULL,
		location TEXT NOT NULL,
		square_meters NUMERIC(12,2) NOT NULL,
		liters INTEGER NOT NULL,
		paint_type VARCHAR(64),
		description TEXT,
		status project_status NOT NULL DEFAULT 'pending',
		validation_notes TEXT,
		validator_id UUID,
		validated_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_projects_contractor_id ON projects (contractor_id);`,
	`CREATE INDEX IF NOT EXISTS idx_projects_status ON projects (status);`,
	`CREATE TABLE IF NOT EXISTS project_images (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		image_url TEXT NOT NULL,
		image_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_project_images_project_id ON project_images (project_id);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'contractors' AND column_name = 'region_code') THEN
			ALTER TABLE contractors ADD COLUMN region_code VARCHAR(8);
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'contractors' AND column_name = 'sub_region_code') THEN
			ALTER TABLE contractors ADD COLUMN sub_region_code VARCHAR(32);
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'projects' AND column_name = 'validator_id') THEN
			ALTER TABLE projects ADD COLUMN validator_id UUID;
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'projects' AND column_name = 'validated_at') THEN
			ALTER TABLE projects ADD COLUMN validated_at TIMESTAMPTZ;
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
