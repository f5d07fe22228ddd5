package app

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/neluchetraru/prop-track/internal/utils"
)

// schemaStatements is idempotent DDL run at startup. Children carry
// ON DELETE CASCADE so deleting a property takes its location, tenants,
// images and documents with it.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS properties (
		id         UUID PRIMARY KEY,
		owner_id   UUID NOT NULL,
		name       TEXT NOT NULL,
		notes      TEXT,
		value      DOUBLE PRECISION,
		currency   TEXT NOT NULL DEFAULT 'USD',
		type       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_properties_owner_id ON properties(owner_id)`,

	`CREATE TABLE IF NOT EXISTS property_locations (
		id          UUID PRIMARY KEY,
		property_id UUID NOT NULL UNIQUE REFERENCES properties(id) ON DELETE CASCADE,
		address     TEXT NOT NULL,
		city        TEXT NOT NULL,
		country     TEXT NOT NULL,
		postal_code TEXT NOT NULL,
		latitude    DOUBLE PRECISION,
		longitude   DOUBLE PRECISION
	)`,

	`CREATE TABLE IF NOT EXISTS tenants (
		id               UUID PRIMARY KEY,
		property_id      UUID NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		name             TEXT NOT NULL,
		email            TEXT NOT NULL,
		phone            TEXT NOT NULL DEFAULT '',
		lease_start_date DATE,
		lease_end_date   DATE,
		monthly_rent     DOUBLE PRECISION,
		status           TEXT NOT NULL DEFAULT 'ACTIVE',
		created_at       TIMESTAMPTZ NOT NULL,
		updated_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tenants_property_id ON tenants(property_id)`,

	`CREATE TABLE IF NOT EXISTS property_images (
		id           UUID PRIMARY KEY,
		property_id  UUID NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		source_ref   TEXT NOT NULL,
		display_name TEXT NOT NULL,
		media_type   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_property_images_property_id ON property_images(property_id)`,

	`CREATE TABLE IF NOT EXISTS property_documents (
		id             UUID PRIMARY KEY,
		property_id    UUID NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		source_ref     TEXT NOT NULL,
		display_name   TEXT NOT NULL,
		media_type     TEXT NOT NULL,
		classification TEXT NOT NULL DEFAULT 'OTHER'
	)`,
	`CREATE INDEX IF NOT EXISTS idx_property_documents_property_id ON property_documents(property_id)`,
}

// EnsureSchema creates the aggregate's tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	utils.Logger.Info("property-service schema ensured")
	return nil
}
