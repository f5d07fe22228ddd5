package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/neluchetraru/prop-track/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type PropertyRepository interface {
	// Create inserts the property row together with its nested location,
	// tenants, images and documents in one transaction. The parent row is
	// written first so no child ever references an uncommitted parent.
	Create(ctx context.Context, p *models.Property) error

	// GetByIDAndOwner looks a property up by id AND owner in a single
	// statement. A row owned by someone else scans as pgx.ErrNoRows, same
	// as a row that does not exist.
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Property, error)

	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Property, error)

	// UpdateScalars writes only the top-level scalar columns. The WHERE
	// clause repeats the owner predicate so the mutation re-derives its
	// target instead of trusting an earlier lookup.
	UpdateScalars(ctx context.Context, p *models.Property) (pgconn.CommandTag, error)

	// Delete removes the property row; children go with it via FK cascade.
	Delete(ctx context.Context, id, ownerID uuid.UUID) (pgconn.CommandTag, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func baseSelectProperty() string {
	return `
        SELECT id, owner_id, name, notes, value, currency, type, created_at, updated_at
        FROM properties`
}

/* ---------- create ---------- */

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
        INSERT INTO properties (
            id, owner_id, name, notes, value, currency, type,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW())
    `,
		p.ID,
		p.OwnerID,
		p.Name,
		p.Notes,
		p.Value,
		p.Currency,
		p.Type,
	)
	if err != nil {
		return err
	}

	if p.Location != nil {
		loc := p.Location
		_, err = tx.Exec(ctx, `
            INSERT INTO property_locations (
                id, property_id, address, city, country, postal_code, latitude, longitude
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        `, loc.ID, p.ID, loc.Address, loc.City, loc.Country, loc.PostalCode, loc.Latitude, loc.Longitude)
		if err != nil {
			return err
		}
	}

	for i := range p.Tenants {
		t := &p.Tenants[i]
		_, err = tx.Exec(ctx, `
            INSERT INTO tenants (
                id, property_id, name, email, phone,
                lease_start_date, lease_end_date, monthly_rent, status,
                created_at, updated_at
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW())
        `, t.ID, p.ID, t.Name, t.Email, t.Phone, t.LeaseStartDate, t.LeaseEndDate, t.MonthlyRent, t.Status)
		if err != nil {
			return err
		}
	}

	for i := range p.Images {
		img := &p.Images[i]
		_, err = tx.Exec(ctx, `
            INSERT INTO property_images (
                id, property_id, source_ref, display_name, media_type
            ) VALUES ($1,$2,$3,$4,$5)
        `, img.ID, p.ID, img.SourceRef, img.DisplayName, img.MediaType)
		if err != nil {
			return err
		}
	}

	for i := range p.Documents {
		doc := &p.Documents[i]
		_, err = tx.Exec(ctx, `
            INSERT INTO property_documents (
                id, property_id, source_ref, display_name, media_type, classification
            ) VALUES ($1,$2,$3,$4,$5,$6)
        `, doc.ID, p.ID, doc.SourceRef, doc.DisplayName, doc.MediaType, doc.Classification)
		if err != nil {
			return err
		}
	}

	return nil
}

/* ---------- reads ---------- */

func (r *propertyRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Property, error) {
	row := r.db.QueryRow(ctx, baseSelectProperty()+" WHERE id=$1 AND owner_id=$2", id, ownerID)
	p, err := scanProperty(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachChildren(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+" WHERE owner_id=$1 ORDER BY created_at", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range out {
		if err := r.attachChildren(ctx, p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

/* ---------- update / delete ---------- */

func (r *propertyRepo) UpdateScalars(ctx context.Context, p *models.Property) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `
        UPDATE properties
        SET name=$1, notes=$2, value=$3, currency=$4, type=$5, updated_at=NOW()
        WHERE id=$6 AND owner_id=$7
    `, p.Name, p.Notes, p.Value, p.Currency, p.Type, p.ID, p.OwnerID)
}

func (r *propertyRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1 AND owner_id=$2`, id, ownerID)
}

/* ---------- scanning helpers ---------- */

func scanProperty(row pgx.Row) (*models.Property, error) {
	p := &models.Property{}
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Notes,
		&p.Value,
		&p.Currency,
		&p.Type,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *propertyRepo) attachChildren(ctx context.Context, p *models.Property) error {
	loc := &models.PropertyLocation{}
	err := r.db.QueryRow(ctx, `
        SELECT id, property_id, address, city, country, postal_code, latitude, longitude
        FROM property_locations WHERE property_id=$1
    `, p.ID).Scan(
		&loc.ID, &loc.PropertyID, &loc.Address, &loc.City, &loc.Country,
		&loc.PostalCode, &loc.Latitude, &loc.Longitude,
	)
	switch err {
	case nil:
		p.Location = loc
	case pgx.ErrNoRows:
		// location is 0..1 per property
	default:
		return err
	}

	tenants, err := r.tenantsByPropertyID(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Tenants = tenants

	images, err := r.imagesByPropertyID(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Images = images

	documents, err := r.documentsByPropertyID(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Documents = documents

	return nil
}

func (r *propertyRepo) tenantsByPropertyID(ctx context.Context, propID uuid.UUID) ([]models.Tenant, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, name, email, phone,
               lease_start_date, lease_end_date, monthly_rent, status,
               created_at, updated_at
        FROM tenants WHERE property_id=$1 ORDER BY created_at
    `, propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Tenant
	for rows.Next() {
		var t models.Tenant
		if err := rows.Scan(
			&t.ID, &t.PropertyID, &t.Name, &t.Email, &t.Phone,
			&t.LeaseStartDate, &t.LeaseEndDate, &t.MonthlyRent, &t.Status,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *propertyRepo) imagesByPropertyID(ctx context.Context, propID uuid.UUID) ([]models.PropertyImage, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, source_ref, display_name, media_type
        FROM property_images WHERE property_id=$1
    `, propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PropertyImage
	for rows.Next() {
		var img models.PropertyImage
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.SourceRef, &img.DisplayName, &img.MediaType); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *propertyRepo) documentsByPropertyID(ctx context.Context, propID uuid.UUID) ([]models.PropertyDocument, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, source_ref, display_name, media_type, classification
        FROM property_documents WHERE property_id=$1
    `, propID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PropertyDocument
	for rows.Next() {
		var doc models.PropertyDocument
		if err := rows.Scan(&doc.ID, &doc.PropertyID, &doc.SourceRef, &doc.DisplayName, &doc.MediaType, &doc.Classification); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}
