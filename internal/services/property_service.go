package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/neluchetraru/prop-track/internal/dtos"
	"github.com/neluchetraru/prop-track/internal/models"
	"github.com/neluchetraru/prop-track/internal/repositories"
	"github.com/neluchetraru/prop-track/internal/utils"
)

// PropertyService is the ownership-scoped persistence boundary for the
// property aggregate. It is stateless between calls; all state lives in the
// backing store.
type PropertyService struct {
	propRepo repositories.PropertyRepository
}

func NewPropertyService(propRepo repositories.PropertyRepository) *PropertyService {
	return &PropertyService{propRepo: propRepo}
}

// authorize is the single ownership gate used by every read-one and
// mutating operation. A property that does not exist and a property owned
// by another user both come back as ErrNotFound; callers cannot tell the
// difference and neither can their users.
func (s *PropertyService) authorize(ctx context.Context, requesterID, propertyID uuid.UUID) (*models.Property, error) {
	p, err := s.propRepo.GetByIDAndOwner(ctx, propertyID, requesterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns every property owned by ownerID with children attached.
// An empty ownerID is a caller bug, not a soft error.
func (s *PropertyService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Property, error) {
	if ownerID == uuid.Nil {
		return nil, utils.ErrMissingOwner
	}
	return s.propRepo.ListByOwnerID(ctx, ownerID)
}

func (s *PropertyService) Get(ctx context.Context, id, ownerID uuid.UUID) (*models.Property, error) {
	return s.authorize(ctx, ownerID, id)
}

// Create inserts the aggregate in one transaction. The owner always comes
// from the authenticated session; the payload has no owner field to trust.
func (s *PropertyService) Create(ctx context.Context, ownerID uuid.UUID, req dtos.CreatePropertyRequest) (*models.Property, error) {
	if ownerID == uuid.Nil {
		return nil, utils.ErrMissingOwner
	}

	p := &models.Property{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     req.Name,
		Notes:    req.Notes,
		Value:    req.Value,
		Currency: models.CurrencyUSD,
		Type:     models.PropertyType(req.Type),
	}
	if req.Currency != "" {
		p.Currency = models.Currency(req.Currency)
	}

	if req.PropertyLocation != nil {
		p.Location = &models.PropertyLocation{
			ID:         uuid.New(),
			PropertyID: p.ID,
			Address:    req.PropertyLocation.Address,
			City:       req.PropertyLocation.City,
			Country:    req.PropertyLocation.Country,
			PostalCode: req.PropertyLocation.PostalCode,
			Latitude:   req.PropertyLocation.Latitude,
			Longitude:  req.PropertyLocation.Longitude,
		}
	}

	for _, t := range req.Tenants {
		tenant := models.Tenant{
			ID:          uuid.New(),
			PropertyID:  p.ID,
			Name:        t.Name,
			Email:       t.Email,
			Phone:       t.Phone,
			MonthlyRent: t.MonthlyRent,
			Status:      models.TenantStatusActive,
		}
		if t.LeaseStartDate != nil {
			d, err := parseISODate(*t.LeaseStartDate)
			if err != nil {
				return nil, err
			}
			tenant.LeaseStartDate = d
		}
		if t.LeaseEndDate != nil {
			d, err := parseISODate(*t.LeaseEndDate)
			if err != nil {
				return nil, err
			}
			tenant.LeaseEndDate = d
		}
		p.Tenants = append(p.Tenants, tenant)
	}

	for _, img := range req.Images {
		p.Images = append(p.Images, models.PropertyImage{
			ID:          uuid.New(),
			PropertyID:  p.ID,
			SourceRef:   img.SourceReference,
			DisplayName: img.DisplayName,
			MediaType:   img.MediaType,
		})
	}

	for _, doc := range req.Documents {
		classification := models.DocumentClassification(doc.Classification)
		if classification == "" {
			classification = models.DocumentOther
		}
		p.Documents = append(p.Documents, models.PropertyDocument{
			ID:             uuid.New(),
			PropertyID:     p.ID,
			SourceRef:      doc.SourceReference,
			DisplayName:    doc.DisplayName,
			MediaType:      doc.MediaType,
			Classification: classification,
		})
	}

	if err := s.propRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	// Read back so timestamps and child rows reflect what was stored.
	return s.authorize(ctx, ownerID, p.ID)
}

// Update mutates top-level scalar fields only. Nested collections are out
// of this path's contract. The UPDATE keeps the owner predicate, so a row
// deleted or re-owned between the gate check and the write still reads as
// not found.
func (s *PropertyService) Update(ctx context.Context, id, ownerID uuid.UUID, req dtos.UpdatePropertyRequest) (*models.Property, error) {
	p, err := s.authorize(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Notes != nil {
		p.Notes = req.Notes
	}
	if req.Value != nil {
		p.Value = req.Value
	}
	if req.Currency != nil {
		p.Currency = models.Currency(*req.Currency)
	}
	if req.Type != nil {
		p.Type = models.PropertyType(*req.Type)
	}

	tag, err := s.propRepo.UpdateScalars(ctx, p)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, utils.ErrNotFound
	}

	return s.authorize(ctx, ownerID, id)
}

// Delete removes the property and, via cascade, its children. Deleting an
// already-deleted id reports not found rather than failing.
func (s *PropertyService) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	if _, err := s.authorize(ctx, ownerID, id); err != nil {
		return err
	}

	tag, err := s.propRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func parseISODate(s string) (*time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
