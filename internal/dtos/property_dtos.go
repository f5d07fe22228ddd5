package dtos

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neluchetraru/prop-track/internal/models"
)

/* ------------------------------------------------------------------
   Request DTOs

   Field names follow the wire contract (camelCase). Neither request
   type carries an owner id or, on create, a property id: the server
   derives the owner from the session and generates ids itself.
------------------------------------------------------------------ */

type PropertyLocationInput struct {
	Address    string   `json:"address" validate:"required,min=5,max=200"`
	City       string   `json:"city" validate:"required,min=2,max=100"`
	Country    string   `json:"country" validate:"required,min=2,max=100"`
	PostalCode string   `json:"postalCode" validate:"required,min=2,max=20"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type TenantInput struct {
	Name           string   `json:"name" validate:"required,min=2"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone"`
	LeaseStartDate *string  `json:"leaseStartDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LeaseEndDate   *string  `json:"leaseEndDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	MonthlyRent    *float64 `json:"monthlyRent,omitempty"`
}

type ImageInput struct {
	SourceReference string `json:"sourceReference" validate:"required"`
	DisplayName     string `json:"displayName" validate:"required"`
	MediaType       string `json:"mediaType" validate:"required"`
}

type DocumentInput struct {
	SourceReference string `json:"sourceReference" validate:"required"`
	DisplayName     string `json:"displayName" validate:"required"`
	MediaType       string `json:"mediaType" validate:"required"`
	Classification  string `json:"classification,omitempty" validate:"omitempty,oneof=PERSONAL PROPERTY_REGISTRATION PROPERTY_UTILITY OTHER"`
}

type CreatePropertyRequest struct {
	Name             string                 `json:"name" validate:"required,min=3,max=50"`
	Notes            *string                `json:"notes,omitempty"`
	Value            *float64               `json:"value,omitempty" validate:"omitempty,gte=0"`
	Currency         string                 `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP JPY"`
	Type             string                 `json:"type" validate:"required,oneof=HOUSE APARTMENT VILLA COMMERCIAL"`
	PropertyLocation *PropertyLocationInput `json:"propertyLocation,omitempty"`
	Tenants          []TenantInput          `json:"tenants,omitempty" validate:"dive"`
	Images           []ImageInput           `json:"images,omitempty" validate:"dive"`
	Documents        []DocumentInput        `json:"documents,omitempty" validate:"dive"`
}

// Normalize trims free-text fields before validation, matching the
// client-side rules so a value that passed the wizard passes here too.
func (r *CreatePropertyRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.PropertyLocation != nil {
		r.PropertyLocation.Address = strings.TrimSpace(r.PropertyLocation.Address)
		r.PropertyLocation.City = strings.TrimSpace(r.PropertyLocation.City)
		r.PropertyLocation.Country = strings.TrimSpace(r.PropertyLocation.Country)
		r.PropertyLocation.PostalCode = strings.TrimSpace(r.PropertyLocation.PostalCode)
	}
	for i := range r.Tenants {
		r.Tenants[i].Name = strings.TrimSpace(r.Tenants[i].Name)
		r.Tenants[i].Email = strings.TrimSpace(r.Tenants[i].Email)
	}
}

// UpdatePropertyRequest carries scalar fields only. Nested collections
// cannot be updated through this path.
type UpdatePropertyRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=3,max=50"`
	Notes    *string  `json:"notes,omitempty"`
	Value    *float64 `json:"value,omitempty" validate:"omitempty,gte=0"`
	Currency *string  `json:"currency,omitempty" validate:"omitempty,oneof=USD EUR GBP JPY"`
	Type     *string  `json:"type,omitempty" validate:"omitempty,oneof=HOUSE APARTMENT VILLA COMMERCIAL"`
}

func (r *UpdatePropertyRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
}

/* ------------------------------------------------------------------
   Response DTOs
------------------------------------------------------------------ */

type PropertyLocationDTO struct {
	ID         uuid.UUID `json:"id"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postalCode"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
}

type TenantDTO struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	LeaseStartDate *string   `json:"leaseStartDate,omitempty"`
	LeaseEndDate   *string   `json:"leaseEndDate,omitempty"`
	MonthlyRent    *float64  `json:"monthlyRent,omitempty"`
	Status         string    `json:"status"`
}

type ImageDTO struct {
	ID              uuid.UUID `json:"id"`
	SourceReference string    `json:"sourceReference"`
	DisplayName     string    `json:"displayName"`
	MediaType       string    `json:"mediaType"`
}

type DocumentDTO struct {
	ID              uuid.UUID `json:"id"`
	SourceReference string    `json:"sourceReference"`
	DisplayName     string    `json:"displayName"`
	MediaType       string    `json:"mediaType"`
	Classification  string    `json:"classification"`
}

type PropertyDTO struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	Notes     *string   `json:"notes,omitempty"`
	Value     *float64  `json:"value,omitempty"`
	Currency  string    `json:"currency"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	PropertyLocation *PropertyLocationDTO `json:"propertyLocation,omitempty"`
	Tenants          []TenantDTO          `json:"tenants,omitempty"`
	Images           []ImageDTO           `json:"images,omitempty"`
	Documents        []DocumentDTO        `json:"documents,omitempty"`
}

func NewPropertyDTO(p *models.Property) PropertyDTO {
	dto := PropertyDTO{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Notes:     p.Notes,
		Value:     p.Value,
		Currency:  string(p.Currency),
		Type:      string(p.Type),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.Location != nil {
		dto.PropertyLocation = &PropertyLocationDTO{
			ID:         p.Location.ID,
			Address:    p.Location.Address,
			City:       p.Location.City,
			Country:    p.Location.Country,
			PostalCode: p.Location.PostalCode,
			Latitude:   p.Location.Latitude,
			Longitude:  p.Location.Longitude,
		}
	}

	for _, t := range p.Tenants {
		dto.Tenants = append(dto.Tenants, TenantDTO{
			ID:             t.ID,
			Name:           t.Name,
			Email:          t.Email,
			Phone:          t.Phone,
			LeaseStartDate: formatISODate(t.LeaseStartDate),
			LeaseEndDate:   formatISODate(t.LeaseEndDate),
			MonthlyRent:    t.MonthlyRent,
			Status:         string(t.Status),
		})
	}

	for _, img := range p.Images {
		dto.Images = append(dto.Images, ImageDTO{
			ID:              img.ID,
			SourceReference: img.SourceRef,
			DisplayName:     img.DisplayName,
			MediaType:       img.MediaType,
		})
	}

	for _, doc := range p.Documents {
		dto.Documents = append(dto.Documents, DocumentDTO{
			ID:              doc.ID,
			SourceReference: doc.SourceRef,
			DisplayName:     doc.DisplayName,
			MediaType:       doc.MediaType,
			Classification:  string(doc.Classification),
		})
	}

	return dto
}

func NewPropertyDTOs(list []*models.Property) []PropertyDTO {
	out := make([]PropertyDTO, 0, len(list))
	for _, p := range list {
		out = append(out, NewPropertyDTO(p))
	}
	return out
}

func formatISODate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
