package wizard

import "strings"

// Draft accumulates the aggregate across the wizard's steps. It lives only
// for the duration of the screen: built on mount, mutated by field edits,
// discarded on successful submit or exit. It is never persisted.
type Draft struct {
	Name     string   `validate:"required,min=3,max=50"`
	Notes    string   `validate:"-"`
	Value    *float64 `validate:"omitempty,gte=0"`
	Currency string   `validate:"required,oneof=USD EUR GBP JPY"`
	Type     string   `validate:"required,oneof=HOUSE APARTMENT VILLA COMMERCIAL"`

	Location  LocationDraft   `validate:"required"`
	Tenants   []TenantDraft   `validate:"dive"`
	Images    []ImageDraft    `validate:"dive"`
	Documents []DocumentDraft `validate:"dive"`
}

type LocationDraft struct {
	Address    string   `validate:"required,min=5,max=200"`
	City       string   `validate:"required,min=2,max=100"`
	Country    string   `validate:"required,min=2,max=100"`
	PostalCode string   `validate:"required,min=2,max=20"`
	Latitude   *float64 `validate:"-"`
	Longitude  *float64 `validate:"-"`
}

type TenantDraft struct {
	Name           string   `validate:"required,min=2"`
	Email          string   `validate:"required,email"`
	Phone          string   `validate:"-"`
	LeaseStartDate string   `validate:"omitempty,datetime=2006-01-02"`
	LeaseEndDate   string   `validate:"omitempty,datetime=2006-01-02"`
	MonthlyRent    *float64 `validate:"-"`
}

type ImageDraft struct {
	SourceReference string `validate:"required"`
	DisplayName     string `validate:"required"`
	MediaType       string `validate:"required"`
}

type DocumentDraft struct {
	SourceReference string `validate:"required"`
	DisplayName     string `validate:"required"`
	MediaType       string `validate:"required"`
	Classification  string `validate:"omitempty,oneof=PERSONAL PROPERTY_REGISTRATION PROPERTY_UTILITY OTHER"`
}

// NewDraft returns a draft with the same defaults the form starts with.
func NewDraft() Draft {
	return Draft{
		Currency: "USD",
		Type:     "HOUSE",
	}
}

func (d *Draft) normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Location.Address = strings.TrimSpace(d.Location.Address)
	d.Location.City = strings.TrimSpace(d.Location.City)
	d.Location.Country = strings.TrimSpace(d.Location.Country)
	d.Location.PostalCode = strings.TrimSpace(d.Location.PostalCode)
	for i := range d.Tenants {
		d.Tenants[i].Name = strings.TrimSpace(d.Tenants[i].Name)
		d.Tenants[i].Email = strings.TrimSpace(d.Tenants[i].Email)
	}
}
