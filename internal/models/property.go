package models

import (
	"time"

	"github.com/google/uuid"
)

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "HOUSE"
	PropertyTypeApartment  PropertyType = "APARTMENT"
	PropertyTypeVilla      PropertyType = "VILLA"
	PropertyTypeCommercial PropertyType = "COMMERCIAL"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
)

// Property is the aggregate root. OwnerID is set once at creation from the
// authenticated session and never from client input.
type Property struct {
	ID        uuid.UUID    `json:"id"`
	OwnerID   uuid.UUID    `json:"owner_id"`
	Name      string       `json:"name"`
	Notes     *string      `json:"notes,omitempty"`
	Value     *float64     `json:"value,omitempty"`
	Currency  Currency     `json:"currency"`
	Type      PropertyType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`

	Location  *PropertyLocation  `json:"location,omitempty"`
	Tenants   []Tenant           `json:"tenants,omitempty"`
	Images    []PropertyImage    `json:"images,omitempty"`
	Documents []PropertyDocument `json:"documents,omitempty"`
}
