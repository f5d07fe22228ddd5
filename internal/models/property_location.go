package models

import "github.com/google/uuid"

// PropertyLocation is owned exclusively by its Property: created or replaced
// only as part of a property write, never addressed independently.
type PropertyLocation struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postal_code"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
}
