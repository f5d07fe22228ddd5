package models

import (
	"time"

	"github.com/google/uuid"
)

type TenantStatus string

const (
	TenantStatusActive   TenantStatus = "ACTIVE"
	TenantStatusInactive TenantStatus = "INACTIVE"
)

// Tenant is a child of exactly one Property; its lifecycle is tied to the
// aggregate write that introduced it.
type Tenant struct {
	ID             uuid.UUID    `json:"id"`
	PropertyID     uuid.UUID    `json:"property_id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	LeaseStartDate *time.Time   `json:"lease_start_date,omitempty"`
	LeaseEndDate   *time.Time   `json:"lease_end_date,omitempty"`
	MonthlyRent    *float64     `json:"monthly_rent,omitempty"`
	Status         TenantStatus `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
