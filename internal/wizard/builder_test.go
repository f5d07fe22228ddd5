package wizard

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildCreateRequestMapsDraft(t *testing.T) {
	d := validDraft()
	d.Notes = "needs a new roof"
	v := 425000.0
	d.Value = &v
	rent := 1500.0
	d.Tenants = []TenantDraft{{
		Name:           "Ana",
		Email:          "ana@example.com",
		LeaseStartDate: "2026-01-01",
		MonthlyRent:    &rent,
	}}
	d.Images = []ImageDraft{{SourceReference: "file:///img.jpg", DisplayName: "front", MediaType: "image/jpeg"}}
	d.Documents = []DocumentDraft{{SourceReference: "file:///deed.pdf", DisplayName: "deed", MediaType: "application/pdf", Classification: "PROPERTY_REGISTRATION"}}

	req := BuildCreateRequest(d)

	require.Equal(t, "Lakeside Cottage", req.Name)
	require.NotNil(t, req.Notes)
	require.Equal(t, "needs a new roof", *req.Notes)
	require.Equal(t, &v, req.Value)
	require.Equal(t, "USD", req.Currency)
	require.Equal(t, "HOUSE", req.Type)

	require.NotNil(t, req.PropertyLocation)
	require.Equal(t, "12 Shoreline Drive", req.PropertyLocation.Address)

	require.Len(t, req.Tenants, 1)
	require.NotNil(t, req.Tenants[0].LeaseStartDate)
	require.Equal(t, "2026-01-01", *req.Tenants[0].LeaseStartDate)
	require.Nil(t, req.Tenants[0].LeaseEndDate)

	require.Len(t, req.Images, 1)
	require.Len(t, req.Documents, 1)
	require.Equal(t, "PROPERTY_REGISTRATION", req.Documents[0].Classification)
}

func TestBuildCreateRequestBlankTenantPhonePassesThrough(t *testing.T) {
	d := validDraft()
	d.Tenants = []TenantDraft{{Name: "Ana", Email: "ana@example.com"}}

	req := BuildCreateRequest(d)
	require.Equal(t, "", req.Tenants[0].Phone)
}

func TestBuildCreateRequestEmptyNotesOmitted(t *testing.T) {
	req := BuildCreateRequest(validDraft())
	require.Nil(t, req.Notes)
}

// The payload must not be able to name an owner or a property id; the
// server derives both. Checking the marshaled JSON keys makes that a
// structural guarantee, not a convention.
func TestBuildCreateRequestCarriesNoIdentity(t *testing.T) {
	req := BuildCreateRequest(validDraft())
	b, err := json.Marshal(req)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	require.NotContains(t, m, "id")
	require.NotContains(t, m, "ownerId")
	require.NotContains(t, m, "userId")
}

func TestBuildUpdateRequestScalarsOnly(t *testing.T) {
	d := validDraft()
	d.Notes = "repainted"
	d.Tenants = []TenantDraft{{Name: "Ana", Email: "ana@example.com"}}
	d.Images = []ImageDraft{{SourceReference: "x", DisplayName: "y", MediaType: "z"}}

	req := BuildUpdateRequest(d)

	require.NotNil(t, req.Name)
	require.Equal(t, "Lakeside Cottage", *req.Name)
	require.NotNil(t, req.Notes)
	require.Equal(t, "USD", *req.Currency)
	require.Equal(t, "HOUSE", *req.Type)

	// Nested collections never ride along on updates.
	b, err := json.Marshal(req)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	require.NotContains(t, m, "tenants")
	require.NotContains(t, m, "images")
	require.NotContains(t, m, "documents")
	require.NotContains(t, m, "propertyLocation")
}
