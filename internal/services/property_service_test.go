package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"

	"github.com/neluchetraru/prop-track/internal/dtos"
	"github.com/neluchetraru/prop-track/internal/models"
	"github.com/neluchetraru/prop-track/internal/utils"
)

// fakePropertyRepo keys rows by (id, owner) the same way the SQL predicates
// do, so ownership misses behave exactly like absent rows.
type fakePropertyRepo struct {
	rows map[uuid.UUID]*models.Property

	created *models.Property
	updated *models.Property
	deleted []uuid.UUID
}

func newFakeRepo() *fakePropertyRepo {
	return &fakePropertyRepo{rows: map[uuid.UUID]*models.Property{}}
}

func (f *fakePropertyRepo) Create(_ context.Context, p *models.Property) error {
	f.created = p
	f.rows[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) GetByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (*models.Property, error) {
	p, ok := f.rows[id]
	if !ok || p.OwnerID != ownerID {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakePropertyRepo) ListByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*models.Property, error) {
	var out []*models.Property
	for _, p := range f.rows {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) UpdateScalars(_ context.Context, p *models.Property) (pgconn.CommandTag, error) {
	existing, ok := f.rows[p.ID]
	if !ok || existing.OwnerID != p.OwnerID {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	f.updated = p
	f.rows[p.ID] = p
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id, ownerID uuid.UUID) (pgconn.CommandTag, error) {
	p, ok := f.rows[id]
	if !ok || p.OwnerID != ownerID {
		return pgconn.CommandTag("DELETE 0"), nil
	}
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return pgconn.CommandTag("DELETE 1"), nil
}

func seedProperty(repo *fakePropertyRepo, ownerID uuid.UUID) *models.Property {
	p := &models.Property{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     "Harbour Flat",
		Currency: models.CurrencyEUR,
		Type:     models.PropertyTypeApartment,
	}
	repo.rows[p.ID] = p
	return p
}

func createRequest() dtos.CreatePropertyRequest {
	return dtos.CreatePropertyRequest{
		Name: "Lakeside Cottage",
		Type: "HOUSE",
		PropertyLocation: &dtos.PropertyLocationInput{
			Address:    "12 Shoreline Drive",
			City:       "Aarhus",
			Country:    "Denmark",
			PostalCode: "8000",
		},
	}
}

func TestGetHidesForeignProperties(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPropertyService(repo)

	owner := uuid.New()
	stranger := uuid.New()
	p := seedProperty(repo, owner)

	got, err := svc.Get(context.Background(), p.ID, owner)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	// A real row owned by someone else and a nonexistent row are the same
	// answer.
	_, err = svc.Get(context.Background(), p.ID, stranger)
	require.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.Get(context.Background(), uuid.New(), owner)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListRequiresOwner(t *testing.T) {
	svc := NewPropertyService(newFakeRepo())

	_, err := svc.List(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, utils.ErrMissingOwner)
}

func TestListScopesToOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPropertyService(repo)

	owner := uuid.New()
	seedProperty(repo, owner)
	seedProperty(repo, owner)
	seedProperty(repo, uuid.New())

	list, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestCreateForcesServerOwnedFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPropertyService(repo)

	owner := uuid.New()
	req := createRequest()
	start := "2026-02-01"
	req.Tenants = []dtos.TenantInput{{Name: "Ana", Email: "ana@example.com", LeaseStartDate: &start}}
	req.Documents = []dtos.DocumentInput{{SourceReference: "ref", DisplayName: "deed", MediaType: "application/pdf"}}

	p, err := svc.Create(context.Background(), owner, req)
	require.NoError(t, err)

	require.Equal(t, owner, p.OwnerID)
	require.NotEqual(t, uuid.Nil, p.ID)
	require.Equal(t, models.CurrencyUSD, p.Currency, "currency defaults when omitted")

	require.NotNil(t, p.Location)
	require.Equal(t, p.ID, p.Location.PropertyID)

	require.Len(t, p.Tenants, 1)
	require.Equal(t, models.TenantStatusActive, p.Tenants[0].Status)
	require.NotNil(t, p.Tenants[0].LeaseStartDate)

	require.Len(t, p.Documents, 1)
	require.Equal(t, models.DocumentOther, p.Documents[0].Classification)
}

func TestCreateRejectsMissingOwner(t *testing.T) {
	svc := NewPropertyService(newFakeRepo())

	_, err := svc.Create(context.Background(), uuid.Nil, createRequest())
	require.ErrorIs(t, err, utils.ErrMissingOwner)
}

func TestCreateRejectsBadLeaseDate(t *testing.T) {
	svc := NewPropertyService(newFakeRepo())

	req := createRequest()
	bad := "02/01/2026"
	req.Tenants = []dtos.TenantInput{{Name: "Ana", Email: "ana@example.com", LeaseStartDate: &bad}}

	_, err := svc.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)
}

func TestUpdateMergesScalars(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPropertyService(repo)

	owner := uuid.New()
	p := seedProperty(repo, owner)
	p.Tenants = []models.Tenant{{ID: uuid.New(), PropertyID: p.ID, Name: "Ana"}}

	newName := "Harbour Flat West"
	newCurrency := "GBP"
	updated, err := svc.Update(context.Background(), p.ID, owner, dtos.UpdatePropertyRequest{
		Name:     &newName,
		Currency: &newCurrency,
	})
	require.NoError(t, err)

	require.Equal(t, "Harbour Flat West", updated.Name)
	require.Equal(t, models.Currency("GBP"), updated.Currency)
	require.Equal(t, models.PropertyTypeApartment, updated.Type, "untouched fields keep their values")
	require.Len(t, updated.Tenants, 1, "nested collections survive scalar updates")
}

func TestUpdateForeignPropertyIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPropertyService(repo)

	p := seedProperty(repo, uuid.New())

	name := "Taken Over"
	_, err := svc.Update(context.Background(), p.ID, uuid.New(), dtos.UpdatePropertyRequest{Name: &name})
	require.ErrorIs(t, err, utils.ErrNotFound)
	require.Nil(t, repo.updated)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPropertyService(repo)

	owner := uuid.New()
	p := seedProperty(repo, owner)

	require.NoError(t, svc.Delete(context.Background(), p.ID, owner))
	require.Equal(t, []uuid.UUID{p.ID}, repo.deleted)

	// Deleting again reports not found, not an internal failure.
	err := svc.Delete(context.Background(), p.ID, owner)
	require.ErrorIs(t, err, utils.ErrNotFound)
}

func TestDeleteForeignPropertyIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPropertyService(repo)

	p := seedProperty(repo, uuid.New())

	err := svc.Delete(context.Background(), p.ID, uuid.New())
	require.ErrorIs(t, err, utils.ErrNotFound)
	require.Empty(t, repo.deleted)
}
