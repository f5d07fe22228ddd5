package wizard

import "github.com/neluchetraru/prop-track/internal/dtos"

// BuildCreateRequest turns a validated draft into the nested-write payload
// the server expects. The result carries no owner id and no property id:
// the server derives the owner from the session and generates the id.
func BuildCreateRequest(d Draft) dtos.CreatePropertyRequest {
	req := dtos.CreatePropertyRequest{
		Name:     d.Name,
		Value:    d.Value,
		Currency: d.Currency,
		Type:     d.Type,
	}
	if d.Notes != "" {
		notes := d.Notes
		req.Notes = &notes
	}

	req.PropertyLocation = &dtos.PropertyLocationInput{
		Address:    d.Location.Address,
		City:       d.Location.City,
		Country:    d.Location.Country,
		PostalCode: d.Location.PostalCode,
		Latitude:   d.Location.Latitude,
		Longitude:  d.Location.Longitude,
	}

	for _, t := range d.Tenants {
		tenant := dtos.TenantInput{
			Name:        t.Name,
			Email:       t.Email,
			Phone:       t.Phone, // empty string when the form left it blank
			MonthlyRent: t.MonthlyRent,
		}
		if t.LeaseStartDate != "" {
			start := t.LeaseStartDate
			tenant.LeaseStartDate = &start
		}
		if t.LeaseEndDate != "" {
			end := t.LeaseEndDate
			tenant.LeaseEndDate = &end
		}
		req.Tenants = append(req.Tenants, tenant)
	}

	for _, img := range d.Images {
		req.Images = append(req.Images, dtos.ImageInput{
			SourceReference: img.SourceReference,
			DisplayName:     img.DisplayName,
			MediaType:       img.MediaType,
		})
	}

	for _, doc := range d.Documents {
		req.Documents = append(req.Documents, dtos.DocumentInput{
			SourceReference: doc.SourceReference,
			DisplayName:     doc.DisplayName,
			MediaType:       doc.MediaType,
			Classification:  doc.Classification,
		})
	}

	return req
}

// BuildUpdateRequest maps the draft's scalar fields only; the update path
// never touches nested collections.
func BuildUpdateRequest(d Draft) dtos.UpdatePropertyRequest {
	name := d.Name
	currency := d.Currency
	ptype := d.Type
	req := dtos.UpdatePropertyRequest{
		Name:     &name,
		Value:    d.Value,
		Currency: &currency,
		Type:     &ptype,
	}
	if d.Notes != "" {
		notes := d.Notes
		req.Notes = &notes
	}
	return req
}
