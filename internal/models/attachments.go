package models

import "github.com/google/uuid"

type DocumentClassification string

const (
	DocumentPersonal             DocumentClassification = "PERSONAL"
	DocumentPropertyRegistration DocumentClassification = "PROPERTY_REGISTRATION"
	DocumentPropertyUtility      DocumentClassification = "PROPERTY_UTILITY"
	DocumentOther                DocumentClassification = "OTHER"
)

// DocumentClassificationLabels maps classification tags to display names.
var DocumentClassificationLabels = map[DocumentClassification]string{
	DocumentPersonal:             "Personal",
	DocumentPropertyRegistration: "Property Registration",
	DocumentPropertyUtility:      "Property Utility",
	DocumentOther:                "Other",
}

// PropertyImage is an uploaded-image descriptor. The upload itself happens
// out of band; we only store the reference.
type PropertyImage struct {
	ID          uuid.UUID `json:"id"`
	PropertyID  uuid.UUID `json:"property_id"`
	SourceRef   string    `json:"source_ref"`
	DisplayName string    `json:"display_name"`
	MediaType   string    `json:"media_type"`
}

type PropertyDocument struct {
	ID             uuid.UUID              `json:"id"`
	PropertyID     uuid.UUID              `json:"property_id"`
	SourceRef      string                 `json:"source_ref"`
	DisplayName    string                 `json:"display_name"`
	MediaType      string                 `json:"media_type"`
	Classification DocumentClassification `json:"classification"`
}
