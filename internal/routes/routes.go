package routes

const (
	// Health
	Health = "/health"

	// Property aggregate endpoints
	PropertiesBase = "/properties"
	PropertyByID   = "/properties/{id}"
)
