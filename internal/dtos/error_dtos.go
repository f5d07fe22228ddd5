package dtos

// ValidationErrorDetail is the structured form of one failed field rule in
// an error response.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
