package pipeline

// Validation messages surfaced to the API caller.
const (
	// MsgMissingFields is returned when either input URL is absent
	MsgMissingFields = "Both companyUrl and linkedinUrl are required"
	// MsgInvalidProfileURL is returned when the profile URL lacks the expected path
	MsgInvalidProfileURL = "Invalid LinkedIn profile URL format"
)

// ValidationError indicates bad or missing request input. User-correctable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
