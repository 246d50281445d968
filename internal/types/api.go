package types

import (
	"github.com/go-playground/validator/v10"
)

// GenerateScriptRequest represents the request body for POST /api/generate-script.
type GenerateScriptRequest struct {
	CompanyURL  string `json:"companyUrl" validate:"required"`
	LinkedInURL string `json:"linkedinUrl" validate:"required"`
}

// Validate validates the GenerateScriptRequest using the validator.
func (r *GenerateScriptRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GenerateScriptResponse represents the success response for POST /api/generate-script.
type GenerateScriptResponse struct {
	Success               bool     `json:"success"`
	Script                string   `json:"script"`
	LeadInsights          Insights `json:"leadInsights"`
	PersonalizationPoints []string `json:"personalizationPoints"`
	CompanySource         string   `json:"companySource"`
	ProfileSource         string   `json:"profileSource"`
	GeneratedAt           string   `json:"generatedAt"`
}

// ErrorResponse represents an error response body. Details is only populated
// for processing failures, not for validation failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
