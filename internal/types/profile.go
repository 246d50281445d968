// Package types provides type definitions for structured data used throughout the lead-scripter system.
package types

// EmploymentRecord represents one employment span from an enriched profile.
// An empty EndDate means the position is current.
type EmploymentRecord struct {
	EmployerName        string `json:"employer_name"`
	EmployerLinkedInID  string `json:"employer_linkedin_id"`
	EmployerCompanyID   int64  `json:"employer_company_id"`
	EmployeeTitle       string `json:"employee_title"`
	EmployeeDescription string `json:"employee_description"`
	EmployeeLocation    string `json:"employee_location"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date,omitempty"`
}

// ProfileRecord represents an enriched professional profile as returned by the
// enrichment service. Field names follow the service's wire format. The
// past/current partition of employment spans is upheld by the producer; the
// consumers here do not cross-validate it.
type ProfileRecord struct {
	LinkedInProfileURL    string             `json:"linkedin_profile_url"`
	LinkedInFlagshipURL   string             `json:"linkedin_flagship_url"`
	Name                  string             `json:"name"`
	Email                 string             `json:"email"`
	Title                 string             `json:"title"`
	LastUpdated           string             `json:"last_updated"`
	Headline              string             `json:"headline"`
	Summary               string             `json:"summary"`
	NumOfConnections      int                `json:"num_of_connections"`
	Skills                string             `json:"skills"`
	ProfilePictureURL     string             `json:"profile_picture_url"`
	TwitterHandle         string             `json:"twitter_handle"`
	Languages             []string           `json:"languages"`
	AllEmployers          []string           `json:"all_employers"`
	PastEmployers         []EmploymentRecord `json:"past_employers"`
	CurrentEmployers      []EmploymentRecord `json:"current_employers"`
	AllEmployersCompanyID []int64            `json:"all_employers_company_id"`
	AllTitles             []string           `json:"all_titles"`
	AllSchools            []string           `json:"all_schools"`
	AllDegrees            []string           `json:"all_degrees"`
}

// CurrentEmployment returns the first current employment span, or nil if none.
func (p *ProfileRecord) CurrentEmployment() *EmploymentRecord {
	if len(p.CurrentEmployers) == 0 {
		return nil
	}
	return &p.CurrentEmployers[0]
}

// Provenance indicates whether a piece of pipeline data came from the real
// upstream service or from a locally synthesized fallback.
type Provenance string

// Provenance values for fetched and enriched data
const (
	// ProvenanceLive means the upstream service produced the data
	ProvenanceLive Provenance = "real"
	// ProvenanceFallback means a local fallback was substituted after an upstream failure
	ProvenanceFallback Provenance = "fallback"
)
