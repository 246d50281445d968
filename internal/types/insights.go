package types

// Insights is the derived per-request summary of a ProfileRecord. It is
// recomputed for every request and never persisted.
type Insights struct {
	Name             string            `json:"name"`
	CurrentRole      string            `json:"currentRole"`
	CurrentCompany   string            `json:"currentCompany"`
	Headline         string            `json:"headline"`
	Summary          string            `json:"summary"`
	Skills           []string          `json:"skills"`
	Education        []string          `json:"education"`
	ExperienceLevel  int               `json:"experienceLevel"`
	ConnectionCount  int               `json:"connectionCount"`
	RecentExperience *EmploymentRecord `json:"recentExperience"`
	Languages        []string          `json:"languages"`
}
