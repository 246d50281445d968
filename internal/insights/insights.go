// Package insights derives per-request lead summaries and talking points from
// an enriched profile. Everything here is a pure function: no I/O, no failure
// modes. Missing optional fields degrade to sentinel or empty values.
package insights

import (
	"fmt"
	"strings"

	"github.com/jonathan/lead-scripter/internal/types"
)

const (
	maxSkills      = 5
	maxSchools     = 2
	maxPointSkills = 3

	// connectionFloor is the strict lower bound for the network-size talking point.
	connectionFloor = 500
)

// UnknownCompany is the sentinel used when no current employment exists.
const UnknownCompany = "Unknown"

// Extract derives the fixed Insights summary from a profile.
func Extract(profile *types.ProfileRecord) types.Insights {
	ins := types.Insights{
		Name:             profile.Name,
		CurrentRole:      profile.Title,
		CurrentCompany:   UnknownCompany,
		Headline:         profile.Headline,
		Summary:          profile.Summary,
		Skills:           splitSkills(profile.Skills, maxSkills),
		Education:        firstN(profile.AllSchools, maxSchools),
		ExperienceLevel:  len(profile.AllTitles),
		ConnectionCount:  profile.NumOfConnections,
		RecentExperience: profile.CurrentEmployment(),
		Languages:        profile.Languages,
	}
	if current := profile.CurrentEmployment(); current != nil {
		ins.CurrentCompany = current.EmployerName
	}
	if ins.Languages == nil {
		ins.Languages = []string{}
	}
	return ins
}

// PersonalizationPoints derives the ordered talking-point list from a profile.
// Lines whose condition does not hold are omitted without reordering the rest.
// companyText is part of the derivation contract but currently unreferenced.
func PersonalizationPoints(profile *types.ProfileRecord, companyText string) []string {
	_ = companyText

	points := []string{}

	if len(profile.AllTitles) > 1 {
		points = append(points, fmt.Sprintf("Career growth from %s to %s", profile.AllTitles[0], profile.Title))
	}

	if current := profile.CurrentEmployment(); current != nil {
		points = append(points, fmt.Sprintf("Current role at %s", current.EmployerName))
	}

	if profile.Skills != "" {
		skills := splitSkills(profile.Skills, maxPointSkills)
		points = append(points, fmt.Sprintf("Expertise in %s", strings.Join(skills, ", ")))
	}

	if len(profile.AllSchools) > 0 {
		points = append(points, fmt.Sprintf("Educational background from %s", profile.AllSchools[0]))
	}

	if profile.NumOfConnections > connectionFloor {
		points = append(points, fmt.Sprintf("Well-connected professional with %d+ connections", profile.NumOfConnections))
	}

	return points
}

// splitSkills splits the comma-delimited skills string and returns at most n
// trimmed entries.
func splitSkills(skills string, n int) []string {
	if skills == "" {
		return []string{}
	}
	parts := strings.Split(skills, ",")
	if len(parts) > n {
		parts = parts[:n]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func firstN(items []string, n int) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > n {
		items = items[:n]
	}
	return items
}
