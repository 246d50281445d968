// Package enrich retrieves structured profile data for a LinkedIn profile URL
// via the Crustdata person-enrichment API. Upstream failures are not
// propagated; the client degrades to a placeholder profile derived
// deterministically from the URL.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/lead-scripter/internal/config"
	"github.com/jonathan/lead-scripter/internal/types"
)

// DefaultBaseURL is the Crustdata person-enrichment endpoint.
const DefaultBaseURL = "https://api.crustdata.com/screener/person/enrich"

// DefaultTimeout is the per-call deadline for the enrichment request.
const DefaultTimeout = 30 * time.Second

// enrichmentFields is the fixed field list requested from the enrichment API.
const enrichmentFields = "business_email,headline,summary,skills,current_employers,past_employers,all_schools,all_degrees,all_titles,num_of_connections,languages,profile_picture_url,twitter_handle"

var profileSlugPattern = regexp.MustCompile(`linkedin\.com/in/([^/]+)`)

// Error represents an upstream enrichment failure. It is logged and recovered,
// never surfaced to the API caller.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enrich error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("enrich error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the enrichment client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultOptions returns the production defaults.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Client enriches LinkedIn profile URLs through the Crustdata API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an enrichment client. Pass nil for production defaults.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// EnrichProfile retrieves the structured profile for linkedinURL. A missing
// credential is fatal. Any other failure is logged and replaced with the
// deterministic fallback profile; the returned provenance reports which one
// happened. The service response is taken as-is without schema validation.
func (c *Client) EnrichProfile(ctx context.Context, linkedinURL string) (*types.ProfileRecord, types.Provenance, error) {
	apiKey, err := config.CrustdataAPIKey()
	if err != nil {
		return nil, "", err
	}

	log.Printf("[enrich] Enriching LinkedIn profile: %s", linkedinURL)

	profile, err := c.fetch(ctx, linkedinURL, apiKey)
	if err != nil {
		log.Printf("[enrich] %v", err)
		log.Printf("[enrich] Falling back to placeholder profile due to API error")
		return FallbackProfile(linkedinURL), types.ProvenanceFallback, nil
	}

	log.Printf("[enrich] Successfully enriched LinkedIn profile")
	return profile, types.ProvenanceLive, nil
}

func (c *Client) fetch(ctx context.Context, linkedinURL, apiKey string) (*types.ProfileRecord, error) {
	endpoint := fmt.Sprintf("%s?linkedin_profile_url=%s&fields=%s", c.baseURL, url.QueryEscape(linkedinURL), enrichmentFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &Error{URL: linkedinURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Token "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: linkedinURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: linkedinURL, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{URL: linkedinURL, Message: fmt.Sprintf("HTTP status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}

	var profile types.ProfileRecord
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, &Error{URL: linkedinURL, Message: "failed to parse response JSON", Cause: err}
	}

	return &profile, nil
}

// FallbackProfile builds a placeholder ProfileRecord from the profile URL.
// The display name is derived from the URL slug: hyphens become spaces and
// each word is capitalized. Everything else is a fixed placeholder, so the
// output is fully deterministic.
func FallbackProfile(linkedinURL string) *types.ProfileRecord {
	slug := "professional"
	if m := profileSlugPattern.FindStringSubmatch(linkedinURL); m != nil {
		slug = m[1]
	}
	name := capitalizeWords(strings.ReplaceAll(slug, "-", " "))

	return &types.ProfileRecord{
		LinkedInProfileURL:  linkedinURL,
		LinkedInFlagshipURL: linkedinURL,
		Name:                name,
		Email:               "contact@example.com",
		Title:               "Technology Professional",
		Headline:            "Technology Professional | Innovation Leader | Digital Transformation Expert",
		Summary:             "Experienced technology professional with a track record of driving digital innovation and leading successful technical projects.",
		NumOfConnections:    1250,
		Skills:              "Software Development, Project Management, Digital Strategy, Technology Leadership, Innovation",
		ProfilePictureURL:   "https://example.com/profile.jpg",
		TwitterHandle:       "",
		Languages:           []string{"English"},
		AllEmployers:        []string{"Current Company", "Previous Corp"},
		PastEmployers: []types.EmploymentRecord{
			{
				EmployerName:        "Previous Corp",
				EmployerLinkedInID:  "previous-corp",
				EmployerCompanyID:   12345,
				EmployeeTitle:       "Senior Developer",
				EmployeeDescription: "Led development projects and mentored junior developers",
				EmployeeLocation:    "San Francisco, CA",
				StartDate:           "2020-01-01T00:00:00.000Z",
				EndDate:             "2023-06-01T00:00:00.000Z",
			},
		},
		CurrentEmployers: []types.EmploymentRecord{
			{
				EmployerName:        "Current Company",
				EmployerLinkedInID:  "current-company",
				EmployerCompanyID:   67890,
				EmployeeTitle:       "Technology Professional",
				EmployeeDescription: "Leading technology initiatives and driving digital transformation projects.",
				EmployeeLocation:    "San Francisco, CA",
				StartDate:           "2023-07-01T00:00:00.000Z",
			},
		},
		AllEmployersCompanyID: []int64{12345, 67890},
		AllTitles:             []string{"Developer", "Senior Developer", "Technology Professional"},
		AllSchools:            []string{"State University", "Technical Institute"},
		AllDegrees:            []string{"Bachelor of Computer Science", "Software Engineering Certificate"},
	}
}

// capitalizeWords uppercases the first letter of each space-separated word.
func capitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
