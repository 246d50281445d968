// Package scrape retrieves raw textual content for a company URL via the
// Jina Reader service. Upstream failures are not propagated; the client
// degrades to a deterministic canned fallback so the pipeline can continue.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/lead-scripter/internal/config"
	"github.com/jonathan/lead-scripter/internal/types"
)

// DefaultBaseURL is the Jina Reader endpoint prefix.
const DefaultBaseURL = "https://r.jina.ai/"

// DefaultTimeout is the per-call deadline for the scrape request.
const DefaultTimeout = 30 * time.Second

// Error represents an upstream scrape failure. It is logged and recovered,
// never surfaced to the API caller.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scrape error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("scrape error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the scrape client.
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

// Client fetches company page text through the Jina Reader service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a scrape client. Pass nil for production defaults.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// FetchCompanyText retrieves the raw text for companyURL. A missing credential
// is fatal. Any other failure is logged and replaced with fallback text; the
// returned provenance reports which one happened.
func (c *Client) FetchCompanyText(ctx context.Context, companyURL string) (string, types.Provenance, error) {
	apiKey, err := config.JinaAPIKey()
	if err != nil {
		return "", "", err
	}

	log.Printf("[scrape] Scraping website content: %s", companyURL)

	text, err := c.fetch(ctx, companyURL, apiKey)
	if err != nil {
		log.Printf("[scrape] %v", err)
		log.Printf("[scrape] Falling back to canned company data due to scraping error")
		return FallbackCompanyText(companyURL), types.ProvenanceFallback, nil
	}

	log.Printf("[scrape] Successfully scraped website content")
	return text, types.ProvenanceLive, nil
}

func (c *Client) fetch(ctx context.Context, companyURL, apiKey string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+url.QueryEscape(companyURL), nil)
	if err != nil {
		return "", &Error{URL: companyURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{URL: companyURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: companyURL, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: companyURL, Message: fmt.Sprintf("HTTP status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}

	return string(body), nil
}

// FallbackCompanyText returns the canned company description used when the
// scraping service is unavailable. Selection is a plain substring match on the
// URL; the output is deterministic.
func FallbackCompanyText(companyURL string) string {
	if strings.Contains(companyURL, "domu.ai") {
		return strings.TrimSpace(`
Company: Domu
Industry: AI/Technology
Description: Domu is an AI-powered personalization platform that helps businesses create personalized videos and audio content for lead generation and customer engagement.
Recent Updates: Recently launched new AI-powered features for enhanced personalization and better conversion rates.
Products: AI video generation, personalized audio content, lead conversion tools
`)
	}

	return strings.TrimSpace(`
Company: Target Company
Industry: Technology
Description: Innovative technology company focused on digital transformation and customer engagement solutions.
Recent Updates: Expanding their digital presence and implementing new technologies.
Focus: Digital innovation, customer experience, technology solutions
`)
}
