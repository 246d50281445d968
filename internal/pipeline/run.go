// Package pipeline provides the orchestration for the script-generation
// request: validate, fetch company text, enrich the profile, synthesize the
// script, assemble the result. Steps run strictly sequentially; the two
// upstream data steps self-heal via fallbacks while validation and synthesis
// failures terminate the run.
package pipeline

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/jonathan/lead-scripter/internal/insights"
	"github.com/jonathan/lead-scripter/internal/types"
)

// Provenance tags reported in the response. These name the service that
// nominally produced the data; see Result for the actual provenance.
const (
	CompanySource = "jina"
	ProfileSource = "crustdata"
)

// profileURLMarker is the literal substring a valid profile URL must contain.
const profileURLMarker = "linkedin.com/in/"

// Step identifies a stage of the pipeline for progress reporting.
type Step string

// Pipeline steps in execution order
const (
	StepValidating       Step = "validating"
	StepFetchingCompany  Step = "fetching_company"
	StepEnrichingProfile Step = "enriching_profile"
	StepSynthesizing     Step = "synthesizing"
	StepResponding       Step = "responding"
)

// ProgressEvent represents a progress update during a pipeline run.
type ProgressEvent struct {
	Step    Step   `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called as the pipeline advances through its steps.
type ProgressCallback func(event ProgressEvent)

// CompanyFetcher retrieves raw company page text for a URL.
type CompanyFetcher interface {
	FetchCompanyText(ctx context.Context, companyURL string) (string, types.Provenance, error)
}

// ProfileEnricher retrieves a structured profile for a profile URL.
type ProfileEnricher interface {
	EnrichProfile(ctx context.Context, linkedinURL string) (*types.ProfileRecord, types.Provenance, error)
}

// ScriptGenerator produces the outreach script from company text and a profile.
type ScriptGenerator interface {
	Generate(ctx context.Context, companyText string, profile *types.ProfileRecord) (string, error)
}

// Options holds the collaborators and callbacks for a Pipeline.
type Options struct {
	Fetcher    CompanyFetcher
	Enricher   ProfileEnricher
	Generator  ScriptGenerator
	OnProgress ProgressCallback
}

// Pipeline orchestrates one script-generation run per call. It holds no
// per-request state and is safe for concurrent use.
type Pipeline struct {
	fetcher    CompanyFetcher
	enricher   ProfileEnricher
	generator  ScriptGenerator
	onProgress ProgressCallback
}

// New creates a Pipeline from its collaborators.
func New(opts Options) *Pipeline {
	return &Pipeline{
		fetcher:    opts.Fetcher,
		enricher:   opts.Enricher,
		generator:  opts.Generator,
		onProgress: opts.OnProgress,
	}
}

// Result is the assembled outcome of a successful run. CompanyProvenance and
// ProfileProvenance record whether fallback data was substituted; the Source
// tags always name the nominal upstream service.
type Result struct {
	Script                string
	Insights              types.Insights
	PersonalizationPoints []string
	CompanySource         string
	ProfileSource         string
	CompanyProvenance     types.Provenance
	ProfileProvenance     types.Provenance
	GeneratedAt           time.Time
}

// Run executes the pipeline for one request. Validation and generation
// failures are returned as errors; scrape and enrichment failures degrade to
// fallback data and never fail the run.
func (p *Pipeline) Run(ctx context.Context, req *types.GenerateScriptRequest) (*Result, error) {
	p.emit(StepValidating, "Validating request input")
	if err := validate(req); err != nil {
		return nil, err
	}

	log.Printf("[pipeline] Generating script for LinkedIn: %s", req.LinkedInURL)

	p.emit(StepFetchingCompany, "Fetching company content: "+req.CompanyURL)
	companyText, companyProv, err := p.fetcher.FetchCompanyText(ctx, req.CompanyURL)
	if err != nil {
		return nil, err
	}

	p.emit(StepEnrichingProfile, "Enriching profile: "+req.LinkedInURL)
	profile, profileProv, err := p.enricher.EnrichProfile(ctx, req.LinkedInURL)
	if err != nil {
		return nil, err
	}

	ins := insights.Extract(profile)
	log.Printf("[pipeline] Generating script for %s (%s)", ins.Name, ins.CurrentRole)

	p.emit(StepSynthesizing, "Synthesizing outreach script")
	generated, err := p.generator.Generate(ctx, companyText, profile)
	if err != nil {
		return nil, err
	}

	p.emit(StepResponding, "Assembling response")
	return &Result{
		Script:                generated,
		Insights:              ins,
		PersonalizationPoints: insights.PersonalizationPoints(profile, companyText),
		CompanySource:         CompanySource,
		ProfileSource:         ProfileSource,
		CompanyProvenance:     companyProv,
		ProfileProvenance:     profileProv,
		GeneratedAt:           time.Now().UTC(),
	}, nil
}

func validate(req *types.GenerateScriptRequest) error {
	if err := req.Validate(); err != nil {
		return &ValidationError{Message: MsgMissingFields}
	}
	if !strings.Contains(req.LinkedInURL, profileURLMarker) {
		return &ValidationError{Message: MsgInvalidProfileURL}
	}
	return nil
}

func (p *Pipeline) emit(step Step, message string) {
	if p.onProgress != nil {
		p.onProgress(ProgressEvent{Step: step, Message: message})
	}
}
