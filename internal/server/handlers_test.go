package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/lead-scripter/internal/enrich"
	"github.com/jonathan/lead-scripter/internal/insights"
	"github.com/jonathan/lead-scripter/internal/pipeline"
	"github.com/jonathan/lead-scripter/internal/scrape"
	"github.com/jonathan/lead-scripter/internal/script"
	"github.com/jonathan/lead-scripter/internal/types"
)

// stubRunner lets handler tests drive the pipeline outcome directly.
type stubRunner struct {
	result *pipeline.Result
	err    error
}

func (s *stubRunner) Run(context.Context, *types.GenerateScriptRequest) (*pipeline.Result, error) {
	return s.result, s.err
}

// fullPipeline builds a real pipeline with fallback-only collaborators and a
// stubbed generator, exercising everything except live network calls.
type stubGenerator struct {
	text string
	err  error
}

func (g *stubGenerator) Generate(context.Context, string, *types.ProfileRecord) (string, error) {
	return g.text, g.err
}

type fallbackFetcher struct{}

func (fallbackFetcher) FetchCompanyText(_ context.Context, companyURL string) (string, types.Provenance, error) {
	return scrape.FallbackCompanyText(companyURL), types.ProvenanceFallback, nil
}

type fallbackEnricher struct{}

func (fallbackEnricher) EnrichProfile(_ context.Context, linkedinURL string) (*types.ProfileRecord, types.Provenance, error) {
	return enrich.FallbackProfile(linkedinURL), types.ProvenanceFallback, nil
}

func newTestServer(p runner) *Server {
	return &Server{pipeline: p}
}

func postGenerateScript(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-script", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.handleGenerateScript(w, req)
	return w
}

func TestHandleGenerateScript_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body object", body: `{}`},
		{name: "missing linkedinUrl", body: `{"companyUrl":"https://example.com"}`},
		{name: "missing companyUrl", body: `{"linkedinUrl":"https://linkedin.com/in/jane-doe"}`},
		{name: "empty strings", body: `{"companyUrl":"","linkedinUrl":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(newFullPipeline(&stubGenerator{text: "script"}))

			w := postGenerateScript(t, s, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Both companyUrl and linkedinUrl are required", resp.Error)
			assert.Empty(t, resp.Details)
		})
	}
}

func TestHandleGenerateScript_InvalidProfileURL(t *testing.T) {
	s := newTestServer(newFullPipeline(&stubGenerator{text: "script"}))

	w := postGenerateScript(t, s, `{"companyUrl":"https://example.com","linkedinUrl":"https://linkedin.com/company/acme"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid LinkedIn profile URL format", resp.Error)
}

func TestHandleGenerateScript_MalformedBody(t *testing.T) {
	s := newTestServer(newFullPipeline(&stubGenerator{text: "script"}))

	w := postGenerateScript(t, s, `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGenerateScript_SuccessWithFallbackData(t *testing.T) {
	s := newTestServer(newFullPipeline(&stubGenerator{text: "Hi Kaitakami, let's work together."}))

	w := postGenerateScript(t, s, `{"companyUrl":"https://domu.ai","linkedinUrl":"https://linkedin.com/in/kaitakami"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.GenerateScriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Hi Kaitakami, let's work together.", resp.Script)
	assert.Equal(t, "jina", resp.CompanySource)
	assert.Equal(t, "crustdata", resp.ProfileSource)
	assert.Equal(t, "Kaitakami", resp.LeadInsights.Name)
	assert.NotEmpty(t, resp.PersonalizationPoints)

	generatedAt, err := time.Parse(time.RFC3339, resp.GeneratedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), generatedAt, time.Minute)
}

func TestHandleGenerateScript_GenerationFailure(t *testing.T) {
	genErr := &script.GenerationError{}
	s := newTestServer(newFullPipeline(&stubGenerator{err: genErr}))

	w := postGenerateScript(t, s, `{"companyUrl":"https://example.com","linkedinUrl":"https://linkedin.com/in/jane-doe"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate script", resp.Error)
	assert.Equal(t, "Failed to generate script with AI", resp.Details)
}

func TestHandleGenerateScript_PipelineErrorFromStub(t *testing.T) {
	s := newTestServer(&stubRunner{err: &pipeline.ValidationError{Message: pipeline.MsgInvalidProfileURL}})

	w := postGenerateScript(t, s, `{"companyUrl":"a","linkedinUrl":"b"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleGenerateScript_InsightsSlicing(t *testing.T) {
	// The fallback profile carries five skills and two schools; the response
	// insights must respect the fixed slicing rules.
	s := newTestServer(newFullPipeline(&stubGenerator{text: "script"}))

	w := postGenerateScript(t, s, `{"companyUrl":"https://example.com","linkedinUrl":"https://linkedin.com/in/jane-doe"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.GenerateScriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.LessOrEqual(t, len(resp.LeadInsights.Skills), 5)
	assert.LessOrEqual(t, len(resp.LeadInsights.Education), 2)
	assert.NotEqual(t, insights.UnknownCompany, resp.LeadInsights.CurrentCompany)
}

func newFullPipeline(gen pipeline.ScriptGenerator) *pipeline.Pipeline {
	return pipeline.New(pipeline.Options{
		Fetcher:   fallbackFetcher{},
		Enricher:  fallbackEnricher{},
		Generator: gen,
	})
}
