package script

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/lead-scripter/internal/enrich"
)

// fakeClient records the completion request and returns canned output.
type fakeClient struct {
	gotSystem string
	gotPrompt string
	text      string
	err       error
}

func (f *fakeClient) GenerateCompletion(_ context.Context, system, prompt string) (string, error) {
	f.gotSystem = system
	f.gotPrompt = prompt
	return f.text, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestBuildPrompt_EmbedsAllSections(t *testing.T) {
	profile := enrich.FallbackProfile("https://linkedin.com/in/jane-doe")

	prompt, err := BuildPrompt("Company: Acme\nIndustry: Rockets", profile)
	require.NoError(t, err)

	assert.Contains(t, prompt, "COMPANY CONTEXT:\nCompany: Acme\nIndustry: Rockets")
	assert.Contains(t, prompt, "- Name: Jane Doe")
	assert.Contains(t, prompt, "- Current Role: Technology Professional at Current Company")
	assert.Contains(t, prompt, "- Key Skills: Software Development, Project Management, Digital Strategy, Technology Leadership, Innovation")
	assert.Contains(t, prompt, "- Education: State University, Technical Institute")
	assert.Contains(t, prompt, "- Experience Level: 3 different roles")
	assert.Contains(t, prompt, "- Network: 1250 connections")
	assert.Contains(t, prompt, "- Languages: English")
	assert.Contains(t, prompt, "- Career growth from Developer to Technology Professional")
	assert.Contains(t, prompt, "- Well-connected professional with 1250+ connections")
	assert.Contains(t, prompt, "10. No [PAUSE], [START], [END] or other formatting - just natural speech")
}

func TestBuildPrompt_NoPlaceholdersLeft(t *testing.T) {
	profile := enrich.FallbackProfile("https://linkedin.com/in/jane-doe")

	prompt, err := BuildPrompt("some company text", profile)
	require.NoError(t, err)

	assert.NotContains(t, prompt, "{{.")
}

func TestGenerate_ReturnsModelTextVerbatim(t *testing.T) {
	client := &fakeClient{text: "Hi Jane, I've been following your work...  "}
	s := NewSynthesizer(client)

	got, err := s.Generate(context.Background(), "company text", enrich.FallbackProfile("https://linkedin.com/in/jane-doe"))

	require.NoError(t, err)
	assert.Equal(t, "Hi Jane, I've been following your work...  ", got)
	assert.NotEmpty(t, client.gotSystem)
	assert.Contains(t, client.gotSystem, "empathetic")
	assert.Contains(t, client.gotPrompt, "Jane Doe")
}

func TestGenerate_CallFailureIsFatal(t *testing.T) {
	cause := errors.New("upstream 503")
	s := NewSynthesizer(&fakeClient{err: cause})

	_, err := s.Generate(context.Background(), "company text", enrich.FallbackProfile("https://linkedin.com/in/jane-doe"))

	require.Error(t, err)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "Failed to generate script with AI", genErr.Error())
	assert.ErrorIs(t, err, cause)
}

func TestGenerate_EmptyCompletionYieldsSentinel(t *testing.T) {
	s := NewSynthesizer(&fakeClient{text: ""})

	got, err := s.Generate(context.Background(), "company text", enrich.FallbackProfile("https://linkedin.com/in/jane-doe"))

	require.NoError(t, err)
	assert.Equal(t, NoContentMessage, got)
}
