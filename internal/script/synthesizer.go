// Package script builds the personalized outreach prompt and turns it into a
// generated script through a single chat-completion call.
package script

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/lead-scripter/internal/insights"
	"github.com/jonathan/lead-scripter/internal/llm"
	"github.com/jonathan/lead-scripter/internal/prompts"
	"github.com/jonathan/lead-scripter/internal/types"
)

// NoContentMessage is returned verbatim when the completion service responds
// successfully but produces no content.
const NoContentMessage = "Failed to generate script"

const promptFile = "generation.json"

// GenerationError indicates the completion call itself failed. Unlike the
// scrape and enrich steps there is no local fallback; this is fatal for the
// request.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return "Failed to generate script with AI"
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Synthesizer generates outreach scripts from company context and a profile.
type Synthesizer struct {
	client llm.Client
}

// NewSynthesizer creates a Synthesizer backed by the given completion client.
func NewSynthesizer(client llm.Client) *Synthesizer {
	return &Synthesizer{client: client}
}

// Generate builds the outreach prompt for the given company text and profile
// and sends exactly one completion request. Insights and personalization
// points are recomputed here so the call can be invoked standalone. On call
// failure it returns a GenerationError; an empty completion yields
// NoContentMessage.
func (s *Synthesizer) Generate(ctx context.Context, companyText string, profile *types.ProfileRecord) (string, error) {
	prompt, err := BuildPrompt(companyText, profile)
	if err != nil {
		return "", &GenerationError{Cause: err}
	}

	system, err := prompts.Get(promptFile, "system-instruction")
	if err != nil {
		return "", &GenerationError{Cause: err}
	}

	text, err := s.client.GenerateCompletion(ctx, system, prompt)
	if err != nil {
		return "", &GenerationError{Cause: err}
	}

	if text == "" {
		return NoContentMessage, nil
	}
	return text, nil
}

// BuildPrompt assembles the user prompt embedding the raw company text, the
// derived insights, and the personalization points.
func BuildPrompt(companyText string, profile *types.ProfileRecord) (string, error) {
	template, err := prompts.Get(promptFile, "collection-script")
	if err != nil {
		return "", err
	}

	ins := insights.Extract(profile)
	points := insights.PersonalizationPoints(profile, companyText)

	return prompts.Format(template, map[string]string{
		"CompanyContext":        companyText,
		"Name":                  ins.Name,
		"CurrentRole":           ins.CurrentRole,
		"CurrentCompany":        ins.CurrentCompany,
		"Headline":              ins.Headline,
		"Summary":               ins.Summary,
		"Skills":                strings.Join(ins.Skills, ", "),
		"Education":             strings.Join(ins.Education, ", "),
		"ExperienceLevel":       strconv.Itoa(ins.ExperienceLevel),
		"Connections":           strconv.Itoa(ins.ConnectionCount),
		"Languages":             strings.Join(ins.Languages, ", "),
		"PersonalizationPoints": formatPoints(points),
	}), nil
}

func formatPoints(points []string) string {
	lines := make([]string, 0, len(points))
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("- %s", p))
	}
	return strings.Join(lines, "\n")
}
