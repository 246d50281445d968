package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jonathan/lead-scripter/internal/pipeline"
	"github.com/jonathan/lead-scripter/internal/types"
)

// handleGenerateScript runs the full script-generation pipeline for one request.
func (s *Server) handleGenerateScript(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, types.ErrorResponse{Error: pipeline.MsgMissingFields})
		return
	}

	result, err := s.pipeline.Run(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if result.CompanyProvenance == types.ProvenanceFallback || result.ProfileProvenance == types.ProvenanceFallback {
		log.Printf("[server] Response includes fallback data (company=%s, profile=%s)",
			result.CompanyProvenance, result.ProfileProvenance)
	}

	s.jsonResponse(w, http.StatusOK, types.GenerateScriptResponse{
		Success:               true,
		Script:                result.Script,
		LeadInsights:          result.Insights,
		PersonalizationPoints: result.PersonalizationPoints,
		CompanySource:         result.CompanySource,
		ProfileSource:         result.ProfileSource,
		GeneratedAt:           result.GeneratedAt.Format(time.RFC3339),
	})
}

// writeError maps a pipeline error to the contract's error body: a bare
// message for validation failures, the generic message plus details for
// processing failures.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	if status == http.StatusBadRequest {
		s.jsonResponse(w, status, types.ErrorResponse{Error: err.Error()})
		return
	}

	log.Printf("[server] Request failed: %v", err)
	s.jsonResponse(w, status, types.ErrorResponse{
		Error:   processingErrorMessage,
		Details: err.Error(),
	})
}
