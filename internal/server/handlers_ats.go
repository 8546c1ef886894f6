package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/ats-scorer/internal/types"
)

// handleScoreResume scores an HTML resume against a job description.
func (s *Server) handleScoreResume(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrMalformedRequest{Err: err})
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrValidation{Err: err})
		return
	}

	result, err := s.scorer.Score(r.Context(), req.HTMLResume, req.JobDescription)
	if err != nil {
		log.Printf("ATS scoring failed: %v", err)
		s.errorResponse(w, &ErrScoring{Err: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
