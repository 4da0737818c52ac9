package server

import (
	"encoding/json"
	"net/http"

	"github.com/SoapDevX/pathfinder-ai/internal/providers"
	"github.com/SoapDevX/pathfinder-ai/internal/types"
)

// MatchResponse is the body of POST /api/jobs/match.
type MatchResponse struct {
	Matches []types.JobMatch `json:"matches"`
}

// SearchResponse is the body of GET /api/jobs/search.
type SearchResponse struct {
	Jobs  []types.Job `json:"jobs"`
	Count int         `json:"count"`
}

// SavedJobsResponse is the body of GET /api/jobs/saved.
type SavedJobsResponse struct {
	Jobs []types.Job `json:"jobs"`
}

// handleMatchJobs runs the full match pipeline for the posted profile.
func (s *Server) handleMatchJobs(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	matches, err := s.matcher.FindMatchingJobs(r.Context(), req.UserSkills, req.TargetRole, req.Location, req.Remote)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to match jobs")
		return
	}

	s.jsonResponse(w, http.StatusOK, MatchResponse{Matches: matches})
}

// handleSearchJobs runs the unified multi-provider search.
func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		s.errorResponse(w, http.StatusBadRequest, "Query parameter is required")
		return
	}

	jobs := s.search.SearchJobs(r.Context(), providers.SearchParams{
		Query:    query,
		Location: r.URL.Query().Get("location"),
		Remote:   r.URL.Query().Get("remote") == "true",
		Limit:    parseQueryInt(r, "limit", 50, 100),
	})

	s.jsonResponse(w, http.StatusOK, SearchResponse{Jobs: jobs, Count: len(jobs)})
}

// handleSavedJobs lists persisted jobs, newest first.
func (s *Server) handleSavedJobs(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)

	jobs, err := s.matcher.SavedJobs(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if jobs == nil {
		jobs = []types.Job{}
	}

	s.jsonResponse(w, http.StatusOK, SavedJobsResponse{Jobs: jobs})
}
