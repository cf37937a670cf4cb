package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
)

// maxIssueBody bounds the size of a submitted issue
const maxIssueBody = 64 << 10

func (s *Server) handleDashboardAPI(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleRisksAPI(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.Risks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleMilestonesAPI(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.Milestones(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleActivitiesAPI(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.MilestoneActivities(r.Context(), types.MilestoneID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) handleIssuesAPI(w http.ResponseWriter, r *http.Request) {
	view, err := s.issue.ListOpenIssues(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

type submitIssueResponse struct {
	Issue *model.IssueRow `json:"issue"`
	URL   string          `json:"url"`
}

func (s *Server) handleSubmitIssueAPI(w http.ResponseWriter, r *http.Request) {
	var input model.IssueInput
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxIssueBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&input); err != nil {
		writeError(w, r, goerr.Wrap(err, "malformed issue body", goerr.T(model.ErrTagInvalidInput)))
		return
	}

	issue, err := s.issue.SubmitIssue(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	issueURL := GetBaseURL(r, s.baseURL) + "/issues#" + issue.ID.String()
	w.Header().Set("Location", issueURL)
	writeJSON(w, r, http.StatusCreated, &submitIssueResponse{
		Issue: issue,
		URL:   issueURL,
	})
}
