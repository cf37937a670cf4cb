package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/workboard/pkg/domain/model"
	"github.com/secmon-lab/workboard/pkg/domain/types"
	"github.com/secmon-lab/workboard/pkg/metrics"
	"github.com/secmon-lab/workboard/pkg/utils/apperr"
)

func (s *Server) page(title, active string, data any) *pageData {
	return &pageData{
		Title:          title,
		Active:         active,
		RefreshSeconds: int(s.refresh.Seconds()),
		Data:           data,
	}
}

// renderError logs err and renders the error panel
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	apperr.Handle(r.Context(), err)
	status := statusOf(err)

	title := "Something went wrong"
	switch status {
	case http.StatusServiceUnavailable:
		title = "Data unavailable"
	case http.StatusNotFound:
		title = "Not found"
	}

	data := s.page(title, "", nil)
	data.Error = publicMessage(err, status)
	s.pages.render(w, r, status, "error", data)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	data := s.page("Not found", "", nil)
	data.RefreshSeconds = 0
	data.Error = "no page at " + r.URL.Path
	s.pages.render(w, r, http.StatusNotFound, "error", data)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	data := s.page("Home", "", nil)
	data.RefreshSeconds = 0
	s.pages.render(w, r, http.StatusOK, "home", data)
}

func (s *Server) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.Dashboard(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.pages.render(w, r, http.StatusOK, "dashboard", s.page("Dashboard", "dashboard", view))
}

type riskPage struct {
	View       *model.RiskView
	MatrixRows [][]model.RiskMatrixCell
}

func (s *Server) handleRisksPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.Risks(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	data := &riskPage{View: view, MatrixRows: view.Matrix.Rows()}
	s.pages.render(w, r, http.StatusOK, "risks", s.page("Risks", "risks", data))
}

func (s *Server) handleMilestonesPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.dashboard.Milestones(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.pages.render(w, r, http.StatusOK, "milestones", s.page("Milestones", "milestones", layoutTimeline(view)))
}

func (s *Server) handleActivitiesPage(w http.ResponseWriter, r *http.Request) {
	id := types.MilestoneID(chi.URLParam(r, "id"))
	view, err := s.dashboard.MilestoneActivities(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.pages.render(w, r, http.StatusOK, "activities", s.page("Activities", "milestones", view))
}

// issuesPage renders the issue list and form. The issues page never auto refreshes
// so a half typed submission is not lost.
func (s *Server) issuesPage(w http.ResponseWriter, r *http.Request, status int, data *pageData) {
	data.Title = "Issues"
	data.Active = "issues"
	data.RefreshSeconds = 0
	s.pages.render(w, r, status, "issues", data)
}

func (s *Server) handleIssuesPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.issue.ListOpenIssues(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	data := &pageData{Data: view}
	if logged := r.URL.Query().Get("logged"); logged != "" {
		if _, ok := metrics.ParseIssueNumber(logged); ok {
			data.Flash = "Logged " + logged
		}
	}
	s.issuesPage(w, r, http.StatusOK, data)
}

func (s *Server) handleSubmitIssuePage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, goerr.Wrap(err, "malformed form", goerr.T(model.ErrTagInvalidInput)))
		return
	}

	input := model.IssueInput{
		Description: r.PostFormValue("description"),
		Severity:    r.PostFormValue("severity"),
		ReportedBy:  r.PostFormValue("reported_by"),
	}

	issue, err := s.issue.SubmitIssue(r.Context(), input)
	if err != nil {
		if statusOf(err) != http.StatusBadRequest {
			s.renderError(w, r, err)
			return
		}

		apperr.Handle(r.Context(), err)
		data := &pageData{Form: input, Error: err.Error()}
		// The list is shown again with the rejected form; a read failure only hides the list
		if view, listErr := s.issue.ListOpenIssues(r.Context()); listErr == nil {
			data.Data = view
		}
		s.issuesPage(w, r, http.StatusBadRequest, data)
		return
	}

	http.Redirect(w, r, "/issues?logged="+url.QueryEscape(issue.ID.String()), http.StatusSeeOther)
}
