// Package handlers adapts HTTP requests onto the IssueTracker port.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamforge-tracker/internal/ports"
)

// TrackerHandler serves the /api/v1 issue tracker routes.
type TrackerHandler struct {
	svc ports.IssueTracker
}

// NewTrackerHandler creates a new TrackerHandler with the given issue tracker.
func NewTrackerHandler(svc ports.IssueTracker) *TrackerHandler {
	return &TrackerHandler{svc: svc}
}

// Provider handles GET /api/v1/provider.
func (h *TrackerHandler) Provider(w http.ResponseWriter, r *http.Request) {
	reply(w, r, dto.ToProviderResponse(h.svc.Provider(), h.svc.Capabilities()), nil)
}

// ValidateConnection handles POST /api/v1/connection/validate.
func (h *TrackerHandler) ValidateConnection(w http.ResponseWriter, r *http.Request) {
	err := h.svc.ValidateConnection(r.Context())
	reply(w, r, dto.ConnectionResponse{Status: "ok"}, err)
}

// ListCategories handles GET /api/v1/categories.
func (h *TrackerHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.ListCategories(r.Context())
	reply(w, r, dto.ToCategoryListResponse(categories), err)
}

// ListStatuses handles GET /api/v1/statuses.
func (h *TrackerHandler) ListStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.svc.ListStatuses(r.Context(), filterFrom(r))
	reply(w, r, dto.ToStatusListResponse(statuses), err)
}

// ListIssues handles GET /api/v1/issues.
func (h *TrackerHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := h.svc.ListIssues(r.Context(), filterFrom(r), r.URL.Query().Get(queryRelease))
	reply(w, r, dto.ToIssueListResponse(issues, h.svc.IssueURL), err)
}

// IssueURL handles GET /api/v1/issues/{id}/url.
func (h *TrackerHandler) IssueURL(w http.ResponseWriter, r *http.Request) {
	id, err := issueID(r)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	reply(w, r, dto.IssueURLResponse{ID: id, URL: h.svc.IssueURL(id)}, nil)
}

// AppendDescription handles POST /api/v1/issues/{id}/description.
func (h *TrackerHandler) AppendDescription(w http.ResponseWriter, r *http.Request) {
	var req dto.AppendDescriptionRequest
	id, err := issueID(r)
	if err == nil {
		err = bind(w, r, &req)
	}
	if err == nil {
		err = h.svc.AppendIssueDescription(r.Context(), id, req.Text)
	}
	done(w, r, err)
}

// ChangeStatus handles PUT /api/v1/issues/{id}/status.
func (h *TrackerHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangeStatusRequest
	id, err := issueID(r)
	if err == nil {
		err = bind(w, r, &req)
	}
	if err == nil {
		err = h.svc.ChangeIssueStatus(r.Context(), filterFrom(r), id, req.Status)
	}
	done(w, r, err)
}

// CloseIssue handles POST /api/v1/issues/{id}/close.
func (h *TrackerHandler) CloseIssue(w http.ResponseWriter, r *http.Request) {
	id, err := issueID(r)
	if err == nil {
		err = h.svc.CloseIssue(r.Context(), filterFrom(r), id)
	}
	done(w, r, err)
}
