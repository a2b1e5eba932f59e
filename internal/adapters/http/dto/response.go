// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/issue"
	"github.com/jsamuelsen11/teamforge-tracker/internal/ports"
)

// ProviderResponse describes the integration to the host.
type ProviderResponse struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Summary       string   `json:"summary"`
	Available     bool     `json:"available"`
	CategoryTypes []string `json:"category_types"`
	Capabilities  struct {
		AppendDescription bool `json:"append_description"`
		ChangeStatus      bool `json:"change_status"`
		CloseIssue        bool `json:"close_issue"`
	} `json:"capabilities"`
}

// ToProviderResponse combines provider names and capabilities.
func ToProviderResponse(info ports.ProviderInfo, caps ports.Capabilities) ProviderResponse {
	resp := ProviderResponse{
		Name:          info.Name,
		Description:   info.Description,
		Summary:       info.Summary,
		Available:     caps.Available,
		CategoryTypes: caps.CategoryTypes,
	}
	resp.Capabilities.AppendDescription = caps.AppendDescription
	resp.Capabilities.ChangeStatus = caps.ChangeStatus
	resp.Capabilities.CloseIssue = caps.CloseIssue
	return resp
}

// IssueResponse represents a single issue in HTTP responses.
type IssueResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Release     string `json:"release"`
	Closed      bool   `json:"closed"`
	URL         string `json:"url"`
}

// IssueListResponse represents a list of issues in HTTP responses.
type IssueListResponse struct {
	Issues []IssueResponse `json:"issues"`
	Count  int             `json:"count"`
}

// ToIssueListResponse converts issues to a list response. urlFor builds
// each issue's browser link.
func ToIssueListResponse(issues []issue.Issue, urlFor func(id string) string) IssueListResponse {
	items := make([]IssueResponse, len(issues))
	for i, is := range issues {
		items[i] = IssueResponse{
			ID:          is.ID,
			Title:       is.Title,
			Description: is.Description,
			Status:      is.Status,
			Release:     is.Release,
			Closed:      is.IsClosed(),
			URL:         urlFor(is.ID),
		}
	}
	return IssueListResponse{Issues: items, Count: len(items)}
}

// CategoryResponse is one node of the project/tracker tree.
type CategoryResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Children []CategoryResponse `json:"children"`
}

// CategoryListResponse represents the project/tracker tree.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Count      int                `json:"count"`
}

// ToCategoryListResponse converts the category tree. Leaves carry an empty
// children array rather than null.
func ToCategoryListResponse(categories []issue.Category) CategoryListResponse {
	items := toCategoryResponses(categories)
	return CategoryListResponse{Categories: items, Count: len(items)}
}

func toCategoryResponses(categories []issue.Category) []CategoryResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = CategoryResponse{
			ID:       c.ID,
			Name:     c.Name,
			Children: toCategoryResponses(c.Children),
		}
	}
	return items
}

// StatusResponse represents a tracker status.
type StatusResponse struct {
	Name   string `json:"name"`
	Class  string `json:"class"`
	Closed bool   `json:"closed"`
}

// StatusListResponse represents a tracker's statuses.
type StatusListResponse struct {
	Statuses []StatusResponse `json:"statuses"`
	Count    int              `json:"count"`
}

// ToStatusListResponse converts statuses to a list response.
func ToStatusListResponse(statuses []issue.Status) StatusListResponse {
	items := make([]StatusResponse, len(statuses))
	for i, s := range statuses {
		items[i] = StatusResponse{Name: s.Name, Class: s.Class, Closed: s.IsClosed()}
	}
	return StatusListResponse{Statuses: items, Count: len(items)}
}

// IssueURLResponse carries an issue's browser link.
type IssueURLResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ConnectionResponse reports a successful connectivity check.
type ConnectionResponse struct {
	Status string `json:"status"`
}

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps each downstream (only "teamforge" today) to "ok" or its failure.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse folds checker results into a probe body and reports
// whether every check passed.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: "ready", Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = "ok"
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = "not_ready"
	}
	return resp, resp.Status == "ready"
}
