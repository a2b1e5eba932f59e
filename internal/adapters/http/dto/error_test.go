package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain"
)

func TestStatusOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"artifact missing", fmt.Errorf("getArtifactData artf9: %w", domain.ErrNotFound), http.StatusNotFound},
		{"empty id", domain.Required("path.id"), http.StatusBadRequest},
		{"unknown status", fmt.Errorf("status %q: %w", "Pending", domain.ErrInvalidArgument), http.StatusBadRequest},
		{"stale version", domain.ErrConflict, http.StatusConflict},
		{"no permission", domain.ErrForbidden, http.StatusForbidden},
		{"tracker lacks closed status", fmt.Errorf("no closed status: %w", domain.ErrConfiguration), http.StatusPreconditionFailed},
		{"TeamForge down", domain.ErrUnavailable, http.StatusBadGateway},
		{"rejected login", fmt.Errorf("%w: %w", domain.ErrUnavailable, domain.ErrForbidden), http.StatusBadGateway},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := dto.StatusOf(tt.err); got != tt.want {
				t.Errorf("StatusOf(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestNewProblem(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/issues/artf1/close?x=1", nil)
	err := fmt.Errorf("closing artf1: %w", domain.ErrConflict)

	got := dto.NewProblem(r, err)

	want := dto.Problem{
		Type:     "about:blank",
		Title:    "Conflict",
		Status:   http.StatusConflict,
		Detail:   "closing artf1: " + domain.ErrConflict.Error(),
		Instance: "/api/v1/issues/artf1/close?x=1",
	}
	if got.Type != want.Type || got.Title != want.Title || got.Status != want.Status ||
		got.Detail != want.Detail || got.Instance != want.Instance || got.Errors != nil {
		t.Errorf("NewProblem() = %+v, want %+v", got, want)
	}
}

func TestNewProblem_InvalidParamsSortedByLocation(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"path.id":     "is required",
		"body.status": "is required",
		"body":        "invalid JSON",
	}}
	got := dto.NewProblem(httptest.NewRequest(http.MethodPut, "/api/v1/issues//status", nil), verr)

	wantOrder := []string{"body", "body.status", "path.id"}
	if len(got.Errors) != len(wantOrder) {
		t.Fatalf("Errors = %+v, want %d entries", got.Errors, len(wantOrder))
	}
	for i, loc := range wantOrder {
		if got.Errors[i].Location != loc || got.Errors[i].Message != verr.Fields[loc] {
			t.Errorf("Errors[%d] = %+v, want location %q", i, got.Errors[i], loc)
		}
	}
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	dto.WriteError(rec, httptest.NewRequest(http.MethodGet, "/api/v1/statuses", nil),
		fmt.Errorf("tracker has no statuses: %w", domain.ErrConfiguration))

	if rec.Code != http.StatusPreconditionFailed {
		t.Errorf("status = %d, want 412", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != float64(http.StatusPreconditionFailed) || body["instance"] != "/api/v1/statuses" {
		t.Errorf("body = %v", body)
	}
	if _, present := body["errors"]; present {
		t.Errorf("errors present on a non-validation problem: %v", body["errors"])
	}
}
