package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain"
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/issue"
)

const (
	queryProject = "project"
	queryTracker = "tracker"
	queryRelease = "release"
)

// maxBodyBytes caps request bodies; description appends are the largest.
const maxBodyBytes = 1 << 20

// issueID reads the {id} path parameter. TeamForge ids such as "artf1001"
// are opaque, so only presence is checked.
func issueID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", domain.Required("path.id")
	}
	return id, nil
}

// filterFrom reads the optional project and tracker query parameters. The
// service substitutes its configured defaults for empty values.
func filterFrom(r *http.Request) issue.CategoryFilter {
	q := r.URL.Query()
	return issue.CategoryFilter{ProjectID: q.Get(queryProject), TrackerID: q.Get(queryTracker)}
}

type validatable interface {
	Validate() error
}

// bind decodes r's JSON body into dst and validates it.
func bind(w http.ResponseWriter, r *http.Request, dst validatable) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		msg := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "exceeds 1 MiB"
		}
		return &domain.ValidationError{Fields: map[string]string{"body": msg}}
	}
	return dst.Validate()
}

// reply writes v as JSON with status 200, or the problem document for err.
func reply(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("writing response", slog.Int("status", status), slog.Any("error", err))
	}
}

// done answers a write operation: 204, or the problem document for err.
func done(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
