package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/teamforge-tracker/internal/domain"
)

// Problem is an RFC 9457 problem document.
type Problem struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Status   int            `json:"status"`
	Detail   string         `json:"detail,omitempty"`
	Instance string         `json:"instance,omitempty"`
	Errors   []InvalidParam `json:"errors,omitempty"`
}

// InvalidParam names one rejected request input, e.g. "path.id" or
// "body.status".
type InvalidParam struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusTable is consulted in order. ErrUnavailable comes first: a rejected
// login wraps the fault's own sentinel (typically ErrForbidden) beneath it.
var statusTable = []struct {
	sentinel error
	status   int
}{
	{domain.ErrUnavailable, http.StatusBadGateway},
	{domain.ErrInvalidArgument, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrConfiguration, http.StatusPreconditionFailed},
}

// StatusOf returns the HTTP status for err. Errors outside the domain
// taxonomy are 500.
func StatusOf(err error) int {
	for _, row := range statusTable {
		if errors.Is(err, row.sentinel) {
			return row.status
		}
	}
	return http.StatusInternalServerError
}

// NewProblem describes err as a problem document for request r.
func NewProblem(r *http.Request, err error) Problem {
	status := StatusOf(err)
	p := Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		p.Errors = make([]InvalidParam, 0, len(verr.Fields))
		for loc, msg := range verr.Fields {
			p.Errors = append(p.Errors, InvalidParam{Location: loc, Message: msg})
		}
		slices.SortFunc(p.Errors, func(a, b InvalidParam) int { return cmp.Compare(a.Location, b.Location) })
	}
	return p
}

// WriteError answers r with the problem document for err.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, NewProblem(r, err))
}

// WriteProblem writes p as application/problem+json with p.Status.
func WriteProblem(w http.ResponseWriter, p Problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		slog.Error("writing problem document", slog.Int("status", p.Status), slog.Any("error", err))
	}
}
