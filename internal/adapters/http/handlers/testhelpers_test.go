package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/dto"
)

// issueRequest builds a request for /api/v1/issues/{id}/{action} with the
// chi route parameter already resolved, as the router would. A string body is
// sent as-is; any other non-nil body is JSON-encoded.
func issueRequest(t *testing.T, method, id, action string, body any) *http.Request {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(b); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		rd = buf
	}

	r := httptest.NewRequest(method, "/api/v1/issues/"+id+"/"+action, rd)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// requireProblem asserts an RFC 9457 problem document with the given status
// and returns it for further checks.
func requireProblem(t *testing.T, rec *httptest.ResponseRecorder, want int) dto.Problem {
	t.Helper()
	requireStatus(t, rec, want)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	p := decodeJSON[dto.Problem](t, rec)
	if p.Status != want {
		t.Errorf("problem status = %d, want %d", p.Status, want)
	}
	return p
}
