// Package acl implements the Anti-Corruption Layer between the TeamForge SOAP
// services and the domain. Message types and translators live in
// subpackages (acl/session, acl/project, acl/tracker, acl/frs); the envelope
// codec, error mapping and the gateway client live here.
package acl

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/teamforge-tracker/internal/domain"
)

// maxErrorDetail limits how much of a non-SOAP error body is quoted.
const maxErrorDetail = 200

var faultErrors = map[string]error{
	"NoSuchObjectFault":     domain.ErrNotFound,
	"LoginFault":            domain.ErrForbidden,
	"InvalidSessionFault":   domain.ErrForbidden,
	"PermissionDeniedFault": domain.ErrForbidden,
	"IllegalArgumentFault":  domain.ErrInvalidArgument,
	"InvalidFilterFault":    domain.ErrInvalidArgument,
	"VersionMismatchFault":  domain.ErrConflict,
}

// TranslateFault maps a SOAP fault to a domain error. Unknown faults are
// wrapped as they are.
func TranslateFault(f *Fault) error {
	if sentinel, ok := faultErrors[f.Name()]; ok {
		return fmt.Errorf("%s: %w", faultMessage(f), sentinel)
	}
	return fmt.Errorf("teamforge: %w", f)
}

func faultMessage(f *Fault) string {
	if f.String != "" {
		return f.String
	}
	return f.Code
}

// TranslateHTTPError maps a non-fault HTTP error response to a domain error.
func TranslateHTTPError(status int, body []byte) error {
	detail := errorDetail(body)
	if detail == "" {
		detail = http.StatusText(status)
	}

	switch {
	case status == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case status == http.StatusBadRequest:
		return fmt.Errorf("%s: %w", detail, domain.ErrInvalidArgument)

	case status == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", status, detail)
	}
}

// errorDetail returns the first line of a plain-text error body.
func errorDetail(body []byte) string {
	if !utf8.Valid(body) {
		return ""
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(body)), "\n")
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "<") {
		return ""
	}
	if len(line) > maxErrorDetail {
		line = line[:maxErrorDetail]
	}
	return line
}
