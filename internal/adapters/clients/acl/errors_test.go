package acl

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/teamforge-tracker/internal/domain"
)

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "404 maps to ErrNotFound", statusCode: http.StatusNotFound, wantErr: domain.ErrNotFound},
		{name: "401 maps to ErrForbidden", statusCode: http.StatusUnauthorized, wantErr: domain.ErrForbidden},
		{name: "403 maps to ErrForbidden", statusCode: http.StatusForbidden, wantErr: domain.ErrForbidden},
		{name: "400 maps to ErrInvalidArgument", statusCode: http.StatusBadRequest, wantErr: domain.ErrInvalidArgument},
		{name: "409 maps to ErrConflict", statusCode: http.StatusConflict, wantErr: domain.ErrConflict},
		{name: "500 maps to ErrUnavailable", statusCode: http.StatusInternalServerError, wantErr: domain.ErrUnavailable},
		{name: "503 maps to ErrUnavailable", statusCode: http.StatusServiceUnavailable, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError(tt.statusCode, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("TranslateHTTPError(%d) = %v, want %v", tt.statusCode, err, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	err := TranslateHTTPError(http.StatusTeapot, []byte("short and stout"))
	if err == nil {
		t.Fatal("TranslateHTTPError() = nil, want error")
	}
	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrForbidden, domain.ErrInvalidArgument,
		domain.ErrConflict, domain.ErrUnavailable,
	} {
		if errors.Is(err, sentinel) {
			t.Errorf("TranslateHTTPError(418) matched %v, want plain error", sentinel)
		}
	}
	if !strings.Contains(err.Error(), "short and stout") {
		t.Errorf("error = %q, want body detail", err)
	}
}

func TestTranslateHTTPError_DetailFromBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "plain text first line", body: "Service Temporarily Unavailable\nretry later", want: "Service Temporarily Unavailable"},
		{name: "html falls back to status text", body: "<html><body>oops</body></html>", want: "Bad Gateway"},
		{name: "empty body falls back to status text", body: "", want: "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError(http.StatusBadGateway, []byte(tt.body))
			if !strings.HasPrefix(err.Error(), tt.want) {
				t.Errorf("error = %q, want prefix %q", err, tt.want)
			}
		})
	}
}

func TestTranslateFault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fault   Fault
		wantErr error
	}{
		{
			name:    "no such object in faultstring",
			fault:   Fault{Code: "soapenv:Server.userException", String: "com.collabnet.ce.soap50.fault.NoSuchObjectFault: artf9 not found"},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "login fault in faultcode",
			fault:   Fault{Code: "ns1:LoginFault", String: "bad credentials"},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "invalid session in detail",
			fault:   Fault{Code: "soapenv:Server", Detail: faultDetail{Content: "<ns1:InvalidSessionFault/>"}},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "permission denied",
			fault:   Fault{String: "PermissionDeniedFault"},
			wantErr: domain.ErrForbidden,
		},
		{
			name:    "illegal argument",
			fault:   Fault{String: "IllegalArgumentFault: containerId"},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "invalid filter",
			fault:   Fault{String: "InvalidFilterFault"},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "version mismatch",
			fault:   Fault{String: "VersionMismatchFault: stale"},
			wantErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateFault(&tt.fault)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("TranslateFault() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTranslateFault_Unknown(t *testing.T) {
	t.Parallel()

	f := &Fault{Code: "soapenv:Server", String: "java.lang.NullPointerException"}
	err := TranslateFault(f)

	var got *Fault
	if !errors.As(err, &got) {
		t.Fatalf("TranslateFault() = %v, want wrapped *Fault", err)
	}
	if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, domain.ErrNotFound) {
		t.Errorf("TranslateFault() = %v, want no domain sentinel", err)
	}
}
