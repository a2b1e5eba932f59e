package main

import (
	"log/slog"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/teamforge-tracker/internal/app"
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/issue"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/config"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/health"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamforge-tracker/internal/ports"
)

// peerService names TeamForge in client spans, metrics and readiness output.
const peerService = "teamforge"

// bootstrap provides the values resolved before the container exists.
// metrics is nil when telemetry is disabled.
func bootstrap(cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics, password string) func(do.Injector) {
	return func(i do.Injector) {
		do.ProvideValue(i, cfg)
		do.ProvideValue(i, logger)
		do.ProvideValue(i, metrics)
		do.ProvideValue(i, app.ConnectionSettings{
			BaseURL:      cfg.TeamForge.BaseURL,
			UserName:     cfg.TeamForge.Username,
			Password:     password,
			ReleaseField: cfg.TeamForge.ReleaseField,
			Filter: issue.CategoryFilter{
				ProjectID: cfg.TeamForge.ProjectID,
				TrackerID: cfg.TeamForge.TrackerID,
			},
		})
	}
}

// adapters wires the outbound side: the SOAP transport and the TeamForge
// gateway built on it.
var adapters = do.Package(
	do.Lazy(func(i do.Injector) (*httpclient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return httpclient.New(cfg.TeamForge.BaseURL, &cfg.Client, peerService,
			do.MustInvoke[*telemetry.Metrics](i), do.MustInvoke[*slog.Logger](i)), nil
	}),
	do.Lazy(func(i do.Injector) (*acl.TeamForgeClient, error) {
		return acl.NewTeamForgeClient(do.MustInvoke[*httpclient.Client](i),
			do.MustInvoke[*telemetry.Metrics](i), do.MustInvoke[*slog.Logger](i)), nil
	}),
	do.Lazy(func(i do.Injector) (ports.TrackerGateway, error) {
		return do.MustInvoke[*acl.TeamForgeClient](i), nil
	}),
)

var application = do.Package(
	do.Lazy(func(i do.Injector) (ports.IssueTracker, error) {
		return app.NewTrackerService(do.MustInvoke[ports.TrackerGateway](i),
			do.MustInvoke[app.ConnectionSettings](i), do.MustInvoke[*slog.Logger](i)), nil
	}),
	do.Lazy(func(i do.Injector) (ports.HealthRegistry, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return health.New(health.WithCheckTimeout(cfg.Client.Timeout)), nil
	}),
)

// transport wires the inbound HTTP side. Middleware order is outermost first.
var transport = do.Package(
	do.Lazy(func(i do.Injector) (http.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return adapthttp.NewRouter(
			handlers.NewTrackerHandler(do.MustInvoke[ports.IssueTracker](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	}),
	do.Lazy(func(i do.Injector) (*adapthttp.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[http.Handler](i), do.MustInvoke[*slog.Logger](i)), nil
	}),
)
