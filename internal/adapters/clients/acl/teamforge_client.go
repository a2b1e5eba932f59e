package acl

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/clients/acl/frs"
	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/clients/acl/project"
	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/clients/acl/session"
	"github.com/jsamuelsen11/teamforge-tracker/internal/adapters/clients/acl/tracker"
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/artifact"
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/issue"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/httpclient"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/teamforge-tracker/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TrackerGateway = (*TeamForgeClient)(nil)
	_ ports.HealthChecker  = (*TeamForgeClient)(nil)
)

// TeamForgeClient is the outbound adapter for the TeamForge SOAP 5.0
// services. It implements [ports.TrackerGateway].
//
// Each method is a single SOAP call; session scoping is the caller's job.
// Messages are translated by the sub-packages [session], [project],
// [tracker] and [frs]. Faults and HTTP errors are mapped to domain errors by
// [TranslateFault] and [TranslateHTTPError].
type TeamForgeClient struct {
	req       *Requester
	transport *httpclient.Client
	metrics   *telemetry.Metrics
}

// NewTeamForgeClient creates a TeamForgeClient that sends requests through
// the given [httpclient.Client], whose base URL is the TeamForge server root
// (e.g. "http://teamforge.example.com").
func NewTeamForgeClient(client *httpclient.Client, metrics *telemetry.Metrics, logger *slog.Logger) *TeamForgeClient {
	return &TeamForgeClient{
		req:       NewRequester(client, metrics, logger),
		transport: client,
		metrics:   metrics,
	}
}

// --- Session ---

// Login calls CollabNet.login and returns the session id. The call is never
// replayed: a retried login would open a session nobody logs off.
func (c *TeamForgeClient) Login(ctx context.Context, userName, password string) (string, error) {
	var resp session.LoginResponse
	err := c.req.Call(httpclient.WithoutReplay(ctx), CollabNetService, "login",
		session.LoginRequest{UserName: userName, Password: password}, &resp)
	c.recordSession(ctx, "login", err)
	if err != nil {
		return "", err
	}
	return resp.SessionID, nil
}

// Logoff calls CollabNet.logoff.
func (c *TeamForgeClient) Logoff(ctx context.Context, userName, sessionID string) error {
	err := c.req.Call(ctx, CollabNetService, "logoff",
		session.LogoffRequest{UserName: userName, SessionID: sessionID}, &session.LogoffResponse{})
	c.recordSession(ctx, "logoff", err)
	return err
}

func (c *TeamForgeClient) recordSession(ctx context.Context, event string, err error) {
	if c.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	c.metrics.SessionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrSessionEvent.String(event),
		telemetry.AttrResult.String(result),
	))
}

// --- Categories ---

// ListProjects calls CollabNet.getProjectList.
func (c *TeamForgeClient) ListProjects(ctx context.Context, sessionID string) ([]issue.Category, error) {
	var resp project.GetProjectListResponse
	if err := c.req.Call(ctx, CollabNetService, "getProjectList",
		project.GetProjectListRequest{SessionID: sessionID}, &resp); err != nil {
		return nil, err
	}
	return project.ToDomainProjects(resp), nil
}

// ListTrackers calls TrackerApp.getTrackerList.
func (c *TeamForgeClient) ListTrackers(ctx context.Context, sessionID, projectID string) ([]issue.Category, error) {
	var resp project.GetTrackerListResponse
	if err := c.req.Call(ctx, TrackerAppService, "getTrackerList",
		project.GetTrackerListRequest{SessionID: sessionID, ProjectID: projectID}, &resp); err != nil {
		return nil, err
	}
	return project.ToDomainTrackers(resp), nil
}

// --- Artifacts ---

// ListArtifacts calls TrackerApp.getArtifactList with no filters.
func (c *TeamForgeClient) ListArtifacts(ctx context.Context, sessionID, trackerID string) ([]artifact.Row, error) {
	var resp tracker.GetArtifactListResponse
	if err := c.req.Call(ctx, TrackerAppService, "getArtifactList",
		tracker.GetArtifactListRequest{SessionID: sessionID, ContainerID: trackerID}, &resp); err != nil {
		return nil, err
	}
	return tracker.ToDomainRows(resp), nil
}

// GetArtifact calls TrackerApp.getArtifactData.
// Returns [domain.ErrNotFound] on NoSuchObjectFault.
func (c *TeamForgeClient) GetArtifact(ctx context.Context, sessionID, artifactID string) (*artifact.Artifact, error) {
	var resp tracker.GetArtifactDataResponse
	if err := c.req.Call(ctx, TrackerAppService, "getArtifactData",
		tracker.GetArtifactDataRequest{SessionID: sessionID, ArtifactID: artifactID}, &resp); err != nil {
		return nil, err
	}
	return tracker.ToDomainArtifact(resp.Artifact), nil
}

// UpdateArtifact calls TrackerApp.setArtifactData with an empty comment and
// no attachment. Returns [domain.ErrConflict] on VersionMismatchFault. Sent
// once only.
func (c *TeamForgeClient) UpdateArtifact(ctx context.Context, sessionID string, a *artifact.Artifact) error {
	return c.req.Call(httpclient.WithoutReplay(ctx), TrackerAppService, "setArtifactData",
		tracker.ToSetArtifactDataRequest(sessionID, a), &tracker.SetArtifactDataResponse{})
}

// ListFields calls TrackerApp.getFields.
func (c *TeamForgeClient) ListFields(ctx context.Context, sessionID, trackerID string) ([]artifact.Field, error) {
	var resp tracker.GetFieldsResponse
	if err := c.req.Call(ctx, TrackerAppService, "getFields",
		tracker.GetFieldsRequest{SessionID: sessionID, TrackerID: trackerID}, &resp); err != nil {
		return nil, err
	}
	return tracker.ToDomainFields(resp), nil
}

// --- Releases ---

// GetRelease calls FrsApp.getReleaseData.
func (c *TeamForgeClient) GetRelease(ctx context.Context, sessionID, releaseID string) (*artifact.Release, error) {
	var resp frs.GetReleaseDataResponse
	if err := c.req.Call(ctx, FrsAppService, "getReleaseData",
		frs.GetReleaseDataRequest{SessionID: sessionID, ReleaseID: releaseID}, &resp); err != nil {
		return nil, err
	}
	return frs.ToDomainRelease(resp), nil
}
