package ports

import (
	"context"

	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/artifact"
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/issue"
)

// TrackerGateway defines the client port for the TeamForge SOAP services
// (CollabNet, TrackerApp and FrsApp). Implemented by the ACL adapter; called
// by the application layer. Every call except Login carries the session id
// obtained from Login, and every successful Login must be paired with exactly
// one Logoff.
type TrackerGateway interface {
	// Login authenticates and returns a session id. An empty id is possible
	// and must be treated by callers as a failed login.
	Login(ctx context.Context, userName, password string) (string, error)

	// Logoff releases the session.
	Logoff(ctx context.Context, userName, sessionID string) error

	// ListProjects returns every project visible to the session as
	// childless categories.
	ListProjects(ctx context.Context, sessionID string) ([]issue.Category, error)

	// ListTrackers returns the trackers of a project as leaf categories.
	ListTrackers(ctx context.Context, sessionID, projectID string) ([]issue.Category, error)

	// ListArtifacts returns the unfiltered artifact list of a tracker in
	// server order.
	ListArtifacts(ctx context.Context, sessionID, trackerID string) ([]artifact.Row, error)

	// GetArtifact returns the full artifact record.
	// Returns domain.ErrNotFound if the artifact does not exist.
	GetArtifact(ctx context.Context, sessionID, artifactID string) (*artifact.Artifact, error)

	// UpdateArtifact writes the full record back with an empty comment and
	// no attachment. Returns domain.ErrConflict if the record version is stale.
	UpdateArtifact(ctx context.Context, sessionID string, a *artifact.Artifact) error

	// ListFields returns the field definitions of a tracker.
	ListFields(ctx context.Context, sessionID, trackerID string) ([]artifact.Field, error)

	// GetRelease returns the file release with the given id.
	// Returns domain.ErrNotFound if the release does not exist.
	GetRelease(ctx context.Context, sessionID, releaseID string) (*artifact.Release, error)
}
