// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/teamforge-tracker/internal/domain"
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/artifact"
	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/issue"
	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/urlpath"
	"github.com/jsamuelsen11/teamforge-tracker/internal/ports"
)

// Compile-time check that TrackerService implements ports.IssueTracker.
var _ ports.IssueTracker = (*TrackerService)(nil)

// Provider display names.
const (
	ProviderName        = "CollabNet TeamForge"
	ProviderDescription = "Supports CollabNet TeamForge 5.3 and later."
	ProviderSummary     = "Connects to the issue tracking system of CollabNet TeamForge."
)

// issueURLPrefix is the TeamForge short-link path for any object id.
const issueURLPrefix = "/sf/go/"

// ConnectionSettings holds what every operation needs to reach TeamForge.
// Filter is the fallback project/tracker for requests that name none.
// An empty ReleaseField disables release filtering.
type ConnectionSettings struct {
	BaseURL      string
	UserName     string
	Password     string
	ReleaseField string
	Filter       issue.CategoryFilter
}

// TrackerService implements ports.IssueTracker on top of the TeamForge
// gateway. Every operation runs in its own login session, and calls within
// an operation are sequential.
type TrackerService struct {
	gateway ports.TrackerGateway
	conn    ConnectionSettings
	logger  *slog.Logger
}

// NewTrackerService creates a TrackerService. A nil logger discards output.
// A release field that is not an artifact property is looked up among the
// flexible fields, which is logged once here.
func NewTrackerService(gateway ports.TrackerGateway, conn ConnectionSettings, logger *slog.Logger) *TrackerService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if f := conn.ReleaseField; f != "" && !artifact.IsKnownField(f) {
		logger.Info("release field is not an artifact property, reading it from flexible fields",
			slog.String("release_field", f))
	}
	return &TrackerService{
		gateway: gateway,
		conn:    conn,
		logger:  logger,
	}
}

// withSession logs in, runs fn and always logs off. Logoff runs on a context
// detached from cancellation so an aborted request still releases its
// session. An error from fn wins over a logoff error.
func (s *TrackerService) withSession(
	ctx context.Context,
	operation string,
	fn func(ctx context.Context, sessionID string) error,
) (err error) {
	sessionID, err := s.gateway.Login(ctx, s.conn.UserName, s.conn.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to log in to TeamForge",
			slog.String("operation", operation),
			slog.String("user", s.conn.UserName),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	if sessionID == "" {
		s.logger.ErrorContext(ctx, "TeamForge login returned no session",
			slog.String("operation", operation),
			slog.String("user", s.conn.UserName),
		)
		return fmt.Errorf("%w: TeamForge login returned an empty session id", domain.ErrUnavailable)
	}

	defer func() {
		logoffErr := s.gateway.Logoff(context.WithoutCancel(ctx), s.conn.UserName, sessionID)
		if logoffErr == nil {
			return
		}
		s.logger.WarnContext(ctx, "failed to log off from TeamForge",
			slog.String("operation", operation),
			slog.Any("error", logoffErr),
		)
		if err == nil {
			err = logoffErr
		}
	}()

	return fn(ctx, sessionID)
}

// resolveFilter fills the request filter from the configured defaults.
func (s *TrackerService) resolveFilter(filter issue.CategoryFilter) issue.CategoryFilter {
	return filter.Or(s.conn.Filter)
}

// ListIssues returns the tracker's issues whose release field resolves to
// release, in server order.
func (s *TrackerService) ListIssues(ctx context.Context, filter issue.CategoryFilter, release string) ([]issue.Issue, error) {
	trackerID, err := s.resolveFilter(filter).Tracker()
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "listing issues",
		slog.String("tracker_id", trackerID),
		slog.String("release", release),
	)

	var issues []issue.Issue
	err = s.withSession(ctx, "ListIssues", func(ctx context.Context, sessionID string) error {
		rows, err := s.gateway.ListArtifacts(ctx, sessionID, trackerID)
		if err != nil {
			return err
		}

		issues = make([]issue.Issue, 0, len(rows))
		for _, row := range rows {
			keep, err := s.inRelease(ctx, sessionID, row.ID, release)
			if err != nil {
				return err
			}
			if keep {
				issues = append(issues, issue.FromRow(row, release))
			}
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list issues",
			slog.String("operation", "ListIssues"),
			slog.String("tracker_id", trackerID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return issues, nil
}

// inRelease reports whether the artifact's release field names release.
// With no release field configured every artifact matches.
func (s *TrackerService) inRelease(ctx context.Context, sessionID, artifactID, release string) (bool, error) {
	if s.conn.ReleaseField == "" {
		return true, nil
	}

	a, err := s.gateway.GetArtifact(ctx, sessionID, artifactID)
	if err != nil {
		return false, err
	}

	releaseID, ok := a.FieldValue(s.conn.ReleaseField)
	if !ok || releaseID == "" {
		s.logger.DebugContext(ctx, "artifact has no release",
			slog.String("artifact_id", artifactID),
			slog.String("release_field", s.conn.ReleaseField),
		)
		return false, nil
	}

	name, found := s.releaseName(ctx, sessionID, releaseID)
	return found && name == release, nil
}

// releaseName resolves a release id to its title. Any failure counts as
// "not found" and is only logged.
func (s *TrackerService) releaseName(ctx context.Context, sessionID, releaseID string) (string, bool) {
	rel, err := s.gateway.GetRelease(ctx, sessionID, releaseID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to resolve release",
			slog.String("operation", "ListIssues"),
			slog.String("release_id", releaseID),
			slog.Any("error", err),
		)
		return "", false
	}
	return rel.Title, true
}

// ListCategories returns every project with its trackers.
func (s *TrackerService) ListCategories(ctx context.Context) ([]issue.Category, error) {
	s.logger.InfoContext(ctx, "listing categories")

	var categories []issue.Category
	err := s.withSession(ctx, "ListCategories", func(ctx context.Context, sessionID string) error {
		projects, err := s.gateway.ListProjects(ctx, sessionID)
		if err != nil {
			return err
		}

		categories = make([]issue.Category, 0, len(projects))
		for _, p := range projects {
			trackers, err := s.gateway.ListTrackers(ctx, sessionID, p.ID)
			if err != nil {
				return fmt.Errorf("listing trackers of project %s: %w", p.ID, err)
			}
			categories = append(categories, issue.NewProject(p.ID, p.Name, trackers))
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list categories",
			slog.String("operation", "ListCategories"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return categories, nil
}

// ListStatuses returns the statuses defined on the tracker.
func (s *TrackerService) ListStatuses(ctx context.Context, filter issue.CategoryFilter) ([]issue.Status, error) {
	trackerID, err := s.resolveFilter(filter).Tracker()
	if err != nil {
		return nil, err
	}

	var statuses []issue.Status
	err = s.withSession(ctx, "ListStatuses", func(ctx context.Context, sessionID string) error {
		statuses, err = s.statuses(ctx, sessionID, trackerID)
		return err
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list statuses",
			slog.String("operation", "ListStatuses"),
			slog.String("tracker_id", trackerID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return statuses, nil
}

func (s *TrackerService) statuses(ctx context.Context, sessionID, trackerID string) ([]issue.Status, error) {
	fields, err := s.gateway.ListFields(ctx, sessionID, trackerID)
	if err != nil {
		return nil, fmt.Errorf("fetching fields of tracker %s: %w", trackerID, err)
	}
	return issue.StatusesFromFields(fields), nil
}

// AppendIssueDescription appends text to the issue's description. Empty text
// returns immediately without contacting the server.
func (s *TrackerService) AppendIssueDescription(ctx context.Context, issueID, text string) error {
	if issueID == "" {
		return domain.Required("issue_id")
	}
	if text == "" {
		return nil
	}

	s.logger.InfoContext(ctx, "appending to issue description", slog.String("issue_id", issueID))

	err := s.withSession(ctx, "AppendIssueDescription", func(ctx context.Context, sessionID string) error {
		a, err := s.gateway.GetArtifact(ctx, sessionID, issueID)
		if err != nil {
			return err
		}
		a.Description += text
		return s.gateway.UpdateArtifact(ctx, sessionID, a)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to append issue description",
			slog.String("operation", "AppendIssueDescription"),
			slog.String("issue_id", issueID),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// ChangeIssueStatus moves the issue to the tracker status named status.
func (s *TrackerService) ChangeIssueStatus(ctx context.Context, filter issue.CategoryFilter, issueID, status string) error {
	if issueID == "" {
		return domain.Required("issue_id")
	}
	trackerID, err := s.resolveFilter(filter).Tracker()
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "changing issue status",
		slog.String("issue_id", issueID),
		slog.String("status", status),
	)

	err = s.withSession(ctx, "ChangeIssueStatus", func(ctx context.Context, sessionID string) error {
		statuses, err := s.statuses(ctx, sessionID, trackerID)
		if err != nil {
			return err
		}
		target, ok := issue.FindStatus(statuses, status)
		if !ok {
			return fmt.Errorf("invalid issue status %q: %w", status, domain.ErrInvalidArgument)
		}
		return s.setStatus(ctx, sessionID, issueID, target)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to change issue status",
			slog.String("operation", "ChangeIssueStatus"),
			slog.String("issue_id", issueID),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// CloseIssue moves the issue to the tracker's closed status.
func (s *TrackerService) CloseIssue(ctx context.Context, filter issue.CategoryFilter, issueID string) error {
	if issueID == "" {
		return domain.Required("issue_id")
	}
	trackerID, err := s.resolveFilter(filter).Tracker()
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "closing issue", slog.String("issue_id", issueID))

	err = s.withSession(ctx, "CloseIssue", func(ctx context.Context, sessionID string) error {
		statuses, err := s.statuses(ctx, sessionID, trackerID)
		if err != nil {
			return err
		}
		closed, ok := issue.ClosedStatus(statuses)
		if !ok {
			return fmt.Errorf("the issue tracker does not have a closed status defined: %w", domain.ErrConfiguration)
		}
		return s.setStatus(ctx, sessionID, issueID, closed)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to close issue",
			slog.String("operation", "CloseIssue"),
			slog.String("issue_id", issueID),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

func (s *TrackerService) setStatus(ctx context.Context, sessionID, issueID string, status issue.Status) error {
	a, err := s.gateway.GetArtifact(ctx, sessionID, issueID)
	if err != nil {
		return err
	}
	a.Status = status.Name
	a.StatusClass = status.Class
	return s.gateway.UpdateArtifact(ctx, sessionID, a)
}

// ValidateConnection performs a login/logoff round trip. Every failure is
// reported as domain.ErrUnavailable.
func (s *TrackerService) ValidateConnection(ctx context.Context) error {
	s.logger.InfoContext(ctx, "validating TeamForge connection", slog.String("base_url", s.conn.BaseURL))

	err := s.withSession(ctx, "ValidateConnection", func(context.Context, string) error {
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrUnavailable) {
		err = fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return err
}

// IssueURL returns the browser link for an issue.
func (s *TrackerService) IssueURL(issueID string) string {
	return urlpath.Join(s.conn.BaseURL, issueURLPrefix+issueID)
}

// IsIssueClosed reports whether the issue's status class is "Closed".
func (s *TrackerService) IsIssueClosed(i issue.Issue) bool {
	return i.IsClosed()
}

// Capabilities reports what the integration supports.
func (s *TrackerService) Capabilities() ports.Capabilities {
	return ports.Capabilities{
		AppendDescription: true,
		ChangeStatus:      true,
		CloseIssue:        true,
		CategoryTypes:     issue.CategoryTypeNames(),
		Available:         true,
	}
}

// Provider returns the integration's display names.
func (s *TrackerService) Provider() ports.ProviderInfo {
	return ports.ProviderInfo{
		Name:        ProviderName,
		Description: ProviderDescription,
		Summary:     ProviderSummary,
	}
}
