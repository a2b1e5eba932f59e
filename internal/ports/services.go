package ports

import (
	"context"

	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/issue"
)

// Capabilities describes what the tracker integration supports.
type Capabilities struct {
	AppendDescription bool
	ChangeStatus      bool
	CloseIssue        bool
	CategoryTypes     []string
	Available         bool
}

// ProviderInfo names the tracker integration to the host.
type ProviderInfo struct {
	Name        string
	Description string
	Summary     string
}

// IssueTracker defines the service port for issue tracker operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Operations taking a CategoryFilter fall back to the configured project and
// tracker for any field the filter leaves empty.
type IssueTracker interface {
	// ListIssues returns the issues of the filter's tracker whose release
	// field resolves to the given release name. When no release field is
	// configured every issue is returned.
	// Returns domain.ErrConfiguration if no tracker is specified.
	ListIssues(ctx context.Context, filter issue.CategoryFilter, release string) ([]issue.Issue, error)

	// ListCategories returns every project with its trackers.
	ListCategories(ctx context.Context) ([]issue.Category, error)

	// ListStatuses returns the statuses defined on the filter's tracker.
	// Returns domain.ErrConfiguration if no tracker is specified.
	ListStatuses(ctx context.Context, filter issue.CategoryFilter) ([]issue.Status, error)

	// AppendIssueDescription appends text to an issue's description. Empty
	// text is a no-op.
	// Returns domain.ErrInvalidArgument if issueID is empty.
	AppendIssueDescription(ctx context.Context, issueID, text string) error

	// ChangeIssueStatus moves an issue to the named status.
	// Returns domain.ErrInvalidArgument if issueID is empty or the status is
	// not defined on the tracker, domain.ErrConfiguration if no tracker is
	// specified.
	ChangeIssueStatus(ctx context.Context, filter issue.CategoryFilter, issueID, status string) error

	// CloseIssue moves an issue to the tracker's closed status.
	// Returns domain.ErrConfiguration if no tracker is specified or the
	// tracker has no status of class "Closed".
	CloseIssue(ctx context.Context, filter issue.CategoryFilter, issueID string) error

	// ValidateConnection performs a login/logoff round trip.
	// Returns domain.ErrUnavailable if the server cannot be reached or
	// rejects the credentials.
	ValidateConnection(ctx context.Context) error

	// IssueURL returns the browser URL of an issue.
	IssueURL(issueID string) string

	// IsIssueClosed reports whether the issue's status class is "Closed".
	IsIssueClosed(i issue.Issue) bool

	// Capabilities reports the supported operations and category levels.
	Capabilities() Capabilities

	// Provider returns the display names of the integration.
	Provider() ProviderInfo
}
