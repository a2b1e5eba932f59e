// Package issue holds the host-facing tracker model: issues, statuses,
// categories and the category filter that selects a tracker.
package issue

import "github.com/jsamuelsen11/teamforge-tracker/internal/domain/artifact"

// Issue is a TeamForge artifact as the host sees it.
type Issue struct {
	ID          string
	Status      string
	Title       string
	Description string
	Release     string
	Closed      bool
}

// FromRow builds an Issue from an artifact list row. The release is the
// release name the issue was listed for.
func FromRow(row artifact.Row, release string) Issue {
	return Issue{
		ID:          row.ID,
		Status:      row.Status,
		Title:       row.Title,
		Description: row.Description,
		Release:     release,
		Closed:      row.IsClosed(),
	}
}

// IsClosed reports whether the underlying status class was "Closed".
func (i Issue) IsClosed() bool {
	return i.Closed
}
