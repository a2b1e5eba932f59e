package issue

import (
	"fmt"

	"github.com/jsamuelsen11/teamforge-tracker/internal/domain"
)

// CategoryFilter selects the project and tracker an operation works on.
type CategoryFilter struct {
	ProjectID string
	TrackerID string
}

// Or fills empty fields of f from fallback.
func (f CategoryFilter) Or(fallback CategoryFilter) CategoryFilter {
	if f.ProjectID == "" {
		f.ProjectID = fallback.ProjectID
	}
	if f.TrackerID == "" {
		f.TrackerID = fallback.TrackerID
	}
	return f
}

// Tracker returns the tracker id, or a configuration error when none is set.
func (f CategoryFilter) Tracker() (string, error) {
	if f.TrackerID == "" {
		return "", fmt.Errorf("CollabNet issue tracker has not been specified: %w", domain.ErrConfiguration)
	}
	return f.TrackerID, nil
}
