package project

import "github.com/jsamuelsen11/teamforge-tracker/internal/domain/issue"

// ToDomainProjects converts project rows to childless project categories.
// Trackers are attached later by the caller.
func ToDomainProjects(resp GetProjectListResponse) []issue.Category {
	projects := make([]issue.Category, len(resp.Rows))
	for i, row := range resp.Rows {
		projects[i] = issue.NewProject(row.ID, row.Title, nil)
	}
	return projects
}

// ToDomainTrackers converts tracker rows to leaf categories.
func ToDomainTrackers(resp GetTrackerListResponse) []issue.Category {
	trackers := make([]issue.Category, len(resp.Rows))
	for i, row := range resp.Rows {
		trackers[i] = issue.NewTracker(row.ID, row.Title)
	}
	return trackers
}
