package frs

import "github.com/jsamuelsen11/teamforge-tracker/internal/domain/artifact"

// ToDomainRelease converts a release record.
func ToDomainRelease(resp GetReleaseDataResponse) *artifact.Release {
	return &artifact.Release{ID: resp.Release.ID, Title: resp.Release.Title}
}
