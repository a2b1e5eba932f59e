// Package frs implements the Anti-Corruption Layer translators for the
// TeamForge file release service (FrsApp).
package frs

import "encoding/xml"

// GetReleaseDataRequest is the getReleaseData operation body.
type GetReleaseDataRequest struct {
	XMLName   xml.Name `xml:"http://schema.open.collab.net/sfee50/soap50/service getReleaseData"`
	SessionID string   `xml:"sessionId"`
	ReleaseID string   `xml:"releaseId"`
}

// GetReleaseDataResponse is the getReleaseData result.
type GetReleaseDataResponse struct {
	XMLName xml.Name    `xml:"getReleaseDataResponse"`
	Release ReleaseData `xml:"getReleaseDataReturn"`
}

// ReleaseData matches FrsReleaseSoapDO.
type ReleaseData struct {
	ID          string `xml:"id"`
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Status      string `xml:"status"`
	Maturity    string `xml:"maturity"`
	FolderID    string `xml:"folderId"`
}
