// Package project implements the Anti-Corruption Layer translators for the
// TeamForge project and tracker lists, which map to the domain category tree.
package project

import "encoding/xml"

// Namespace is the TeamForge SOAP 5.0 service namespace.
const Namespace = "http://schema.open.collab.net/sfee50/soap50/service"

// GetProjectListRequest is the getProjectList operation body.
type GetProjectListRequest struct {
	XMLName   xml.Name `xml:"http://schema.open.collab.net/sfee50/soap50/service getProjectList"`
	SessionID string   `xml:"sessionId"`
}

// GetProjectListResponse is the getProjectList result.
type GetProjectListResponse struct {
	XMLName xml.Name     `xml:"getProjectListResponse"`
	Rows    []ProjectRow `xml:"getProjectListReturn>dataRows>item"`
}

// ProjectRow matches ProjectSoapRow.
type ProjectRow struct {
	ID          string `xml:"id"`
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Path        string `xml:"path"`
}

// GetTrackerListRequest is the getTrackerList operation body.
type GetTrackerListRequest struct {
	XMLName   xml.Name `xml:"http://schema.open.collab.net/sfee50/soap50/service getTrackerList"`
	SessionID string   `xml:"sessionId"`
	ProjectID string   `xml:"projectId"`
}

// GetTrackerListResponse is the getTrackerList result.
type GetTrackerListResponse struct {
	XMLName xml.Name     `xml:"getTrackerListResponse"`
	Rows    []TrackerRow `xml:"getTrackerListReturn>dataRows>item"`
}

// TrackerRow matches TrackerSoapRow.
type TrackerRow struct {
	ID          string `xml:"id"`
	Title       string `xml:"title"`
	Description string `xml:"description"`
	ProjectID   string `xml:"projectId"`
}
