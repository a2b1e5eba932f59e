// Package tracker implements the Anti-Corruption Layer translators for the
// TeamForge TrackerApp service: artifact lists, artifact records and tracker
// field definitions.
package tracker

import "encoding/xml"

// GetArtifactListRequest is the getArtifactList operation body. An empty
// filter list returns every artifact of the container.
type GetArtifactListRequest struct {
	XMLName     xml.Name   `xml:"http://schema.open.collab.net/sfee50/soap50/service getArtifactList"`
	SessionID   string     `xml:"sessionId"`
	ContainerID string     `xml:"containerId"`
	Filters     FilterList `xml:"filters"`
}

// FilterList is a SoapFilter array.
type FilterList struct {
	Items []Filter `xml:"item"`
}

// Filter matches SoapFilter.
type Filter struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

// GetArtifactListResponse is the getArtifactList result.
type GetArtifactListResponse struct {
	XMLName xml.Name      `xml:"getArtifactListResponse"`
	Rows    []ArtifactRow `xml:"getArtifactListReturn>dataRows>item"`
}

// ArtifactRow matches ArtifactSoapRow. Only the columns the adapter reads
// are mapped.
type ArtifactRow struct {
	ID          string `xml:"id"`
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Status      string `xml:"status"`
	StatusClass string `xml:"statusClass"`
	FolderID    string `xml:"folderId"`
	Category    string `xml:"category"`
	Priority    int    `xml:"priority"`
}

// GetArtifactDataRequest is the getArtifactData operation body.
type GetArtifactDataRequest struct {
	XMLName    xml.Name `xml:"http://schema.open.collab.net/sfee50/soap50/service getArtifactData"`
	SessionID  string   `xml:"sessionId"`
	ArtifactID string   `xml:"artifactId"`
}

// GetArtifactDataResponse is the getArtifactData result.
type GetArtifactDataResponse struct {
	XMLName  xml.Name     `xml:"getArtifactDataResponse"`
	Artifact ArtifactData `xml:"getArtifactDataReturn"`
}

// ArtifactData matches ArtifactSoapDO. Columns TeamForge leaves nil on an
// ordinary artifact (an open one has no closeDate) are Nillable.
type ArtifactData struct {
	ID                string     `xml:"id"`
	Title             string     `xml:"title"`
	Description       string     `xml:"description"`
	FolderID          string     `xml:"folderId"`
	Path              string     `xml:"path"`
	Category          Nillable   `xml:"category"`
	Group             Nillable   `xml:"group"`
	Status            string     `xml:"status"`
	StatusClass       string     `xml:"statusClass"`
	Customer          Nillable   `xml:"customer"`
	Priority          int        `xml:"priority"`
	EstimatedHours    int        `xml:"estimatedHours"`
	ActualHours       int        `xml:"actualHours"`
	AssignedTo        Nillable   `xml:"assignedTo"`
	ReportedReleaseID Nillable   `xml:"reportedReleaseId"`
	ResolvedReleaseID Nillable   `xml:"resolvedReleaseId"`
	CloseDate         Nillable   `xml:"closeDate"`
	CreatedBy         string     `xml:"createdBy"`
	CreatedDate       Nillable   `xml:"createdDate"`
	LastModifiedBy    string     `xml:"lastModifiedBy"`
	LastModifiedDate  Nillable   `xml:"lastModifiedDate"`
	Version           int        `xml:"version"`
	FlexFields        FlexFields `xml:"flexFields"`
}

// FlexFields matches SoapFieldValues: three parallel arrays indexed together.
type FlexFields struct {
	Names  []string     `xml:"names>item"`
	Types  []string     `xml:"types>item"`
	Values []TypedValue `xml:"values>item"`
}

// SetArtifactDataRequest is the setArtifactData operation body. Attachment
// parameters are omitted; the adapter never uploads files.
type SetArtifactDataRequest struct {
	XMLName      xml.Name     `xml:"http://schema.open.collab.net/sfee50/soap50/service setArtifactData"`
	SessionID    string       `xml:"sessionId"`
	ArtifactData ArtifactData `xml:"artifactData"`
	Comment      string       `xml:"comment"`
}

// SetArtifactDataResponse is the (empty) setArtifactData result.
type SetArtifactDataResponse struct {
	XMLName xml.Name `xml:"setArtifactDataResponse"`
}

// GetFieldsRequest is the getFields operation body.
type GetFieldsRequest struct {
	XMLName   xml.Name `xml:"http://schema.open.collab.net/sfee50/soap50/service getFields"`
	SessionID string   `xml:"sessionId"`
	TrackerID string   `xml:"trackerId"`
}

// GetFieldsResponse is the getFields result.
type GetFieldsResponse struct {
	XMLName xml.Name    `xml:"getFieldsResponse"`
	Fields  []FieldData `xml:"getFieldsReturn>item"`
}

// FieldData matches TrackerFieldSoapDO.
type FieldData struct {
	ID          string           `xml:"id"`
	Name        string           `xml:"name"`
	FieldType   string           `xml:"fieldType"`
	DisplayType string           `xml:"displayType"`
	Values      []FieldValueData `xml:"fieldValues>item"`
}

// FieldValueData matches TrackerFieldValueSoapDO.
type FieldValueData struct {
	ID         string `xml:"id"`
	Value      string `xml:"value"`
	ValueClass string `xml:"valueClass"`
	IsDefault  bool   `xml:"isDefault"`
}
