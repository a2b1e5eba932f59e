// Package artifact holds the TeamForge tracker records exchanged with the
// gateway: artifact list rows, full artifact records with flexible fields,
// tracker field definitions and file-release records.
package artifact

// ClassClosed is the status class TeamForge assigns to terminal statuses.
const ClassClosed = "Closed"

// Row is one entry of a tracker's artifact list.
type Row struct {
	ID          string
	Title       string
	Description string
	Status      string
	StatusClass string
}

// IsClosed reports whether the row's status class is ClassClosed.
func (r Row) IsClosed() bool {
	return r.StatusClass == ClassClosed
}

// NullString is a value the server may send as nil rather than empty. The
// zero value is nil.
type NullString struct {
	String string
	Valid  bool
}

// Some returns a non-nil NullString holding s.
func Some(s string) NullString {
	return NullString{String: s, Valid: true}
}

// FlexField is a tracker-specific custom field addressed by name. Type is
// the TeamForge field type ("String", "Date", "User"); ValueType is the XML
// Schema type the value was sent with ("string", "dateTime").
type FlexField struct {
	Name      string
	Type      string
	Value     NullString
	ValueType string
}

// Artifact is the full artifact record. It is read, modified in memory and
// written back as a whole, so every field the server returns is carried,
// including which optional fields were nil. Dates stay in their wire form so
// a write-back does not reformat them.
type Artifact struct {
	ID                string
	Title             string
	Description       string
	FolderID          string
	Path              string
	Category          NullString
	Group             NullString
	Status            string
	StatusClass       string
	Customer          NullString
	Priority          int
	EstimatedHours    int
	ActualHours       int
	AssignedTo        NullString
	ReportedReleaseID NullString
	ResolvedReleaseID NullString
	CloseDate         NullString
	CreatedBy         string
	CreatedDate       NullString
	LastModifiedBy    string
	LastModifiedDate  NullString
	Version           int
	FlexFields        []FlexField
}

// Release is a file-release (FRS) record.
type Release struct {
	ID    string
	Title string
}
