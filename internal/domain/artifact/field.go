package artifact

import "strconv"

// StatusFieldName is the tracker field whose values define the statuses.
const StatusFieldName = "Status"

// FieldValue is one allowed value of a tracker field.
type FieldValue struct {
	Value string
	Class string
}

// Field is a tracker field definition.
type Field struct {
	Name   string
	Values []FieldValue
}

// knownFields maps artifact property names, as TeamForge spells them, to
// accessors. Lookups fall back to flexible fields for anything not listed.
var knownFields = map[string]func(*Artifact) string{
	"id":                func(a *Artifact) string { return a.ID },
	"title":             func(a *Artifact) string { return a.Title },
	"description":       func(a *Artifact) string { return a.Description },
	"folderId":          func(a *Artifact) string { return a.FolderID },
	"path":              func(a *Artifact) string { return a.Path },
	"category":          func(a *Artifact) string { return a.Category.String },
	"group":             func(a *Artifact) string { return a.Group.String },
	"status":            func(a *Artifact) string { return a.Status },
	"statusClass":       func(a *Artifact) string { return a.StatusClass },
	"customer":          func(a *Artifact) string { return a.Customer.String },
	"priority":          func(a *Artifact) string { return strconv.Itoa(a.Priority) },
	"estimatedHours":    func(a *Artifact) string { return strconv.Itoa(a.EstimatedHours) },
	"actualHours":       func(a *Artifact) string { return strconv.Itoa(a.ActualHours) },
	"assignedTo":        func(a *Artifact) string { return a.AssignedTo.String },
	"reportedReleaseId": func(a *Artifact) string { return a.ReportedReleaseID.String },
	"resolvedReleaseId": func(a *Artifact) string { return a.ResolvedReleaseID.String },
	"closeDate":         func(a *Artifact) string { return a.CloseDate.String },
	"createdBy":         func(a *Artifact) string { return a.CreatedBy },
	"createdDate":       func(a *Artifact) string { return a.CreatedDate.String },
	"lastModifiedBy":    func(a *Artifact) string { return a.LastModifiedBy },
	"lastModifiedDate":  func(a *Artifact) string { return a.LastModifiedDate.String },
	"version":           func(a *Artifact) string { return strconv.Itoa(a.Version) },
}

// FieldValue returns the value of the named field. Known properties are
// checked first, then flexible fields by exact name. A nil value reads as
// empty. The boolean is false when the field is defined nowhere on the
// artifact.
func (a *Artifact) FieldValue(name string) (string, bool) {
	if get, ok := knownFields[name]; ok {
		return get(a), true
	}
	for _, f := range a.FlexFields {
		if f.Name == name {
			return f.Value.String, true
		}
	}
	return "", false
}

// IsKnownField reports whether name is a first-class artifact property.
func IsKnownField(name string) bool {
	_, ok := knownFields[name]
	return ok
}
