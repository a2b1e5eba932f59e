package tracker

import "github.com/jsamuelsen11/teamforge-tracker/internal/domain/artifact"

// ToDomainRows converts an artifact list, keeping server order.
func ToDomainRows(resp GetArtifactListResponse) []artifact.Row {
	rows := make([]artifact.Row, len(resp.Rows))
	for i, r := range resp.Rows {
		rows[i] = artifact.Row{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Status:      r.Status,
			StatusClass: r.StatusClass,
		}
	}
	return rows
}

// ToDomainArtifact converts a full artifact record. Flexible fields are
// zipped from the parallel name/type/value arrays; a missing type is empty
// and a missing value is nil.
func ToDomainArtifact(dto ArtifactData) *artifact.Artifact {
	return &artifact.Artifact{
		ID:                dto.ID,
		Title:             dto.Title,
		Description:       dto.Description,
		FolderID:          dto.FolderID,
		Path:              dto.Path,
		Category:          fromWire(dto.Category),
		Group:             fromWire(dto.Group),
		Status:            dto.Status,
		StatusClass:       dto.StatusClass,
		Customer:          fromWire(dto.Customer),
		Priority:          dto.Priority,
		EstimatedHours:    dto.EstimatedHours,
		ActualHours:       dto.ActualHours,
		AssignedTo:        fromWire(dto.AssignedTo),
		ReportedReleaseID: fromWire(dto.ReportedReleaseID),
		ResolvedReleaseID: fromWire(dto.ResolvedReleaseID),
		CloseDate:         fromWire(dto.CloseDate),
		CreatedBy:         dto.CreatedBy,
		CreatedDate:       fromWire(dto.CreatedDate),
		LastModifiedBy:    dto.LastModifiedBy,
		LastModifiedDate:  fromWire(dto.LastModifiedDate),
		Version:           dto.Version,
		FlexFields:        toDomainFlexFields(dto.FlexFields),
	}
}

func toDomainFlexFields(ff FlexFields) []artifact.FlexField {
	fields := make([]artifact.FlexField, len(ff.Names))
	for i, name := range ff.Names {
		value := at(ff.Values, i)
		fields[i] = artifact.FlexField{
			Name:      name,
			Type:      at(ff.Types, i),
			Value:     fromWire(value.Nillable),
			ValueType: value.Type,
		}
	}
	return fields
}

func at[T any](s []T, i int) T {
	var zero T
	if i < len(s) {
		return s[i]
	}
	return zero
}

func fromWire(n Nillable) artifact.NullString {
	return artifact.NullString{String: n.Value, Valid: n.Valid}
}

func toWire(s artifact.NullString) Nillable {
	return Nillable{Value: s.String, Valid: s.Valid}
}

// FromDomainArtifact converts an artifact back to its wire record for
// setArtifactData. Every field is carried, nil ones as xsi:nil, so the
// write-back is lossless.
func FromDomainArtifact(a *artifact.Artifact) ArtifactData {
	ff := FlexFields{
		Names:  make([]string, len(a.FlexFields)),
		Types:  make([]string, len(a.FlexFields)),
		Values: make([]TypedValue, len(a.FlexFields)),
	}
	for i, f := range a.FlexFields {
		ff.Names[i] = f.Name
		ff.Types[i] = f.Type
		ff.Values[i] = TypedValue{Nillable: toWire(f.Value), Type: f.ValueType}
	}

	return ArtifactData{
		ID:                a.ID,
		Title:             a.Title,
		Description:       a.Description,
		FolderID:          a.FolderID,
		Path:              a.Path,
		Category:          toWire(a.Category),
		Group:             toWire(a.Group),
		Status:            a.Status,
		StatusClass:       a.StatusClass,
		Customer:          toWire(a.Customer),
		Priority:          a.Priority,
		EstimatedHours:    a.EstimatedHours,
		ActualHours:       a.ActualHours,
		AssignedTo:        toWire(a.AssignedTo),
		ReportedReleaseID: toWire(a.ReportedReleaseID),
		ResolvedReleaseID: toWire(a.ResolvedReleaseID),
		CloseDate:         toWire(a.CloseDate),
		CreatedBy:         a.CreatedBy,
		CreatedDate:       toWire(a.CreatedDate),
		LastModifiedBy:    a.LastModifiedBy,
		LastModifiedDate:  toWire(a.LastModifiedDate),
		Version:           a.Version,
		FlexFields:        ff,
	}
}

// ToSetArtifactDataRequest builds the write-back body with an empty comment.
func ToSetArtifactDataRequest(sessionID string, a *artifact.Artifact) SetArtifactDataRequest {
	return SetArtifactDataRequest{
		SessionID:    sessionID,
		ArtifactData: FromDomainArtifact(a),
	}
}

// ToDomainFields converts tracker field definitions.
func ToDomainFields(resp GetFieldsResponse) []artifact.Field {
	fields := make([]artifact.Field, len(resp.Fields))
	for i, f := range resp.Fields {
		values := make([]artifact.FieldValue, len(f.Values))
		for j, v := range f.Values {
			values[j] = artifact.FieldValue{Value: v.Value, Class: v.ValueClass}
		}
		fields[i] = artifact.Field{Name: f.Name, Values: values}
	}
	return fields
}
