package tracker

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/jsamuelsen11/teamforge-tracker/internal/domain/artifact"
)

func TestToDomainRows(t *testing.T) {
	t.Parallel()

	resp := GetArtifactListResponse{Rows: []ArtifactRow{
		{ID: "artf1001", Title: "Crash", Description: "d1", Status: "Open", StatusClass: "Open"},
		{ID: "artf1002", Title: "Typo", Status: "Closed", StatusClass: "Closed"},
	}}

	got := ToDomainRows(resp)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "artf1001" || got[0].Description != "d1" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[0].IsClosed() {
		t.Error("got[0].IsClosed() = true, want false")
	}
	if !got[1].IsClosed() {
		t.Error("got[1].IsClosed() = false, want true")
	}
}

func TestToDomainArtifact_FlexFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ff   FlexFields
		want []artifact.FlexField
	}{
		{
			name: "parallel arrays zipped",
			ff: FlexFields{
				Names: []string{"Release", "Component"},
				Types: []string{"String", "String"},
				Values: []TypedValue{
					{Nillable: Nillable{Value: "rel1001", Valid: true}, Type: "string"},
					{Nillable: Nillable{Value: "core", Valid: true}, Type: "string"},
				},
			},
			want: []artifact.FlexField{
				{Name: "Release", Type: "String", Value: artifact.Some("rel1001"), ValueType: "string"},
				{Name: "Component", Type: "String", Value: artifact.Some("core"), ValueType: "string"},
			},
		},
		{
			name: "short value array leaves value nil",
			ff: FlexFields{
				Names:  []string{"Release", "Component"},
				Values: []TypedValue{{Nillable: Nillable{Value: "rel1001", Valid: true}}},
			},
			want: []artifact.FlexField{
				{Name: "Release", Value: artifact.Some("rel1001")},
				{Name: "Component"},
			},
		},
		{
			name: "no flex fields",
			want: []artifact.FlexField{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToDomainArtifact(ArtifactData{ID: "artf1001", FlexFields: tt.ff}).FlexFields
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFromDomainArtifact_RoundTripsWriteBackFields(t *testing.T) {
	t.Parallel()

	a := &artifact.Artifact{
		ID:                "artf1001",
		Title:             "Crash",
		Description:       "old\nnew",
		Status:            "Closed",
		StatusClass:       "Closed",
		Priority:          2,
		ResolvedReleaseID: artifact.Some("rel1001"),
		LastModifiedDate:  artifact.Some("2009-05-12T10:15:00.000Z"),
		Version:           7,
		FlexFields: []artifact.FlexField{
			{Name: "Component", Type: "String", Value: artifact.Some("core"), ValueType: "string"},
		},
	}

	dto := FromDomainArtifact(a)

	if dto.Version != 7 {
		t.Errorf("Version = %d, want 7", dto.Version)
	}
	if want := (Nillable{Value: "2009-05-12T10:15:00.000Z", Valid: true}); dto.LastModifiedDate != want {
		t.Errorf("LastModifiedDate = %+v, want %+v", dto.LastModifiedDate, want)
	}
	if dto.CloseDate.Valid {
		t.Errorf("CloseDate = %+v, want nil", dto.CloseDate)
	}
	if len(dto.FlexFields.Names) != 1 || dto.FlexFields.Values[0].Value != "core" || dto.FlexFields.Values[0].Type != "string" {
		t.Errorf("FlexFields = %+v", dto.FlexFields)
	}

	back := ToDomainArtifact(dto)
	if back.Description != a.Description || back.StatusClass != a.StatusClass || back.Priority != a.Priority {
		t.Errorf("round trip = %+v, want %+v", back, a)
	}
}

func TestToSetArtifactDataRequest_Marshal(t *testing.T) {
	t.Parallel()

	req := ToSetArtifactDataRequest("sess-1", &artifact.Artifact{ID: "artf1001", Status: "Fixed"})

	out, err := xml.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(out)

	for _, want := range []string{
		`<setArtifactData xmlns="http://schema.open.collab.net/sfee50/soap50/service">`,
		`<sessionId>sess-1</sessionId>`,
		`<artifactData><id>artf1001</id>`,
		`<status>Fixed</status>`,
		`<closeDate xsi:nil="true"></closeDate>`,
		`<comment></comment>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("marshalled body missing %q:\n%s", want, s)
		}
	}
	if strings.Contains(s, "attachment") {
		t.Errorf("marshalled body carries attachment parameters:\n%s", s)
	}
}

func TestNillable_XML(t *testing.T) {
	t.Parallel()

	type record struct {
		XMLName xml.Name   `xml:"r"`
		Date    Nillable   `xml:"closeDate"`
		Item    TypedValue `xml:"item"`
	}
	const xsi = `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`

	tests := []struct {
		name     string
		in       string
		wantDate Nillable
		wantItem TypedValue
		wantOut  string
	}{
		{
			name:    "nil elements stay nil",
			in:      `<r ` + xsi + `><closeDate xsi:nil="true"/><item xsi:nil="1"/></r>`,
			wantOut: `<r><closeDate xsi:nil="true"></closeDate><item xsi:nil="true"></item></r>`,
		},
		{
			name:     "values keep their schema type",
			in:       `<r ` + xsi + `><closeDate>2009-05-12T10:15:00.000Z</closeDate><item xsi:type="ns2:dateTime">2009-06-01T00:00:00.000Z</item></r>`,
			wantDate: Nillable{Value: "2009-05-12T10:15:00.000Z", Valid: true},
			wantItem: TypedValue{Nillable: Nillable{Value: "2009-06-01T00:00:00.000Z", Valid: true}, Type: "dateTime"},
			wantOut: `<r><closeDate>2009-05-12T10:15:00.000Z</closeDate>` +
				`<item xsi:type="xsd:dateTime">2009-06-01T00:00:00.000Z</item></r>`,
		},
		{
			name:     "empty element is an empty value",
			in:       `<r><closeDate></closeDate><item>x</item></r>`,
			wantDate: Nillable{Valid: true},
			wantItem: TypedValue{Nillable: Nillable{Value: "x", Valid: true}},
			wantOut:  `<r><closeDate></closeDate><item>x</item></r>`,
		},
		{
			name:    "missing elements are nil",
			in:      `<r></r>`,
			wantOut: `<r><closeDate xsi:nil="true"></closeDate><item xsi:nil="true"></item></r>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got record
			if err := xml.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got.Date != tt.wantDate || got.Item != tt.wantItem {
				t.Errorf("decoded = %+v / %+v, want %+v / %+v", got.Date, got.Item, tt.wantDate, tt.wantItem)
			}

			out, err := xml.Marshal(got)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(out) != tt.wantOut {
				t.Errorf("Marshal() = %s, want %s", out, tt.wantOut)
			}
		})
	}
}

func TestToDomainFields(t *testing.T) {
	t.Parallel()

	body := `<getFieldsResponse>
  <getFieldsReturn>
    <item>
      <id>fld1</id><name>Status</name>
      <fieldValues>
        <item><value>Open</value><valueClass>Open</valueClass></item>
        <item><value>Closed</value><valueClass>Closed</valueClass></item>
      </fieldValues>
    </item>
    <item><id>fld2</id><name>Priority</name></item>
  </getFieldsReturn>
</getFieldsResponse>`

	var resp GetFieldsResponse
	if err := xml.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	got := ToDomainFields(resp)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != artifact.StatusFieldName || len(got[0].Values) != 2 {
		t.Fatalf("got[0] = %+v", got[0])
	}
	if got[0].Values[1] != (artifact.FieldValue{Value: "Closed", Class: "Closed"}) {
		t.Errorf("Values[1] = %+v", got[0].Values[1])
	}
	if len(got[1].Values) != 0 {
		t.Errorf("got[1].Values = %+v, want none", got[1].Values)
	}
}
