package project

import (
	"encoding/xml"
	"testing"
)

func TestToDomainProjects(t *testing.T) {
	t.Parallel()

	resp := GetProjectListResponse{Rows: []ProjectRow{
		{ID: "proj1001", Title: "Alpha"},
		{ID: "proj1002", Title: "Beta"},
	}}

	got := ToDomainProjects(resp)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "proj1001" || got[0].Name != "Alpha" {
		t.Errorf("got[0] = %+v, want proj1001/Alpha", got[0])
	}
	if got[1].ID != "proj1002" || got[1].Name != "Beta" {
		t.Errorf("got[1] = %+v, want proj1002/Beta", got[1])
	}
	if len(got[0].Children) != 0 {
		t.Errorf("Children = %d, want 0", len(got[0].Children))
	}
}

func TestToDomainTrackers(t *testing.T) {
	t.Parallel()

	got := ToDomainTrackers(GetTrackerListResponse{Rows: []TrackerRow{{ID: "tracker1001", Title: "Bugs"}}})

	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != "tracker1001" || got[0].Name != "Bugs" {
		t.Errorf("got[0] = %+v, want tracker1001/Bugs", got[0])
	}
	if got[0].Children == nil {
		t.Error("Children = nil, want empty leaf slice")
	}
}

func TestToDomainProjects_Empty(t *testing.T) {
	t.Parallel()

	got := ToDomainProjects(GetProjectListResponse{})
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestGetTrackerListResponse_Decode(t *testing.T) {
	t.Parallel()

	body := `<ns1:getTrackerListResponse xmlns:ns1="` + Namespace + `">
  <getTrackerListReturn>
    <dataRows>
      <item><id>tracker1001</id><title>Bugs</title><projectId>proj1001</projectId></item>
      <item><id>tracker1002</id><title>Tasks</title><projectId>proj1001</projectId></item>
    </dataRows>
  </getTrackerListReturn>
</ns1:getTrackerListResponse>`

	var resp GetTrackerListResponse
	if err := xml.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(resp.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(resp.Rows))
	}
	if resp.Rows[1].Title != "Tasks" || resp.Rows[1].ProjectID != "proj1001" {
		t.Errorf("Rows[1] = %+v, want Tasks in proj1001", resp.Rows[1])
	}
}
