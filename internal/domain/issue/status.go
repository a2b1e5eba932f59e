package issue

import "github.com/jsamuelsen11/teamforge-tracker/internal/domain/artifact"

// ClosedStatusName is the status name preferred when closing an issue.
const ClosedStatusName = "Closed"

// Status is a tracker status: a name plus its coarse class.
type Status struct {
	Name  string
	Class string
}

// Equal compares statuses by name.
func (s Status) Equal(other Status) bool {
	return s.Name == other.Name
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return s.Name
}

// IsClosed reports whether the status belongs to the closed class.
func (s Status) IsClosed() bool {
	return s.Class == artifact.ClassClosed
}

// StatusesFromFields returns the values of the first field named "Status",
// in definition order. It returns nil when no such field exists.
func StatusesFromFields(fields []artifact.Field) []Status {
	for _, f := range fields {
		if f.Name != artifact.StatusFieldName {
			continue
		}
		statuses := make([]Status, 0, len(f.Values))
		for _, v := range f.Values {
			statuses = append(statuses, Status{Name: v.Value, Class: v.Class})
		}
		return statuses
	}
	return nil
}

// FindStatus returns the status whose name matches exactly.
func FindStatus(statuses []Status, name string) (Status, bool) {
	for _, s := range statuses {
		if s.Name == name {
			return s, true
		}
	}
	return Status{}, false
}

// ClosedStatus picks the status to use when closing an issue: the one named
// "Closed" with class "Closed" if present, else the first closed-class status.
func ClosedStatus(statuses []Status) (Status, bool) {
	for _, s := range statuses {
		if s.Name == ClosedStatusName && s.IsClosed() {
			return s, true
		}
	}
	for _, s := range statuses {
		if s.IsClosed() {
			return s, true
		}
	}
	return Status{}, false
}
