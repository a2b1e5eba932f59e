package issue

// Category type names, outermost first. Projects contain trackers.
const (
	CategoryTypeProject = "Project"
	CategoryTypeTracker = "Tracker"
)

// CategoryTypeNames returns the category levels exposed to the host.
func CategoryTypeNames() []string {
	return []string{CategoryTypeProject, CategoryTypeTracker}
}

// Category is a node of the project/tracker tree.
type Category struct {
	ID       string
	Name     string
	Children []Category
}

// NewProject returns a project category holding the given trackers.
func NewProject(id, name string, trackers []Category) Category {
	children := make([]Category, len(trackers))
	copy(children, trackers)
	return Category{ID: id, Name: name, Children: children}
}

// NewTracker returns a leaf tracker category.
func NewTracker(id, name string) Category {
	return Category{ID: id, Name: name, Children: []Category{}}
}
