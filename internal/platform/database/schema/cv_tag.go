package schema

// CVTagTable represents the 'cv.tag' table
type CVTagTable struct {
	Table string
	ID    string
	Name  string
	Slug  string
}

// CVTag is the schema definition for cv.tag
var CVTag = CVTagTable{
	Table: "cv.tag",
	ID:    "id",
	Name:  "name",
	Slug:  "slug",
}

// Columns lists the columns read into the domain entity, in scan order.
func (t CVTagTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug}
}
