package schema

// CVCourseTable represents the 'cv.course' table
type CVCourseTable struct {
	Table       string
	ID          string
	Name        string
	Institution string
	HeldOn      string
	Hours       string
	Certificate string
	Active      string
	CreatedAt   string
	UpdatedAt   string
}

// CVCourse is the schema definition for cv.course
var CVCourse = CVCourseTable{
	Table:       "cv.course",
	ID:          "id",
	Name:        "name",
	Institution: "institution",
	HeldOn:      "heldon",
	Hours:       "hours",
	Certificate: "certificate",
	Active:      "active",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns lists the columns read into the domain entity, in scan order.
func (t CVCourseTable) Columns() []string {
	return []string{t.ID, t.Name, t.Institution, t.HeldOn, t.Hours, t.Certificate, t.Active}
}
