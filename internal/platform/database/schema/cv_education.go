package schema

// CVEducationTable represents the 'cv.education' table
type CVEducationTable struct {
	Table       string
	ID          string
	Title       string
	Institution string
	StartDate   string
	EndDate     string
	Certificate string
	Active      string
	CreatedAt   string
	UpdatedAt   string
}

// CVEducation is the schema definition for cv.education
var CVEducation = CVEducationTable{
	Table:       "cv.education",
	ID:          "id",
	Title:       "title",
	Institution: "institution",
	StartDate:   "startdate",
	EndDate:     "enddate",
	Certificate: "certificate",
	Active:      "active",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns lists the columns read into the domain entity, in scan order.
func (t CVEducationTable) Columns() []string {
	return []string{t.ID, t.Title, t.Institution, t.StartDate, t.EndDate, t.Certificate, t.Active}
}
