package schema

// CVWorkExperienceTable represents the 'cv.workexperience' table
type CVWorkExperienceTable struct {
	Table        string
	ID           string
	Position     string
	Company      string
	StartDate    string
	EndDate      string
	Description  string
	Active       string
	Modality     string
	ContactName  string
	ContactPhone string
	CreatedAt    string
	UpdatedAt    string
}

// CVWorkExperience is the schema definition for cv.workexperience
var CVWorkExperience = CVWorkExperienceTable{
	Table:        "cv.workexperience",
	ID:           "id",
	Position:     "position",
	Company:      "company",
	StartDate:    "startdate",
	EndDate:      "enddate",
	Description:  "description",
	Active:       "active",
	Modality:     "modality",
	ContactName:  "contactname",
	ContactPhone: "contactphone",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns lists the columns read into the domain entity, in scan order.
func (t CVWorkExperienceTable) Columns() []string {
	return []string{t.ID, t.Position, t.Company, t.StartDate, t.EndDate, t.Description, t.Active, t.Modality, t.ContactName, t.ContactPhone}
}
