package schema

// CVAcademicProductTable represents the 'cv.academicproduct' table
type CVAcademicProductTable struct {
	Table          string
	ID             string
	Name           string
	Description    string
	RegistrationID string
	PublishedOn    string
	File           string
	Active         string
	CreatedAt      string
	UpdatedAt      string
}

// CVAcademicProduct is the schema definition for cv.academicproduct
var CVAcademicProduct = CVAcademicProductTable{
	Table:          "cv.academicproduct",
	ID:             "id",
	Name:           "name",
	Description:    "description",
	RegistrationID: "registrationid",
	PublishedOn:    "publishedon",
	File:           "file",
	Active:         "active",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// Columns lists the columns read into the domain entity, in scan order.
func (t CVAcademicProductTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description, t.RegistrationID, t.PublishedOn, t.File, t.Active}
}
