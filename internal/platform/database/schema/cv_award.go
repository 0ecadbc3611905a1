package schema

// CVAwardTable represents the 'cv.award' table
type CVAwardTable struct {
	Table            string
	ID               string
	Name             string
	Institution      string
	AwardedOn        string
	RegistrationCode string
	Active           string
	CreatedAt        string
	UpdatedAt        string
}

// CVAward is the schema definition for cv.award
var CVAward = CVAwardTable{
	Table:            "cv.award",
	ID:               "id",
	Name:             "name",
	Institution:      "institution",
	AwardedOn:        "awardedon",
	RegistrationCode: "registrationcode",
	Active:           "active",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

// Columns lists the columns read into the domain entity, in scan order.
func (t CVAwardTable) Columns() []string {
	return []string{t.ID, t.Name, t.Institution, t.AwardedOn, t.RegistrationCode, t.Active}
}
