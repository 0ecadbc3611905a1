package schema

// CVSiteConfigTable represents the 'cv.siteconfig' table
type CVSiteConfigTable struct {
	Table          string
	ID             string
	ShowHome       string
	ShowProfile    string
	ShowExperience string
	ShowEducation  string
	ShowCourses    string
	ShowAwards     string
	ShowProjects   string
	ShowSale       string
	ShowContact    string
	UpdatedAt      string
}

// CVSiteConfig is the schema definition for cv.siteconfig
var CVSiteConfig = CVSiteConfigTable{
	Table:          "cv.siteconfig",
	ID:             "id",
	ShowHome:       "showhome",
	ShowProfile:    "showprofile",
	ShowExperience: "showexperience",
	ShowEducation:  "showeducation",
	ShowCourses:    "showcourses",
	ShowAwards:     "showawards",
	ShowProjects:   "showprojects",
	ShowSale:       "showsale",
	ShowContact:    "showcontact",
	UpdatedAt:      "updatedat",
}

// Columns lists the columns read into the domain entity, in scan order.
func (t CVSiteConfigTable) Columns() []string {
	return []string{t.ID, t.ShowHome, t.ShowProfile, t.ShowExperience, t.ShowEducation, t.ShowCourses, t.ShowAwards, t.ShowProjects, t.ShowSale, t.ShowContact}
}
