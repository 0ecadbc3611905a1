package schema

// CVProfileTable represents the 'cv.profile' table
type CVProfileTable struct {
	Table         string
	ID            string
	NationalID    string
	FirstNames    string
	LastNames     string
	Sex           string
	MaritalStatus string
	Nationality   string
	Birthplace    string
	BirthDate     string
	Phone         string
	Landline      string
	Email         string
	Website       string
	Address       string
	WorkAddress   string
	License       string
	Photo         string
	Bio           string
	Interests     string
	Values        string
	LinkedInURL   string
	GitHubURL     string
	InstagramURL  string
	YouTubeURL    string
	TikTokURL     string
	ShowSection   string
	CreatedAt     string
	UpdatedAt     string
}

// CVProfile is the schema definition for cv.profile
var CVProfile = CVProfileTable{
	Table:         "cv.profile",
	ID:            "id",
	NationalID:    "nationalid",
	FirstNames:    "firstnames",
	LastNames:     "lastnames",
	Sex:           "sex",
	MaritalStatus: "maritalstatus",
	Nationality:   "nationality",
	Birthplace:    "birthplace",
	BirthDate:     "birthdate",
	Phone:         "phone",
	Landline:      "landline",
	Email:         "email",
	Website:       "website",
	Address:       "address",
	WorkAddress:   "workaddress",
	License:       "license",
	Photo:         "photo",
	Bio:           "bio",
	Interests:     "interests",
	Values:        "professionalvalues",
	LinkedInURL:   "linkedinurl",
	GitHubURL:     "githuburl",
	InstagramURL:  "instagramurl",
	YouTubeURL:    "youtubeurl",
	TikTokURL:     "tiktokurl",
	ShowSection:   "showsection",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

// Columns lists the columns read into the domain entity, in scan order.
func (t CVProfileTable) Columns() []string {
	return []string{t.ID, t.NationalID, t.FirstNames, t.LastNames, t.Sex, t.MaritalStatus, t.Nationality, t.Birthplace, t.BirthDate, t.Phone, t.Landline, t.Email, t.Website, t.Address, t.WorkAddress, t.License, t.Photo, t.Bio, t.Interests, t.Values, t.LinkedInURL, t.GitHubURL, t.InstagramURL, t.YouTubeURL, t.TikTokURL, t.ShowSection}
}
