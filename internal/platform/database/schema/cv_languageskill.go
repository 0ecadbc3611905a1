package schema

// CVLanguageSkillTable represents the 'cv.languageskill' table
type CVLanguageSkillTable struct {
	Table     string
	ID        string
	ProfileID string
	Name      string
	Level     string
}

// CVLanguageSkill is the schema definition for cv.languageskill
var CVLanguageSkill = CVLanguageSkillTable{
	Table:     "cv.languageskill",
	ID:        "id",
	ProfileID: "profileid",
	Name:      "name",
	Level:     "level",
}

// Columns lists the columns read into the domain entity, in scan order.
func (t CVLanguageSkillTable) Columns() []string {
	return []string{t.ID, t.ProfileID, t.Name, t.Level}
}
