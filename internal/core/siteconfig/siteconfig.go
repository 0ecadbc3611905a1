// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package siteconfig holds the single row that toggles public sections on and off.
package siteconfig

// SingletonID is the only primary key the table accepts.
const SingletonID = 1

// Config lists the site-wide visibility flags. A missing row means everything
// is shown.
type Config struct {
	ShowHome       bool `json:"show_home"`
	ShowProfile    bool `json:"show_profile"`
	ShowExperience bool `json:"show_experience"`
	ShowEducation  bool `json:"show_education"`
	ShowCourses    bool `json:"show_courses"`
	ShowAwards     bool `json:"show_awards"`
	ShowProjects   bool `json:"show_projects"`
	ShowSale       bool `json:"show_sale"`
	ShowContact    bool `json:"show_contact"`
}

// Default returns a config with every section shown.
func Default() Config {
	return Config{
		ShowHome:       true,
		ShowProfile:    true,
		ShowExperience: true,
		ShowEducation:  true,
		ShowCourses:    true,
		ShowAwards:     true,
		ShowProjects:   true,
		ShowSale:       true,
		ShowContact:    true,
	}
}
