// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package query parses loosely formatted request and settings values.

Used for comma separated lists stored in text columns or environment
variables, and for HTML checkbox parameters.
*/
package query

import (
	"net/url"
	"strings"
)

// CheckboxOn is the value browsers send for a checked box without a value attribute.
const CheckboxOn = "on"

// StringSlice splits a comma separated list, trimming entries and dropping blanks.
// Returns nil for an empty input.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// Checked reports whether the checkbox named key was submitted as checked.
// Any value other than "on" counts as unchecked.
func Checked(values url.Values, key string) bool {
	return values.Get(key) == CheckboxOn
}
