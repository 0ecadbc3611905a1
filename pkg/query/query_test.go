// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/hojadevida/pkg/query"
)

func TestStringSlice(t *testing.T) {
	assert.Nil(t, query.StringSlice(""))
	assert.Equal(t, []string{"Honestidad", "Trabajo en equipo"}, query.StringSlice(" Honestidad, ,Trabajo en equipo,"))
}

func TestChecked(t *testing.T) {
	values := url.Values{"a": {"on"}, "b": {"true"}, "c": {""}}

	assert.True(t, query.Checked(values, "a"))
	assert.False(t, query.Checked(values, "b"))
	assert.False(t, query.Checked(values, "c"))
	assert.False(t, query.Checked(values, "missing"))
}
