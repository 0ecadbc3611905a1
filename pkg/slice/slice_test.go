// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/hojadevida/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Nil(t, slice.Map[string, int](nil, func(s string) int { return len(s) }))
	assert.Equal(t, []int{3, 5}, slice.Map([]string{"uno", "cinco"}, func(s string) int { return len(s) }))
}

func TestFilter(t *testing.T) {
	refs := []string{"educacion/a.pdf", "", "https://cdn.example/b.pdf", " "}
	kept := slice.Filter(refs, func(ref string) bool { return strings.TrimSpace(ref) != "" })
	assert.Equal(t, []string{"educacion/a.pdf", "https://cdn.example/b.pdf"}, kept)
}
