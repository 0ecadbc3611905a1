// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer builds pointers to literals, mostly for optional dates.
package pointer

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}
