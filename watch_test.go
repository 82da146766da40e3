// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmaccel

import "testing"

func TestWatched(t *testing.T) {
	names := []string{"key_map.json", "mmd_map.json"}

	tests := []struct {
		changed string
		want    bool
	}{
		{"key_map.json", true},
		{"KEY_MAP.JSON", true},
		{"mmd_map.json", true},
		{"key_map.json~", false},
		{"mmaccel.log", false},
		{"", false},
	}
	for _, test := range tests {
		if got := watched(test.changed, names); got != test.want {
			t.Fatalf("watched(%q)=%v, want %v", test.changed, got, test.want)
		}
	}
}
