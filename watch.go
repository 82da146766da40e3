// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmaccel

import (
	"path/filepath"
	"strings"
)

// watched reports whether a changed file name, relative to the watched
// directory, is one of names. File names compare case-insensitively.
func watched(changed string, names []string) bool {
	changed = filepath.Base(filepath.Clean(changed))
	for _, name := range names {
		if strings.EqualFold(changed, filepath.Base(name)) {
			return true
		}
	}
	return false
}
