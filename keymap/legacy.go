// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/Gipcomp/mmaccel/errs"
	"github.com/Gipcomp/mmaccel/keys"
)

// ImportLegacy reads the text key map of earlier releases:
//
//	# comment
//	FramePrev = A
//	Undo = Ctrl+Z
//
// Lines that do not parse are logged and skipped; their count is returned
// with the bindings.
func ImportLegacy(r io.Reader) (KeyMap, int, error) {
	km := make(KeyMap)
	skipped := 0

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, chord, ok := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" || strings.Contains(chord, "=") {
			skipped++
			errs.Logf("key_map.txt:%d: malformed line", n)
			continue
		}

		k, err := keys.Parse(chord)
		if err != nil {
			skipped++
			errs.Logf("key_map.txt:%d: %s: %v", n, name, err)
			continue
		}
		km[name] = k
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, errs.Wrap(err, "key_map.txt")
	}

	return km, skipped, nil
}

func ImportLegacyFile(path string) (KeyMap, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errs.Wrap(err, "key_map.txt")
	}
	defer f.Close()

	return ImportLegacy(f)
}
