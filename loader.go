// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmaccel

import (
	"github.com/Gipcomp/mmaccel/errs"
	"github.com/Gipcomp/mmaccel/handler"
	"github.com/Gipcomp/mmaccel/keymap"
	"github.com/Gipcomp/mmaccel/mmdmap"
	"github.com/Gipcomp/mmaccel/settings"
)

// LoadHandler builds a Handler from the files named by s. An unreadable
// action table is fatal. Missing bindings are replaced by the defaults on
// disk; unreadable bindings by the defaults in memory only, so the user's
// file is left for them to fix.
func LoadHandler(s *settings.Settings, ui handler.UI) (*handler.Handler, error) {
	m, err := mmdmap.Load(s.MMDMapPath())
	if err != nil {
		return nil, err
	}
	if n := m.Skipped(); n > 0 {
		errs.Logf("%s: %d entries skipped", s.MMDMap, n)
	}

	km, err := keymap.LoadOrDefault(s.KeyMapPath())
	if err != nil {
		errs.Logf("%v, using the default key map", err)
		km = keymap.Default()
	}

	h := handler.New(m, km, ui)
	errs.Debugf("loaded %d actions, %d chords", m.Len(), h.Len())
	return h, nil
}
