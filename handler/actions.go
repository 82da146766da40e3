// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package handler

import (
	"github.com/Gipcomp/mmaccel/errs"
	"github.com/Gipcomp/mmaccel/mmdmap"
)

func (h *Handler) usable(w Window) bool {
	return w != 0 && h.ui.Visible(w) && h.ui.Enabled(w)
}

func (h *Handler) execute(kind mmdmap.Kind, target Window) {
	errs.Debugf("handler: %v", kind)

	switch k := kind.(type) {
	case mmdmap.Key:
		if _, ok := h.keyStates[k.ID]; ok {
			h.keyStates[k.ID] = true
		}

	case mmdmap.Button:
		if w := h.ui.DlgItem(target, k.ID); h.usable(w) {
			h.ui.Click(w)
		}

	case mmdmap.Edit:
		if w := h.ui.DlgItem(target, k.ID); h.usable(w) {
			h.ui.Focus(w)
		}

	case mmdmap.Combo:
		w := h.ui.DlgItem(target, k.ID)
		if !h.usable(w) {
			return
		}
		index, count := h.ui.ComboSelection(w)
		switch k.Dir {
		case mmdmap.Prev:
			if index >= 1 {
				h.ui.SetComboSelection(w, target, k.ID, index-1)
			}
		case mmdmap.Next:
			if index < count-1 {
				h.ui.SetComboSelection(w, target, k.ID, index+1)
			}
		}

	case mmdmap.Menu:
		if cmd, ok := h.ui.MenuCommand(target, k.Index, k.SubIndex); ok {
			h.ui.PostCommand(target, cmd)
		}

	case mmdmap.Fold:
		w := h.ui.DlgItem(target, k.Hide)
		if w == 0 || !h.ui.Visible(w) {
			w = h.ui.DlgItem(target, k.Show)
		}
		if h.usable(w) {
			h.ui.Click(w)
		}

	case mmdmap.KillFocus:
		h.ui.Focus(target)

	case mmdmap.FoldAll:
		h.clickVisible(target, h.foldIDs)

	case mmdmap.UnfoldAll:
		h.clickVisible(target, h.unfoldIDs)
	}
}

func (h *Handler) clickVisible(target Window, ids []uint32) {
	for _, id := range ids {
		if w := h.ui.DlgItem(target, id); w != 0 && h.ui.Visible(w) {
			h.ui.Click(w)
		}
	}
}
