// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package handler

// Window is a native window or control handle. Zero is no window.
type Window uintptr

// UI is the host window toolkit the handler drives. Every method is best
// effort: an invalid handle is ignored.
type UI interface {
	// DlgItem returns the child control id of parent, or 0.
	DlgItem(parent Window, id uint32) Window
	Visible(w Window) bool
	Enabled(w Window) bool

	// Click posts a button click to w.
	Click(w Window)
	Focus(w Window)

	// ComboSelection returns the selected index and the item count of a
	// combo box.
	ComboSelection(w Window) (index, count int)
	// SetComboSelection selects index in w and notifies parent of the
	// selection change as control id.
	SetComboSelection(w, parent Window, id uint32, index int)

	// MenuCommand resolves item subIndex of submenu index in parent's
	// menu bar. ok is false for a missing or disabled item.
	MenuCommand(parent Window, index, subIndex uint32) (cmd uint32, ok bool)
	PostCommand(parent Window, cmd uint32)

	// KeyboardState fills table with the current key state. It returns
	// false when no snapshot is available.
	KeyboardState(table *[256]byte) bool
}
