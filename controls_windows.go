// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package mmaccel

import (
	"github.com/Gipcomp/win32/commctrl"
	"github.com/Gipcomp/win32/handle"
	"github.com/Gipcomp/win32/user32"
	"github.com/Gipcomp/win32/win"

	"github.com/Gipcomp/mmaccel/handler"
)

// Controls drives the host's child controls with window messages.
type Controls struct{}

var _ handler.UI = Controls{}

func hwnd(w handler.Window) handle.HWND {
	return handle.HWND(w)
}

func (Controls) DlgItem(parent handler.Window, id uint32) handler.Window {
	return handler.Window(user32.GetDlgItem(hwnd(parent), int32(id)))
}

func (Controls) Visible(w handler.Window) bool {
	return user32.IsWindowVisible(hwnd(w))
}

func (Controls) Enabled(w handler.Window) bool {
	return user32.IsWindowEnabled(hwnd(w))
}

func (Controls) Click(w handler.Window) {
	postMessage(hwnd(w), bmClick, 0, 0)
}

func (Controls) Focus(w handler.Window) {
	user32.SetFocus(hwnd(w))
}

func (Controls) ComboSelection(w handler.Window) (index, count int) {
	index = int(int32(user32.SendMessage(hwnd(w), commctrl.CB_GETCURSEL, 0, 0)))
	count = int(int32(user32.SendMessage(hwnd(w), cbGetCount, 0, 0)))
	return
}

func (Controls) SetComboSelection(w, parent handler.Window, id uint32, index int) {
	user32.SendMessage(hwnd(w), commctrl.CB_SETCURSEL, uintptr(index), 0)
	postMessage(
		hwnd(parent),
		user32.WM_COMMAND,
		uintptr(win.MAKELONG(uint16(id), uint16(commctrl.CBN_SELCHANGE))),
		uintptr(w))
}

func (Controls) MenuCommand(parent handler.Window, index, subIndex uint32) (uint32, bool) {
	bar := getMenu(hwnd(parent))
	if bar == 0 {
		return 0, false
	}
	sub := getSubMenu(bar, index)
	if sub == 0 {
		return 0, false
	}

	state := getMenuState(sub, subIndex)
	if state == ^uint32(0) || state&(mfGrayed|mfDisabled) != 0 {
		return 0, false
	}

	id := getMenuItemID(sub, subIndex)
	if id == ^uint32(0) {
		return 0, false
	}
	return id, true
}

func (Controls) PostCommand(parent handler.Window, cmd uint32) {
	postMessage(hwnd(parent), user32.WM_COMMAND, uintptr(cmd), 0)
}

func (Controls) KeyboardState(table *[256]byte) bool {
	return getKeyboardState(table)
}
