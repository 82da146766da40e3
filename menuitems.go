// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmaccel

// MenuItem is an entry of the MMAccel menu added to the host menu bar.
type MenuItem int

const (
	MenuKeyConfig MenuItem = iota
	MenuReload
	MenuEnabled
	MenuVersion
	menuItemCount
)

// The command id of the first menu item. Item n has id menuRootID+n.
const menuRootID = 50000

// menuTitle is the label of the popup in the host menu bar.
const menuTitle = "MMAccel"

type menuItemInfo struct {
	text  string
	check bool
}

var menuItems = [menuItemCount]menuItemInfo{
	MenuKeyConfig: {text: "キー設定"},
	MenuReload:    {text: "再読み込み"},
	MenuEnabled:   {text: "ショートカット有効", check: true},
	MenuVersion:   {text: "バージョン情報"},
}

func (item MenuItem) String() string {
	switch item {
	case MenuKeyConfig:
		return "KeyConfig"
	case MenuReload:
		return "Reload"
	case MenuEnabled:
		return "Enabled"
	case MenuVersion:
		return "Version"
	}
	return "MenuItem(?)"
}

// CommandID returns the WM_COMMAND id of item.
func (item MenuItem) CommandID() uint32 {
	return menuRootID + uint32(item)
}

// menuItemFromCommand maps the wParam of a WM_COMMAND back to a menu item.
// Accelerator and control notifications, which carry a non-zero high word,
// never match.
func menuItemFromCommand(wParam uintptr) (MenuItem, bool) {
	if (wParam>>16)&0xffff != 0 {
		return 0, false
	}
	id := uint32(wParam & 0xffff)
	if id < menuRootID || id >= menuRootID+uint32(menuItemCount) {
		return 0, false
	}
	return MenuItem(id - menuRootID), true
}
