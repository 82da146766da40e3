// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package mmaccel

import (
	"syscall"
	"unsafe"

	"github.com/Gipcomp/win32/handle"
	"github.com/Gipcomp/win32/user32"
	"github.com/Gipcomp/win32/winuser"

	"github.com/Gipcomp/mmaccel/errs"
)

// Menu is the MMAccel popup appended to the host menu bar.
type Menu struct {
	hMenu  winuser.HMENU
	bar    winuser.HMENU
	pos    uint32
	window handle.HWND
}

func newMenu(window handle.HWND, enabled bool) (*Menu, error) {
	bar := getMenu(window)
	if bar == 0 {
		return nil, errs.NewError("host window has no menu bar")
	}

	hMenu := user32.CreatePopupMenu()
	if hMenu == 0 {
		return nil, errs.LastError("CreatePopupMenu")
	}

	m := &Menu{
		hMenu:  hMenu,
		bar:    bar,
		pos:    uint32(getMenuItemCount(bar)),
		window: window,
	}

	for item := MenuItem(0); item < menuItemCount; item++ {
		var mii winuser.MENUITEMINFO
		m.initMenuItemInfo(&mii, item, item == MenuEnabled && enabled)

		if !user32.InsertMenuItem(hMenu, uint32(item), true, &mii) {
			user32.DestroyMenu(hMenu)
			return nil, errs.LastError("InsertMenuItem")
		}
	}

	title, err := syscall.UTF16PtrFromString(menuTitle)
	if err != nil {
		user32.DestroyMenu(hMenu)
		return nil, errs.WrapError(err)
	}

	var mii winuser.MENUITEMINFO
	mii.CbSize = uint32(unsafe.Sizeof(mii))
	mii.FMask = winuser.MIIM_FTYPE | winuser.MIIM_STRING | winuser.MIIM_SUBMENU
	mii.FType = winuser.MFT_STRING
	mii.DwTypeData = title
	mii.Cch = uint32(len([]rune(menuTitle)))
	mii.HSubMenu = hMenu

	if !user32.InsertMenuItem(bar, m.pos, true, &mii) {
		user32.DestroyMenu(hMenu)
		return nil, errs.LastError("InsertMenuItem")
	}

	user32.DrawMenuBar(window)

	return m, nil
}

func (m *Menu) initMenuItemInfo(mii *winuser.MENUITEMINFO, item MenuItem, checked bool) {
	info := menuItems[item]

	mii.CbSize = uint32(unsafe.Sizeof(*mii))
	mii.FMask = winuser.MIIM_FTYPE | winuser.MIIM_ID | winuser.MIIM_STATE | winuser.MIIM_STRING
	mii.FType = winuser.MFT_STRING

	var err error
	mii.DwTypeData, err = syscall.UTF16PtrFromString(info.text)
	if err != nil {
		errs.WrapErrorNoPanic(err)
	}
	mii.Cch = uint32(len([]rune(info.text)))
	mii.WID = item.CommandID()

	if info.check && checked {
		mii.FState |= winuser.MFS_CHECKED
	}
}

// SetChecked updates the check mark of item.
func (m *Menu) SetChecked(item MenuItem, checked bool) error {
	var mii winuser.MENUITEMINFO
	m.initMenuItemInfo(&mii, item, checked)

	if !user32.SetMenuItemInfo(m.hMenu, uint32(item), true, &mii) {
		return errs.NewError("SetMenuItemInfo failed")
	}
	return nil
}

// Command returns the menu item a WM_COMMAND wParam refers to.
func (m *Menu) Command(wParam uintptr) (MenuItem, bool) {
	return menuItemFromCommand(wParam)
}

// Dispose takes the popup out of the menu bar and destroys it.
func (m *Menu) Dispose() {
	if m.hMenu == 0 {
		return
	}
	if user32.RemoveMenu(m.bar, m.pos, winuser.MF_BYPOSITION) {
		user32.DrawMenuBar(m.window)
	}
	user32.DestroyMenu(m.hMenu)
	m.hMenu = 0
}

// release forgets the popup after the host destroyed its window, which
// destroys the menu bar with it.
func (m *Menu) release() {
	m.hMenu = 0
}
