// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package mmaccel

import (
	"syscall"
	"unsafe"

	"github.com/Gipcomp/win32/handle"
	"github.com/Gipcomp/win32/winuser"
	"golang.org/x/sys/windows"
)

// Messages and hook ids the bindings do not export.
const (
	whGetMessage     = 3
	whCallWndProcRet = 12
	hcAction         = 0
	pmRemove         = 0x0001

	wmCreate     = 0x0001
	wmSysKeyDown = 0x0104
	wmSysKeyUp   = 0x0105

	bmClick    = 0x00F5
	cbGetCount = 0x0146

	mfGrayed   = 0x0001
	mfDisabled = 0x0002
)

var (
	libuser32 = windows.NewLazySystemDLL("user32.dll")

	procSetWindowsHookExW   = libuser32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = libuser32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = libuser32.NewProc("CallNextHookEx")
	procPostMessageW        = libuser32.NewProc("PostMessageW")
	procGetKeyboardState    = libuser32.NewProc("GetKeyboardState")
	procGetKeyState         = libuser32.NewProc("GetKeyState")
	procGetClassNameW       = libuser32.NewProc("GetClassNameW")
	procGetMenu             = libuser32.NewProc("GetMenu")
	procGetSubMenu          = libuser32.NewProc("GetSubMenu")
	procGetMenuState        = libuser32.NewProc("GetMenuState")
	procGetMenuItemID       = libuser32.NewProc("GetMenuItemID")
	procGetMenuItemCount    = libuser32.NewProc("GetMenuItemCount")
)

// cwpRetStruct is CWPRETSTRUCT.
type cwpRetStruct struct {
	LResult uintptr
	LParam  uintptr
	WParam  uintptr
	Message uint32
	HWnd    handle.HWND
}

func setWindowsHookEx(id int, fn uintptr, threadID uint32) (uintptr, error) {
	h, _, err := procSetWindowsHookExW.Call(uintptr(id), fn, 0, uintptr(threadID))
	if h == 0 {
		return 0, err
	}
	return h, nil
}

func unhookWindowsHookEx(h uintptr) {
	procUnhookWindowsHookEx.Call(h)
}

func callNextHookEx(code int, wParam, lParam uintptr) uintptr {
	ret, _, _ := procCallNextHookEx.Call(0, uintptr(code), wParam, lParam)
	return ret
}

func postMessage(hwnd handle.HWND, msg uint32, wParam, lParam uintptr) bool {
	ret, _, _ := procPostMessageW.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return ret != 0
}

func getKeyboardState(table *[256]byte) bool {
	ret, _, _ := procGetKeyboardState.Call(uintptr(unsafe.Pointer(table)))
	return ret != 0
}

func getKeyState(vk int32) int16 {
	ret, _, _ := procGetKeyState.Call(uintptr(vk))
	return int16(ret)
}

func className(hwnd handle.HWND) string {
	var buf [256]uint16
	n, _, _ := procGetClassNameW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return syscall.UTF16ToString(buf[:n])
}

func getMenu(hwnd handle.HWND) winuser.HMENU {
	ret, _, _ := procGetMenu.Call(uintptr(hwnd))
	return winuser.HMENU(ret)
}

func getSubMenu(hMenu winuser.HMENU, pos uint32) winuser.HMENU {
	ret, _, _ := procGetSubMenu.Call(uintptr(hMenu), uintptr(pos))
	return winuser.HMENU(ret)
}

func getMenuState(hMenu winuser.HMENU, pos uint32) uint32 {
	ret, _, _ := procGetMenuState.Call(uintptr(hMenu), uintptr(pos), uintptr(winuser.MF_BYPOSITION))
	return uint32(ret)
}

func getMenuItemID(hMenu winuser.HMENU, pos uint32) uint32 {
	ret, _, _ := procGetMenuItemID.Call(uintptr(hMenu), uintptr(pos))
	return uint32(ret)
}

func getMenuItemCount(hMenu winuser.HMENU) int {
	ret, _, _ := procGetMenuItemCount.Call(uintptr(hMenu))
	return int(int32(ret))
}
