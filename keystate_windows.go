// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package mmaccel

import "syscall"

// GetKeyStateProxy is a stdcall replacement for user32!GetKeyState that
// reports the keys held by Key actions.
var GetKeyStateProxy = syscall.NewCallback(proxyGetKeyState)

func proxyGetKeyState(vk uintptr) uintptr {
	if c := current.Load(); c != nil {
		if state, ok := c.KeyState(uint32(vk)); ok {
			return uintptr(state)
		}
	}
	return uintptr(uint16(getKeyState(int32(vk))))
}
