// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package mmaccel

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/Gipcomp/win32/handle"
	"github.com/Gipcomp/win32/user32"

	"github.com/Gipcomp/mmaccel/errs"
)

type MsgBoxStyle uint

const (
	MsgBoxOK              MsgBoxStyle = user32.MB_OK
	MsgBoxIconError       MsgBoxStyle = user32.MB_ICONERROR
	MsgBoxIconWarning     MsgBoxStyle = user32.MB_ICONWARNING
	MsgBoxIconInformation MsgBoxStyle = user32.MB_ICONINFORMATION
)

const errorTitle = "MMAccel エラー"

func MsgBox(owner handle.HWND, title, message string, style MsgBoxStyle) int {
	messagePtr, err := syscall.UTF16PtrFromString(strings.ReplaceAll(message, "\x00", "␀"))
	if err != nil {
		errs.WrapErrorNoPanic(err)
		return 0
	}
	titlePtr, err := syscall.UTF16PtrFromString(strings.ReplaceAll(title, "\x00", "␀"))
	if err != nil {
		errs.WrapErrorNoPanic(err)
		return 0
	}
	return int(user32.MessageBox(
		owner,
		messagePtr,
		titlePtr,
		uint32(style)))
}

// showError reports err to the user once and logs it.
func showError(owner handle.HWND, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	errs.Logf("%s", message)
	MsgBox(owner, errorTitle, message, MsgBoxOK|MsgBoxIconError)
}

func versionInfo(owner handle.HWND) {
	MsgBox(owner, menuTitle, fmt.Sprintf("MMAccel v%s", Version), MsgBoxOK|MsgBoxIconInformation)
}
