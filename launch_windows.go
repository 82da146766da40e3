// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package mmaccel

import (
	"github.com/Gipcomp/win32/handle"
	"golang.org/x/sys/windows"

	"github.com/Gipcomp/mmaccel/errs"
)

// Launch starts the executable path with dir as its working directory.
func Launch(owner handle.HWND, path, dir string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return errs.WrapError(err)
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return errs.WrapError(err)
	}
	cwd, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return errs.WrapError(err)
	}

	if err := windows.ShellExecute(windows.Handle(owner), verb, file, nil, cwd, windows.SW_SHOWNORMAL); err != nil {
		return errs.Wrap(err, path)
	}
	return nil
}
