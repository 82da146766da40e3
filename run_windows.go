// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package mmaccel

import (
	"os"
	"path/filepath"

	"github.com/Gipcomp/mmaccel/errs"
	"github.com/Gipcomp/mmaccel/inject"
	"github.com/Gipcomp/mmaccel/settings"
)

// patched is the GetKeyState import slot taken over by Run.
var patched struct {
	base uintptr
	old  uintptr
}

// Run starts the add-on inside the host whose main module is loaded at
// base. Failures are shown to the user once.
func Run(base uintptr) error {
	exe, err := os.Executable()
	if err != nil {
		showError(0, "MMAccelの読み込みに失敗しました: %v", err)
		return errs.WrapErrorNoPanic(err)
	}
	root := filepath.Dir(exe)

	s, err := settings.Load(filepath.Join(root, settings.FileName))
	if err != nil {
		showError(0, "MMAccelの設定を読み込めません: %v", err)
		return err
	}
	s.Resolve(root)

	errs.SetDebug(s.Debug)
	if f, err := os.OpenFile(s.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		errs.SetOutput(f)
	} else {
		errs.Logf("log: %v", err)
	}
	errs.Logf("MMAccel v%s", Version)

	if _, err := Attach(s); err != nil {
		showError(0, "MMAccelの読み込みに失敗しました: %v", err)
		return err
	}

	old, err := inject.Patch(base, "user32.dll", "GetKeyState", GetKeyStateProxy)
	if err != nil {
		Detach()
		showError(0, "MMAccelの読み込みに失敗しました: %v", err)
		return err
	}
	patched.base, patched.old = base, old

	return nil
}

// End undoes Run: the host's GetKeyState import is restored and the
// Context detached. It does nothing when Run has not succeeded.
func End() {
	if Current() == nil {
		return
	}

	if patched.old != 0 {
		if _, err := inject.Patch(patched.base, "user32.dll", "GetKeyState", patched.old); err != nil {
			errs.Logf("end: %v", err)
		}
		patched.base, patched.old = 0, 0
	}

	Detach()
	errs.Logf("MMAccel v%s detached", Version)
}
