// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package inject

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Gipcomp/mmaccel/errs"
)

// headerSpan covers the DOS, NT and optional headers of any image the
// loader maps.
const headerSpan = 0x1000

func mapped(base uintptr, n uint32) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(base)), n)
}

// Patch points the import of fn from dll in the module loaded at base to
// proc and returns the previous target.
func Patch(base uintptr, dll, fn string, proc uintptr) (uintptr, error) {
	size, err := SizeOfImage(mapped(base, headerSpan))
	if err != nil {
		return 0, errs.Wrap(err, "inject")
	}

	slot, thunk, err := FindImport(mapped(base, size), dll, fn)
	if err != nil {
		return 0, errs.Wrap(err, "inject")
	}
	if uintptr(thunk) != unsafe.Sizeof(uintptr(0)) {
		return 0, errs.NewErrorf("inject: %d-byte thunks in a %d-bit process", thunk, unsafe.Sizeof(uintptr(0))*8)
	}

	addr := base + uintptr(slot)
	var protect uint32
	if err := windows.VirtualProtect(addr, uintptr(thunk), windows.PAGE_READWRITE, &protect); err != nil {
		return 0, errs.Wrap(err, fmt.Sprintf("inject: VirtualProtect %s!%s", dll, fn))
	}

	entry := (*uintptr)(unsafe.Pointer(addr))
	old := *entry
	*entry = proc

	if err := windows.VirtualProtect(addr, uintptr(thunk), protect, &protect); err != nil {
		errs.Logf("inject: restoring protection of %s!%s: %v", dll, fn, err)
	}

	errs.Debugf("inject: %s!%s %#x -> %#x", dll, fn, old, proc)
	return old, nil
}
