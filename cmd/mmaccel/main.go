// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

// Command mmaccel is the add-on DLL. Build it with -buildmode=c-shared; the
// host's loader shim calls mmaccel_run with the base address of the host
// image, and mmaccel_end when it unloads.
package main

// #include <stdint.h>
import "C"

import (
	"github.com/Gipcomp/mmaccel"
)

//export mmaccel_run
func mmaccel_run(base C.uintptr_t) {
	mmaccel.Run(uintptr(base))
}

//export mmaccel_end
func mmaccel_end() {
	mmaccel.End()
}

func main() {}
