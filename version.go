// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmaccel hooks into the MikuMikuDance GUI thread and turns key
// chords into clicks, selections, menu commands and held keys on the host
// window.
package mmaccel

const Version = "2.0.0"
