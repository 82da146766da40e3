// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inject

import (
	"encoding/binary"
	"errors"
	"testing"
)

// image builds a minimal PE32+ image importing GetKeyState, an ordinal and
// GetFocus from USER32.dll.
func image() []byte {
	img := make([]byte, 0x400)
	le := binary.LittleEndian

	le.PutUint16(img[0:], dosMagic)
	le.PutUint32(img[0x3c:], 0x40)
	le.PutUint32(img[0x40:], ntSignature)

	const opt = 0x40 + 4 + fileHdrSize
	le.PutUint16(img[opt:], pe32Plus)
	le.PutUint32(img[opt+sizeOfImgOff:], uint32(len(img)))
	le.PutUint32(img[opt+108:], 16)
	le.PutUint32(img[opt+112+8:], 0x200)
	le.PutUint32(img[opt+112+12:], 2*descSize)

	le.PutUint32(img[0x200:], 0x280)
	le.PutUint32(img[0x200+12:], 0x300)
	le.PutUint32(img[0x200+16:], 0x2c0)

	le.PutUint64(img[0x280:], 0x320)
	le.PutUint64(img[0x288:], 1<<63|5)
	le.PutUint64(img[0x290:], 0x340)

	copy(img[0x300:], "USER32.dll\x00")
	copy(img[0x322:], "GetKeyState\x00")
	copy(img[0x342:], "GetFocus\x00")

	return img
}

func TestFindImport(t *testing.T) {
	img := image()

	if size, err := SizeOfImage(img); err != nil || size != 0x400 {
		t.Fatalf("SizeOfImage=%#x,%v", size, err)
	}

	tests := []struct {
		dll, fn string
		slot    uint32
	}{
		{"user32.dll", "GetKeyState", 0x2c0},
		{"USER32.DLL", "GetFocus", 0x2d0},
	}
	for _, test := range tests {
		slot, thunk, err := FindImport(img, test.dll, test.fn)
		if err != nil {
			t.Fatalf("FindImport(%s, %s) returned error: %v", test.dll, test.fn, err)
		}
		if slot != test.slot || thunk != 8 {
			t.Fatalf("FindImport(%s, %s)=%#x,%d, want %#x,8", test.dll, test.fn, slot, thunk, test.slot)
		}
	}

	for _, test := range []struct{ dll, fn string }{
		{"user32.dll", "getkeystate"},
		{"user32.dll", "GetAsyncKeyState"},
		{"kernel32.dll", "GetKeyState"},
	} {
		if _, _, err := FindImport(img, test.dll, test.fn); !errors.Is(err, ErrNotFound) {
			t.Fatalf("FindImport(%s, %s) error %v is not ErrNotFound", test.dll, test.fn, err)
		}
	}
}

func TestFindImportBadImage(t *testing.T) {
	img := image()

	for name, data := range map[string][]byte{
		"empty":     nil,
		"truncated": img[:0x60],
		"no MZ":     append([]byte{'X', 'X'}, img[2:]...),
	} {
		if _, _, err := FindImport(data, "user32.dll", "GetKeyState"); !errors.Is(err, ErrBadImage) {
			t.Fatalf("%s: error %v is not ErrBadImage", name, err)
		}
	}
}
