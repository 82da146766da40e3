// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inject redirects an imported function of a loaded module to a
// replacement by rewriting the module's import address table.
package inject

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("import not found")
	ErrBadImage = errors.New("not a PE image")
)

const (
	dosMagic     = 0x5a4d
	ntSignature  = 0x00004550
	pe32Magic    = 0x10b
	pe32Plus     = 0x20b
	importEntry  = 1
	descSize     = 20
	fileHdrSize  = 20
	sizeOfImgOff = 56
)

type reader struct {
	data []byte
	err  error
}

func (r *reader) check(off, n uint64) bool {
	if r.err != nil {
		return false
	}
	if off+n > uint64(len(r.data)) {
		r.err = fmt.Errorf("%w: offset %#x out of range", ErrBadImage, off)
		return false
	}
	return true
}

func (r *reader) u16(off uint32) uint16 {
	if !r.check(uint64(off), 2) {
		return 0
	}
	return binary.LittleEndian.Uint16(r.data[off:])
}

func (r *reader) u32(off uint32) uint32 {
	if !r.check(uint64(off), 4) {
		return 0
	}
	return binary.LittleEndian.Uint32(r.data[off:])
}

func (r *reader) u64(off uint32) uint64 {
	if !r.check(uint64(off), 8) {
		return 0
	}
	return binary.LittleEndian.Uint64(r.data[off:])
}

func (r *reader) cstring(off uint32) string {
	if !r.check(uint64(off), 1) {
		return ""
	}
	s := r.data[off:]
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return string(s[:i])
	}
	r.err = fmt.Errorf("%w: unterminated name at %#x", ErrBadImage, off)
	return ""
}

// headers locates the optional header of img and returns its offset, the
// size of a thunk and the offset of the data directory.
func headers(r *reader) (opt, thunk, dir uint32, err error) {
	if r.u16(0) != dosMagic {
		return 0, 0, 0, ErrBadImage
	}
	nt := r.u32(0x3c)
	if r.u32(nt) != ntSignature {
		if r.err != nil {
			return 0, 0, 0, r.err
		}
		return 0, 0, 0, ErrBadImage
	}
	opt = nt + 4 + fileHdrSize

	switch r.u16(opt) {
	case pe32Magic:
		thunk, dir = 4, opt+96
	case pe32Plus:
		thunk, dir = 8, opt+112
	default:
		if r.err != nil {
			return 0, 0, 0, r.err
		}
		return 0, 0, 0, ErrBadImage
	}
	return opt, thunk, dir, r.err
}

// SizeOfImage returns the in-memory size declared by the headers of img.
func SizeOfImage(img []byte) (uint32, error) {
	r := &reader{data: img}
	opt, _, _, err := headers(r)
	if err != nil {
		return 0, err
	}
	size := r.u32(opt + sizeOfImgOff)
	return size, r.err
}

// FindImport returns the offset within the mapped image img of the import
// address table slot holding fn imported from dll, and the thunk size. The
// dll name compares case-insensitively, fn exactly. Imports by ordinal are
// skipped.
func FindImport(img []byte, dll, fn string) (slot, thunk uint32, err error) {
	r := &reader{data: img}
	_, thunk, dir, err := headers(r)
	if err != nil {
		return 0, 0, err
	}
	n := r.u32(dir - 4)
	imports := r.u32(dir + importEntry*8)
	if r.err != nil {
		return 0, 0, r.err
	}
	if n <= importEntry || imports == 0 {
		return 0, 0, ErrNotFound
	}

	ordinal := uint64(1) << (thunk*8 - 1)
	entry := func(off uint32) uint64 {
		if thunk == 4 {
			return uint64(r.u32(off))
		}
		return r.u64(off)
	}

	for d := imports; ; d += descSize {
		names, name, first := r.u32(d), r.u32(d+12), r.u32(d+16)
		if r.err != nil {
			return 0, 0, r.err
		}
		if name == 0 && first == 0 {
			break
		}
		if !strings.EqualFold(r.cstring(name), dll) {
			continue
		}
		if names == 0 {
			names = first
		}

		for i := uint32(0); ; i++ {
			e := entry(names + i*thunk)
			if r.err != nil {
				return 0, 0, r.err
			}
			if e == 0 {
				break
			}
			if e&ordinal != 0 {
				continue
			}
			if r.cstring(uint32(e)+2) == fn {
				return first + i*thunk, thunk, nil
			}
		}
	}

	return 0, 0, fmt.Errorf("%w: %s!%s", ErrNotFound, dll, fn)
}
