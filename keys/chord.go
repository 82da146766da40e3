// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keys

import (
	"encoding/json"
	"slices"
	"strings"
)

// Keys is a chord: the set of virtual keys held at one moment. The codes
// are kept sorted ascending and free of duplicates, so two chords are equal
// exactly when their code sequences are.
type Keys struct {
	codes []Key
}

// New returns an empty chord.
func New() Keys {
	return Keys{}
}

// WithCapacity returns an empty chord that can hold n codes without
// growing. The handler reuses one across key events.
func WithCapacity(n int) Keys {
	return Keys{codes: make([]Key, 0, n)}
}

func FromSlice(codes []Key) Keys {
	var k Keys
	k.codes = append(make([]Key, 0, len(codes)), codes...)
	k.canonicalize()
	return k
}

func FromKeyboardState(table *[256]byte) Keys {
	k := WithCapacity(4)
	k.KeyboardState(table)
	return k
}

func FromVK(code Key) Keys {
	return Keys{codes: []Key{code}}
}

func (k *Keys) canonicalize() {
	slices.Sort(k.codes)
	k.codes = slices.Compact(k.codes)
}

func (k *Keys) Clear() {
	k.codes = k.codes[:0]
}

// KeyboardState replaces k with the keys whose high bit is set in a
// GetKeyboardState style table. Left and right modifier codes count as the
// generic Shift, Ctrl and Alt.
func (k *Keys) KeyboardState(table *[256]byte) {
	k.codes = k.codes[:0]
	for i := firstChordKey; i < endChordKey; i++ {
		if table[i]&0x80 != 0 {
			k.codes = append(k.codes, generic(Key(i)))
		}
	}
	k.canonicalize()
}

// VK replaces k with the single code.
func (k *Keys) VK(code Key) {
	k.codes = append(k.codes[:0], code)
}

func (k Keys) Len() int {
	return len(k.codes)
}

func (k Keys) Empty() bool {
	return len(k.codes) == 0
}

// Codes returns a copy of the sorted codes.
func (k Keys) Codes() []Key {
	return slices.Clone(k.codes)
}

func (k Keys) Clone() Keys {
	return Keys{codes: slices.Clone(k.codes)}
}

func (k Keys) Equal(other Keys) bool {
	return slices.Equal(k.codes, other.codes)
}

// ID returns a comparable form of the chord for use as a map key.
func (k Keys) ID() string {
	b := make([]byte, 0, len(k.codes)*4)
	for _, c := range k.codes {
		b = append(b, byte(c), byte(c>>8), byte(c>>16), byte(c>>24))
	}
	return string(b)
}

// IsHeldIn reports whether the codes of k appear, in order, within other.
// Both chords are canonical, so this tells whether a chord matched earlier
// is still fully held. It is vacuously true for an empty k.
func (k Keys) IsHeldIn(other Keys) bool {
	i := 0
	if i == len(k.codes) {
		return true
	}
	for _, c := range other.codes {
		if c == k.codes[i] {
			i++
			if i == len(k.codes) {
				return true
			}
		}
	}
	return false
}

// Strings returns one display label per code, in code order.
func (k Keys) Strings() []string {
	v := make([]string, 0, len(k.codes))
	for _, c := range k.codes {
		v = append(v, c.String())
	}
	return v
}

func (k Keys) String() string {
	return strings.Join(k.Strings(), "+")
}

func (k Keys) MarshalJSON() ([]byte, error) {
	if k.codes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(k.codes)
}

func (k *Keys) UnmarshalJSON(data []byte) error {
	var codes []Key
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	k.codes = codes
	k.canonicalize()
	return nil
}
