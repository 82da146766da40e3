// Copyright 2013 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keys defines virtual-key codes and Keys, the canonical chord of
// simultaneously held keys used as the lookup key for shortcuts.
package keys

import "strconv"

// Key is a Windows virtual-key code.
type Key uint32

func (k Key) String() string {
	switch {
	case k >= Key0 && k <= Key9, k >= KeyA && k <= KeyZ:
		return string(rune(k))
	case k >= KeyNumpad0 && k <= KeyNumpad9:
		return "Num" + strconv.Itoa(int(k-KeyNumpad0))
	case k >= KeyF1 && k <= KeyF24:
		return "F" + strconv.Itoa(int(k-KeyF1+1))
	}
	if s, ok := key2string[k]; ok {
		return s
	}
	return "(" + strconv.FormatUint(uint64(k), 10) + ")"
}

const (
	KeyBack      Key = 0x08
	KeyTab       Key = 0x09
	KeyReturn    Key = 0x0D
	KeyShift     Key = 0x10
	KeyControl   Key = 0x11
	KeyAlt       Key = 0x12
	KeyMenu      Key = 0x12
	KeyPause     Key = 0x13
	KeyCapital   Key = 0x14
	KeyEscape    Key = 0x1B
	KeySpace     Key = 0x20
	KeyPrior     Key = 0x21
	KeyNext      Key = 0x22
	KeyEnd       Key = 0x23
	KeyHome      Key = 0x24
	KeyLeft      Key = 0x25
	KeyUp        Key = 0x26
	KeyRight     Key = 0x27
	KeyDown      Key = 0x28
	KeySnapshot  Key = 0x2C
	KeyInsert    Key = 0x2D
	KeyDelete    Key = 0x2E
	Key0         Key = 0x30
	Key1         Key = 0x31
	Key2         Key = 0x32
	Key3         Key = 0x33
	Key4         Key = 0x34
	Key5         Key = 0x35
	Key6         Key = 0x36
	Key7         Key = 0x37
	Key8         Key = 0x38
	Key9         Key = 0x39
	KeyA         Key = 0x41
	KeyB         Key = 0x42
	KeyC         Key = 0x43
	KeyD         Key = 0x44
	KeyE         Key = 0x45
	KeyF         Key = 0x46
	KeyG         Key = 0x47
	KeyH         Key = 0x48
	KeyI         Key = 0x49
	KeyJ         Key = 0x4A
	KeyK         Key = 0x4B
	KeyL         Key = 0x4C
	KeyM         Key = 0x4D
	KeyN         Key = 0x4E
	KeyO         Key = 0x4F
	KeyP         Key = 0x50
	KeyQ         Key = 0x51
	KeyR         Key = 0x52
	KeyS         Key = 0x53
	KeyT         Key = 0x54
	KeyU         Key = 0x55
	KeyV         Key = 0x56
	KeyW         Key = 0x57
	KeyX         Key = 0x58
	KeyY         Key = 0x59
	KeyZ         Key = 0x5A
	KeyNumpad0   Key = 0x60
	KeyNumpad9   Key = 0x69
	KeyMultiply  Key = 0x6A
	KeyAdd       Key = 0x6B
	KeySubtract  Key = 0x6D
	KeyDecimal   Key = 0x6E
	KeyDivide    Key = 0x6F
	KeyF1        Key = 0x70
	KeyF5        Key = 0x74
	KeyF24       Key = 0x87
	KeyNumlock   Key = 0x90
	KeyScroll    Key = 0x91
	KeyLShift    Key = 0xA0
	KeyRShift    Key = 0xA1
	KeyLControl  Key = 0xA2
	KeyRControl  Key = 0xA3
	KeyLMenu     Key = 0xA4
	KeyRMenu     Key = 0xA5
	KeyOEM1      Key = 0xBA
	KeyOEMPlus   Key = 0xBB
	KeyOEMComma  Key = 0xBC
	KeyOEMMinus  Key = 0xBD
	KeyOEMPeriod Key = 0xBE
	KeyOEM2      Key = 0xBF
	KeyOEM3      Key = 0xC0
	KeyOEM4      Key = 0xDB
	KeyOEM5      Key = 0xDC
	KeyOEM6      Key = 0xDD
	KeyOEM7      Key = 0xDE
	KeyOEM102    Key = 0xE2
)

// The range of a keyboard state table that takes part in a chord.
const (
	firstChordKey = 0x07
	endChordKey   = 0xE0
)

var key2string = map[Key]string{
	KeyEscape:    "Esc",
	KeyTab:       "Tab",
	KeyCapital:   "CapsLock",
	KeyShift:     "Shift",
	KeyControl:   "Ctrl",
	KeyAlt:       "Alt",
	KeyBack:      "BackSpace",
	KeyReturn:    "Enter",
	KeySpace:     "Space",
	KeySnapshot:  "PrintScreen",
	KeyScroll:    "ScrollLock",
	KeyPause:     "Pause",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPrior:     "PageUp",
	KeyNext:      "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyNumlock:   "NumLock",
	KeyAdd:       "Num+",
	KeySubtract:  "Num-",
	KeyMultiply:  "Num*",
	KeyDivide:    "Num/",
	KeyDecimal:   "Num.",
	KeyOEMMinus:  "-",
	KeyOEMPlus:   ";",
	KeyOEMComma:  ",",
	KeyOEMPeriod: ".",
	KeyOEM1:      ":",
	KeyOEM2:      "/",
	KeyOEM3:      "@",
	KeyOEM4:      "[",
	KeyOEM5:      "\\",
	KeyOEM6:      "]",
	KeyOEM7:      "^",
	KeyOEM102:    "_",
}

// generic maps the left/right variants of the modifiers to the code the
// host sees in its key messages.
func generic(k Key) Key {
	switch k {
	case KeyLShift, KeyRShift:
		return KeyShift
	case KeyLControl, KeyRControl:
		return KeyControl
	case KeyLMenu, KeyRMenu:
		return KeyAlt
	}
	return k
}

// Variants returns every code the keyboard state table may hold for one
// physical press of k: the generic and both sided codes of a modifier, or
// k alone.
func Variants(k Key) []Key {
	switch generic(k) {
	case KeyShift:
		return []Key{KeyShift, KeyLShift, KeyRShift}
	case KeyControl:
		return []Key{KeyControl, KeyLControl, KeyRControl}
	case KeyAlt:
		return []Key{KeyAlt, KeyLMenu, KeyRMenu}
	}
	return []Key{k}
}
