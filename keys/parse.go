// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keys

import (
	"fmt"
	"strconv"
	"strings"
)

var string2key = map[string]Key{
	"esc":         KeyEscape,
	"tab":         KeyTab,
	"capslock":    KeyCapital,
	"shift":       KeyShift,
	"ctrl":        KeyControl,
	"alt":         KeyAlt,
	"backspace":   KeyBack,
	"enter":       KeyReturn,
	"space":       KeySpace,
	"printscreen": KeySnapshot,
	"pause":       KeyPause,
	"insert":      KeyInsert,
	"delete":      KeyDelete,
	"home":        KeyHome,
	"end":         KeyEnd,
	"pageup":      KeyPrior,
	"pagedown":    KeyNext,
	"up":          KeyUp,
	"down":        KeyDown,
	"left":        KeyLeft,
	"right":       KeyRight,
	"num+":        KeyAdd,
	"num-":        KeySubtract,
	"num*":        KeyMultiply,
	"num/":        KeyDivide,
	"num.":        KeyDecimal,
	"-":           KeyOEMMinus,
	";":           KeyOEMPlus,
	",":           KeyOEMComma,
	".":           KeyOEMPeriod,
	":":           KeyOEM1,
	"/":           KeyOEM2,
	"@":           KeyOEM3,
	"[":           KeyOEM4,
	"\\":          KeyOEM5,
	"]":           KeyOEM6,
	"^":           KeyOEM7,
	"_":           KeyOEM102,
}

// ParseKey parses one key name of the legacy text key map. Names are case
// insensitive.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k, ok := string2key[name]; ok {
		return k, nil
	}

	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= '0' && c <= '9':
			return Key(c), nil
		case c >= 'a' && c <= 'z':
			return Key(c - 'a' + 'A'), nil
		}
	}

	if n, ok := numberAfter(name, "num"); ok && n <= 9 {
		return KeyNumpad0 + Key(n), nil
	}
	if n, ok := numberAfter(name, "f"); ok && n >= 1 && n <= 24 {
		return KeyF1 + Key(n-1), nil
	}

	return 0, fmt.Errorf("unknown key %q", s)
}

func numberAfter(s, prefix string) (uint64, bool) {
	if !strings.HasPrefix(s, prefix) || len(s) == len(prefix) {
		return 0, false
	}
	n, err := strconv.ParseUint(s[len(prefix):], 10, 32)
	return n, err == nil
}

// Parse parses a chord written as key names joined by '+', such as
// "Ctrl+Shift+Z".
func Parse(s string) (Keys, error) {
	if strings.TrimSpace(s) == "" {
		return Keys{}, fmt.Errorf("empty key chord")
	}

	var codes []Key
	rest := s
	for {
		rest = strings.TrimLeft(rest, " \t")

		var part string
		if len(rest) >= 4 && strings.EqualFold(rest[:4], "num+") && (len(rest) == 4 || rest[4] == '+') {
			// "num+" is the only name containing the separator.
			part, rest = rest[:4], rest[4:]
		} else if i := strings.IndexByte(rest, '+'); i >= 0 {
			part, rest = rest[:i], rest[i:]
		} else {
			part, rest = rest, ""
		}

		k, err := ParseKey(part)
		if err != nil {
			return Keys{}, err
		}
		codes = append(codes, k)

		if rest == "" {
			break
		}
		rest = rest[1:]
		if strings.TrimSpace(rest) == "" {
			return Keys{}, fmt.Errorf("trailing '+' in %q", s)
		}
	}

	return FromSlice(codes), nil
}
