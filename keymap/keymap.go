// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keymap holds the user's bindings from action names to key
// chords, stored as key_map.json:
//
//	{"Undo": [17, 90], "Redo": [17, 88]}
//
// An action without a binding is left out of the file. Empty chords read
// from a file are dropped.
package keymap

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/tidwall/jsonc"

	"github.com/Gipcomp/mmaccel/errs"
	"github.com/Gipcomp/mmaccel/keys"
)

type KeyMap map[string]keys.Keys

func Load(path string) (KeyMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "key_map")
	}

	km, err := Parse(data)
	if err != nil {
		return nil, errs.Wrap(err, path)
	}

	return km, nil
}

func Parse(data []byte) (KeyMap, error) {
	var raw map[string]keys.Keys
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, errs.Wrap(err, "invalid JSON")
	}
	if raw == nil {
		return nil, errs.Wrap(errs.ErrInvalidData, "top level is not an object")
	}

	km := make(KeyMap, len(raw))
	for name, k := range raw {
		if k.Empty() {
			errs.Logf("key_map: %s has an empty chord, ignored", name)
			continue
		}
		km[name] = k
	}

	return km, nil
}

// Marshal encodes the non-empty bindings with sorted names.
func (km KeyMap) Marshal() ([]byte, error) {
	out := make(map[string]keys.Keys, len(km))
	for name, k := range km {
		if !k.Empty() {
			out[name] = k
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (km KeyMap) Save(path string) error {
	data, err := km.Marshal()
	if err != nil {
		return errs.Wrap(err, path)
	}
	return errs.Wrap(os.WriteFile(path, data, 0644), path)
}

// LoadOrDefault loads path, or writes and returns the default bindings
// when the file does not exist. Any other failure is returned.
func LoadOrDefault(path string) (KeyMap, error) {
	km, err := Load(path)
	if err == nil {
		return km, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	km = Default()
	if err := km.Save(path); err != nil {
		errs.Logf("key_map: writing defaults: %v", err)
	} else {
		errs.Debugf("written %s", path)
	}
	return km, nil
}

// Set binds name to k. An empty chord removes the binding.
func (km KeyMap) Set(name string, k keys.Keys) {
	if k.Empty() {
		delete(km, name)
		return
	}
	km[name] = k
}

func (km KeyMap) Names() []string {
	names := make([]string, 0, len(km))
	for name := range km {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Duplicate is a chord bound to more than one action.
type Duplicate struct {
	Keys  keys.Keys
	Names []string
}

// Duplicates lists the chords shared by several actions, ordered by their
// first name.
func (km KeyMap) Duplicates() []Duplicate {
	byID := make(map[string]*Duplicate)
	var order []string
	for _, name := range km.Names() {
		k := km[name]
		id := k.ID()
		d, ok := byID[id]
		if !ok {
			d = &Duplicate{Keys: k}
			byID[id] = d
			order = append(order, id)
		}
		d.Names = append(d.Names, name)
	}

	var dups []Duplicate
	for _, id := range order {
		if d := byID[id]; len(d.Names) > 1 {
			dups = append(dups, *d)
		}
	}
	return dups
}
