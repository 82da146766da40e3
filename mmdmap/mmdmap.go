// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mmdmap loads the table of host actions: for every symbolic action
// name, its display label and the Kind of UI effect it has.
//
// The source is a JSON object whose members are either groups (objects,
// nested to any depth) or actions, arrays of the form
//
//	["label", "kind", args...]
//
// An action that cannot be decoded is logged and left out. A source that is
// not an object of that shape fails as a whole.
package mmdmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"os"
	"slices"
	"sort"
	"strconv"

	"github.com/tidwall/jsonc"

	"github.com/Gipcomp/mmaccel/errs"
)

type Item struct {
	Label string
	Kind  Kind
}

type Map struct {
	items   map[string]Item
	groups  []string
	skipped int
}

// Load reads the table from a file. Comments are allowed.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "mmd_map")
	}

	m, err := Parse(data)
	if err != nil {
		return nil, errs.Wrap(err, path)
	}

	return m, nil
}

func Parse(data []byte) (*Map, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.UseNumber()

	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return nil, errs.Wrap(err, "invalid JSON")
	}

	obj, ok := root.(map[string]interface{})
	if !ok {
		return nil, errs.Wrap(errs.ErrInvalidData, "top level is not an object")
	}

	m := &Map{items: make(map[string]Item)}
	for _, name := range sortedKeys(obj) {
		if _, ok := obj[name].(map[string]interface{}); ok {
			m.groups = append(m.groups, name)
		}
	}
	m.walk("", obj)

	return m, nil
}

func (m *Map) walk(path string, obj map[string]interface{}) {
	for _, name := range sortedKeys(obj) {
		switch v := obj[name].(type) {
		case map[string]interface{}:
			m.walk(path+name+"/", v)

		case []interface{}:
			item, err := newItem(v)
			if err != nil {
				m.skip(path+name, err)
				continue
			}
			if _, dup := m.items[name]; dup {
				errs.Logf("mmd_map: %s%s redefines %s", path, name, name)
			}
			m.items[name] = item

		default:
			m.skip(path+name, fmt.Errorf("neither a group nor an action"))
		}
	}
}

func (m *Map) skip(name string, err error) {
	m.skipped++
	errs.Logf("mmd_map: skipped %s: %v", name, err)
}

func sortedKeys(obj map[string]interface{}) []string {
	names := make([]string, 0, len(obj))
	for name := range obj {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newItem(a []interface{}) (Item, error) {
	if len(a) < 2 {
		return Item{}, fmt.Errorf("want at least 2 elements, got %d", len(a))
	}
	label, ok := a[0].(string)
	if !ok {
		return Item{}, fmt.Errorf("label is not a string")
	}
	kind, err := newKind(a[1:])
	if err != nil {
		return Item{}, err
	}
	return Item{Label: label, Kind: kind}, nil
}

// newKind decodes the kind tag followed by its arguments.
func newKind(a []interface{}) (Kind, error) {
	tag, ok := a[0].(string)
	if !ok {
		return nil, fmt.Errorf("kind is not a string")
	}
	args := a[1:]

	arity := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s: want %d arguments, got %d", tag, n, len(args))
		}
		return nil
	}

	switch tag {
	case "key", "button", "edit", "combo_prev", "combo_next":
		if err := arity(1); err != nil {
			return nil, err
		}
		id, err := hexArg(args[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %v", tag, err)
		}
		switch tag {
		case "key":
			return Key{ID: id}, nil
		case "button":
			return Button{ID: id}, nil
		case "edit":
			return Edit{ID: id}, nil
		case "combo_prev":
			return Combo{Dir: Prev, ID: id}, nil
		default:
			return Combo{Dir: Next, ID: id}, nil
		}

	case "menu":
		if err := arity(2); err != nil {
			return nil, err
		}
		index, err := decimalArg(args[0])
		if err != nil {
			return nil, fmt.Errorf("menu: %v", err)
		}
		sub, err := decimalArg(args[1])
		if err != nil {
			return nil, fmt.Errorf("menu: %v", err)
		}
		return Menu{Index: index, SubIndex: sub}, nil

	case "fold":
		if err := arity(2); err != nil {
			return nil, err
		}
		hide, err := hexArg(args[0])
		if err != nil {
			return nil, fmt.Errorf("fold: %v", err)
		}
		show, err := hexArg(args[1])
		if err != nil {
			return nil, fmt.Errorf("fold: %v", err)
		}
		return Fold{Hide: hide, Show: show}, nil

	case "kill_focus", "fold_all", "unfold_all":
		if err := arity(0); err != nil {
			return nil, err
		}
		switch tag {
		case "kill_focus":
			return KillFocus{}, nil
		case "fold_all":
			return FoldAll{}, nil
		default:
			return UnfoldAll{}, nil
		}
	}

	return nil, fmt.Errorf("unknown kind %q", tag)
}

func hexArg(v interface{}) (uint32, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("id %v is not a hex string", v)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("id %q is not hexadecimal", s)
	}
	return uint32(n), nil
}

func decimalArg(v interface{}) (uint32, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("index %v is not a number", v)
	}
	i, err := strconv.ParseUint(n.String(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("index %s is not a non-negative integer", n)
	}
	return uint32(i), nil
}

// Get looks up an action by its symbolic name.
func (m *Map) Get(name string) (Item, bool) {
	item, ok := m.items[name]
	return item, ok
}

func (m *Map) Len() int {
	return len(m.items)
}

// Skipped returns the number of entries left out while loading.
func (m *Map) Skipped() int {
	return m.skipped
}

// Groups returns the names of the top-level groups, sorted.
func (m *Map) Groups() []string {
	return slices.Clone(m.groups)
}

func (m *Map) Names() []string {
	names := make([]string, 0, len(m.items))
	for name := range m.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All yields every action in name order.
func (m *Map) All() iter.Seq2[string, Item] {
	return func(yield func(string, Item) bool) {
		for _, name := range m.Names() {
			if !yield(name, m.items[name]) {
				return
			}
		}
	}
}
