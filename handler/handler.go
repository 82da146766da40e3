// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package handler matches key chords against the user's bindings and runs
// the bound action against the host window.
//
// A Handler is owned by the host's GUI thread: KeyDown, KeyUp and
// IsPressed are called from its message hooks and never block. Rebuilding
// after a configuration change means constructing a new Handler and
// swapping it in.
package handler

import (
	"fmt"
	"slices"
	"sort"

	"github.com/Gipcomp/mmaccel/errs"
	"github.com/Gipcomp/mmaccel/keymap"
	"github.com/Gipcomp/mmaccel/keys"
	"github.com/Gipcomp/mmaccel/mmdmap"
)

// The first virtual key whose GetKeyState result is taken over. Lower codes
// are mouse buttons and Cancel.
const firstOverrideKey = 0x07

// Pressed is the GetKeyState result for a held key.
const Pressed uint16 = 0xff80

type binding struct {
	name string
	keys keys.Keys
	kind mmdmap.Kind
}

// Conflict is a chord bound to several actions. Only the last name is
// dispatched.
type Conflict struct {
	Keys  keys.Keys
	Names []string
}

type Handler struct {
	ui        UI
	input     [256]byte
	inputKeys keys.Keys
	handler   map[string]binding
	held      []binding
	keyStates map[uint32]bool
	foldIDs   []uint32
	unfoldIDs []uint32
	conflicts []Conflict
}

// New joins the action table with the bindings. Bindings naming an unknown
// action, and empty chords, are logged and skipped. When several names share
// a chord the last in name order wins.
func New(m *mmdmap.Map, km keymap.KeyMap, ui UI) *Handler {
	if ui == nil {
		ui = nopUI{}
	}

	h := &Handler{
		ui:        ui,
		inputKeys: keys.WithCapacity(4),
		handler:   make(map[string]binding, len(km)),
		keyStates: make(map[uint32]bool),
	}

	for _, item := range m.All() {
		switch kind := item.Kind.(type) {
		case mmdmap.Key:
			h.keyStates[kind.ID] = false
		case mmdmap.Fold:
			h.foldIDs = append(h.foldIDs, kind.Hide)
			h.unfoldIDs = append(h.unfoldIDs, kind.Show)
		}
	}
	slices.Sort(h.foldIDs)
	slices.Sort(h.unfoldIDs)

	conflicts := make(map[string]*Conflict)
	var conflictOrder []string
	for _, name := range km.Names() {
		k := km[name]
		item, ok := m.Get(name)
		if !ok {
			errs.Logf("handler: unknown action %s, binding ignored", name)
			continue
		}
		if k.Empty() {
			errs.Logf("handler: %s has an empty chord, binding ignored", name)
			continue
		}

		id := k.ID()
		if prev, dup := h.handler[id]; dup {
			c, ok := conflicts[id]
			if !ok {
				c = &Conflict{Keys: k.Clone(), Names: []string{prev.name}}
				conflicts[id] = c
				conflictOrder = append(conflictOrder, id)
			}
			c.Names = append(c.Names, name)
			errs.Logf("handler: %s and %s share %v, %s wins", prev.name, name, k, name)
		}
		h.handler[id] = binding{name: name, keys: k.Clone(), kind: item.Kind}
	}
	for _, id := range conflictOrder {
		h.conflicts = append(h.conflicts, *conflicts[id])
	}

	for _, b := range h.handler {
		if _, ok := b.kind.(mmdmap.Key); ok {
			h.held = append(h.held, b)
		}
	}
	sort.Slice(h.held, func(i, j int) bool { return h.held[i].name < h.held[j].name })

	return h
}

// Len returns the number of dispatchable chords.
func (h *Handler) Len() int {
	return len(h.handler)
}

func (h *Handler) Conflicts() []Conflict {
	return h.conflicts
}

func (h *Handler) FoldIDs() []uint32 {
	return h.foldIDs
}

func (h *Handler) UnfoldIDs() []uint32 {
	return h.unfoldIDs
}

// Lookup returns the action name bound to k.
func (h *Handler) Lookup(k keys.Keys) (string, bool) {
	b, ok := h.handler[k.ID()]
	return b.name, ok
}

// KeyDown handles the press of vk with target as the host's main window.
func (h *Handler) KeyDown(vk uint32, target Window) {
	defer h.recover("KeyDown")

	if vk >= uint32(len(h.input)) {
		return
	}

	h.ui.KeyboardState(&h.input)
	h.input[vk] |= 0x80
	h.inputKeys.KeyboardState(&h.input)

	b, ok := h.handler[h.inputKeys.ID()]
	if !ok {
		// A single key binding still fires while an unbound modifier is
		// down.
		h.inputKeys.VK(keys.Key(vk))
		b, ok = h.handler[h.inputKeys.ID()]
	}
	if !ok {
		return
	}

	h.execute(b.kind, target)
}

// KeyUp handles the release of vk. A Key action stops being pressed as
// soon as any key of its chord is released.
func (h *Handler) KeyUp(vk uint32) {
	defer h.recover("KeyUp")

	if vk >= uint32(len(h.input)) {
		return
	}

	for _, k := range keys.Variants(keys.Key(vk)) {
		h.input[k] &= 0x01
	}
	h.inputKeys.KeyboardState(&h.input)

	for _, b := range h.held {
		if !b.keys.IsHeldIn(h.inputKeys) {
			h.keyStates[b.kind.(mmdmap.Key).ID] = false
		}
	}
}

// IsPressed reports whether the Key action targeting vk is held.
func (h *Handler) IsPressed(vk uint32) bool {
	return h.keyStates[vk]
}

// KeyState decides the result of GetKeyState(vk). override is false when
// the real state should be reported.
func (h *Handler) KeyState(vk uint32) (state uint16, override bool) {
	if vk < firstOverrideKey {
		return 0, false
	}
	if h.IsPressed(vk) {
		return Pressed, true
	}
	return 0, true
}

func (h *Handler) recover(op string) {
	if x := recover(); x != nil {
		errs.Recovered(fmt.Errorf("handler: %s: %v", op, x))
	}
}

type nopUI struct{}

func (nopUI) DlgItem(Window, uint32) Window { return 0 }
func (nopUI) Visible(Window) bool { return false }
func (nopUI) Enabled(Window) bool { return false }
func (nopUI) Click(Window) {}
func (nopUI) Focus(Window) {}
func (nopUI) ComboSelection(Window) (int, int) { return -1, 0 }
func (nopUI) SetComboSelection(Window, Window, uint32, int) {}
func (nopUI) MenuCommand(Window, uint32, uint32) (uint32, bool) {
	return 0, false
}
func (nopUI) PostCommand(Window, uint32) {}
func (nopUI) KeyboardState(*[256]byte) bool { return false }
