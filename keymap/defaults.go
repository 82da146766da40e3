// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keymap

import "github.com/Gipcomp/mmaccel/keys"

func k(codes ...keys.Key) keys.Keys {
	return keys.FromSlice(codes)
}

// Default returns the bindings written on first start. They follow the
// host's own shortcuts.
func Default() KeyMap {
	return KeyMap{
		"Undo":                 k(keys.KeyControl, keys.KeyZ),
		"Redo":                 k(keys.KeyControl, keys.KeyX),
		"BoneSelect":           k(keys.KeyC),
		"BoneRotate":           k(keys.KeyX),
		"BoneMove":             k(keys.KeyZ),
		"BoneAllSelect":        k(keys.KeyA),
		"BoneUnregisterSelect": k(keys.KeyS),

		"MenuViewHalfTransparency": k(keys.KeyV),

		"FramePrev":        k(keys.KeyLeft),
		"FrameNext":        k(keys.KeyRight),
		"MainChangeEditor": k(keys.KeyTab),
		"FrameRegister":    k(keys.KeyReturn),
		"FrameKeyPrev":     k(keys.KeyControl, keys.KeyLeft),
		"FrameKeyNext":     k(keys.KeyControl, keys.KeyRight),
		"BonePrev":         k(keys.KeyUp),
		"BoneNext":         k(keys.KeyDown),
		"KeyCopy":          k(keys.KeyControl, keys.KeyC),
		"KeyPaste":         k(keys.KeyControl, keys.KeyV),

		"MenuBackgroundBlack":                         k(keys.KeyB),
		"MenuEditCenterBias":                          k(keys.KeyD),
		"ChangeSpace":                                 k(keys.KeyL),
		"MenuEditAnotherFramePaste":                   k(keys.KeyF),
		"MenuEditInsertEmptyFrame":                    k(keys.KeyI),
		"MenuEditDeleteVerticalFrames":                k(keys.KeyK),
		"MenuEditInsertEmptyFrameMorphOrLighting":     k(keys.KeyU),
		"MenuEditDeleteVerticalFramesMorphOrLighting": k(keys.KeyJ),
		"MenuEditCorrectBone":                         k(keys.KeyR),
		"Play":                                        k(keys.KeyP),

		"ViewBottom": k(keys.Key0),
		"ViewFront":  k(keys.Key2),
		"ViewLeft":   k(keys.Key4),
		"ViewTop":    k(keys.Key5),
		"ViewRight":  k(keys.Key6),
		"ViewBack":   k(keys.Key8),

		"MenuFileSave":      k(keys.KeyControl, keys.KeyS),
		"InterpolationAuto": k(keys.KeyOEM6),
	}
}
