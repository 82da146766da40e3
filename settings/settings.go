// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings holds the add-on's own configuration, a small YAML file
// next to the host executable.
package settings

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Gipcomp/mmaccel/errs"
)

// FileName is the settings file looked up next to the host executable.
const FileName = "mmaccel.yaml"

type Settings struct {
	// Dir holds the action table, the bindings and the log. A relative
	// Dir is resolved against the host executable's directory.
	Dir     string `yaml:"dir"`
	MMDMap  string `yaml:"mmd_map"`
	KeyMap  string `yaml:"key_map"`
	LogFile string `yaml:"log_file"`
	Debug   bool   `yaml:"debug"`
	Watch   bool   `yaml:"watch"`
	Editor  string `yaml:"editor"`
}

func Default() *Settings {
	return &Settings{
		Dir:     "MMAccel",
		MMDMap:  "mmd_map.json",
		KeyMap:  "key_map.json",
		LogFile: "mmaccel.log",
		Watch:   true,
		Editor:  "key_config.exe",
	}
}

// Load reads path. A missing file yields the defaults, which are also
// written to path when possible. Empty fields take their default.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s := Default()
		if err := s.Save(path); err != nil {
			errs.Logf("settings: %v", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "settings")
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errs.Wrap(err, filepath.Base(path))
	}
	return s, nil
}

func Parse(data []byte) (*Settings, error) {
	s := Default()
	// Unset booleans keep their default.
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}

	def := Default()
	for _, f := range []struct{ v, d *string }{
		{&s.Dir, &def.Dir},
		{&s.MMDMap, &def.MMDMap},
		{&s.KeyMap, &def.KeyMap},
		{&s.LogFile, &def.LogFile},
		{&s.Editor, &def.Editor},
	} {
		if *f.v == "" {
			*f.v = *f.d
		}
	}
	return s, nil
}

func (s *Settings) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errs.Wrap(err, "settings")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errs.Wrap(err, "settings")
	}
	return nil
}

// Resolve makes a relative Dir absolute against base.
func (s *Settings) Resolve(base string) {
	if !filepath.IsAbs(s.Dir) {
		s.Dir = filepath.Join(base, s.Dir)
	}
}

// Path returns name inside Dir.
func (s *Settings) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

func (s *Settings) MMDMapPath() string { return s.Path(s.MMDMap) }
func (s *Settings) KeyMapPath() string { return s.Path(s.KeyMap) }
func (s *Settings) LogPath() string { return s.Path(s.LogFile) }
func (s *Settings) EditorPath() string { return s.Path(s.Editor) }
