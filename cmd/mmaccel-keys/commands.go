// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Gipcomp/mmaccel/handler"
	"github.com/Gipcomp/mmaccel/keymap"
	"github.com/Gipcomp/mmaccel/mmdmap"
)

func newCheckCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load both files and report skipped entries, orphans and duplicate chords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, o)
		},
	}
}

func runCheck(cmd *cobra.Command, o *options) error {
	s := o.settings()
	out := cmd.OutOrStdout()

	m, err := mmdmap.Load(s.MMDMapPath())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d actions in %d groups, %d skipped\n", s.MMDMap, m.Len(), len(m.Groups()), m.Skipped())

	km, err := keymap.Load(s.KeyMapPath())
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(out, "%s: not found, the defaults will be written on start\n", s.KeyMap)
		km = keymap.Default()
	} else if err != nil {
		return err
	} else {
		fmt.Fprintf(out, "%s: %d bindings\n", s.KeyMap, len(km))
	}

	problems := 0
	for _, name := range km.Names() {
		if _, ok := m.Get(name); !ok {
			fmt.Fprintf(out, "unknown action %s (%v)\n", name, km[name])
			problems++
		}
	}

	h := handler.New(m, km, nil)
	for _, c := range h.Conflicts() {
		fmt.Fprintf(out, "%v is bound to %v, %s wins\n", c.Keys, c.Names, c.Names[len(c.Names)-1])
		problems++
	}

	if problems == 0 {
		fmt.Fprintln(out, "ok")
	}
	return nil
}

func newListCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every action with its label and chord",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, o)
		},
	}
}

func runList(cmd *cobra.Command, o *options) error {
	s := o.settings()

	m, err := mmdmap.Load(s.MMDMapPath())
	if err != nil {
		return err
	}
	km, err := keymap.Load(s.KeyMapPath())
	if errors.Is(err, fs.ErrNotExist) {
		km = keymap.Default()
	} else if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for name, item := range m.All() {
		chord := "-"
		if k, ok := km[name]; ok {
			chord = k.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, item.Label, chord)
	}
	return w.Flush()
}

func newDefaultsCmd(o *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Write the default key map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := o.settings().KeyMapPath()
			if err := checkOverwrite(path, force); err != nil {
				return err
			}
			km := keymap.Default()
			if err := km.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bindings to %s\n", len(km), path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing key map")

	return cmd
}

func newImportCmd(o *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <key_map.txt>",
		Short: "Convert a legacy text key map to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, skipped, err := keymap.ImportLegacyFile(args[0])
			if err != nil {
				return err
			}

			path := o.settings().KeyMapPath()
			if err := checkOverwrite(path, force); err != nil {
				return err
			}
			if err := km.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d bindings to %s, %d lines skipped\n", len(km), path, skipped)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing key map")

	return cmd
}

func checkOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s exists, use --force to overwrite it", path)
	}
	return nil
}
