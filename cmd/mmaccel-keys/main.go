// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mmaccel-keys inspects and maintains the MMAccel configuration
// files outside the host.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gipcomp/mmaccel"
	"github.com/Gipcomp/mmaccel/errs"
	"github.com/Gipcomp/mmaccel/settings"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	dir    string
	mmdMap string
	keyMap string
	debug  bool
}

func (o *options) settings() *settings.Settings {
	s := settings.Default()
	s.Dir = o.dir
	if o.mmdMap != "" {
		s.MMDMap = o.mmdMap
	}
	if o.keyMap != "" {
		s.KeyMap = o.keyMap
	}
	return s
}

func newRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "mmaccel-keys",
		Short: "Inspect and maintain MMAccel key maps",
		Long: `mmaccel-keys works on the files of an MMAccel directory: the action
table (mmd_map.json) and the bindings (key_map.json).

Examples:
  mmaccel-keys check                    # Report problems in the bindings
  mmaccel-keys list                     # Show every action and its chord
  mmaccel-keys defaults --force         # Reset the bindings
  mmaccel-keys import key_map.txt       # Convert a legacy text key map`,
		Version:       mmaccel.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			errs.SetOutput(cmd.ErrOrStderr())
			errs.SetDebug(o.debug)
		},
	}

	def := settings.Default()
	root.PersistentFlags().StringVarP(&o.dir, "dir", "d", def.Dir, "MMAccel directory")
	root.PersistentFlags().StringVar(&o.mmdMap, "mmd-map", "", "Action table file name inside the directory")
	root.PersistentFlags().StringVar(&o.keyMap, "key-map", "", "Bindings file name inside the directory")
	root.PersistentFlags().BoolVar(&o.debug, "debug", false, "Trace loading")

	root.AddCommand(newCheckCmd(o))
	root.AddCommand(newListCmd(o))
	root.AddCommand(newDefaultsCmd(o))
	root.AddCommand(newImportCmd(o))

	return root
}
