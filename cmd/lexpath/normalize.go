// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNormalizeCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "normalize [PATH [...]]",
		Short:                 "put paths in canonical form",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		paths, err := pathArgs(args)
		if err != nil {
			return err
		}
		style := g.style()
		for _, path := range paths {
			fmt.Println(style.Normalize(path))
		}
		return nil
	}
	return c
}

type validOptions struct {
	paths []string
	fix   bool
}

func newValidCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "valid [options] [PATH [...]]",
		Short:                 "check paths for reserved characters",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(validOptions)
	c.Flags().BoolVar(&opts.fix, "fix", false, "print each path with reserved characters replaced by underscores")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		var err error
		opts.paths, err = pathArgs(args)
		if err != nil {
			return err
		}
		return runValid(g, opts)
	}
	return c
}

func runValid(g *globalConfig, opts *validOptions) error {
	style := g.style()
	for _, path := range opts.paths {
		if opts.fix {
			fmt.Println(style.MakeValid(path))
			continue
		}
		if !style.IsValid(path) {
			return fmt.Errorf("%s: path contains reserved characters", path)
		}
	}
	return nil
}
