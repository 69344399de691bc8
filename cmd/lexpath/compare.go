// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"lexpath.256lights.llc/pkg/pathio"
)

func newEqCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "eq PATH1 PATH2",
		Short:                 "test whether two paths name the same location",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(2),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		if !g.style().Equal(args[0], args[1]) {
			return fmt.Errorf("%s and %s differ", args[0], args[1])
		}
		return nil
	}
	return c
}

func newRelCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "rel BASE TARGET",
		Short:                 "express a target path relative to a base directory",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(2),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Println(g.style().Rel(args[0], args[1]))
		return nil
	}
	return c
}

func newResolveCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "resolve [BASE] TARGET",
		Short:                 "make a path absolute and put it in canonical form",
		Long: "Resolve makes a path absolute and puts it in canonical form.\n\n" +
			"With two arguments, the target is resolved against the given base.\n" +
			"With one argument, the target is resolved against the current working directory.",
		DisableFlagsInUseLine: true,
		Args:                  cobra.RangeArgs(1, 2),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		style := g.style()
		if len(args) == 2 {
			fmt.Println(style.Resolve(args[0], args[1]))
			return nil
		}
		resolved, err := pathio.Abs(pathio.Local{}, style, args[0])
		if err != nil {
			return err
		}
		fmt.Println(resolved)
		return nil
	}
	return c
}
