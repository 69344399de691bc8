// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"lexpath.256lights.llc/pkg/pathio"
)

func newMkdirsCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "mkdirs PATH [...]",
		Short:                 "create directories along with any missing parents",
		DisableFlagsInUseLine: true,
		Args:                  cobra.MinimumNArgs(1),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		style := g.style()
		for _, path := range args {
			if err := pathio.EnsureDirectory(pathio.Local{}, style, path); err != nil {
				return err
			}
		}
		return nil
	}
	return c
}

func newSubdirsCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "subdirs DIR",
		Short:                 "list the subdirectories of a directory",
		DisableFlagsInUseLine: true,
		Args:                  cobra.ExactArgs(1),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		dirs, err := pathio.DirectoryList(pathio.Local{}, g.style(), args[0])
		if err != nil {
			return err
		}
		for _, dir := range dirs {
			fmt.Println(dir)
		}
		return nil
	}
	return c
}

type tempOptions struct {
	ext string
}

func newTempCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "temp [options]",
		Short:                 "propose a fresh temporary path",
		DisableFlagsInUseLine: true,
		Args:                  cobra.NoArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(tempOptions)
	c.Flags().StringVar(&opts.ext, "ext", "", "`extension` to append to the proposed name")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		path, err := pathio.TempPath(pathio.Local{}, pathio.Local{}, g.style(), opts.ext)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}
	return c
}

func newSearchPathCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "searchpath",
		Short:                 "list the directories of the PATH environment variable",
		DisableFlagsInUseLine: true,
		Args:                  cobra.NoArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		for _, dir := range pathio.SearchPath(pathio.Local{}, g.style()) {
			fmt.Println(dir)
		}
		return nil
	}
	return c
}
