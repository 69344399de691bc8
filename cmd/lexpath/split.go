// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/spf13/cobra"
	"lexpath.256lights.llc/pkg"
)

func newSplitCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "split COMMAND",
		Short:                 "take paths apart",
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.AddCommand(
		newSplitDriveCommand(g),
		newSplitFileCommand(g),
		newSplitExtCommand(g),
		newSplitExtsCommand(g),
		newSplitPathCommand(g),
		newSplitDirsCommand(g),
	)
	return c
}

type drivePair struct {
	Root string `json:"root"`
	Rest string `json:"rest"`
}

type filePair struct {
	Dir  string `json:"dir"`
	File string `json:"file"`
}

type extPair struct {
	Base string `json:"base"`
	Ext  string `json:"ext"`
}

type extsPair struct {
	Base string `json:"base"`
	Exts string `json:"exts"`
}

func newSplitDriveCommand(g *globalConfig) *cobra.Command {
	return newSplitPairCommand(g,
		"drive [PATH [...]]",
		"split paths into root and remainder",
		lexpath.Style.SplitDrive,
		func(root, rest string) any { return drivePair{Root: root, Rest: rest} },
	)
}

func newSplitFileCommand(g *globalConfig) *cobra.Command {
	return newSplitPairCommand(g,
		"file [PATH [...]]",
		"split paths into directory and file name",
		lexpath.Style.SplitFileName,
		func(dir, file string) any { return filePair{Dir: dir, File: file} },
	)
}

func newSplitExtCommand(g *globalConfig) *cobra.Command {
	return newSplitPairCommand(g,
		"ext [PATH [...]]",
		"split paths at the last extension",
		lexpath.Style.SplitExt,
		func(base, ext string) any { return extPair{Base: base, Ext: ext} },
	)
}

func newSplitExtsCommand(g *globalConfig) *cobra.Command {
	return newSplitPairCommand(g,
		"exts [PATH [...]]",
		"split paths at the first extension",
		lexpath.Style.SplitExts,
		func(base, exts string) any { return extsPair{Base: base, Exts: exts} },
	)
}

type splitOptions struct {
	paths      []string
	jsonFormat bool
}

func newSplitPairCommand(g *globalConfig, use, short string, split func(lexpath.Style, string) (string, string), pair func(first, second string) any) *cobra.Command {
	c := &cobra.Command{
		Use:                   use,
		Short:                 short,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(splitOptions)
	c.Flags().BoolVar(&opts.jsonFormat, "json", false, "print results as JSON, one object per line")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		var err error
		opts.paths, err = pathArgs(args)
		if err != nil {
			return err
		}
		style := g.style()
		for _, path := range opts.paths {
			first, second := split(style, path)
			if opts.jsonFormat {
				if err := printJSONLine(pair(first, second)); err != nil {
					return err
				}
				continue
			}
			fmt.Printf("%s\t%s\n", first, second)
		}
		return nil
	}
	return c
}

func newSplitPathCommand(g *globalConfig) *cobra.Command {
	return newSplitListCommand(g,
		"path [PATH [...]]",
		"split paths into segments that concatenate back exactly",
		lexpath.Style.SplitPath,
	)
}

func newSplitDirsCommand(g *globalConfig) *cobra.Command {
	return newSplitListCommand(g,
		"dirs [PATH [...]]",
		"split paths into directory names",
		lexpath.Style.SplitDirectories,
	)
}

func newSplitListCommand(g *globalConfig, use, short string, split func(lexpath.Style, string) []string) *cobra.Command {
	c := &cobra.Command{
		Use:                   use,
		Short:                 short,
		DisableFlagsInUseLine: true,
		Args:                  cobra.ArbitraryArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	opts := new(splitOptions)
	c.Flags().BoolVar(&opts.jsonFormat, "json", false, "print results as JSON, one array per line")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		var err error
		opts.paths, err = pathArgs(args)
		if err != nil {
			return err
		}
		style := g.style()
		for _, path := range opts.paths {
			parts := split(style, path)
			if opts.jsonFormat {
				if err := printJSONLine(parts); err != nil {
					return err
				}
				continue
			}
			fmt.Println(strings.Join(parts, "\t"))
		}
		return nil
	}
	return c
}

func newJoinCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "join PART [...]",
		Short:                 "join path fragments into one path",
		DisableFlagsInUseLine: true,
		Args:                  cobra.MinimumNArgs(1),
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Println(g.style().JoinPath(args...))
		return nil
	}
	return c
}

func printJSONLine(v any) error {
	data, err := jsonv2.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = os.Stdout.Write(data)
	return err
}
