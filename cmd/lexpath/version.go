// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"lexpath.256lights.llc/pkg"
)

// lexpathVersion is the version string filled in by the linker (e.g. "1.2.3").
var lexpathVersion string

func newVersionCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "version",
		Short:                 "show version information",
		DisableFlagsInUseLine: true,
		Args:                  cobra.NoArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runVersion(g)
	}
	return c
}

func runVersion(g *globalConfig) error {
	firstLine := "lexpath"
	if lexpathVersion == "" {
		firstLine += " (version unknown)"
	} else {
		firstLine += " version " + lexpathVersion
	}

	grammar := fmt.Sprintf("%v (native)", lexpath.Native())
	if g.Platform != lexpath.UseNative {
		grammar = fmt.Sprintf("%v (forced)", g.style())
	}
	fmt.Printf("%s\nOS/Arch: %s/%s\nGrammar: %s\n", firstLine, runtime.GOOS, runtime.GOARCH, grammar)
	return nil
}
