// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"lexpath.256lights.llc/pkg"
	"zombiezen.com/go/bass/sigterm"
	"zombiezen.com/go/log"
)

func main() {
	rootCommand := &cobra.Command{
		Use:           "lexpath",
		Short:         "lexical path algebra",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	g := defaultGlobalConfig()
	var flagPlatform lexpath.Override
	rootCommand.PersistentFlags().Var((*overrideFlag)(&flagPlatform), "platform", "path `grammar` to use (native, posix, or windows)")
	configPath := rootCommand.PersistentFlags().String("config", "", "`path` to an extra configuration file")
	showDebug := rootCommand.PersistentFlags().Bool("debug", false, "show debugging output")

	rootCommand.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := g.mergeFiles(configFilePaths(*configPath)); err != nil {
			return err
		}
		if err := g.mergeEnvironment(); err != nil {
			return err
		}
		// Flags take precedence over files and environment.
		if cmd.Flags().Changed("platform") {
			g.Platform = flagPlatform
		}
		if *showDebug {
			g.Debug = true
		}
		initLogging(g.Debug)
		log.Debugf(cmd.Context(), "Using %v path grammar", g.style())
		return nil
	}

	rootCommand.AddCommand(
		newNormalizeCommand(g),
		newValidCommand(g),
		newEqCommand(g),
		newRelCommand(g),
		newResolveCommand(g),
		newSplitCommand(g),
		newJoinCommand(g),
		newMkdirsCommand(g),
		newSubdirsCommand(g),
		newTempCommand(g),
		newSearchPathCommand(g),
		newVersionCommand(g),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), sigterm.Signals()...)
	err := rootCommand.ExecuteContext(ctx)
	cancel()
	if err != nil {
		initLogging(*showDebug)
		log.Errorf(context.Background(), "%v", err)
		os.Exit(1)
	}
}

// pathArgs expands a command's path arguments,
// replacing a sole "-" with paths read from stdin, one per line.
func pathArgs(args []string) ([]string, error) {
	if len(args) != 1 || args[0] != "-" {
		return args, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("refusing to read paths from stdin (a tty). Pipe one path per line.")
	}
	scanner := bufio.NewScanner(os.Stdin)
	var paths []string
	for scanner.Scan() {
		paths = append(paths, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return paths, nil
}

var initLogOnce sync.Once

func initLogging(showDebug bool) {
	initLogOnce.Do(func() {
		minLogLevel := log.Info
		if showDebug {
			minLogLevel = log.Debug
		}
		log.SetDefault(&log.LevelFilter{
			Min:    minLogLevel,
			Output: log.New(os.Stderr, "lexpath: ", log.StdFlags, nil),
		})
	})
}
