// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"strconv"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/tailscale/hujson"
	"lexpath.256lights.llc/pkg"
)

type globalConfig struct {
	Debug    bool             `json:"debug"`
	Platform lexpath.Override `json:"platform"`
}

func defaultGlobalConfig() *globalConfig {
	return &globalConfig{
		Platform: lexpath.UseNative,
	}
}

// style resolves the configured platform override to a concrete grammar.
func (g *globalConfig) style() lexpath.Style {
	return g.Platform.Style()
}

func (g *globalConfig) mergeEnvironment() error {
	if value := os.Getenv("LEXPATH_PLATFORM"); value != "" {
		o, err := lexpath.ParseOverride(value)
		if err != nil {
			return fmt.Errorf("LEXPATH_PLATFORM: %w", err)
		}
		g.Platform = o
	}

	if value := os.Getenv("LEXPATH_DEBUG"); value != "" {
		debug, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("LEXPATH_DEBUG: %w", err)
		}
		g.Debug = debug
	}

	return nil
}

func (g *globalConfig) mergeFiles(paths iter.Seq[string]) error {
	for path := range paths {
		huJSONData, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		jsonData, err := hujson.Standardize(huJSONData)
		if err != nil {
			return fmt.Errorf("read %s: %v", path, err)
		}
		if err := jsonv2.Unmarshal(jsonData, g, jsonv2.RejectUnknownMembers(false)); err != nil {
			return fmt.Errorf("read %s: %v", path, err)
		}
	}

	return nil
}

// configFilePaths returns the configuration files to merge,
// in increasing order of preference
// (i.e. later entries override earlier entries).
// Files that do not exist are skipped during the merge.
func configFilePaths(extra string) iter.Seq[string] {
	return func(yield func(string) bool) {
		native := lexpath.Native()
		for dir := range systemConfigDirs() {
			if !yield(native.JoinPath(dir, "lexpath", "config.jwcc")) {
				return
			}
		}
		if extra != "" {
			yield(extra)
		}
	}
}
