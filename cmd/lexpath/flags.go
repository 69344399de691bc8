// Copyright 2026 The lexpath Authors
// SPDX-License-Identifier: MIT

package main

import (
	"lexpath.256lights.llc/pkg"
)

// overrideFlag is the implementation of [github.com/spf13/pflag.Value]
// for the --platform flag.
type overrideFlag lexpath.Override

func (f *overrideFlag) Type() string  { return "string" }
func (f overrideFlag) String() string { return lexpath.Override(f).String() }
func (f overrideFlag) Get() any       { return lexpath.Override(f) }

func (f *overrideFlag) Set(s string) error {
	o, err := lexpath.ParseOverride(s)
	if err != nil {
		return err
	}
	*f = overrideFlag(o)
	return nil
}
