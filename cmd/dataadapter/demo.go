// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/dataadapter/lib/adapter"
)

func init() {
	subcommands = append(subcommands, subcommand{
		Command: cobra.Command{
			Use:   "demo",
			Short: "Fill a small array at both ends and in the middle, and print it",
			Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		},
		RunE: func(_ *cobra.Command, _ []string) (err error) {
			out := bufio.NewWriter(os.Stdout)
			defer func() {
				if _err := out.Flush(); _err != nil && err == nil {
					err = _err
				}
			}()
			return runDemo(out)
		},
	})
}

func runDemo(out io.Writer) error {
	const capacity = 20
	a := adapter.NewArray[uint16](capacity)
	if err := a.PushFront(0x4321); err != nil {
		return err
	}
	if err := a.PushBack(0x1234); err != nil {
		return err
	}
	if _, err := a.InsertN(a.Begin().Add(1), 3, 0xAF); err != nil {
		return err
	}
	for it := a.CBegin(); !it.Equal(a.CEnd()); it.Inc() {
		if _, err := fmt.Fprintf(out, "0x%X ", it.Get()); err != nil {
			return err
		}
	}
	_, err := io.WriteString(out, "\n")
	return err
}
