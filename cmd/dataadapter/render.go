// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/dataadapter/lib/adapter"
)

func init() {
	var flags adapterFlags
	var sortFlag, stableFlag bool
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "render [flags] VALUES...",
			Short: "Load integers into an adapter and write them back out",
			Long: "" +
				"Each value is parsed as a Go integer literal, so \"0x4321\", " +
				"\"0o17\", and \"-5\" are all accepted.  A --capacity of 0 " +
				"means exactly as many slots as there are values.",
			Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if sortFlag && stableFlag {
				return errors.New("--sort and --stable are mutually exclusive")
			}
			ctx := dlog.WithField(cmd.Context(), "dataadapter.run.kind", flags.kind)

			values, err := parseValues(args)
			if err != nil {
				return err
			}
			capacity := flags.capacity
			if capacity == 0 {
				capacity = len(values)
			}
			a, err := flags.kind.New(capacity)
			if err != nil {
				return err
			}
			if err := a.AssignSlice(values); err != nil {
				return err
			}
			switch {
			case sortFlag:
				a.Sort()
			case stableFlag:
				a.StableSort()
			}
			dlog.Debugf(ctx, "sorted=%v", adapter.IsSorted(a))

			out := bufio.NewWriter(os.Stdout)
			defer func() {
				if _err := out.Flush(); _err != nil && err == nil {
					err = _err
				}
			}()
			return writeAdapter(out, a, flags.output)
		},
	}
	flags.addTo(cmd.Command.Flags(), 0)
	cmd.Command.Flags().BoolVar(&sortFlag, "sort", false, "sort the values before writing them")
	cmd.Command.Flags().BoolVar(&stableFlag, "stable", false, "stable-sort the values before writing them")
	subcommands = append(subcommands, cmd)
}

func parseValues(args []string) ([]int64, error) {
	ret := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		ret[i] = v
	}
	return ret, nil
}
