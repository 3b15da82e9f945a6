// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/datawire/ocibuild/pkg/cliutil"
	"github.com/spf13/cobra"

	"git.lukeshu.com/go/dataadapter/lib/adapter/opscript"
	"git.lukeshu.com/go/dataadapter/lib/textui"
)

func init() {
	var flags adapterFlags
	cmd := subcommand{
		Command: cobra.Command{
			Use:   "run [flags] SCRIPT.json",
			Short: "Apply a JSON script of operations to an adapter",
			Long: "" +
				"The script is a JSON array of steps such as\n" +
				"\n" +
				"\t{\"op\": \"insert\", \"pos\": 1, \"count\": 3, \"value\": 175}\n" +
				"\n" +
				"which are applied in order, stopping at the first step that " +
				"fails.  The result of each step is logged at the debug " +
				"verbosity, and the final contents are written to stdout.\n" +
				"\n" +
				"Pass \"-\" to read the script from stdin.",
			Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx := dlog.WithField(cmd.Context(), "dataadapter.run.kind", flags.kind)

			steps, err := readScriptFile(ctx, args[0])
			if err != nil {
				return err
			}
			a, err := flags.kind.New(flags.capacity)
			if err != nil {
				return err
			}

			if _, err := opscript.Run(ctx, a, steps); err != nil {
				return err
			}
			dlog.Infof(ctx, "ran %v steps; filled %v",
				len(steps), textui.Portion[int]{N: a.Len(), D: a.Cap()})

			out := bufio.NewWriter(os.Stdout)
			defer func() {
				if _err := out.Flush(); _err != nil && err == nil {
					err = _err
				}
			}()
			return writeAdapter(out, a, flags.output)
		},
	}
	flags.addTo(cmd.Command.Flags(), 20) //nolint:gomnd // Same as the demo.
	subcommands = append(subcommands, cmd)
}
