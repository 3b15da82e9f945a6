// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package profile

import (
	"fmt"
	"os"

	"github.com/datawire/dlib/derror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flagSet struct {
	stops []StopFunc
}

// stop runs every StopFunc, in the reverse of the order that the
// profiles were started.
func (fs *flagSet) stop() error {
	var errs derror.MultiError
	for i := len(fs.stops) - 1; i >= 0; i-- {
		if err := fs.stops[i](); err != nil {
			errs = append(errs, err)
		}
	}
	fs.stops = nil
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type flagValue struct {
	parent   *flagSet
	kind     Kind
	filename string
}

var _ pflag.Value = (*flagValue)(nil)

// String implements pflag.Value.
func (fv *flagValue) String() string { return fv.filename }

// Type implements pflag.Value.
func (*flagValue) Type() string { return "filename" }

// Set implements pflag.Value.  The profile starts as soon as the
// flag is parsed.
func (fv *flagValue) Set(filename string) error {
	if filename == "" {
		return nil
	}
	if fv.filename != "" {
		return fmt.Errorf("%s profile is already being written to %q", fv.kind.Name, fv.filename)
	}
	fh, err := os.Create(filename)
	if err != nil {
		return err
	}
	stop, err := fv.kind.Start(fh)
	if err != nil {
		_ = fh.Close()
		return err
	}
	fv.filename = filename
	fv.parent.stops = append(fv.parent.stops, func() error {
		err := stop()
		if _err := fh.Close(); err == nil {
			err = _err
		}
		return err
	})
	return nil
}

// AddFlags adds a "{prefix}{kind}" flag to flags for each of the
// Kinds, and returns a function to be called at program shutdown to
// finish writing whichever profiles were requested.
func AddFlags(flags *pflag.FlagSet, prefix string) StopFunc {
	root := new(flagSet)
	for _, kind := range Kinds {
		name := prefix + kind.Name
		flags.Var(&flagValue{parent: root, kind: kind}, name,
			fmt.Sprintf("write a %s profile to the file `%s.%s`", kind.Name, kind.Name, kind.Ext))
		_ = cobra.MarkFlagFilename(flags, name)
	}
	return root.stop
}
