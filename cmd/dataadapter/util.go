// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/dlog"
	"github.com/davecgh/go-spew/spew"

	"git.lukeshu.com/go/dataadapter/lib/adapter"
	"git.lukeshu.com/go/dataadapter/lib/adapter/opscript"
	"git.lukeshu.com/go/dataadapter/lib/textui"
)

type runeScanner struct {
	ctx            context.Context //nolint:containedctx // For detecting shutdown from methods
	progress       textui.Portion[int64]
	progressWriter *textui.Progress[textui.Portion[int64]]
	unreadCnt      uint64
	reader         *bufio.Reader
	closer         io.Closer
}

func newRuneScanner(ctx context.Context, fh *os.File) (*runeScanner, error) {
	fi, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	ret := &runeScanner{
		ctx: ctx,
		progress: textui.Portion[int64]{
			D: fi.Size(),
		},
		progressWriter: textui.NewProgress[textui.Portion[int64]](ctx, dlog.LogLevelInfo, textui.Tunable(1*time.Second)),
		reader:         bufio.NewReader(fh),
		closer:         fh,
	}
	return ret, nil
}

func (rs *runeScanner) ReadRune() (r rune, size int, err error) {
	if err := rs.ctx.Err(); err != nil {
		return 0, 0, err
	}
	r, size, err = rs.reader.ReadRune()
	if rs.unreadCnt > 0 {
		rs.unreadCnt--
	} else {
		rs.progress.N += int64(size)
		rs.progressWriter.Set(rs.progress)
	}
	return
}

func (rs *runeScanner) UnreadRune() error {
	if err := rs.ctx.Err(); err != nil {
		return err
	}
	if err := rs.reader.UnreadRune(); err != nil {
		return err
	}
	rs.unreadCnt++
	return nil
}

func (rs *runeScanner) Close() error {
	rs.progressWriter.Done()
	return rs.closer.Close()
}

// readScriptFile reads an ops script, with "-" meaning stdin.
func readScriptFile(ctx context.Context, filename string) ([]opscript.Step, error) {
	if filename == "-" {
		return opscript.ReadScript(bufio.NewReader(os.Stdin))
	}
	fh, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	buf, err := newRuneScanner(dlog.WithField(ctx, "dataadapter.read-json-file", filename), fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	defer func() {
		_ = buf.Close()
	}()
	steps, err := opscript.ReadScript(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return steps, nil
}

func writeJSON(w io.Writer, obj any, cfg lowmemjson.ReEncoderConfig) (err error) {
	buffer := bufio.NewWriter(w)
	defer func() {
		if _err := buffer.Flush(); err == nil && _err != nil {
			err = _err
		}
	}()
	return lowmemjson.NewEncoder(lowmemjson.NewReEncoder(buffer, cfg)).Encode(obj)
}

func writeAdapter(w io.Writer, a adapter.Adapter[int64], format outputFormat) error {
	switch format {
	case outputText:
		if err := adapter.Fprint(w, a); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case outputHex:
		_, err := fmt.Fprintf(w, "%#x\n", a)
		return err
	case outputJSON:
		return writeJSON(w, a, lowmemjson.ReEncoderConfig{
			Indent:                "\t",
			ForceTrailingNewlines: true,
			CompactIfUnder:        80, //nolint:gomnd // This is what looks nice.
		})
	case outputSpew:
		cfg := spew.NewDefaultConfig()
		cfg.DisablePointerAddresses = true
		cfg.DisableCapacities = true
		cfg.Fdump(w, a.Slice())
		return nil
	default:
		panic(fmt.Errorf("should not happen: invalid output format: %q", string(format)))
	}
}
