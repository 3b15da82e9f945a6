// Copyright (C) 2019-2022  Ambassador Labs
// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: Apache-2.0
//
// Contains code based on:
// https://github.com/datawire/dlib/blob/b09ab2e017e16d261f05fff5b3b860d645e774d4/dlog/logger_logrus.go
// https://github.com/datawire/dlib/blob/b09ab2e017e16d261f05fff5b3b860d645e774d4/dlog/logger_testing.go
// https://github.com/telepresenceio/telepresence/blob/ece94a40b00a90722af36b12e40f91cbecc0550c/pkg/log/formatter.go

package textui

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"git.lukeshu.com/go/typedsync"
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/pflag"
	expslices "golang.org/x/exp/slices"
)

// logLevels maps each dlog.LogLevel to the name that LogLevelFlag
// accepts and the abbreviation that the logger prints.
var logLevels = []struct {
	lvl  dlog.LogLevel
	name string
	abbr string
}{
	{dlog.LogLevelError, "error", "ERR"},
	{dlog.LogLevelWarn, "warn", "WRN"},
	{dlog.LogLevelInfo, "info", "INF"},
	{dlog.LogLevelDebug, "debug", "DBG"},
	{dlog.LogLevelTrace, "trace", "TRC"},
}

// LogLevelFlag is a pflag.Value for picking how verbose the logger
// should be.
type LogLevelFlag struct {
	Level dlog.LogLevel
}

var _ pflag.Value = (*LogLevelFlag)(nil)

// Type implements pflag.Value.
func (lvl *LogLevelFlag) Type() string { return "loglevel" }

// Set implements pflag.Value.
func (lvl *LogLevelFlag) Set(str string) error {
	name := strings.ToLower(str)
	if name == "warning" {
		name = "warn"
	}
	for _, l := range logLevels {
		if l.name == name {
			lvl.Level = l.lvl
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %q", str)
}

// String implements pflag.Value.
func (lvl *LogLevelFlag) String() string {
	for _, l := range logLevels {
		if l.lvl == lvl.Level {
			return l.name
		}
	}
	panic(fmt.Errorf("invalid log level: %#v", lvl.Level))
}

func levelAbbr(lvl dlog.LogLevel) string {
	for _, l := range logLevels {
		if l.lvl == lvl {
			return l.abbr
		}
	}
	return "???"
}

// logger is a dlog.Logger that writes one line per message:
//
//	TIME LVL [early fields] : MESSAGE : [late fields] (from FILE:LINE)
type logger struct {
	parent *logger
	out    io.Writer
	lvl    dlog.LogLevel

	// Unset on the root logger.
	fieldKey string
	fieldVal any
}

var _ dlog.OptimizedLogger = (*logger)(nil)

func NewLogger(out io.Writer, lvl dlog.LogLevel) dlog.Logger {
	return &logger{
		out: out,
		lvl: lvl,
	}
}

// Helper implements dlog.Logger.
func (*logger) Helper() {}

// WithField implements dlog.Logger.
func (l *logger) WithField(key string, value any) dlog.Logger {
	child := *l
	child.parent = l
	child.fieldKey = key
	child.fieldVal = value
	return &child
}

type logWriter struct {
	log *logger
	lvl dlog.LogLevel
}

// Write implements io.Writer.
func (lw logWriter) Write(data []byte) (int, error) {
	lw.log.log(lw.lvl, func(w io.Writer) {
		_, _ = w.Write(data)
	})
	return len(data), nil
}

// StdLogger implements dlog.Logger.
func (l *logger) StdLogger(lvl dlog.LogLevel) *log.Logger {
	return log.New(logWriter{log: l, lvl: lvl}, "", 0)
}

// Log implements dlog.Logger.
func (*logger) Log(dlog.LogLevel, string) {
	panic("should not happen: dlog calls the Unformatted* methods on an OptimizedLogger")
}

// UnformattedLog implements dlog.OptimizedLogger.
func (l *logger) UnformattedLog(lvl dlog.LogLevel, args ...any) {
	l.log(lvl, func(w io.Writer) { _, _ = printer.Fprint(w, args...) })
}

// UnformattedLogln implements dlog.OptimizedLogger.
func (l *logger) UnformattedLogln(lvl dlog.LogLevel, args ...any) {
	l.log(lvl, func(w io.Writer) { _, _ = printer.Fprintln(w, args...) })
}

// UnformattedLogf implements dlog.OptimizedLogger.
func (l *logger) UnformattedLogf(lvl dlog.LogLevel, format string, args ...any) {
	l.log(lvl, func(w io.Writer) { _, _ = printer.Fprintf(w, format, args...) })
}

var (
	logBufPool = typedsync.Pool[*bytes.Buffer]{
		New: func() *bytes.Buffer {
			return new(bytes.Buffer)
		},
	}
	logMu      sync.Mutex
	thisModDir string
)

func init() {
	//nolint:dogsled // I can't change the signature of the stdlib.
	_, file, _, _ := runtime.Caller(0)
	thisModDir = filepath.Dir(filepath.Dir(filepath.Dir(file)))
}

func (l *logger) log(lvl dlog.LogLevel, writeMsg func(io.Writer)) {
	if lvl > l.lvl {
		return
	}
	buf, _ := logBufPool.Get()
	defer logBufPool.Put(buf)
	defer buf.Reset()

	buf.WriteString(time.Now().Format("2006-01-02 15:04:05.0000"))
	buf.WriteString(" " + levelAbbr(lvl))

	fields := l.fields()
	split := expslices.IndexFunc(fields, func(f logField) bool {
		return fieldOrd(f.key) >= 0
	})
	if split < 0 {
		split = len(fields)
	}
	for _, f := range fields[:split] {
		writeField(buf, f.key, f.val)
	}

	buf.WriteString(" : ")
	writeMsg(buf)

	where, haveWhere := caller()
	if split < len(fields) || haveWhere {
		buf.WriteString(" :")
	}
	for _, f := range fields[split:] {
		writeField(buf, f.key, f.val)
	}
	if haveWhere {
		fmt.Fprintf(buf, " (from %s)", where)
	}
	buf.WriteByte('\n')

	logMu.Lock()
	_, _ = l.out.Write(buf.Bytes())
	logMu.Unlock()
}

// caller returns the "FILE:LINE" of the innermost stack frame that is
// in this module but outside of this package.
func caller() (string, bool) {
	const (
		thisModule  = "git.lukeshu.com/go/dataadapter"
		thisPackage = thisModule + "/lib/textui"
	)
	var pcs [25]uintptr
	// Skip runtime.Callers, caller, and logger.log.
	frames := runtime.CallersFrames(pcs[:runtime.Callers(3, pcs[:])])
	for f, more := frames.Next(); more; f, more = frames.Next() {
		if !strings.HasPrefix(f.Function, thisModule+"/") || strings.HasPrefix(f.Function, thisPackage+".") {
			continue
		}
		file := f.File
		if _, rel, ok := strings.Cut(file, thisModDir+"/"); ok {
			file = rel
		}
		return fmt.Sprintf("%s:%d", file, f.Line), true
	}
	return "", false
}

type logField struct {
	key string
	val any
}

// fields returns the fields attached to l, in the order that they
// are written.  When a key was set more than once, the innermost
// value wins.
func (l *logger) fields() []logField {
	seen := make(map[string]struct{})
	var ret []logField
	for f := l; f.parent != nil; f = f.parent {
		if _, dup := seen[f.fieldKey]; dup {
			continue
		}
		seen[f.fieldKey] = struct{}{}
		ret = append(ret, logField{key: f.fieldKey, val: f.fieldVal})
	}
	expslices.SortFunc(ret, func(a, b logField) bool {
		if aOrd, bOrd := fieldOrd(a.key), fieldOrd(b.key); aOrd != bOrd {
			return aOrd < bOrd
		}
		return a.key < b.key
	})
	return ret
}

// fieldOrds places well-known fields to the left of the message, in
// ascending order.  Other fields go to the right of the message.
var fieldOrds = map[string]int{
	// dlib
	"THREAD":       -99, // dgroup
	"dexec.pid":    -98,
	"dexec.stream": -97,
	"dexec.data":   -96,
	"dexec.err":    -95,

	// dataadapter
	"dataadapter.run.kind":       -4,
	"dataadapter.opscript.step":  -3,
	"dataadapter.opscript.op":    -2,
	"dataadapter.read-json-file": -1,
}

func fieldOrd(key string) int {
	if ord, ok := fieldOrds[key]; ok {
		return ord
	}
	return 1
}

// fieldValString renders a field value, quoting it if it would
// otherwise be ambiguous on the log line.
func fieldValString(val any) string {
	str := printer.Sprint(val)
	ambiguous := strings.HasPrefix(str, `"`) || strings.IndexFunc(str, func(r rune) bool {
		return r == ' ' || !unicode.IsPrint(r)
	}) >= 0
	if ambiguous {
		str = strconv.Quote(str)
	}
	return str
}

func writeField(w io.Writer, key string, val any) {
	str := fieldValString(val)
	switch key {
	case "THREAD":
		if str == "" || str == "/main" {
			return
		}
		if rest := strings.TrimPrefix(str, "/main/"); rest != str {
			str = rest
		} else {
			str = strings.TrimPrefix(str, "/")
		}
		fmt.Fprintf(w, " thread=%s", str)
	case "dataadapter.opscript.step":
		fmt.Fprintf(w, " #%s", str)
	default:
		name := key
		if rest := strings.TrimPrefix(key, "dataadapter."); rest != key {
			name = strings.TrimPrefix(strings.TrimPrefix(rest, "opscript."), "run.")
		}
		fmt.Fprintf(w, " %s=%s", name, str)
	}
}
