// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package textui

import (
	"context"
	"fmt"
	"time"

	"git.lukeshu.com/go/typedsync"
	"github.com/datawire/dlib/dlog"
)

// Stats is a snapshot of how far along some work is.
type Stats interface {
	comparable
	fmt.Stringer
}

// Progress logs the latest Stats that it has been given, at most
// once per interval, and only when they have changed.
//
// Set may be called from any goroutine; Done must be called exactly
// once, after the last Set.
type Progress[T Stats] struct {
	ctx      context.Context //nolint:containedctx // For logging from the reporting goroutine
	lvl      dlog.LogLevel
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}

	cur typedsync.Value[T]

	// Only touched by the reporting goroutine.
	logged     T
	loggedLine string
}

func NewProgress[T Stats](ctx context.Context, lvl dlog.LogLevel, interval time.Duration) *Progress[T] {
	ctx, cancel := context.WithCancel(ctx)
	return &Progress[T]{
		ctx:      ctx,
		lvl:      lvl,
		interval: interval,

		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Set records val as the current Stats.  The first call starts the
// reporting goroutine, which logs val right away.
func (p *Progress[T]) Set(val T) {
	if _, started := p.cur.Swap(val); !started {
		go p.run()
	}
}

// Done stops reporting, after logging the final Stats if they have
// not yet been logged.
func (p *Progress[T]) Done() {
	p.cancel()
	if _, started := p.cur.Load(); started {
		<-p.done
	}
}

func (p *Progress[T]) run() {
	defer close(p.done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log(true)
	for {
		select {
		case <-p.ctx.Done():
			p.log(false)
			return
		case <-ticker.C:
			p.log(false)
		}
	}
}

// log writes the current Stats, skipping them (unless force is set)
// if either they or their rendering is unchanged since the last
// write.
func (p *Progress[T]) log(force bool) {
	cur, _ := p.cur.Load()
	if !force && cur == p.logged {
		return
	}
	p.logged = cur

	line := cur.String()
	if !force && line == p.loggedLine {
		return
	}
	p.loggedLine = line

	dlog.Log(p.ctx, p.lvl, line)
}
