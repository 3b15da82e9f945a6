// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package textui

// Tunable marks a constant (a growth factor, a logging interval) that
// was picked by feel and may want revisiting once there are
// benchmarks to justify another value.  It returns x unchanged.
func Tunable[T any](x T) T {
	return x
}
