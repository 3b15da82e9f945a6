// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"git.lukeshu.com/go/dataadapter/lib/adapter"
	"git.lukeshu.com/go/dataadapter/lib/textui"
)

type adapterKind string

const (
	kindArray  adapterKind = "array"
	kindVector adapterKind = "vector"
)

var _ pflag.Value = (*adapterKind)(nil)

// String implements pflag.Value.
func (k *adapterKind) String() string { return string(*k) }

// Type implements pflag.Value.
func (*adapterKind) Type() string { return "kind" }

// Set implements pflag.Value.
func (k *adapterKind) Set(str string) error {
	switch adapterKind(strings.ToLower(str)) {
	case kindArray:
		*k = kindArray
	case kindVector:
		*k = kindVector
	default:
		return fmt.Errorf("invalid adapter kind: %q (must be %q or %q)", str, kindArray, kindVector)
	}
	return nil
}

// New returns an empty adapter of this kind.  For a vector, capacity
// is only a hint of how much to reserve up front.
func (k adapterKind) New(capacity int) (adapter.Adapter[int64], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("invalid capacity: %d", textui.Humanized(capacity))
	}
	switch k {
	case kindArray:
		return adapter.NewArray[int64](capacity), nil
	case kindVector:
		ret := adapter.NewVector[int64]()
		if err := ret.Reserve(capacity); err != nil {
			return nil, err
		}
		return ret, nil
	default:
		panic(fmt.Errorf("should not happen: invalid adapter kind: %q", string(k)))
	}
}

type outputFormat string

const (
	outputText outputFormat = "text"
	outputHex  outputFormat = "hex"
	outputJSON outputFormat = "json"
	outputSpew outputFormat = "spew"
)

var outputFormats = []outputFormat{outputText, outputHex, outputJSON, outputSpew}

var _ pflag.Value = (*outputFormat)(nil)

// String implements pflag.Value.
func (o *outputFormat) String() string { return string(*o) }

// Type implements pflag.Value.
func (*outputFormat) Type() string { return "format" }

// Set implements pflag.Value.
func (o *outputFormat) Set(str string) error {
	for _, format := range outputFormats {
		if strings.EqualFold(str, string(format)) {
			*o = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %q (must be one of %q)", str, outputFormats)
}

type adapterFlags struct {
	kind     adapterKind
	capacity int
	output   outputFormat
}

func (f *adapterFlags) addTo(flags *pflag.FlagSet, defaultCapacity int) {
	f.kind = kindArray
	f.output = outputText
	flags.Var(&f.kind, "kind", "`kind` of adapter: array (fixed capacity) or vector (growable)")
	flags.IntVar(&f.capacity, "capacity", defaultCapacity, "the capacity of an array, or the initial reservation of a vector")
	flags.Var(&f.output, "output", "`format` to write the final contents in: text, hex, json, or spew")
}
