// Command peakfind reports the local maxima (or minima) of an n-dimensional
// array read from a JSON document.
//
// Usage:
//
//	peakfind [flags] [file]
//
// The document has the form
//
//	{"shape": [4, 5], "dtype": "int64", "data": [1, 1, 1, ...]}
//
// with data in row-major order. dtype is one of float64 (default), float32,
// int64 or int32. Files ending in .zst or .gz are decompressed first; with
// no file the document is read from stdin.
//
// Output is a JSON document on stdout whose form depends on --output:
// mask (shape + boolean mask), indices (coordinates) or labels (shape,
// region labels and region count).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "peakfind:", err)
		os.Exit(1)
	}
}
