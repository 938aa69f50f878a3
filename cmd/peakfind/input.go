package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/sugawarayuuta/sonnet"
)

var (
	// errDecode indicates a malformed input document.
	errDecode = errors.New("peakfind: cannot decode input document")
	// errDtype indicates an unsupported dtype field.
	errDtype = errors.New("peakfind: unsupported dtype")
)

// header is the part of the input document read before the typed data.
type header struct {
	Shape []int  `json:"shape"`
	Dtype string `json:"dtype"`
}

// readInput returns the raw document from the named file, or from stdin
// when args is empty, decompressing by file extension.
func readInput(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(stdin)
	}
	name := args[0]
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return decompress(f, filepath.Ext(name))
}

// decompress reads r fully, undoing zstd or gzip compression for the
// extensions .zst and .gz.
func decompress(r io.Reader, ext string) ([]byte, error) {
	switch ext {
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		return io.ReadAll(dec)
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()

		return io.ReadAll(zr)
	default:
		return io.ReadAll(r)
	}
}

// decodeHeader parses the shape and dtype of raw.
func decodeHeader(raw []byte) (header, error) {
	var h header
	if err := sonnet.Unmarshal(bytes.TrimSpace(raw), &h); err != nil {
		return header{}, fmt.Errorf("%w: %v", errDecode, err)
	}
	if h.Dtype == "" {
		h.Dtype = "float64"
	}

	return h, nil
}

// decodeData parses the data field of raw as a []T.
func decodeData[T any](raw []byte) ([]T, error) {
	var body struct {
		Data []T `json:"data"`
	}
	if err := sonnet.Unmarshal(bytes.TrimSpace(raw), &body); err != nil {
		return nil, fmt.Errorf("%w: %v", errDecode, err)
	}

	return body.Data, nil
}
