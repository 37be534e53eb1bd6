package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/richtext/tree"

	"github.com/scott-cotton/cli"
)

// docSep separates documents within one input.
var docSep = []byte("\n---\n")

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getDoc decodes the single document in path.
func getDoc(cfg *MainConfig, cc *cli.Context, path string) (*tree.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	n, err := tree.Decode(d, cfg.codecOpts(cc.Out)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return n, nil
}

// eachDoc decodes the documents in files, or standard input if there are
// none, and calls f on each with its position among all documents.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(k int, n *tree.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	opts := cfg.codecOpts(cc.Out)
	k := 0
	for _, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		for i, part := range bytes.Split(d, docSep) {
			n, err := tree.Decode(part, opts...)
			if err != nil {
				return fmt.Errorf("error decoding %s document %d: %w", file, i, err)
			}
			theLog.Debug("decoded", "file", file, "doc", i, "kind", n.Kind())
			if err := f(k, n); err != nil {
				return fmt.Errorf("%s document %d: %w", file, i, err)
			}
			k++
		}
	}
	return nil
}

func writeSep(w io.Writer, k int) error {
	if k == 0 {
		return nil
	}
	_, err := w.Write([]byte("---\n"))
	return err
}
