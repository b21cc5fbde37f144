// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/gaissmai/splay"
)

var cmdLoad = &cli.Command{
	Name:      "load",
	Usage:     "validate a JSON tree snapshot and print it",
	ArgsUsage: `[<snapshot-file>]`,
	Action:    runLoad,
}

// loadTree decodes and validates a snapshot as written by dump.
func loadTree(r io.Reader) (*splay.Tree, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	tree := new(splay.Tree)
	if err := json.Unmarshal(buf, tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func runLoad(cctx *cli.Context) error {
	in, name, err := openInput(cctx)
	if err != nil {
		return err
	}
	defer in.Close()

	tree, err := loadTree(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	root, _ := tree.Root()
	slog.Info("snapshot loaded", "source", name, "size", tree.Len(), "root", root)

	return writeTree(cctx.App.Writer, tree, cctx.String("format"))
}
