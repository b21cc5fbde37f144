// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/urfave/cli/v2"

	"github.com/gaissmai/splay"
)

var cmdRun = &cli.Command{
	Name:      "run",
	Usage:     "apply an operation script to an empty tree",
	ArgsUsage: `[<script-file>]`,
	Description: `Reads one operation per line from the file or stdin:

   insert <key>...   search <key>...   delete <key>...
   dump              print

Blank lines and # comments are ignored.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "verify",
			Usage:   "check the tree invariants after every operation",
			EnvVars: []string{"SPLAY_VERIFY"},
		},
	},
	Action: runScript,
}

type opKind int

const (
	opInsert opKind = iota
	opSearch
	opDelete
	opDump
	opPrint
)

var opNames = map[string]opKind{
	"insert": opInsert,
	"search": opSearch,
	"delete": opDelete,
	"dump":   opDump,
	"print":  opPrint,
}

func (k opKind) String() string {
	for name, kind := range opNames {
		if kind == k {
			return name
		}
	}
	return "op(" + strconv.Itoa(int(k)) + ")"
}

// op is a single script step, line is the source line for errors.
type op struct {
	kind opKind
	key  int
	line int
}

// parseScript reads the whole script, keyed operations with several
// keys are expanded into one op per key.
func parseScript(r io.Reader) ([]op, error) {
	var ops []op

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		tokens, err := shlex.Split(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(tokens) == 0 {
			continue
		}

		kind, ok := opNames[strings.ToLower(tokens[0])]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operation %q", lineNo, tokens[0])
		}
		args := tokens[1:]

		switch kind {
		case opDump, opPrint:
			if len(args) != 0 {
				return nil, fmt.Errorf("line %d: %s takes no arguments", lineNo, kind)
			}
			ops = append(ops, op{kind: kind, line: lineNo})

		default:
			if len(args) == 0 {
				return nil, fmt.Errorf("line %d: %s needs at least one key", lineNo, kind)
			}
			for _, arg := range args {
				key, err := strconv.Atoi(arg)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid key %q: %w", lineNo, arg, err)
				}
				ops = append(ops, op{kind: kind, key: key, line: lineNo})
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ops, nil
}

// player applies ops to one tree and reports to w.
type player struct {
	tree   *splay.Tree
	w      io.Writer
	format string
	verify bool
}

func (p *player) apply(ops []op) error {
	for _, o := range ops {
		if err := p.step(o); err != nil {
			return fmt.Errorf("line %d: %s: %w", o.line, o.kind, err)
		}

		if p.verify {
			if err := p.tree.Verify(); err != nil {
				return fmt.Errorf("line %d: %s %d broke the tree: %w", o.line, o.kind, o.key, err)
			}
		}
	}
	return nil
}

func (p *player) step(o op) error {
	var err error

	switch o.kind {
	case opInsert:
		p.tree.Insert(o.key)
		_, err = fmt.Fprintf(p.w, "insert %d: root=%s size=%d\n", o.key, rootFmt(p.tree), p.tree.Len())

	case opSearch:
		found := p.tree.Search(o.key)
		_, err = fmt.Fprintf(p.w, "search %d: %s root=%s\n", o.key, foundFmt(found), rootFmt(p.tree))

	case opDelete:
		found := p.tree.Delete(o.key)
		_, err = fmt.Fprintf(p.w, "delete %d: %s root=%s size=%d\n", o.key, foundFmt(found), rootFmt(p.tree), p.tree.Len())

	case opPrint:
		_, err = fmt.Fprintln(p.w, p.tree.Keys())

	case opDump:
		err = writeTree(p.w, p.tree, p.format)
	}

	slog.Debug("applied", "op", o.kind, "key", o.key, "line", o.line, "size", p.tree.Len())
	return err
}

// writeTree renders tree in the requested format.
func writeTree(w io.Writer, tree *splay.Tree, format string) error {
	if format == formatJSON {
		buf, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(buf))
		return err
	}

	if tree.Len() == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	return tree.Fprint(w)
}

func rootFmt(tree *splay.Tree) string {
	if key, ok := tree.Root(); ok {
		return strconv.Itoa(key)
	}
	return "-"
}

func foundFmt(found bool) string {
	if found {
		return "found"
	}
	return "not found"
}

func runScript(cctx *cli.Context) error {
	in, name, err := openInput(cctx)
	if err != nil {
		return err
	}
	defer in.Close()

	ops, err := parseScript(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	slog.Info("script parsed", "source", name, "ops", len(ops))

	p := &player{
		tree:   new(splay.Tree),
		w:      cctx.App.Writer,
		format: cctx.String("format"),
		verify: cctx.Bool("verify"),
	}
	if err := p.apply(ops); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	slog.Info("script done", "source", name, "size", p.tree.Len())
	return nil
}
