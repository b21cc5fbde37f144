// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command splay drives a splay tree from operation scripts, random
// workloads or JSON snapshots and prints the resulting tree.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

const (
	formatJSON = "json"
	formatTree = "tree"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	return app.Run(args)
}

// newApp wires all commands, in and out are used for scripts and results,
// logs go to logw.
func newApp(in io.Reader, out, logw io.Writer) *cli.App {
	app := &cli.App{
		Name:      "splay",
		Usage:     "exercise a splay tree",
		Version:   versioninfo.Short(),
		Reader:    in,
		Writer:    out,
		ErrWriter: logw,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"SPLAY_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "output format for tree dumps (json, tree)",
				Value:   formatTree,
				EnvVars: []string{"SPLAY_FORMAT"},
			},
		},
		Before: func(cctx *cli.Context) error {
			logLvl := new(slog.LevelVar)
			if err := logLvl.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(logw, &slog.HandlerOptions{
				Level: logLvl,
			})))

			switch f := cctx.String("format"); f {
			case formatJSON, formatTree:
			default:
				return fmt.Errorf("unknown format %q, want %s or %s", f, formatJSON, formatTree)
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdRun,
			cmdRandom,
			cmdLoad,
		},
	}
	return app
}

// openInput returns the file named by the first argument, or the app reader.
func openInput(cctx *cli.Context) (io.ReadCloser, string, error) {
	path := cctx.Args().First()
	if path == "" || path == "-" {
		return io.NopCloser(cctx.App.Reader), "stdin", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, path, err
	}
	return f, path, nil
}
