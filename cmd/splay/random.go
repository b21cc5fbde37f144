// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gaissmai/splay"
)

var cmdRandom = &cli.Command{
	Name:  "random",
	Usage: "run a random insert/search/delete workload",
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "seed for the random generator",
			Value:   42,
			EnvVars: []string{"SPLAY_SEED"},
		},
		&cli.IntFlag{
			Name:    "ops",
			Usage:   "number of operations",
			Value:   100_000,
			EnvVars: []string{"SPLAY_OPS"},
		},
		&cli.IntFlag{
			Name:    "keys",
			Usage:   "keys are drawn from [0, keys)",
			Value:   10_000,
			EnvVars: []string{"SPLAY_KEYS"},
		},
		&cli.BoolFlag{
			Name:    "verify",
			Usage:   "check the tree invariants after every operation",
			EnvVars: []string{"SPLAY_VERIFY"},
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "print the final tree",
		},
	},
	Action: runRandom,
}

// workload describes one random run.
type workload struct {
	seed   uint64
	ops    int
	keys   int
	verify bool
}

// stats counts the outcomes of a workload.
type stats struct {
	inserts, searches, deletes int
	hits, misses               int
}

// play runs the workload against tree, inserts and searches are twice
// as likely as deletes so the tree grows toward the key space.
func (wl workload) play(tree *splay.Tree) (stats, error) {
	var st stats

	if wl.ops < 0 || wl.keys < 1 {
		return st, fmt.Errorf("invalid workload: ops %d, keys %d", wl.ops, wl.keys)
	}

	prng := rand.New(rand.NewPCG(wl.seed, wl.seed))

	for i := range wl.ops {
		key := prng.IntN(wl.keys)

		var found bool
		switch prng.IntN(5) {
		case 0, 1:
			st.inserts++
			tree.Insert(key)
			found = true
		case 2, 3:
			st.searches++
			found = tree.Search(key)
		default:
			st.deletes++
			found = tree.Delete(key)
		}

		if found {
			st.hits++
		} else {
			st.misses++
		}

		if wl.verify {
			if err := tree.Verify(); err != nil {
				return st, fmt.Errorf("op %d on key %d: %w", i, key, err)
			}
		}
	}

	return st, nil
}

func runRandom(cctx *cli.Context) error {
	wl := workload{
		seed:   cctx.Uint64("seed"),
		ops:    cctx.Int("ops"),
		keys:   cctx.Int("keys"),
		verify: cctx.Bool("verify"),
	}

	tree := new(splay.Tree)
	start := time.Now()

	st, err := wl.play(tree)
	if err != nil {
		return err
	}

	slog.Info("workload done",
		"seed", wl.seed,
		"ops", wl.ops,
		"inserts", st.inserts,
		"searches", st.searches,
		"deletes", st.deletes,
		"hits", st.hits,
		"misses", st.misses,
		"size", tree.Len(),
		"duration", time.Since(start),
	)

	// final check, even without per op verification
	if err := tree.Verify(); err != nil {
		return fmt.Errorf("tree broken after workload: %w", err)
	}

	if cctx.Bool("dump") {
		return writeTree(cctx.App.Writer, tree, cctx.String("format"))
	}

	_, err = fmt.Fprintf(cctx.App.Writer, "size=%d root=%s\n", tree.Len(), rootFmt(tree))
	return err
}
