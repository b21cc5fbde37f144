// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package splay provides a self-adjusting binary search tree (splay tree)
// of unique int keys.
//
// Every access rotates the touched node to the root with zig, zig-zig
// and zig-zag steps. There is no separate balancing pass, the splaying
// is the balancing. Search, Insert and Delete run in amortized O(log n),
// a single operation may take O(n).
//
// A failed Search or Delete still splays the last node visited on the
// way down, this pays down the depth of the probed region and is needed
// for the amortized bound.
//
// Besides the three operations the package offers read-only views for
// diagnostics and tests: [Tree.Dump] returns a nested record with the
// parent key of every node, [Tree.Fprint] writes a diagram,
// [Tree.Verify] checks the structural invariants and [FromDump]
// rebuilds a tree from a snapshot.
//
// A Tree is not safe for concurrent use. Since even Search restructures
// the tree, all operations, reads included, must be serialized by the
// caller, e.g. with one [sync.Mutex] around the tree.
package splay
