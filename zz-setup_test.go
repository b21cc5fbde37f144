// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 1_000
}

// prng with fixed seed, tests are reproducible
func newPRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 42))
}

// mk returns a node with the given children, the parent links are set.
func mk(key int, left, right *node) *node {
	n := &node{key: key, left: left, right: right}
	left.setParent(n)
	right.setParent(n)
	return n
}

// leaf abbreviation
func lf(key int) *node {
	return &node{key: key}
}

// treeOf wraps root into a tree and counts the nodes.
func treeOf(root *node) *Tree {
	t := &Tree{root: root}
	var count func(n *node) int
	count = func(n *node) int {
		if n == nil {
			return 0
		}
		return 1 + count(n.left) + count(n.right)
	}
	t.size = count(root)
	return t
}

// shape renders the subtree as key(left,right), leaves just as key.
func shape(n *node) string {
	if n == nil {
		return "-"
	}
	if n.left == nil && n.right == nil {
		return fmt.Sprint(n.key)
	}
	return fmt.Sprintf("%d(%s,%s)", n.key, shape(n.left), shape(n.right))
}

// rec builds a snapshot record, the ParentKey of the children is set.
func rec(key int, left, right *DumpNode) *DumpNode {
	d := &DumpNode{Key: key, Left: left, Right: right}
	for _, kid := range []*DumpNode{left, right} {
		if kid != nil {
			pk := key
			kid.ParentKey = &pk
		}
	}
	return d
}

// lastVisited simulates the descent on a snapshot and returns the key
// of the node where a search for key ends.
func lastVisited(d *DumpNode, key int) (int, bool) {
	if d == nil {
		return 0, false
	}
	for {
		switch {
		case key < d.Key && d.Left != nil:
			d = d.Left
		case key > d.Key && d.Right != nil:
			d = d.Right
		default:
			return d.Key, true
		}
	}
}

// checkInvariants fails the test with a full dump if tree is broken.
func checkInvariants(t *testing.T, tree *Tree) {
	t.Helper()
	if err := tree.Verify(); err != nil {
		t.Fatalf("invariants broken: %v\n%s\n%s", err, tree.dumpString(), spew.Sdump(tree.Dump()))
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s must panic", name)
		}
	}()
	fn()
}
