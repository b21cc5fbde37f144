// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Tree) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the tree structure and all the nodes to w.
func (t *Tree) dump(w io.Writer) {
	if t == nil {
		return
	}

	fmt.Fprintf(w, "### size(%d)", t.size)
	if t.root != nil {
		t.root.dumpRec(w, 0)
	}
	fmt.Fprintln(w)
}

// dumpRec, rec-descent the tree in pre-order.
func (n *node) dumpRec(w io.Writer, depth int) {
	n.dump(w, depth)

	if n.left != nil {
		n.left.dumpRec(w, depth+1)
	}
	if n.right != nil {
		n.right.dumpRec(w, depth+1)
	}
}

// dump the node to w.
func (n *node) dump(w io.Writer, depth int) {
	indent := strings.Repeat(".", depth)

	fmt.Fprintf(w, "\n%s[%s] depth: %d key: %d parent: %s left: %s right: %s",
		indent, n.hasType(), depth, n.key, keyFmt(n.parent), keyFmt(n.left), keyFmt(n.right))
}

// hasType returns the kind of node for the dump.
func (n *node) hasType() string {
	switch {
	case n.parent == nil:
		return "ROOT"
	case n.left == nil && n.right == nil:
		return "LEAF"
	default:
		return "INNER"
	}
}

// keyFmt prints the key of n or - for a missing node.
func keyFmt(n *node) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprint(n.key)
}
