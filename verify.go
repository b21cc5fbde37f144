// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Verify checks the structural invariants of the tree:
//
//   - in-order keys are strictly ascending
//   - every child points back to its parent
//   - the root, and only the root, has no parent
//   - the number of reachable nodes equals [Tree.Len]
//
// All violations found are returned together, Verify returns nil
// for a valid tree. Verify does not splay.
func (t *Tree) Verify() error {
	if t == nil {
		return nil
	}

	var result *multierror.Error

	if t.root != nil && t.root.parent != nil {
		result = multierror.Append(result,
			fmt.Errorf("root %d has parent %d", t.root.key, t.root.parent.key))
	}

	// in-order walk over the child links only,
	// the parent links are under test
	var (
		stack []*node
		prev  *node
		count int
	)

	for n := t.root; n != nil || len(stack) > 0; n = n.right {
		for ; n != nil; n = n.left {
			stack = append(stack, n)
		}

		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		if prev != nil && prev.key >= n.key {
			result = multierror.Append(result,
				fmt.Errorf("keys out of order: %d before %d", prev.key, n.key))
		}
		prev = n

		for _, c := range [...]*node{n.left, n.right} {
			if c == nil {
				continue
			}

			switch {
			case c.parent == nil:
				result = multierror.Append(result,
					fmt.Errorf("node %d: child %d has no parent", n.key, c.key))
			case c.parent != n:
				result = multierror.Append(result,
					fmt.Errorf("node %d: child %d points to parent %d", n.key, c.key, c.parent.key))
			}
		}
	}

	if count != t.size {
		result = multierror.Append(result,
			fmt.Errorf("size mismatch: %d reachable nodes, size %d", count, t.size))
	}

	return result.ErrorOrNil()
}
