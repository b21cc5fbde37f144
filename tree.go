// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import "iter"

// Tree is a splay tree of unique int keys.
// The zero value is ready to use.
//
// Every access moves the touched node to the root, even a failed
// search or delete moves the last visited node up. Searches are
// therefore write operations, see the package documentation about
// concurrent use.
//
// A nil *Tree behaves as an empty tree for all methods except
// [Tree.Insert], which needs a tree to store the key in and panics.
type Tree struct {
	root *node
	size int
}

// find descends from the root toward key.
// It returns the node holding key and true, or the last visited
// node and false. On an empty tree it returns nil and false.
func (t *Tree) find(key int) (last *node, found bool) {
	n := t.root
	for n != nil {
		last = n

		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n, true
		}
	}
	return last, false
}

// Search reports whether key is stored in the tree.
//
// The matching node, or the last node visited during the descent,
// is splayed to the root.
func (t *Tree) Search(key int) bool {
	if t == nil {
		return false
	}

	n, found := t.find(key)
	if n == nil {
		return false
	}

	t.splay(n)
	return found
}

// Insert adds key to the tree, the new node becomes the root.
// If key is already present, its node is splayed to the root
// and the tree keeps a single copy. Insert panics on a nil tree.
func (t *Tree) Insert(key int) {
	if t == nil {
		panic("Insert on nil tree")
	}

	parent, found := t.find(key)
	if found {
		t.splay(parent)
		return
	}

	n := &node{key: key, parent: parent}
	t.size++

	// empty tree, easy peasy
	if parent == nil {
		t.root = n
		return
	}

	// attach as leaf, then splay the leaf up
	if key < parent.key {
		parent.left = n
	} else {
		parent.right = n
	}
	t.splay(n)
}

// Delete removes key from the tree and reports whether it was present.
//
// If key is missing, the tree is left as after [Tree.Search] with the
// last visited node at the root.
func (t *Tree) Delete(key int) bool {
	if !t.Search(key) {
		return false
	}

	del := t.root
	left, right := del.left, del.right

	switch {
	case left == nil && right == nil:
		t.root = nil

	case left == nil:
		right.parent = nil
		t.root = right

	case right == nil:
		left.parent = nil
		t.root = left

	default:
		// detach the left subtree and splay its max to the top,
		// the max has no right child, hang the right subtree there
		left.parent = nil
		t.root = left
		t.splay(left.maxNode())

		t.root.right = right
		right.parent = t.root
	}

	del.clear()
	t.size--

	return true
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Root returns the key at the root, ok is false for an empty tree.
func (t *Tree) Root() (key int, ok bool) {
	if t == nil || t.root == nil {
		return 0, false
	}
	return t.root.key, true
}

// All returns an iterator over all keys in ascending order.
//
// All does not splay, the tree shape is unchanged. The tree must not
// be modified during the iteration, this includes [Tree.Search].
func (t *Tree) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if t == nil {
			return
		}

		var stack []*node
		n := t.root

		for n != nil || len(stack) > 0 {
			for ; n != nil; n = n.left {
				stack = append(stack, n)
			}

			// pop
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(n.key) {
				return
			}
			n = n.right
		}
	}
}

// Keys returns all keys in ascending order, without splaying.
func (t *Tree) Keys() []int {
	keys := make([]int, 0, t.Len())
	for key := range t.All() {
		keys = append(keys, key)
	}
	return keys
}
