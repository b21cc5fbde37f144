// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

// node is a single stored key.
//
// The children are owned by the node, the parent is a back-reference
// used for the walk toward the root and for the left/right classification
// during splaying.
type node struct {
	key    int
	left   *node
	right  *node
	parent *node
}

// isLeftChild reports whether n hangs in the left slot of its parent.
// The root is neither a left nor a right child.
func (n *node) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// setParent is nil safe, children are optional.
func (n *node) setParent(p *node) {
	if n != nil {
		n.parent = p
	}
}

// maxNode returns the rightmost node of the subtree rooted at n.
func (n *node) maxNode() *node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// clear releases all outgoing references of a removed node.
func (n *node) clear() {
	n.left, n.right, n.parent = nil, nil, nil
}

// replaceChild hangs y into the slot of x below x's parent,
// or makes y the tree root if x was the root.
func (t *Tree) replaceChild(x, y *node) {
	p := x.parent
	y.parent = p

	switch {
	case p == nil:
		t.root = y
	case p.left == x:
		p.left = y
	default:
		p.right = y
	}
}

// rotateLeft promotes x.right into the position of x.
//
//	    x              y
//	   / \            / \
//	  a   y    =>    x   c
//	     / \        / \
//	    b   c      a   b
func (t *Tree) rotateLeft(x *node) {
	y := x.right
	if y == nil {
		panic("logic error, rotateLeft without right child")
	}

	t.replaceChild(x, y)

	x.right = y.left
	x.right.setParent(x)

	y.left = x
	x.parent = y
}

// rotateRight promotes x.left into the position of x, mirror of rotateLeft.
//
//	      x          y
//	     / \        / \
//	    y   c  =>  a   x
//	   / \            / \
//	  a   b          b   c
func (t *Tree) rotateRight(x *node) {
	y := x.left
	if y == nil {
		panic("logic error, rotateRight without left child")
	}

	t.replaceChild(x, y)

	x.left = y.right
	x.left.setParent(x)

	y.right = x
	x.parent = y
}

// rotateUp lifts n one level by rotating at its parent.
func (t *Tree) rotateUp(n *node) {
	if n.isLeftChild() {
		t.rotateRight(n.parent)
		return
	}
	t.rotateLeft(n.parent)
}

// splay moves n to the root of t.
//
// Every step is classified by the child sides of n and its parent:
//
//	zig:     no grandparent, one rotation at the parent
//	zig-zig: same sides, rotate at the grandparent, then at the parent
//	zig-zag: opposite sides, rotate at the parent, then at the grandparent
//
// Each step lowers the depth of n by one or two, the loop stops
// when n has no parent.
func (t *Tree) splay(n *node) {
	for n.parent != nil {
		p := n.parent
		g := p.parent

		switch {
		case g == nil:
			// zig
			t.rotateUp(n)

		case n.isLeftChild() == p.isLeftChild():
			// zig-zig, p moves up first, then n above p
			t.rotateUp(p)
			t.rotateUp(n)

		default:
			// zig-zag, n moves up twice in opposite directions
			t.rotateUp(n)
			t.rotateUp(n)
		}
	}
}
