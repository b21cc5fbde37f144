// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// DumpNode is a read-only snapshot of one node and its subtrees.
//
// ParentKey holds the key of the parent node as seen through the
// parent back-reference, it is nil for the root. Comparing it with the
// enclosing record checks the parent links from outside the package.
type DumpNode struct {
	Key       int       `json:"key"`
	Left      *DumpNode `json:"left,omitempty"`
	Right     *DumpNode `json:"right,omitempty"`
	ParentKey *int      `json:"parentKey,omitempty"`
}

// ErrInvalidSnapshot is returned by [FromDump] and [Tree.UnmarshalJSON]
// for records that do not describe a valid splay tree.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Dump returns a snapshot of the tree structure, rooted at the tree root.
// Dump does not splay.
//
// The empty tree is the empty record, returned as nil. [Tree.MarshalJSON]
// encodes it as {} and [FromDump] turns nil back into an empty tree.
func (t *Tree) Dump() *DumpNode {
	if t == nil || t.root == nil {
		return nil
	}
	return t.root.snapshotRec()
}

// snapshotRec, rec-descent the tree.
func (n *node) snapshotRec() *DumpNode {
	d := &DumpNode{Key: n.key}

	if n.parent != nil {
		pk := n.parent.key
		d.ParentKey = &pk
	}

	if n.left != nil {
		d.Left = n.left.snapshotRec()
	}
	if n.right != nil {
		d.Right = n.right.snapshotRec()
	}

	return d
}

// MarshalJSON implements the [json.Marshaler] interface.
// The tree is encoded as the nested [DumpNode] records,
// an empty tree as the empty object {}.
func (t *Tree) MarshalJSON() ([]byte, error) {
	d := t.Dump()
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

// snapshotRecord is the strict decoding form of [DumpNode],
// a missing key must be detected.
type snapshotRecord struct {
	Key       *int            `json:"key"`
	Left      *snapshotRecord `json:"left"`
	Right     *snapshotRecord `json:"right"`
	ParentKey *int            `json:"parentKey"`
}

// isEmpty reports the empty object {}.
func (r *snapshotRecord) isEmpty() bool {
	return r.Key == nil && r.Left == nil && r.Right == nil && r.ParentKey == nil
}

// toDumpNode converts the decoded records, every record needs a key.
func (r *snapshotRecord) toDumpNode() (*DumpNode, error) {
	if r.Key == nil {
		return nil, fmt.Errorf("%w: record without key", ErrInvalidSnapshot)
	}

	d := &DumpNode{Key: *r.Key, ParentKey: r.ParentKey}

	var err error
	if r.Left != nil {
		if d.Left, err = r.Left.toDumpNode(); err != nil {
			return nil, err
		}
	}
	if r.Right != nil {
		if d.Right, err = r.Right.toDumpNode(); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface,
// the input is validated by [FromDump].
//
// Unknown fields and records without key are rejected,
// the empty object {} and null decode to the empty tree.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var r *snapshotRecord

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	var d *DumpNode
	if r != nil && !r.isEmpty() {
		var err error
		if d, err = r.toDumpNode(); err != nil {
			return err
		}
	}

	tree, err := FromDump(d)
	if err != nil {
		return err
	}

	*t = *tree
	return nil
}

// FromDump builds a tree with the given structure, the shape is kept as is.
// A nil record gives an empty tree.
//
// Every ParentKey must match the enclosing record, the root has none,
// and the keys must be in strict binary search tree order.
func FromDump(d *DumpNode) (*Tree, error) {
	t := new(Tree)
	if d == nil {
		return t, nil
	}

	if d.ParentKey != nil {
		return nil, fmt.Errorf("%w: root %d has parentKey %d", ErrInvalidSnapshot, d.Key, *d.ParentKey)
	}

	root, size, err := buildRec(d, nil)
	if err != nil {
		return nil, err
	}

	t.root = root
	t.size = size

	if err := t.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	return t, nil
}

// buildRec creates the nodes for d below parent.
func buildRec(d *DumpNode, parent *node) (*node, int, error) {
	n := &node{key: d.Key, parent: parent}
	size := 1

	for _, kid := range []struct {
		rec  *DumpNode
		slot **node
	}{
		{d.Left, &n.left},
		{d.Right, &n.right},
	} {
		if kid.rec == nil {
			continue
		}

		if kid.rec.ParentKey == nil || *kid.rec.ParentKey != d.Key {
			return nil, 0, fmt.Errorf("%w: node %d has wrong parentKey, want %d",
				ErrInvalidSnapshot, kid.rec.Key, d.Key)
		}

		child, childSize, err := buildRec(kid.rec, n)
		if err != nil {
			return nil, 0, err
		}

		*kid.slot = child
		size += childSize
	}

	return n, size, nil
}
