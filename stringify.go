// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xlab/treeprint"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Tree.Fprint].
func (t *Tree) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical diagram of the tree shape,
// just a wrapper for [Tree.Fprint].
// If Fprint returns an error, String panics.
func (t *Tree) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical diagram of the tree shape to w,
// the root on top, children tagged with [L] or [R].
// An empty tree writes nothing.
//
//	5
//	├── [L]  3
//	│   ├── [L]  1
//	│   └── [R]  4
//	└── [R]  8
func (t *Tree) Fprint(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("nil writer")
	}

	if t == nil || t.root == nil {
		return nil
	}

	pt := treeprint.NewWithRoot(strconv.Itoa(t.root.key))
	t.root.fprintRec(pt)

	_, err := io.WriteString(w, pt.String())
	return err
}

// fprintRec adds the children of n to branch.
func (n *node) fprintRec(branch treeprint.Tree) {
	for _, kid := range []struct {
		side string
		n    *node
	}{
		{"L", n.left},
		{"R", n.right},
	} {
		if kid.n == nil {
			continue
		}

		label := strconv.Itoa(kid.n.key)

		// leaf
		if kid.n.left == nil && kid.n.right == nil {
			branch.AddMetaNode(kid.side, label)
			continue
		}

		kid.n.fprintRec(branch.AddMetaBranch(kid.side, label))
	}
}
