// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Tree {
	tree := new(Tree)
	for _, key := range []int{5, 3, 8, 1, 4} {
		tree.Insert(key)
	}
	// 4(1(-,3),8(5,-))
	return tree
}

func TestDump(t *testing.T) {
	t.Parallel()

	want := rec(4,
		rec(1, nil, rec(3, nil, nil)),
		rec(8, rec(5, nil, nil), nil),
	)

	got := sampleTree().Dump()
	assert.Equal(t, want, got)
	assert.Nil(t, got.ParentKey)
	require.NotNil(t, got.Left.Right.ParentKey)
	assert.Equal(t, 1, *got.Left.Right.ParentKey)
}

func TestDumpDoesNotSplay(t *testing.T) {
	t.Parallel()

	tree := sampleTree()
	before := shape(tree.root)
	_ = tree.Dump()
	_, _ = tree.MarshalJSON()

	assert.Equal(t, before, shape(tree.root))
}

func TestJsonEmpty(t *testing.T) {
	t.Parallel()

	buf, err := json.Marshal(new(Tree))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(buf))
}

func TestJsonSample(t *testing.T) {
	t.Parallel()

	buf, err := json.Marshal(sampleTree())
	require.NoError(t, err)

	/*
		{
		  "key": 4,
		  "left": {
		    "key": 1,
		    "right": { "key": 3, "parentKey": 1 },
		    "parentKey": 4
		  },
		  "right": {
		    "key": 8,
		    "left": { "key": 5, "parentKey": 8 },
		    "parentKey": 4
		  }
		}
	*/
	want := `{"key":4,"left":{"key":1,"right":{"key":3,"parentKey":1},"parentKey":4},"right":{"key":8,"left":{"key":5,"parentKey":8},"parentKey":4}}`
	assert.Equal(t, want, string(buf))
}

func TestEmptyRecordRoundTrip(t *testing.T) {
	t.Parallel()

	empty := new(Tree)
	require.Nil(t, empty.Dump())

	tree, err := FromDump(empty.Dump())
	require.NoError(t, err)
	assert.Equal(t, 0, tree.Len())

	buf, err := json.Marshal(empty)
	require.NoError(t, err)

	got := sampleTree()
	require.NoError(t, json.Unmarshal(buf, got))
	assert.Equal(t, 0, got.Len())
	assert.Nil(t, got.Dump())
}

func TestJsonRoundTrip(t *testing.T) {
	t.Parallel()

	orig := sampleTree()
	buf, err := json.Marshal(orig)
	require.NoError(t, err)

	got := new(Tree)
	require.NoError(t, json.Unmarshal(buf, got))

	assert.Equal(t, shape(orig.root), shape(got.root))
	assert.Equal(t, orig.Len(), got.Len())
	checkInvariants(t, got)

	// the rebuilt tree is fully functional
	require.True(t, got.Delete(4))
	assert.Equal(t, []int{1, 3, 5, 8}, got.Keys())
	checkInvariants(t, got)
}

func TestUnmarshalEmpty(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`{}`, `null`, ` { } `} {
		tree := sampleTree()
		require.NoError(t, json.Unmarshal([]byte(in), tree), in)
		assert.Equal(t, 0, tree.Len(), in)
		assert.Nil(t, tree.root, in)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{"not an object", `[1,2]`},
		{"wrong key type", `{"key":"one"}`},
		{"root with parent", `{"key":1,"parentKey":2}`},
		{"missing parentKey", `{"key":2,"left":{"key":1}}`},
		{"wrong parentKey", `{"key":2,"left":{"key":1,"parentKey":3}}`},
		{"order violated", `{"key":2,"left":{"key":3,"parentKey":2}}`},
		{"duplicate key", `{"key":2,"right":{"key":2,"parentKey":2}}`},
		{"unknown field only", `{"foo":1}`},
		{"root without key", `{"left":{"key":-1,"parentKey":0}}`},
		{"child without key", `{"key":1,"right":{"parentKey":1}}`},
		{"misspelled child field", `{"key":1,"lfet":{"key":0,"parentKey":1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tree := sampleTree()
			err := json.Unmarshal([]byte(tt.in), tree)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)

			// unchanged on error
			assert.Equal(t, 5, tree.Len())
		})
	}
}

func TestFromDump(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()
		tree, err := FromDump(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, tree.Len())
	})

	t.Run("shape kept", func(t *testing.T) {
		t.Parallel()
		// a right spine, FromDump must not rebalance
		d := rec(1, nil, rec(2, nil, rec(3, nil, rec(4, nil, nil))))
		tree, err := FromDump(d)
		require.NoError(t, err)

		assert.Equal(t, "1(-,2(-,3(-,4)))", shape(tree.root))
		assert.Equal(t, 4, tree.Len())
		assert.Equal(t, d, tree.Dump())
		checkInvariants(t, tree)

		require.True(t, tree.Search(4))
		assert.Equal(t, "4(1(-,3(2,-)),-)", shape(tree.root))
		checkInvariants(t, tree)
	})

	t.Run("deep order violation", func(t *testing.T) {
		t.Parallel()
		// 6 is in the left subtree of 5
		d := rec(5, rec(2, nil, rec(6, nil, nil)), nil)
		_, err := FromDump(d)
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
	})
}
