// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package golden

import (
	"fmt"
	"slices"
)

// GoldSet is a simple and slow ordered set of ints, implemented as a
// sorted slice, as a golden reference for the splay tree.
type GoldSet []int

func (s GoldSet) String() string {
	return fmt.Sprint([]int(s))
}

// Insert adds key, reports false if key was already present.
func (s *GoldSet) Insert(key int) bool {
	i, found := slices.BinarySearch(*s, key)
	if found {
		return false
	}
	*s = slices.Insert(*s, i, key)
	return true
}

// Delete removes key, reports false if key was missing.
func (s *GoldSet) Delete(key int) (exists bool) {
	i, found := slices.BinarySearch(*s, key)
	if !found {
		return false
	}
	*s = slices.Delete(*s, i, i+1)
	return true
}

func (s GoldSet) Contains(key int) bool {
	_, found := slices.BinarySearch(s, key)
	return found
}

func (s GoldSet) Len() int {
	return len(s)
}

// Keys returns a copy of all keys in ascending order, never nil.
func (s GoldSet) Keys() []int {
	keys := make([]int, len(s))
	copy(keys, s)
	return keys
}
