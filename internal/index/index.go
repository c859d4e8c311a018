// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements an in-memory sorted index of string keys.
package index

import (
	"slices"
	"sort"
	"strings"
)

type item[V any] struct {
	key   string
	value V
}

// Index is a sorted array index supporting exact and prefix lookups. Values
// with equal keys keep the order in which they were given.
type Index[V any] struct {
	items []item[V]
}

// New creates an index over values using key to compute each value's key.
func New[V any](values []V, key func(V) string) *Index[V] {
	items := make([]item[V], 0, len(values))
	for _, v := range values {
		items = append(items, item[V]{key: key(v), value: v})
	}
	slices.SortStableFunc(items, func(a, b item[V]) int {
		return strings.Compare(a.key, b.key)
	})

	return &Index[V]{
		items: items,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Search returns the values whose key equals query.
func (idx *Index[V]) Search(query string) []V {
	i := sort.Search(len(idx.items), func(i int) bool {
		return idx.items[i].key >= query
	})

	var values []V
	for ; i < len(idx.items) && idx.items[i].key == query; i++ {
		values = append(values, idx.items[i].value)
	}
	return values
}

// Prefix returns the values whose key starts with prefix, ordered by key.
func (idx *Index[V]) Prefix(prefix string) []V {
	i := sort.Search(len(idx.items), func(i int) bool {
		return idx.items[i].key >= prefix
	})

	var values []V
	for ; i < len(idx.items) && strings.HasPrefix(idx.items[i].key, prefix); i++ {
		values = append(values, idx.items[i].value)
	}
	return values
}
