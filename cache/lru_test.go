// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/cache"
)

func TestPutGet(t *testing.T) {
	c := cache.New[string](3)

	c.Put(1, "one")
	c.Put(2, "two")
	c.Put(3, "three")

	v, ok := c.Get(2)
	assert.True(t, ok, "key 2 missing")
	assert.Equal(t, "two", v, "wrong value")

	_, ok = c.Get(9)
	assert.False(t, ok, "key 9 should not exist")

	assert.Equal(t, 3, c.Len(), "wrong length")
	assert.Equal(t, []uint64{2, 3, 1}, c.Keys(), "wrong recency order")
	assert.Equal(t, cache.Stats{Hits: 1, Misses: 1}, c.Stats(), "wrong stats")
}

func TestEvictLeastRecentlyUsed(t *testing.T) {
	c := cache.New[int](3)

	c.Put(10, 10)
	c.Put(11, 11)
	c.Put(12, 12)

	// touch the oldest so 11 becomes the eviction candidate
	_, _ = c.Get(10)
	c.Put(13, 13)

	_, ok := c.Peek(11)
	assert.False(t, ok, "11 should have been evicted")
	assert.Equal(t, []uint64{13, 10, 12}, c.Keys(), "wrong recency order")

	c.Put(14, 14)
	_, ok = c.Peek(12)
	assert.False(t, ok, "12 should have been evicted")
	assert.Equal(t, 3, c.Len(), "length exceeds capacity")
}

func TestReplace(t *testing.T) {
	c := cache.New[string](2)
	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(1, "A")

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []uint64{1, 2}, c.Keys())
	v, _ := c.Peek(1)
	assert.Equal(t, "A", v)
}

func TestRemove(t *testing.T) {
	c := cache.New[int](3)
	c.Put(1, 1)
	c.Put(2, 2)
	c.Put(3, 3)

	assert.True(t, c.Remove(2), "remove existing")
	assert.False(t, c.Remove(2), "remove twice")
	assert.Equal(t, []uint64{3, 1}, c.Keys())

	// freed slot is reused without evicting
	c.Put(4, 4)
	assert.Equal(t, []uint64{4, 3, 1}, c.Keys())

	assert.True(t, c.Remove(1), "remove tail")
	assert.True(t, c.Remove(4), "remove head")
	assert.Equal(t, []uint64{3}, c.Keys())
}

func TestClear(t *testing.T) {
	c := cache.New[int](2)
	c.Put(1, 1)
	_, _ = c.Get(1)
	_, _ = c.Get(2)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Keys())
	assert.Equal(t, cache.Stats{Hits: 1, Misses: 1}, c.Stats(), "stats must survive clear")

	c.Put(5, 5)
	c.Put(6, 6)
	c.Put(7, 7)
	assert.Equal(t, []uint64{7, 6}, c.Keys())
}

func TestZeroCapacity(t *testing.T) {
	c := cache.New[int](0)
	c.Put(1, 1)
	_, ok := c.Get(1)
	assert.False(t, ok, "zero capacity must not retain")
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, uint64(1), c.Stats().Misses)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, float64(0), cache.Stats{}.Ratio(), "empty stats must not divide by zero")
	assert.Equal(t, float64(75), cache.Stats{Hits: 3, Misses: 1}.Ratio())
}

// random operations never exceed capacity and agree with a plain map
func TestBoundedRandom(t *testing.T) {
	const capacity = 8
	c := cache.New[uint64](capacity)
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i += 1 {
		key := uint64(r.Intn(32))
		switch r.Intn(3) {
		case 0:
			c.Put(key, key*3)
		case 1:
			if v, ok := c.Get(key); ok && v != key*3 {
				t.Fatalf("key: %d  value: %d", key, v)
			}
		case 2:
			c.Remove(key)
		}
		if c.Len() > capacity {
			t.Fatalf("length: %d exceeds capacity: %d", c.Len(), capacity)
		}
		if len(c.Keys()) != c.Len() {
			t.Fatalf("recency list length: %d  index length: %d", len(c.Keys()), c.Len())
		}
	}
}
