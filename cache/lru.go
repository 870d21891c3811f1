// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"github.com/bitmark-inc/ledgerd/counter"
)

// marks the end of a list
const none = int32(-1)

type slot[V any] struct {
	key   uint64
	value V
	prev  int32
	next  int32
}

// Stats - cumulative lookup results
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Ratio - hit percentage, zero when nothing was looked up
func (s Stats) Ratio() float64 {
	total := s.Hits + s.Misses
	if 0 == total {
		return 0
	}
	return 100 * float64(s.Hits) / float64(total)
}

// LRU - a pool of at most capacity values keyed by logical index
//
// not safe for concurrent use, the owner serialises access
type LRU[V any] struct {
	index map[uint64]int32
	slots []slot[V]
	head  int32
	tail  int32
	free  int32
	used  int32

	hits   counter.Counter
	misses counter.Counter
}

// New - create a pool, capacity zero gives a pool that never retains anything
func New[V any](capacity int) *LRU[V] {
	if capacity < 0 {
		capacity = 0
	}
	c := &LRU[V]{
		index: make(map[uint64]int32, capacity),
		slots: make([]slot[V], capacity),
	}
	c.reset()
	return c
}

func (c *LRU[V]) reset() {
	c.head = none
	c.tail = none
	c.free = none
	c.used = 0
}

// Capacity - maximum number of resident values
func (c *LRU[V]) Capacity() int {
	return len(c.slots)
}

// Len - number of resident values
func (c *LRU[V]) Len() int {
	return len(c.index)
}

// Get - fetch a value and make it the most recently used
func (c *LRU[V]) Get(key uint64) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		c.misses.Increment()
		var zero V
		return zero, false
	}
	c.hits.Increment()
	c.unlink(i)
	c.pushFront(i)
	return c.slots[i].value, true
}

// Peek - fetch a value without touching recency or statistics
func (c *LRU[V]) Peek(key uint64) (V, bool) {
	i, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.slots[i].value, true
}

// Put - insert or replace a value as most recently used, evicting the
// least recently used value when full
func (c *LRU[V]) Put(key uint64, value V) {
	if 0 == len(c.slots) {
		return
	}
	if i, ok := c.index[key]; ok {
		c.slots[i].value = value
		c.unlink(i)
		c.pushFront(i)
		return
	}

	i := c.allocate()
	c.slots[i].key = key
	c.slots[i].value = value
	c.index[key] = i
	c.pushFront(i)
}

// Remove - drop a value regardless of its recency
func (c *LRU[V]) Remove(key uint64) bool {
	i, ok := c.index[key]
	if !ok {
		return false
	}
	c.release(i)
	return true
}

// Clear - drop all values, statistics are kept
func (c *LRU[V]) Clear() {
	var zero V
	for i := range c.slots {
		c.slots[i].value = zero
	}
	c.index = make(map[uint64]int32, len(c.slots))
	c.reset()
}

// Keys - resident keys, most recently used first
func (c *LRU[V]) Keys() []uint64 {
	keys := make([]uint64, 0, len(c.index))
	for i := c.head; none != i; i = c.slots[i].next {
		keys = append(keys, c.slots[i].key)
	}
	return keys
}

// Stats - cumulative hit and miss counts
func (c *LRU[V]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Uint64(),
		Misses: c.misses.Uint64(),
	}
}

// get a slot for a new value: free list, then unused arena, then evict the tail
func (c *LRU[V]) allocate() int32 {
	if none != c.free {
		i := c.free
		c.free = c.slots[i].next
		return i
	}
	if int(c.used) < len(c.slots) {
		i := c.used
		c.used += 1
		return i
	}
	i := c.tail
	delete(c.index, c.slots[i].key)
	c.unlink(i)
	return i
}

// return a slot to the free list
func (c *LRU[V]) release(i int32) {
	var zero V
	delete(c.index, c.slots[i].key)
	c.unlink(i)
	c.slots[i].value = zero
	c.slots[i].next = c.free
	c.free = i
}

func (c *LRU[V]) unlink(i int32) {
	s := &c.slots[i]
	if none == s.prev {
		c.head = s.next
	} else {
		c.slots[s.prev].next = s.next
	}
	if none == s.next {
		c.tail = s.prev
	} else {
		c.slots[s.next].prev = s.prev
	}
	s.prev = none
	s.next = none
}

func (c *LRU[V]) pushFront(i int32) {
	s := &c.slots[i]
	s.prev = none
	s.next = c.head
	if none != c.head {
		c.slots[c.head].prev = i
	}
	c.head = i
	if none == c.tail {
		c.tail = i
	}
}
