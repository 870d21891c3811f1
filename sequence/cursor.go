// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

import (
	"github.com/bitmark-inc/ledgerd/fault"
)

// positions saturate at this ceiling and at -1
const maximumPosition = int64(1) << 62

// Cursor - a position in a store that produces records on demand
//
// the position is checked against the live length on every access
// so a cursor left beyond the end by TruncateLast or Clear reports
// fault.ErrIndexOutOfRange instead of returning stale data
//
// a nil cursor is never valid and sorts before every other cursor
type Cursor[T any] struct {
	store    *Store[T]
	position int64
}

// NewCursor - cursor at index zero
func (s *Store[T]) NewCursor() *Cursor[T] {
	return &Cursor[T]{
		store: s,
	}
}

// Position - current logical index, only meaningful when Valid
func (c *Cursor[T]) Position() uint64 {
	if nil == c || c.position < 0 {
		return 0
	}
	return uint64(c.position)
}

// Valid - true if the position refers to a stored record
func (c *Cursor[T]) Valid() bool {
	if nil == c || nil == c.store {
		return false
	}
	return c.position >= 0 && uint64(c.position) < c.store.Len()
}

// Seek - move to an absolute index
func (c *Cursor[T]) Seek(i uint64) bool {
	if nil == c {
		return false
	}
	if i > uint64(maximumPosition) {
		i = uint64(maximumPosition)
	}
	c.position = int64(i)
	return c.Valid()
}

// Advance - move by n, negative moves backwards
func (c *Cursor[T]) Advance(n int64) bool {
	if nil == c {
		return false
	}
	switch {
	case n > 0 && c.position > maximumPosition-n:
		c.position = maximumPosition
	case n < 0 && c.position < -1-n:
		c.position = -1
	default:
		c.position += n
	}
	return c.Valid()
}

// Next - step forward
func (c *Cursor[T]) Next() bool {
	return c.Advance(1)
}

// Prev - step backward
func (c *Cursor[T]) Prev() bool {
	return c.Advance(-1)
}

// Record - the record at the current position
func (c *Cursor[T]) Record() (T, error) {
	if nil == c || nil == c.store {
		var zero T
		return zero, fault.ErrInvalidCursor
	}
	if !c.Valid() {
		var zero T
		return zero, fault.ErrIndexOutOfRange
	}
	return c.store.Get(uint64(c.position))
}

// Compare - order by logical index: -1, 0, +1
func (c *Cursor[T]) Compare(other *Cursor[T]) int {
	switch {
	case nil == c && nil == other:
		return 0
	case nil == c:
		return -1
	case nil == other:
		return 1
	case c.position < other.position:
		return -1
	case c.position > other.position:
		return 1
	default:
		return 0
	}
}

// Equal - same store and same position
func (c *Cursor[T]) Equal(other *Cursor[T]) bool {
	if nil == c || nil == other {
		return c == other
	}
	return c.store == other.store && c.position == other.position
}
