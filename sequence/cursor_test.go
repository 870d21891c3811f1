// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/sequence"
)

// a store holding "a", "b", "c", "d"
func letters(t *testing.T) *sequence.Store[string] {
	s := open(t, newTestFiles(t), 2)
	for _, r := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Append(r))
	}
	return s
}

func record(t *testing.T, c *sequence.Cursor[string]) string {
	r, err := c.Record()
	require.NoError(t, err, "position: %d", c.Position())
	return r
}

func TestCursorSteps(t *testing.T) {
	s := letters(t)
	defer s.Close()

	c := s.NewCursor()
	require.True(t, c.Valid())
	assert.Equal(t, "a", record(t, c))

	for _, expected := range []string{"b", "c", "d"} {
		require.True(t, c.Next())
		assert.Equal(t, expected, record(t, c))
	}
	assert.False(t, c.Next(), "past the end")
	_, err := c.Record()
	assert.Equal(t, fault.ErrIndexOutOfRange, err)

	for _, expected := range []string{"d", "c", "b", "a"} {
		require.True(t, c.Prev())
		assert.Equal(t, expected, record(t, c))
	}
	assert.False(t, c.Prev(), "before the start")
	_, err = c.Record()
	assert.Equal(t, fault.ErrIndexOutOfRange, err)

	require.True(t, c.Next(), "step back in from before the start")
	assert.Equal(t, "a", record(t, c))
}

func TestCursorAdvance(t *testing.T) {
	s := letters(t)
	defer s.Close()

	c := s.NewCursor()
	require.True(t, c.Advance(2))
	assert.Equal(t, "c", record(t, c))
	require.True(t, c.Advance(-2))
	assert.Equal(t, "a", record(t, c))

	assert.False(t, c.Advance(10))
	assert.Equal(t, uint64(10), c.Position())
	require.True(t, c.Advance(-7))
	assert.Equal(t, "d", record(t, c))

	assert.False(t, c.Advance(-20))
	require.True(t, c.Next())
	assert.Equal(t, "a", record(t, c))
}

func TestCursorSaturates(t *testing.T) {
	s := letters(t)
	defer s.Close()

	c := s.NewCursor()
	assert.False(t, c.Advance(math.MaxInt64))
	assert.False(t, c.Advance(2), "must not wrap to the start")
	assert.Equal(t, uint64(1)<<62, c.Position())
	assert.False(t, c.Next())
	_, err := c.Record()
	assert.Equal(t, fault.ErrIndexOutOfRange, err)

	assert.False(t, c.Seek(math.MaxUint64))
	assert.False(t, c.Prev())

	assert.False(t, c.Advance(math.MinInt64))
	assert.False(t, c.Advance(math.MinInt64))
	require.True(t, c.Next())
	assert.Equal(t, "a", record(t, c))
}

func TestCursorOrdering(t *testing.T) {
	s := letters(t)
	defer s.Close()

	c1 := s.NewCursor()
	c2 := s.NewCursor()
	c1.Seek(1)
	c2.Seek(3)

	assert.Equal(t, -1, c1.Compare(c2))
	assert.Equal(t, 1, c2.Compare(c1))
	assert.False(t, c1.Equal(c2))

	c2.Prev()
	c2.Prev()
	assert.Equal(t, 0, c1.Compare(c2))
	assert.True(t, c1.Equal(c2))

	other := letters(t)
	defer other.Close()
	c3 := other.NewCursor()
	c3.Seek(1)
	assert.Equal(t, 0, c1.Compare(c3))
	assert.False(t, c1.Equal(c3), "different stores")
}

func TestCursorAfterTruncate(t *testing.T) {
	s := letters(t)
	defer s.Close()

	c := s.NewCursor()
	require.True(t, c.Seek(3))
	assert.Equal(t, "d", record(t, c))

	require.NoError(t, s.TruncateLast())
	assert.False(t, c.Valid())
	_, err := c.Record()
	assert.Equal(t, fault.ErrIndexOutOfRange, err)

	require.True(t, c.Prev())
	assert.Equal(t, "c", record(t, c))

	require.NoError(t, s.Append("e"))
	require.True(t, c.Next())
	assert.Equal(t, "e", record(t, c), "position sees the replacement record")

	require.NoError(t, s.Clear())
	assert.False(t, c.Valid())
	_, err = c.Record()
	assert.Equal(t, fault.ErrIndexOutOfRange, err)
	assert.False(t, c.Seek(0))
}

func TestNilCursor(t *testing.T) {
	s := letters(t)
	defer s.Close()

	var c *sequence.Cursor[string]
	assert.False(t, c.Valid())
	assert.False(t, c.Seek(1))
	assert.False(t, c.Advance(1))
	assert.False(t, c.Next())
	assert.False(t, c.Prev())
	assert.Equal(t, uint64(0), c.Position())

	_, err := c.Record()
	assert.Equal(t, fault.ErrInvalidCursor, err)

	_, err = (&sequence.Cursor[string]{}).Record()
	assert.Equal(t, fault.ErrInvalidCursor, err, "zero cursor")

	live := s.NewCursor()
	assert.Equal(t, 0, c.Compare(nil))
	assert.Equal(t, -1, c.Compare(live))
	assert.Equal(t, 1, live.Compare(c))
	assert.True(t, c.Equal(nil))
	assert.False(t, c.Equal(live))
	assert.False(t, live.Equal(c))
}
