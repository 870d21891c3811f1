// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/util"
)

func TestPackUnpack(t *testing.T) {
	p := util.PackBuffer(nil)
	p = p.AppendUint64(300)
	p = p.AppendBytes([]byte("hello"))
	p = p.AppendFixed([]byte{1, 2, 3, 4})
	p = p.AppendUint64(7)

	u := util.NewUnpackBuffer(p)

	n, err := u.Uint64("n")
	require.NoError(t, err)
	assert.Equal(t, uint64(300), n)

	b, err := u.Bytes("b")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), b)

	f, err := u.Fixed("f", 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, f)

	v, err := u.Uint8("v")
	require.NoError(t, err)
	assert.Equal(t, uint8(7), v)

	assert.Equal(t, len(p), u.Consumed(), "consumed")
	assert.Equal(t, 0, u.Remaining(), "remaining")
}

func TestUnpackTruncated(t *testing.T) {
	p := util.PackBuffer(nil).AppendBytes([]byte("hello"))

	u := util.NewUnpackBuffer(p[:len(p)-1])
	_, err := u.Bytes("b")
	assert.True(t, fault.IsErrRecord(err), "expected corrupt record, got: %v", err)

	u = util.NewUnpackBuffer(nil)
	_, err = u.Uint64("n")
	assert.True(t, fault.IsErrRecord(err), "expected corrupt record, got: %v", err)
}

func TestUnpackOutOfRange(t *testing.T) {
	p := util.PackBuffer(nil).AppendUint64(256).AppendUint64(1000)

	u := util.NewUnpackBuffer(p)
	_, err := u.Uint8("byte")
	assert.True(t, fault.IsErrRecord(err))

	_, err = u.Count("items", 999)
	assert.True(t, fault.IsErrRecord(err))
}

func TestUnreadSkip(t *testing.T) {
	p := util.PackBuffer(nil).AppendUint64(5).AppendFixed([]byte{9, 8, 7})

	u := util.NewUnpackBuffer(p)
	_, err := u.Uint64("n")
	require.NoError(t, err)

	assert.Equal(t, []byte{9, 8, 7}, u.Unread())
	assert.NoError(t, u.Skip("fixed", 2))
	assert.Equal(t, []byte{7}, u.Unread())

	err = u.Skip("fixed", 2)
	assert.True(t, fault.IsErrRecord(err))
	assert.Equal(t, 1, u.Remaining(), "failed skip must not consume")
}
