// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/storage"
)

func TestPendingWritesVisible(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)

	trx.PutN(p, []byte("n"), 42)
	n, found, err := trx.GetN(p, []byte("n"))
	assert.NoError(t, err)
	assert.True(t, found, "pending put must be visible")
	assert.Equal(t, uint64(42), n)

	// cursors only see committed data
	data, err := p.NewFetchCursor().Fetch(10)
	assert.NoError(t, err)
	assert.Empty(t, data)

	require.NoError(t, trx.Commit())

	trx, err = storage.NewDBTransaction()
	require.NoError(t, err)
	trx.Delete(p, []byte("n"))
	found, err = trx.Has(p, []byte("n"))
	assert.NoError(t, err)
	assert.False(t, found, "pending delete must hide committed data")
	value, err := trx.Get(p, []byte("n"))
	assert.NoError(t, err)
	assert.Nil(t, value)

	trx.Abort()

	n, found, err = p.GetN([]byte("n"))
	assert.NoError(t, err)
	assert.True(t, found, "aborted delete must not apply")
	assert.Equal(t, uint64(42), n)
}

func TestPutNB(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)
	trx.PutNB(p, []byte("nb"), 7, []byte{0xaa, 0xbb})
	require.NoError(t, trx.Commit())

	n, rest, found, err := p.GetNB([]byte("nb"))
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(7), n)
	assert.Equal(t, []byte{0xaa, 0xbb}, rest)

	// too short for the count
	trx, err = storage.NewDBTransaction()
	require.NoError(t, err)
	trx.Put(p, []byte("short"), []byte{1, 2})
	require.NoError(t, trx.Commit())

	_, found, err = p.GetN([]byte("short"))
	assert.False(t, found)
	assert.True(t, errors.Is(err, fault.ErrCorruptRecord), "error: %v", err)
}

func TestSingleTransaction(t *testing.T) {
	setup(t)
	defer teardown()

	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionInUse, err)

	assert.Equal(t, fault.ErrTransactionInUse, storage.Reset())

	require.NoError(t, trx.Commit())
	assert.Equal(t, fault.ErrTransactionNotStarted, trx.Commit())

	trx, err = storage.NewDBTransaction()
	assert.NoError(t, err)
	trx.Abort()
}

func TestReadOnly(t *testing.T) {
	database := setup(t)
	defer teardown()

	loadTestData(t)
	storage.Finalise()

	require.NoError(t, storage.Initialise(database, storage.ReadOnly))
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrReadOnly, err)
	assert.Equal(t, fault.ErrReadOnly, storage.Reset())
}

func TestReset(t *testing.T) {
	setup(t)
	defer teardown()

	loadTestData(t)
	trx, err := storage.NewDBTransaction()
	require.NoError(t, err)
	trx.PutN(storage.Pool.Meta, storage.HeightKey, 5)
	require.NoError(t, trx.Commit())

	require.NoError(t, storage.Reset())

	data, err := storage.Pool.TestData.NewFetchCursor().Fetch(10)
	assert.NoError(t, err)
	assert.Empty(t, data)

	_, found, err := storage.Pool.Meta.GetN(storage.HeightKey)
	assert.NoError(t, err)
	assert.False(t, found)

	// still usable
	loadTestData(t)
}

func TestLifecycle(t *testing.T) {
	assert.False(t, storage.IsInitialised())

	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrNotInitialised, err)
	assert.Equal(t, fault.ErrNotInitialised, storage.Reset())

	database := setup(t)
	assert.True(t, storage.IsInitialised())
	assert.Equal(t, fault.ErrAlreadyInitialised, storage.Initialise(database, storage.ReadWrite))

	teardown()
	assert.False(t, storage.IsInitialised())
}
