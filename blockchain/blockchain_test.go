// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/blockchain"
	"github.com/bitmark-inc/ledgerd/blockrecord"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/merkle"
	"github.com/bitmark-inc/ledgerd/policy"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

func TestEmptyChain(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	assert.Equal(t, uint64(0), blockchain.Height())
	assert.True(t, blockchain.LastDigest().IsZero())

	_, err := blockchain.GetBlock(0)
	assert.Equal(t, fault.ErrBlockNotFound, err)

	_, err = blockchain.PopBlock()
	assert.Equal(t, fault.ErrEmptyStore, err)

	n, err := blockchain.Verify()
	assert.NoError(t, err)
	assert.Equal(t, uint64(0), n)
}

func TestAddAndGet(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	entries := addBlocks(t, 5)

	assert.Equal(t, uint64(5), blockchain.Height())
	assert.Equal(t, digestOf(t, entries[4]), blockchain.LastDigest())

	for i, expected := range entries {
		entry, err := blockchain.GetBlock(uint64(i))
		assert.NoError(t, err, "block: %d", i)
		assert.Equal(t, expected, entry, "block: %d", i)

		entry, err = blockchain.GetBlockByDigest(digestOf(t, expected))
		assert.NoError(t, err, "block: %d", i)
		assert.Equal(t, expected, entry, "block: %d", i)
	}

	_, err := blockchain.GetBlock(5)
	assert.Equal(t, fault.ErrBlockNotFound, err)

	_, err = blockchain.GetBlockByDigest(merkle.NewDigest([]byte("no such block")))
	assert.Equal(t, fault.ErrBlockNotFound, err)
}

func TestGetTransaction(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	entries := addBlocks(t, 3)

	// base transaction
	baseID, err := entries[1].Block.BaseTransaction.ID()
	require.NoError(t, err)
	tx, height, err := blockchain.GetTransaction(baseID)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), height)
	assert.Equal(t, &entries[1].Block.BaseTransaction, tx)

	// block transaction
	tx, height, err = blockchain.GetTransaction(entries[2].Block.TransactionIDs[0])
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), height)
	assert.Equal(t, &entries[2].Transactions[0], tx)

	_, _, err = blockchain.GetTransaction(merkle.NewDigest([]byte("no such transaction")))
	assert.Equal(t, fault.ErrTransactionNotFound, err)
}

func TestKeyImages(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	addBlocks(t, 2)

	assert.True(t, blockchain.HaveKeyImage(transactionrecord.KeyImage{0}))
	assert.True(t, blockchain.HaveKeyImage(transactionrecord.KeyImage{1}))
	assert.False(t, blockchain.HaveKeyImage(transactionrecord.KeyImage{2}))
}

func TestRejectedBlocks(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	entries := addBlocks(t, 2)
	last := blockchain.LastDigest()

	tests := []struct {
		name  string
		entry *blockrecord.Entry
		err   error
	}{
		{"nil", nil, fault.ErrInvalidStructPointer},
		{"height", makeEntry(t, 3, last), fault.ErrBlockHeightMismatch},
		{"previous", makeEntry(t, 2, digestOf(t, entries[0])), fault.ErrPreviousBlockDigestMismatch},
		{"duplicate transaction", makeEntry(t, 2, last, spend(1, 101)), fault.ErrDuplicateTransaction},
		{"spent key image", makeEntry(t, 2, last, spend(1, 555)), fault.ErrKeyImageAlreadySpent},
		{"duplicate in block", makeEntry(t, 2, last, spend(9, 10), spend(9, 10)), fault.ErrDuplicateTransaction},
		{"double spend in block", makeEntry(t, 2, last, spend(9, 10), spend(9, 11)), fault.ErrKeyImageAlreadySpent},
		{"duplicate base", func() *blockrecord.Entry {
			e := makeEntry(t, 2, last)
			e.Block.BaseTransaction = coinbase(1)
			return e
		}(), fault.ErrDuplicateTransaction},
		{"version", func() *blockrecord.Entry {
			e := makeEntry(t, 2, last)
			e.Block.MajorVersion = 2
			return e
		}(), fault.ErrBlockVersionMismatch},
		{"transaction bodies", func() *blockrecord.Entry {
			e := makeEntry(t, 2, last, spend(9, 10))
			e.Transactions = nil
			return e
		}(), fault.ErrTransactionCountMismatch},
	}

	for _, item := range tests {
		err := blockchain.AddBlock(item.entry)
		assert.Equal(t, item.err, err, item.name)
		assert.Equal(t, uint64(2), blockchain.Height(), item.name)
		assert.Equal(t, last, blockchain.LastDigest(), item.name)
	}

	// a valid block is still accepted
	assert.NoError(t, blockchain.AddBlock(makeEntry(t, 2, last, spend(9, 10))))
}

func TestPopBlock(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	entries := addBlocks(t, 3)

	entry, err := blockchain.PopBlock()
	assert.NoError(t, err)
	assert.Equal(t, entries[2], entry)
	assert.Equal(t, uint64(2), blockchain.Height())
	assert.Equal(t, digestOf(t, entries[1]), blockchain.LastDigest())

	// lookups of the removed block are gone
	_, err = blockchain.GetBlockByDigest(digestOf(t, entries[2]))
	assert.Equal(t, fault.ErrBlockNotFound, err)
	_, _, err = blockchain.GetTransaction(entries[2].Block.TransactionIDs[0])
	assert.Equal(t, fault.ErrTransactionNotFound, err)
	assert.False(t, blockchain.HaveKeyImage(transactionrecord.KeyImage{2}))

	// and the same block can be added again
	assert.NoError(t, blockchain.AddBlock(entries[2]))
	assert.Equal(t, uint64(3), blockchain.Height())

	for i := 3; i > 0; i -= 1 {
		_, err := blockchain.PopBlock()
		assert.NoError(t, err)
	}
	assert.True(t, blockchain.LastDigest().IsZero())
	_, err = blockchain.PopBlock()
	assert.Equal(t, fault.ErrEmptyStore, err)
}

func TestReset(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	entries := addBlocks(t, 3)

	assert.NoError(t, blockchain.Reset())
	assert.Equal(t, uint64(0), blockchain.Height())
	assert.True(t, blockchain.LastDigest().IsZero())
	assert.False(t, blockchain.HaveKeyImage(transactionrecord.KeyImage{0}))
	_, err := blockchain.GetBlockByDigest(digestOf(t, entries[0]))
	assert.Equal(t, fault.ErrBlockNotFound, err)

	// the old chain can be replayed
	for _, e := range entries {
		assert.NoError(t, blockchain.AddBlock(e))
	}
}

func TestReopen(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)

	entries := addBlocks(t, 4)
	teardown()

	setup(t, f)
	defer teardown()

	assert.Equal(t, uint64(4), blockchain.Height())
	assert.Equal(t, digestOf(t, entries[3]), blockchain.LastDigest())

	n := 0
	err := blockchain.Blocks(0, func(entry *blockrecord.Entry) error {
		assert.Equal(t, entries[n], entry, "block: %d", n)
		n += 1
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 4, n)

	addBlocks(t, 1)
	assert.Equal(t, uint64(5), blockchain.Height())
}

func TestRebuildIndex(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)

	entries := addBlocks(t, 3)
	require.NoError(t, blockchain.Finalise())

	// lose the index
	require.NoError(t, storage.Reset())
	storage.Finalise()

	setup(t, f)
	defer teardown()

	assert.Equal(t, uint64(3), blockchain.Height())
	for i, e := range entries {
		entry, err := blockchain.GetBlockByDigest(digestOf(t, e))
		assert.NoError(t, err, "block: %d", i)
		assert.Equal(t, e, entry, "block: %d", i)

		_, height, err := blockchain.GetTransaction(e.Block.TransactionIDs[0])
		assert.NoError(t, err, "block: %d", i)
		assert.Equal(t, uint64(i), height)
	}
	assert.True(t, blockchain.HaveKeyImage(transactionrecord.KeyImage{2}))
}

func TestBlocksFrom(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	entries := addBlocks(t, 4)

	heights := []uint64{}
	err := blockchain.Blocks(2, func(entry *blockrecord.Entry) error {
		heights = append(heights, entry.Height)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []uint64{2, 3}, heights)

	stop := errors.New("stop")
	err = blockchain.Blocks(0, func(entry *blockrecord.Entry) error {
		if entries[1].Height == entry.Height {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
}

func TestVersionPolicy(t *testing.T) {
	f := newTestFiles(t)
	f.configuration.Policy = policy.New([]policy.Upgrade{
		{Height: 0, MajorVersion: 1},
		{Height: 2, MajorVersion: 2},
	}, nil)
	setup(t, f)
	defer teardown()

	addBlocks(t, 2)

	entry := makeEntry(t, 2, blockchain.LastDigest())
	assert.Equal(t, fault.ErrBlockVersionMismatch, blockchain.AddBlock(entry))

	entry.Block.MajorVersion = 2
	assert.NoError(t, blockchain.AddBlock(entry))
}

func TestCheckpoint(t *testing.T) {
	f := newTestFiles(t)

	good := makeEntry(t, 0, merkle.Digest{})
	f.configuration.Policy = policy.New(nil, map[uint64]merkle.Digest{
		0: digestOf(t, good),
	})
	setup(t, f)
	defer teardown()

	bad := makeEntry(t, 0, merkle.Digest{}, spend(1, 10))
	assert.Equal(t, fault.ErrCheckpointMismatch, blockchain.AddBlock(bad))
	assert.NoError(t, blockchain.AddBlock(good))
}

func TestStats(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	addBlocks(t, 6)

	before := blockchain.Stats()

	// cache capacity 4: the two oldest blocks were evicted
	_, err := blockchain.GetBlock(5)
	assert.NoError(t, err)
	_, err = blockchain.GetBlock(0)
	assert.NoError(t, err)

	after := blockchain.Stats()
	assert.Equal(t, before.Hits+1, after.Hits)
	assert.Equal(t, before.Misses+1, after.Misses)
}

func TestVerify(t *testing.T) {
	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	addBlocks(t, 5)

	n, err := blockchain.Verify()
	assert.NoError(t, err)
	assert.Equal(t, uint64(5), n)
}

func TestLifecycle(t *testing.T) {
	assert.Equal(t, fault.ErrNotInitialised, blockchain.Finalise())
	assert.Equal(t, fault.ErrNotInitialised, blockchain.AddBlock(nil))
	_, err := blockchain.PopBlock()
	assert.Equal(t, fault.ErrNotInitialised, err)
	_, err = blockchain.GetBlock(0)
	assert.Equal(t, fault.ErrNotInitialised, err)
	assert.Equal(t, uint64(0), blockchain.Height())

	f := newTestFiles(t)
	setup(t, f)
	defer teardown()

	assert.Equal(t, fault.ErrAlreadyInitialised, blockchain.Initialise(f.configuration, blockchain.NewStorageIndexer()))
}

func TestInvalidChain(t *testing.T) {
	f := newTestFiles(t)
	f.configuration.Chain = "nochain"

	require.NoError(t, storage.Initialise(f.database, storage.ReadWrite))
	defer storage.Finalise()

	err := blockchain.Initialise(f.configuration, blockchain.NewStorageIndexer())
	assert.Equal(t, fault.ErrInvalidChain, err)
}
