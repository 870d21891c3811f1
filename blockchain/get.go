// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/bitmark-inc/ledgerd/blockrecord"
	"github.com/bitmark-inc/ledgerd/cache"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/merkle"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// Height - number of blocks in the chain
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0
	}
	return globalData.store.Len()
}

// LastDigest - digest of the highest block, zero digest for an empty chain
func LastDigest() merkle.Digest {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.lastDigest
}

// Stats - block cache hits and misses
func Stats() cache.Stats {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return cache.Stats{}
	}
	return globalData.store.Stats()
}

// GetBlock - block entry at a height
//
// the result is shared with the block cache and must not be modified
func GetBlock(height uint64) (*blockrecord.Entry, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}
	return getBlock(height)
}

// internal: must hold lock
func getBlock(height uint64) (*blockrecord.Entry, error) {
	entry, err := globalData.store.Get(height)
	if fault.ErrIndexOutOfRange == err {
		return nil, fault.ErrBlockNotFound
	}
	return entry, err
}

// GetBlockByDigest - block entry with a given digest
func GetBlockByDigest(digest merkle.Digest) (*blockrecord.Entry, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	height, found, err := globalData.indexer.BlockHeight(digest)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrBlockNotFound
	}
	return getBlock(height)
}

// GetTransaction - a confirmed transaction and the height of its block
func GetTransaction(txID merkle.Digest) (*transactionrecord.Transaction, uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, 0, fault.ErrNotInitialised
	}

	height, index, found, err := globalData.indexer.Transaction(txID)
	if nil != err {
		return nil, 0, err
	}
	if !found {
		return nil, 0, fault.ErrTransactionNotFound
	}

	entry, err := getBlock(height)
	if nil != err {
		return nil, 0, err
	}

	if 0 == index {
		return &entry.Block.BaseTransaction, height, nil
	}
	if index > uint64(len(entry.Transactions)) {
		globalData.log.Errorf("transaction: %v  block: %d  index: %d beyond: %d", txID, height, index, len(entry.Transactions))
		return nil, 0, fault.ErrTransactionNotFound
	}
	return &entry.Transactions[index-1], height, nil
}

// HaveKeyImage - true if a key image has been spent
func HaveKeyImage(image transactionrecord.KeyImage) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false
	}

	spent, err := globalData.indexer.HasKeyImage(image)
	if nil != err {
		globalData.log.Errorf("key image: %v  error: %s", image, err)
		return false
	}
	return spent
}

// Blocks - call f for each block from start to the highest
//
// f runs with the chain locked and must not call into this package
func Blocks(start uint64, f func(entry *blockrecord.Entry) error) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	return globalData.store.Map(start, func(_ uint64, entry *blockrecord.Entry) error {
		return f(entry)
	})
}
