// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/bitmark-inc/ledgerd/blockrecord"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/merkle"
)

// PopBlock - remove the highest block and return it
func PopBlock() (*blockrecord.Entry, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}
	log := globalData.log
	store := globalData.store

	entry, err := store.Last()
	if nil != err {
		return nil, err
	}
	height := store.Len() - 1

	digest, err := entry.Digest()
	if nil != err {
		return nil, err
	}

	indexer := globalData.indexer
	err = indexer.Begin()
	if nil != err {
		return nil, err
	}
	err = unindexEntry(indexer, entry, digest)
	if nil != err {
		indexer.Abort()
		return nil, err
	}
	indexer.SetHeight(height)
	err = indexer.Commit()
	if nil != err {
		log.Errorf("unindex block: %d  error: %s", height, err)
		return nil, err
	}

	// on failure the index height is below the sequence length so
	// the index is rebuilt on the next start
	err = store.TruncateLast()
	if nil != err {
		log.Criticalf("remove block: %d  error: %s", height, err)
		return nil, err
	}

	globalData.lastDigest = entry.Block.PreviousBlock

	log.Infof("removed block: %d  digest: %v", height, digest)
	return entry, nil
}

// Reset - remove every block and clear the index
func Reset() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Warnf("reset: discard: %d blocks", globalData.store.Len())

	err := globalData.store.Clear()
	if nil != err {
		return err
	}
	globalData.lastDigest = merkle.Digest{}

	return globalData.indexer.Reset()
}
