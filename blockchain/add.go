// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/bitmark-inc/ledgerd/blockrecord"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/merkle"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// AddBlock - append a block at the current height
//
// the entry is stored as given and must not be modified afterwards
func AddBlock(entry *blockrecord.Entry) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	log := globalData.log

	height := globalData.store.Len()
	digest, err := checkEntry(entry, height)
	if nil != err {
		log.Debugf("reject block: %d  error: %s", height, err)
		return err
	}

	err = globalData.store.Append(entry)
	if nil != err {
		log.Errorf("append block: %d  error: %s", height, err)
		return err
	}

	indexer := globalData.indexer
	err = indexer.Begin()
	if nil == err {
		err = indexEntry(indexer, entry, digest, height)
		if nil == err {
			indexer.SetHeight(height + 1)
			err = indexer.Commit()
		} else {
			indexer.Abort()
		}
	}
	if nil != err {
		log.Errorf("index block: %d  error: %s", height, err)
		if e := globalData.store.TruncateLast(); nil != e {
			// index rebuild on restart recovers from this
			fault.Panicf("remove unindexed block: %d  error: %s", height, e)
		}
		return err
	}

	globalData.lastDigest = digest

	log.Infof("block: %d  digest: %v  transactions: %d", height, digest, len(entry.Transactions)+1)
	return nil
}

// internal: must hold lock
//
// check an entry can follow the current last block, returns its digest
func checkEntry(entry *blockrecord.Entry, height uint64) (merkle.Digest, error) {
	if nil == entry {
		return merkle.Digest{}, fault.ErrInvalidStructPointer
	}
	if entry.Height != height {
		return merkle.Digest{}, fault.ErrBlockHeightMismatch
	}
	if entry.Block.PreviousBlock != globalData.lastDigest {
		return merkle.Digest{}, fault.ErrPreviousBlockDigestMismatch
	}
	if entry.Block.MajorVersion != globalData.policy.MajorVersionAt(height) {
		return merkle.Digest{}, fault.ErrBlockVersionMismatch
	}

	err := entry.Validate()
	if nil != err {
		return merkle.Digest{}, err
	}

	digest, err := entry.Digest()
	if nil != err {
		return merkle.Digest{}, err
	}
	if _, ok := globalData.policy.CheckBlock(height, digest); !ok {
		return merkle.Digest{}, fault.ErrCheckpointMismatch
	}

	indexer := globalData.indexer

	ids, err := transactionIDs(entry)
	if nil != err {
		return merkle.Digest{}, err
	}
	seenIDs := make(map[merkle.Digest]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seenIDs[id]; ok {
			return merkle.Digest{}, fault.ErrDuplicateTransaction
		}
		seenIDs[id] = struct{}{}

		_, _, found, err := indexer.Transaction(id)
		if nil != err {
			return merkle.Digest{}, err
		}
		if found {
			return merkle.Digest{}, fault.ErrDuplicateTransaction
		}
	}

	seenImages := make(map[transactionrecord.KeyImage]struct{})
	for _, image := range keyImages(entry) {
		if _, ok := seenImages[image]; ok {
			return merkle.Digest{}, fault.ErrKeyImageAlreadySpent
		}
		seenImages[image] = struct{}{}

		spent, err := indexer.HasKeyImage(image)
		if nil != err {
			return merkle.Digest{}, err
		}
		if spent {
			return merkle.Digest{}, fault.ErrKeyImageAlreadySpent
		}
	}

	return digest, nil
}

// base transaction id followed by the block's transaction ids
func transactionIDs(entry *blockrecord.Entry) ([]merkle.Digest, error) {
	baseID, err := entry.Block.BaseTransaction.ID()
	if nil != err {
		return nil, err
	}
	ids := make([]merkle.Digest, 0, len(entry.Block.TransactionIDs)+1)
	ids = append(ids, baseID)
	return append(ids, entry.Block.TransactionIDs...), nil
}

// key images of every transaction in the entry, in block order
func keyImages(entry *blockrecord.Entry) []transactionrecord.KeyImage {
	images := entry.Block.BaseTransaction.KeyImages()
	for i := range entry.Transactions {
		images = append(images, entry.Transactions[i].KeyImages()...)
	}
	return images
}

// add the entry's lookups to an open indexer batch
//
// index 0 is the base transaction, i+1 is entry.Transactions[i]
func indexEntry(indexer Indexer, entry *blockrecord.Entry, digest merkle.Digest, height uint64) error {
	ids, err := transactionIDs(entry)
	if nil != err {
		return err
	}

	indexer.PutBlock(digest, height)
	for i, id := range ids {
		indexer.PutTransaction(id, height, uint64(i))
	}

	for _, image := range entry.Block.BaseTransaction.KeyImages() {
		indexer.PutKeyImage(image, ids[0])
	}
	for i := range entry.Transactions {
		for _, image := range entry.Transactions[i].KeyImages() {
			indexer.PutKeyImage(image, ids[i+1])
		}
	}
	return nil
}

// remove the entry's lookups in an open indexer batch
func unindexEntry(indexer Indexer, entry *blockrecord.Entry, digest merkle.Digest) error {
	ids, err := transactionIDs(entry)
	if nil != err {
		return err
	}

	indexer.DeleteBlock(digest)
	for _, id := range ids {
		indexer.DeleteTransaction(id)
	}
	for _, image := range keyImages(entry) {
		indexer.DeleteKeyImage(image)
	}
	return nil
}
