// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/blockrecord"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/merkle"
	"github.com/bitmark-inc/ledgerd/policy"
	"github.com/bitmark-inc/ledgerd/sequence"
)

// number of blocks indexed per batch during a rebuild
const rebuildBatchSize = 256

// Configuration - location of the block sequence and its policy
type Configuration struct {
	IndexFile string
	ItemsFile string
	CacheSize int
	Chain     string
	Policy    *policy.Table // nil: use the chain's table
}

// globals for the chain
type blockchainData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	store   *sequence.Store[*blockrecord.Entry]
	indexer Indexer
	policy  *policy.Table

	lastDigest merkle.Digest // digest of the highest block, zero when empty

	// set once during initialise
	initialised bool
}

// global data
var globalData blockchainData

// Initialise - open the block sequence and bring the index up to date
func Initialise(configuration Configuration, indexer Indexer) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if nil == indexer {
		return fault.ErrInvalidStructPointer
	}

	globalData.log = logger.New("blockchain")
	if nil == globalData.log {
		return fault.ErrInvalidLoggerChannel
	}
	log := globalData.log
	log.Info("starting…")

	table := configuration.Policy
	if nil == table {
		t, err := policy.ForChain(configuration.Chain)
		if nil != err {
			log.Criticalf("chain: %q  error: %s", configuration.Chain, err)
			return err
		}
		table = t
	}

	store, err := sequence.Open[*blockrecord.Entry](configuration.IndexFile, configuration.ItemsFile, blockrecord.EntryCodec{}, configuration.CacheSize)
	if nil != err {
		log.Criticalf("open blocks: %q  error: %s", configuration.ItemsFile, err)
		return err
	}

	globalData.store = store
	globalData.indexer = indexer
	globalData.policy = table
	globalData.lastDigest = merkle.Digest{}

	ok := false
	defer func() {
		if !ok {
			store.Close()
			globalData.store = nil
		}
	}()

	if !store.IsEmpty() {
		last, err := store.Last()
		if nil != err {
			log.Criticalf("read last block error: %s", err)
			return err
		}
		globalData.lastDigest, err = last.Digest()
		if nil != err {
			return err
		}
	}

	indexHeight, err := indexer.Height()
	if nil != err {
		log.Criticalf("index height error: %s", err)
		return err
	}
	if indexHeight != store.Len() {
		log.Warnf("index height: %d  block height: %d  rebuilding index", indexHeight, store.Len())
		err = rebuildIndex()
		if nil != err {
			log.Criticalf("index rebuild error: %s", err)
			return err
		}
	}

	log.Infof("block height: %d", store.Len())
	log.Infof("last block: %v", globalData.lastDigest)

	// all data initialised
	ok = true
	globalData.initialised = true
	return nil
}

// Finalise - close the block sequence
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")

	err := globalData.store.Close()
	globalData.store = nil
	globalData.indexer = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return err
}

// internal: must hold lock
func rebuildIndex() error {
	indexer := globalData.indexer

	err := indexer.Reset()
	if nil != err {
		return err
	}

	height := globalData.store.Len()
	inBatch := 0
	open := false
	err = globalData.store.Map(0, func(i uint64, entry *blockrecord.Entry) error {
		if !open {
			if err := indexer.Begin(); nil != err {
				return err
			}
			open = true
		}

		digest, err := entry.Digest()
		if nil != err {
			return err
		}
		if err := indexEntry(indexer, entry, digest, i); nil != err {
			return err
		}
		indexer.SetHeight(i + 1)

		inBatch += 1
		if rebuildBatchSize == inBatch || i+1 == height {
			inBatch = 0
			open = false
			globalData.log.Debugf("indexed to block: %d", i)
			return indexer.Commit()
		}
		return nil
	})
	if nil != err {
		// includes a record that failed to decode mid batch
		if open {
			indexer.Abort()
		}
		return err
	}

	globalData.log.Infof("rebuilt index for: %d blocks", height)
	return nil
}
