// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/merkle"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

// indexer backed by the storage pools
type storageIndexer struct {
	trx storage.Transaction
}

// NewStorageIndexer - Indexer over the LevelDB pools
//
// storage must be initialised before use
func NewStorageIndexer() Indexer {
	return &storageIndexer{}
}

func (s *storageIndexer) Height() (uint64, error) {
	n, _, err := storage.Pool.Meta.GetN(storage.HeightKey)
	return n, err
}

func (s *storageIndexer) Begin() error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	s.trx = trx
	return nil
}

func (s *storageIndexer) PutBlock(digest merkle.Digest, height uint64) {
	s.trx.PutN(storage.Pool.BlockDigests, digest[:], height)
}

func (s *storageIndexer) PutTransaction(txID merkle.Digest, height uint64, index uint64) {
	location := make([]byte, 8)
	binary.BigEndian.PutUint64(location, index)
	s.trx.PutNB(storage.Pool.Transactions, txID[:], height, location)
}

func (s *storageIndexer) PutKeyImage(image transactionrecord.KeyImage, txID merkle.Digest) {
	s.trx.Put(storage.Pool.KeyImages, image[:], txID[:])
}

func (s *storageIndexer) DeleteBlock(digest merkle.Digest) {
	s.trx.Delete(storage.Pool.BlockDigests, digest[:])
}

func (s *storageIndexer) DeleteTransaction(txID merkle.Digest) {
	s.trx.Delete(storage.Pool.Transactions, txID[:])
}

func (s *storageIndexer) DeleteKeyImage(image transactionrecord.KeyImage) {
	s.trx.Delete(storage.Pool.KeyImages, image[:])
}

func (s *storageIndexer) SetHeight(height uint64) {
	s.trx.PutN(storage.Pool.Meta, storage.HeightKey, height)
}

func (s *storageIndexer) Commit() error {
	if nil == s.trx {
		return fault.ErrTransactionNotStarted
	}
	err := s.trx.Commit()
	s.trx = nil
	return err
}

func (s *storageIndexer) Abort() {
	if nil != s.trx {
		s.trx.Abort()
		s.trx = nil
	}
}

func (s *storageIndexer) BlockHeight(digest merkle.Digest) (uint64, bool, error) {
	return storage.Pool.BlockDigests.GetN(digest[:])
}

func (s *storageIndexer) Transaction(txID merkle.Digest) (uint64, uint64, bool, error) {
	height, location, found, err := storage.Pool.Transactions.GetNB(txID[:])
	if nil != err || !found {
		return 0, 0, false, err
	}
	if 8 != len(location) {
		return 0, 0, false, fmt.Errorf("%w: transaction: %v  location length: %d", fault.ErrCorruptRecord, txID, len(location))
	}
	return height, binary.BigEndian.Uint64(location), true, nil
}

func (s *storageIndexer) HasKeyImage(image transactionrecord.KeyImage) (bool, error) {
	return storage.Pool.KeyImages.Has(image[:])
}

func (s *storageIndexer) Reset() error {
	return storage.Reset()
}
