// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/bitmark-inc/ledgerd/merkle"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
)

//go:generate mockgen -destination=mocks/mock_indexer.go -package=mocks github.com/bitmark-inc/ledgerd/blockchain Indexer

// Indexer - lookups over the block sequence
//
// writes are only valid between Begin and Commit or Abort
type Indexer interface {
	Height() (uint64, error)

	Begin() error
	PutBlock(digest merkle.Digest, height uint64)
	PutTransaction(txID merkle.Digest, height uint64, index uint64)
	PutKeyImage(image transactionrecord.KeyImage, txID merkle.Digest)
	DeleteBlock(digest merkle.Digest)
	DeleteTransaction(txID merkle.Digest)
	DeleteKeyImage(image transactionrecord.KeyImage)
	SetHeight(height uint64)
	Commit() error
	Abort()

	BlockHeight(digest merkle.Digest) (uint64, bool, error)
	Transaction(txID merkle.Digest) (height uint64, index uint64, found bool, err error)
	HasKeyImage(image transactionrecord.KeyImage) (bool, error)

	Reset() error
}
