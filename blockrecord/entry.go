// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/merkle"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
	"github.com/bitmark-inc/ledgerd/util"
)

// PackedEntry - packed records are just a byte slice
type PackedEntry []byte

// Entry - one element of the block sequence
//
// Transactions holds the bodies of Block.TransactionIDs in the same order
type Entry struct {
	Block          Block                           `json:"block"`
	Height         uint64                          `json:"height"`
	CumulativeSize uint64                          `json:"cumulativeSize"`
	GeneratedCoins uint64                          `json:"generatedCoins"`
	Transactions   []transactionrecord.Transaction `json:"transactions"`
}

// Validate - transaction bodies must match the block's id list
func (entry *Entry) Validate() error {
	if len(entry.Transactions) != len(entry.Block.TransactionIDs) {
		return fault.ErrTransactionCountMismatch
	}
	for i := range entry.Transactions {
		id, err := entry.Transactions[i].ID()
		if nil != err {
			return err
		}
		if id != entry.Block.TransactionIDs[i] {
			return fault.ErrTransactionIDMismatch
		}
	}
	return nil
}

// Pack - packed block, Varint64 height, size and coins, then one
// packed transaction per block transaction id
func (entry *Entry) Pack() (PackedEntry, error) {
	if len(entry.Transactions) != len(entry.Block.TransactionIDs) {
		return nil, fault.ErrTransactionCountMismatch
	}

	buffer, err := entry.Block.appendTo(nil)
	if nil != err {
		return nil, err
	}
	buffer = buffer.AppendUint64(entry.Height)
	buffer = buffer.AppendUint64(entry.CumulativeSize)
	buffer = buffer.AppendUint64(entry.GeneratedCoins)

	for i := range entry.Transactions {
		packed, err := entry.Transactions[i].Pack()
		if nil != err {
			return nil, err
		}
		buffer = buffer.AppendFixed(packed)
	}
	return PackedEntry(buffer), nil
}

// Unpack - turn a byte slice into an entry
func (record PackedEntry) Unpack() (*Entry, int, error) {
	u := util.NewUnpackBuffer(record)

	block, err := unpackBlock(u)
	if nil != err {
		return nil, 0, err
	}
	height, err := u.Uint64("height")
	if nil != err {
		return nil, 0, err
	}
	cumulativeSize, err := u.Uint64("cumulative size")
	if nil != err {
		return nil, 0, err
	}
	generatedCoins, err := u.Uint64("generated coins")
	if nil != err {
		return nil, 0, err
	}

	entry := &Entry{
		Block:          *block,
		Height:         height,
		CumulativeSize: cumulativeSize,
		GeneratedCoins: generatedCoins,
	}
	for range block.TransactionIDs {
		tx, err := unpackTransaction(u)
		if nil != err {
			return nil, 0, err
		}
		entry.Transactions = append(entry.Transactions, *tx)
	}
	return entry, u.Consumed(), nil
}

// Digest - the identifier of the entry's block
func (entry *Entry) Digest() (merkle.Digest, error) {
	return entry.Block.Digest()
}

// EntryCodec - stores block entries in a sequence
type EntryCodec struct{}

// Pack - entry to bytes
func (EntryCodec) Pack(entry *Entry) ([]byte, error) {
	return entry.Pack()
}

// Unpack - bytes to entry
func (EntryCodec) Unpack(buffer []byte) (*Entry, int, error) {
	return PackedEntry(buffer).Unpack()
}
