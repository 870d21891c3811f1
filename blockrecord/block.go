// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/ledgerd/merkle"
	"github.com/bitmark-inc/ledgerd/transactionrecord"
	"github.com/bitmark-inc/ledgerd/util"
)

// MaximumTransactions - upper bound of transaction ids in one block
const MaximumTransactions = 1 << 16

// PackedBlock - packed records are just a byte slice
type PackedBlock []byte

// Block - header, the base transaction paying the generated coins
// and the ids of the other transactions in the block
type Block struct {
	Header
	BaseTransaction transactionrecord.Transaction `json:"baseTransaction"`
	TransactionIDs  []merkle.Digest               `json:"transactionIds"`
}

// MerkleRoot - root of the tree over the base transaction id followed
// by the other transaction ids
func (block *Block) MerkleRoot() (merkle.Digest, error) {
	baseID, err := block.BaseTransaction.ID()
	if nil != err {
		return merkle.Digest{}, err
	}
	ids := make([]merkle.Digest, 0, len(block.TransactionIDs)+1)
	ids = append(ids, baseID)
	ids = append(ids, block.TransactionIDs...)
	return merkle.MerkleRoot(ids), nil
}

// Digest - block identifier
//
// SHA3-256 of the packed header, the merkle root and the total
// transaction count including the base transaction
func (block *Block) Digest() (merkle.Digest, error) {
	root, err := block.MerkleRoot()
	if nil != err {
		return merkle.Digest{}, err
	}
	buffer := util.PackBuffer(block.Header.Pack())
	buffer = buffer.AppendFixed(root[:])
	buffer = buffer.AppendUint64(uint64(len(block.TransactionIDs) + 1))
	return merkle.NewDigest(buffer), nil
}

// Pack - packed header, packed base transaction, Varint64(count), ids
func (block *Block) Pack() (PackedBlock, error) {
	buffer, err := block.appendTo(nil)
	if nil != err {
		return nil, err
	}
	return PackedBlock(buffer), nil
}

func (block *Block) appendTo(buffer util.PackBuffer) (util.PackBuffer, error) {
	base, err := block.BaseTransaction.Pack()
	if nil != err {
		return nil, err
	}
	buffer = buffer.AppendFixed(block.Header.Pack())
	buffer = buffer.AppendFixed(base)
	buffer = buffer.AppendUint64(uint64(len(block.TransactionIDs)))
	for _, id := range block.TransactionIDs {
		buffer = buffer.AppendFixed(id[:])
	}
	return buffer, nil
}

// Unpack - turn a byte slice into a block
func (record PackedBlock) Unpack() (*Block, int, error) {
	u := util.NewUnpackBuffer(record)
	block, err := unpackBlock(u)
	if nil != err {
		return nil, 0, err
	}
	return block, u.Consumed(), nil
}

func unpackBlock(u *util.UnpackBuffer) (*Block, error) {
	header, err := unpackHeader(u)
	if nil != err {
		return nil, err
	}

	base, err := unpackTransaction(u)
	if nil != err {
		return nil, err
	}

	count, err := u.Count("transaction ids", MaximumTransactions)
	if nil != err {
		return nil, err
	}

	block := &Block{
		Header:          *header,
		BaseTransaction: *base,
	}
	for i := 0; i < count; i += 1 {
		id, err := u.Fixed("transaction id", merkle.DigestLength)
		if nil != err {
			return nil, err
		}
		var d merkle.Digest
		copy(d[:], id)
		block.TransactionIDs = append(block.TransactionIDs, d)
	}
	return block, nil
}

// read a transaction from the buffer's current position
func unpackTransaction(u *util.UnpackBuffer) (*transactionrecord.Transaction, error) {
	tx, n, err := transactionrecord.Packed(u.Unread()).Unpack()
	if nil != err {
		return nil, err
	}
	if err := u.Skip("transaction", n); nil != err {
		return nil, err
	}
	return tx, nil
}
