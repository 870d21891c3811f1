// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/ledgerd/merkle"
)

// TagType - type code for transaction inputs
type TagType uint64

// enumerate the possible input types
// this is encoded a Varint64 at start of each input
const (
	// null marks beginning of list - not used as an input type
	NullTag = TagType(iota)

	CoinbaseInputTag = TagType(iota) // newly generated coins, only in a base transaction
	KeyInputTag      = TagType(iota) // spend of a previous output

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// limits applied while unpacking
const (
	maxInputs     = 1 << 16
	maxOutputs    = 1 << 16
	maxKeyOffsets = 1 << 10
	maxRingSize   = 1 << 10
	maxExtra      = 1 << 16
)

// Input - one transaction input, one of CoinbaseInput or KeyInput
type Input interface {
	Tag() TagType
}

// CoinbaseInput - generated coins, the height binds the base
// transaction to its block
type CoinbaseInput struct {
	Height uint64 `json:"height"`
}

// KeyInput - spends one output chosen from a ring of previous outputs
type KeyInput struct {
	Amount     uint64   `json:"amount"`
	KeyOffsets []uint64 `json:"keyOffsets"` // relative output indices of the ring members
	KeyImage   KeyImage `json:"keyImage"`   // hex: prevents double spend
}

// Tag - input type code
func (*CoinbaseInput) Tag() TagType {
	return CoinbaseInputTag
}

// Tag - input type code
func (*KeyInput) Tag() TagType {
	return KeyInputTag
}

// Output - an amount sent to a one-time public key
type Output struct {
	Amount uint64    `json:"amount"`
	Key    PublicKey `json:"key"` // hex
}

// Transaction - the unpacked transaction structure
//
// Signatures holds one ring signature per KeyInput, in input order
type Transaction struct {
	Version    uint64        `json:"version"`
	UnlockTime uint64        `json:"unlockTime"`
	Inputs     []Input       `json:"inputs"`
	Outputs    []Output      `json:"outputs"`
	Extra      []byte        `json:"extra"`
	Signatures [][]Signature `json:"signatures"`
}

// ID - transaction identifier is the digest of its packed form
func (record Packed) ID() merkle.Digest {
	return merkle.NewDigest(record)
}

// ID - pack the transaction and return its identifier
func (tx *Transaction) ID() (merkle.Digest, error) {
	packed, err := tx.Pack()
	if nil != err {
		return merkle.Digest{}, err
	}
	return packed.ID(), nil
}

// IsCoinbase - true for a base transaction
func (tx *Transaction) IsCoinbase() bool {
	return 1 == len(tx.Inputs) && CoinbaseInputTag == tx.Inputs[0].Tag()
}

// KeyImages - all key images spent by this transaction
func (tx *Transaction) KeyImages() []KeyImage {
	images := make([]KeyImage, 0, len(tx.Inputs))
	for _, input := range tx.Inputs {
		if in, ok := input.(*KeyInput); ok {
			images = append(images, in.KeyImage)
		}
	}
	return images
}

// OutputTotal - sum of all output amounts
func (tx *Transaction) OutputTotal() uint64 {
	total := uint64(0)
	for _, out := range tx.Outputs {
		total += out.Amount
	}
	return total
}

// count inputs that need a signature
func (tx *Transaction) keyInputCount() int {
	n := 0
	for _, input := range tx.Inputs {
		if KeyInputTag == input.Tag() {
			n += 1
		}
	}
	return n
}
