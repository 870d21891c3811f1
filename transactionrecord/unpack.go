// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"fmt"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/util"
)

// Unpack - turn a byte slice into a transaction
//
// reads one transaction from the start of the record and returns the
// number of bytes consumed, so the record may be followed by other data
func (record Packed) Unpack() (*Transaction, int, error) {
	u := util.NewUnpackBuffer(record)
	tx, err := unpackTransaction(u)
	if nil != err {
		return nil, 0, err
	}
	return tx, u.Consumed(), nil
}

func unpackTransaction(u *util.UnpackBuffer) (*Transaction, error) {
	version, err := u.Uint64("version")
	if nil != err {
		return nil, err
	}
	unlockTime, err := u.Uint64("unlock time")
	if nil != err {
		return nil, err
	}

	tx := &Transaction{
		Version:    version,
		UnlockTime: unlockTime,
	}

	inputCount, err := u.Count("inputs", maxInputs)
	if nil != err {
		return nil, err
	}
	keyInputs := 0
	for i := 0; i < inputCount; i += 1 {
		input, err := unpackInput(u)
		if nil != err {
			return nil, err
		}
		if KeyInputTag == input.Tag() {
			keyInputs += 1
		}
		tx.Inputs = append(tx.Inputs, input)
	}

	outputCount, err := u.Count("outputs", maxOutputs)
	if nil != err {
		return nil, err
	}
	for i := 0; i < outputCount; i += 1 {
		amount, err := u.Uint64("output amount")
		if nil != err {
			return nil, err
		}
		key, err := u.Fixed("output key", PublicKeyLength)
		if nil != err {
			return nil, err
		}
		out := Output{Amount: amount}
		copy(out.Key[:], key)
		tx.Outputs = append(tx.Outputs, out)
	}

	extraLength, err := u.Count("extra", maxExtra)
	if nil != err {
		return nil, err
	}
	if extraLength > 0 {
		tx.Extra, err = u.Fixed("extra", extraLength)
		if nil != err {
			return nil, err
		}
	}

	for i := 0; i < keyInputs; i += 1 {
		ringSize, err := u.Count("ring size", maxRingSize)
		if nil != err {
			return nil, err
		}
		ring := make([]Signature, ringSize)
		for j := range ring {
			s, err := u.Fixed("signature", SignatureLength)
			if nil != err {
				return nil, err
			}
			copy(ring[j][:], s)
		}
		tx.Signatures = append(tx.Signatures, ring)
	}

	return tx, nil
}

func unpackInput(u *util.UnpackBuffer) (Input, error) {
	tag, err := u.Uint64("input tag")
	if nil != err {
		return nil, err
	}

	switch TagType(tag) {

	case CoinbaseInputTag:
		height, err := u.Uint64("coinbase height")
		if nil != err {
			return nil, err
		}
		return &CoinbaseInput{Height: height}, nil

	case KeyInputTag:
		amount, err := u.Uint64("input amount")
		if nil != err {
			return nil, err
		}
		count, err := u.Count("key offsets", maxKeyOffsets)
		if nil != err {
			return nil, err
		}
		in := &KeyInput{Amount: amount}
		for i := 0; i < count; i += 1 {
			offset, err := u.Uint64("key offset")
			if nil != err {
				return nil, err
			}
			in.KeyOffsets = append(in.KeyOffsets, offset)
		}
		image, err := u.Fixed("key image", KeyImageLength)
		if nil != err {
			return nil, err
		}
		copy(in.KeyImage[:], image)
		return in, nil

	default:
		return nil, fmt.Errorf("%w: %w: tag: %d", fault.ErrCorruptRecord, fault.ErrInvalidInputType, tag)
	}
}
