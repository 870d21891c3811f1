// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/util"
)

// Pack - convert a transaction to its stored bytes
//
// layout:
//   Varint64(version) Varint64(unlock time)
//   Varint64(input count) { Varint64(tag) fields... }
//   Varint64(output count) { Varint64(amount) key[32] }
//   Varint64(extra length) extra
//   for each key input: Varint64(ring size) { signature[64] }
func (tx *Transaction) Pack() (Packed, error) {
	if len(tx.Signatures) != tx.keyInputCount() {
		return nil, fault.ErrSignatureCountMismatch
	}

	message := util.PackBuffer(util.ToVarint64(tx.Version))
	message = message.AppendUint64(tx.UnlockTime)

	message = message.AppendUint64(uint64(len(tx.Inputs)))
	for _, input := range tx.Inputs {
		switch in := input.(type) {
		case *CoinbaseInput:
			message = message.AppendUint64(uint64(CoinbaseInputTag))
			message = message.AppendUint64(in.Height)

		case *KeyInput:
			message = message.AppendUint64(uint64(KeyInputTag))
			message = message.AppendUint64(in.Amount)
			message = message.AppendUint64(uint64(len(in.KeyOffsets)))
			for _, offset := range in.KeyOffsets {
				message = message.AppendUint64(offset)
			}
			message = message.AppendFixed(in.KeyImage[:])

		default:
			return nil, fault.ErrInvalidInputType
		}
	}

	message = message.AppendUint64(uint64(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		message = message.AppendUint64(out.Amount)
		message = message.AppendFixed(out.Key[:])
	}

	message = message.AppendBytes(tx.Extra)

	for _, ring := range tx.Signatures {
		message = message.AppendUint64(uint64(len(ring)))
		for _, signature := range ring {
			message = message.AppendFixed(signature[:])
		}
	}

	return Packed(message), nil
}
