// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// Codec - stores transactions in a sequence
type Codec struct{}

// Pack - transaction to bytes
func (Codec) Pack(tx *Transaction) ([]byte, error) {
	return tx.Pack()
}

// Unpack - bytes to transaction
func (Codec) Unpack(buffer []byte) (*Transaction, int, error) {
	return Packed(buffer).Unpack()
}
