// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the on-disk secondary indexes of the ledger
//
// The blocks themselves live in the block sequence files, this
// LevelDB database only maps identifiers to positions in that
// sequence so it can always be rebuilt from the sequence.
//
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. height       = big endian uint64 (8 bytes)
// 4. digest       = block digest as 32 byte SHA3-256(data)
// 5. txId         = transaction digest as 32 byte SHA3-256(data)
// 6. key image    = 32 byte image of a spent key
//
// Blocks:
//
//   B ++ digest                - block digest to height
//                                data: height
//
// Transactions:
//
//   T ++ txId                  - confirmed transactions
//                                data: height ++ index in block (0 = base transaction, big endian uint64)
//
// Key images:
//
//   K ++ key image             - spent key images
//                                data: txId
//
// Metadata:
//
//   M ++ "height"              - number of blocks covered by the index
//                                data: count
//
// Testing:
//   Z ++ key                   - testing data
package storage
