// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain maintains the node's chain of blocks
//
// Block entries are kept in a persistent sequence indexed by height.
// An Indexer keeps digest, transaction and key image lookups that can
// always be rebuilt from the sequence, so the sequence is the single
// source of truth: blocks are appended before they are indexed and
// the index height records how far the index has caught up.
//
// All access is serialised by one package lock.
package blockchain
