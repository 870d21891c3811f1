// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/merkle"
)

func pair(a merkle.Digest, b merkle.Digest) merkle.Digest {
	return merkle.NewDigest(append(a[:], b[:]...))
}

func TestMerkleRoot(t *testing.T) {
	a := merkle.NewDigest([]byte("a"))
	b := merkle.NewDigest([]byte("b"))
	c := merkle.NewDigest([]byte("c"))

	assert.True(t, merkle.MerkleRoot(nil).IsZero(), "empty tree")
	assert.Equal(t, a, merkle.MerkleRoot([]merkle.Digest{a}), "single id")
	assert.Equal(t, pair(a, b), merkle.MerkleRoot([]merkle.Digest{a, b}), "two ids")
	assert.Equal(t, pair(pair(a, b), pair(c, c)), merkle.MerkleRoot([]merkle.Digest{a, b, c}), "odd count")
}

func TestFullTreeLength(t *testing.T) {
	ids := make([]merkle.Digest, 5)
	for i := range ids {
		ids[i] = merkle.NewDigest([]byte{byte(i)})
	}
	// 5 ids + 3 + 2 + 1 root
	tree := merkle.FullMerkleTree(ids)
	assert.Equal(t, 11, len(tree))
	assert.Equal(t, ids, tree[:5], "ids must lead the tree")
}
