// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

// FullMerkleTree - compute the tree from a set of transaction ids
//
// structure is:
//   1. N * transaction digests
//   2. level 1..m digests
//   3. merkle root digest
func FullMerkleTree(txIds []Digest) []Digest {

	idCount := len(txIds)

	totalLength := 1 // all ids + space for the final root
	for n := idCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	tree := make([]Digest, totalLength)
	copy(tree, txIds)

	n := idCount
	j := 0
	for workLength := idCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // odd node is paired with itself
			}
			pair := make([]byte, 0, 2*DigestLength)
			pair = append(pair, tree[j][:]...)
			pair = append(pair, tree[k][:]...)
			tree[n] = NewDigest(pair)
			n += 1
			j = k + 1
		}
	}
	return tree
}

// MerkleRoot - the last element of the full tree, zero digest for no ids
func MerkleRoot(txIds []Digest) Digest {
	tree := FullMerkleTree(txIds)
	return tree[len(tree)-1]
}
