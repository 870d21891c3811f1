// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/bitmark-inc/ledgerd/blockrecord"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/merkle"
)

// Verify - walk the whole chain checking heights, digest links and
// transaction ids, returns the number of blocks checked
func Verify() (uint64, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0, fault.ErrNotInitialised
	}

	previous := merkle.Digest{}
	n := uint64(0)
	err := globalData.store.Map(0, func(i uint64, entry *blockrecord.Entry) error {
		if entry.Height != i {
			return fmt.Errorf("block: %d: %w: recorded: %d", i, fault.ErrBlockHeightMismatch, entry.Height)
		}
		if entry.Block.PreviousBlock != previous {
			return fmt.Errorf("block: %d: %w", i, fault.ErrPreviousBlockDigestMismatch)
		}
		if err := entry.Validate(); nil != err {
			return fmt.Errorf("block: %d: %w", i, err)
		}
		digest, err := entry.Digest()
		if nil != err {
			return fmt.Errorf("block: %d: %w", i, err)
		}
		if _, ok := globalData.policy.CheckBlock(i, digest); !ok {
			return fmt.Errorf("block: %d: %w", i, fault.ErrCheckpointMismatch)
		}
		previous = digest
		n += 1
		return nil
	})
	if nil != err {
		globalData.log.Errorf("verify: %s", err)
		return n, err
	}

	if previous != globalData.lastDigest {
		return n, fmt.Errorf("last block: %w", fault.ErrPreviousBlockDigestMismatch)
	}

	globalData.log.Infof("verified: %d blocks", n)
	return n, nil
}
