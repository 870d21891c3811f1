// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package policy holds the read-only tables that decide which block
// version applies at a height and which block digests are fixed
package policy

import (
	"sort"

	"github.com/bitmark-inc/ledgerd/chain"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/merkle"
)

// Upgrade - blocks from Height onwards must carry MajorVersion
type Upgrade struct {
	Height       uint64
	MajorVersion uint8
}

// Table - version and checkpoint policy of one chain
type Table struct {
	Upgrades    []Upgrade
	Checkpoints map[uint64]merkle.Digest
}

// upgrade schedules, first entry must be height zero
var schedules = map[string][]Upgrade{
	chain.Bitmark: {
		{Height: 0, MajorVersion: 1},
		{Height: 1009827, MajorVersion: 2},
	},
	chain.Testing: {
		{Height: 0, MajorVersion: 1},
		{Height: 624634, MajorVersion: 2},
	},
	chain.Local: {
		{Height: 0, MajorVersion: 1},
	},
}

// ForChain - policy of a named chain
//
// the result is a copy, callers may extend it
func ForChain(name string) (*Table, error) {
	schedule, ok := schedules[name]
	if !ok {
		return nil, fault.ErrInvalidChain
	}
	return New(schedule, nil), nil
}

// New - table from an upgrade schedule and checkpoints
func New(upgrades []Upgrade, checkpoints map[uint64]merkle.Digest) *Table {
	t := &Table{
		Upgrades:    make([]Upgrade, len(upgrades)),
		Checkpoints: make(map[uint64]merkle.Digest, len(checkpoints)),
	}
	copy(t.Upgrades, upgrades)
	sort.Slice(t.Upgrades, func(i, j int) bool {
		return t.Upgrades[i].Height < t.Upgrades[j].Height
	})
	for height, digest := range checkpoints {
		t.Checkpoints[height] = digest
	}
	return t
}

// MajorVersionAt - block version required at height
//
// heights before the first upgrade get version 1
func (t *Table) MajorVersionAt(height uint64) uint8 {
	version := uint8(1)
	for _, u := range t.Upgrades {
		if u.Height > height {
			break
		}
		version = u.MajorVersion
	}
	return version
}

// Checkpoint - fixed digest at height, if any
func (t *Table) Checkpoint(height uint64) (merkle.Digest, bool) {
	digest, ok := t.Checkpoints[height]
	return digest, ok
}

// CheckBlock - compare a block digest against the checkpoint table
//
// ok is false only for a checkpoint height with a different digest
func (t *Table) CheckBlock(height uint64, digest merkle.Digest) (isCheckpoint bool, ok bool) {
	expected, found := t.Checkpoints[height]
	if !found {
		return false, true
	}
	return true, expected == digest
}
