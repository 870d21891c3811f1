// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/blockrecord"
	"github.com/bitmark-inc/ledgerd/merkle"
	"github.com/bitmark-inc/ledgerd/sequence"
)

// summary of the sequence files
type statsReply struct {
	Records     uint64 `json:"records"`
	EndOffset   uint64 `json:"endOffset"`
	FirstOffset uint64 `json:"firstOffset"`
	LastOffset  uint64 `json:"lastOffset"`
	LargestSize uint64 `json:"largestSize"`
	AverageSize uint64 `json:"averageSize"`
}

// one dumped block
type blockReply struct {
	Digest merkle.Digest      `json:"digest"`
	Offset uint64             `json:"offset"`
	Entry  *blockrecord.Entry `json:"entry"`
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

func runStats(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	return printJson(m.w, summarise(m.store.Offsets(), m.store.EndOffset()))
}

// offsets holds the start of every record
func summarise(offsets []uint64, end uint64) statsReply {
	reply := statsReply{
		Records:   uint64(len(offsets)),
		EndOffset: end,
	}
	if 0 == len(offsets) {
		return reply
	}

	reply.FirstOffset = offsets[0]
	reply.LastOffset = offsets[len(offsets)-1]
	for i, start := range offsets {
		next := end
		if i+1 < len(offsets) {
			next = offsets[i+1]
		}
		if size := next - start; size > reply.LargestSize {
			reply.LargestSize = size
		}
	}
	reply.AverageSize = (end - reply.FirstOffset) / reply.Records
	return reply
}

func runBlocks(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	start := c.Uint64("start")
	count := c.Int("count")
	reverse := c.Bool("reverse")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "start block: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
		fmt.Fprintf(m.e, "reverse: %t\n", reverse)
	}

	blocks, err := dumpBlocks(m.store, start, count, reverse)
	if nil != err {
		return err
	}
	return printJson(m.w, blocks)
}

func runBlock(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	height := c.Uint64("height")
	blocks, err := dumpBlocks(m.store, height, 1, false)
	if nil != err {
		return err
	}
	if 0 == len(blocks) {
		return fmt.Errorf("block not found: %d", height)
	}
	return printJson(m.w, blocks[0])
}

// up to count blocks from start, empty when start is beyond the end
// reverse walks down from start, beginning at the last block if start
// is beyond the end
func dumpBlocks(store *sequence.Store[*blockrecord.Entry], start uint64, count int, reverse bool) ([]blockReply, error) {
	offsets := store.Offsets()
	blocks := make([]blockReply, 0, count)

	if reverse && start >= store.Len() && store.Len() > 0 {
		start = store.Len() - 1
	}

	c := store.NewCursor()
	for ok := c.Seek(start); ok && len(blocks) < count; {
		entry, err := c.Record()
		if nil != err {
			return nil, fmt.Errorf("block: %d  error: %w", c.Position(), err)
		}
		digest, err := entry.Digest()
		if nil != err {
			return nil, err
		}
		blocks = append(blocks, blockReply{
			Digest: digest,
			Offset: offsets[c.Position()],
			Entry:  entry,
		})
		if reverse {
			ok = c.Prev()
		} else {
			ok = c.Next()
		}
	}
	return blocks, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
