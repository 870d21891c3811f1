// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

// in-memory start offset of each record plus the end of the last one
type offsetTable struct {
	offsets []uint64
	end     uint64
}

// running sum of sizes: offset[0] = 0, offset[i] = offset[i-1] + size[i-1]
func buildOffsets(sizes []uint32) offsetTable {
	t := offsetTable{
		offsets: make([]uint64, 0, len(sizes)),
	}
	for _, size := range sizes {
		t.push(size)
	}
	return t
}

func (t *offsetTable) length() uint64 {
	return uint64(len(t.offsets))
}

// byte range of record i, caller has bounds checked i
func (t *offsetTable) span(i uint64) (uint64, uint64) {
	start := t.offsets[i]
	finish := t.end
	if i+1 < uint64(len(t.offsets)) {
		finish = t.offsets[i+1]
	}
	return start, finish - start
}

func (t *offsetTable) push(size uint32) {
	t.offsets = append(t.offsets, t.end)
	t.end += uint64(size)
}

// drop the last record, end rewinds to its start
func (t *offsetTable) pop() {
	last := len(t.offsets) - 1
	t.end = t.offsets[last]
	t.offsets = t.offsets[:last]
}

func (t *offsetTable) clear() {
	t.offsets = t.offsets[:0]
	t.end = 0
}
