// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sequence - indexed append-only record store
//
// A Store presents a disk resident list of serialised records as a
// random access sequence 0..N-1.  Two files back each store:
//
//   index file:  u64 count ++ u32 size[0] ++ u32 size[1] ++ … ++ u32 size[count-1]
//   items file:  record[0] ++ record[1] ++ … ++ record[count-1]
//
// Notes:
// 1. all integers are little endian
// 2. offsets are never written, they are the running sum of sizes
// 3. bytes beyond 8 + 4*count in the index file and beyond the end
//    offset in the items file are residue of truncation or of a torn
//    write and are never read
//
// Write ordering for an append:
//
//   items bytes -> sync -> size entry -> sync -> header count -> sync
//
// so a crash at any point leaves the header describing only records
// whose bytes are durable.
//
// A Store is not safe for concurrent use; callers serialise every
// operation with their own lock.
package sequence
