// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache - bounded least recently used object pool
//
//  ***** Data Structure *****
//
//  index    map[uint64]int32      key -> slot number
//  slots    []slot                fixed arena, len == capacity
//
//  head -> slot -> slot -> … -> slot <- tail
//          (most recent)         (next eviction candidate)
//
//  the recency list is expressed as prev/next slot numbers inside the
//  arena, removed slots are chained onto a free list through next
//
//  ***** Purpose *****
//
//  keep deserialised records for the most recently touched logical
//  indices of a sequence store so that hot records are not decoded
//  again on every read
package cache
