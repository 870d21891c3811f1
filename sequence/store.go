// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ledgerd/cache"
	"github.com/bitmark-inc/ledgerd/fault"
)

// Store - a persistent sequence of records of one type
type Store[T any] struct {
	log     *logger.L
	codec   Codec[T]
	index   *indexFile
	items   *itemsFile
	offsets offsetTable
	pool    *cache.LRU[T]
}

// Open - attach to the index and items files, creating or recovering
// them as needed
//
// capacity is the maximum number of decoded records kept in memory
func Open[T any](indexPath string, itemsPath string, codec Codec[T], capacity int) (*Store[T], error) {
	if nil == codec {
		return nil, fault.ErrInvalidStructPointer
	}
	if capacity < 0 {
		return nil, fault.ErrInvalidCapacity
	}

	log := logger.New("sequence")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	items, created, err := openItemsFile(itemsPath)
	if nil != err {
		log.Criticalf("items: %q  error: %s", itemsPath, err)
		return nil, err
	}

	ok := false
	defer func() {
		if !ok {
			items.close()
		}
	}()

	index, err := openIndexFile(indexPath)
	if nil != err {
		log.Criticalf("index: %q  error: %s", indexPath, err)
		return nil, err
	}
	defer func() {
		if !ok {
			index.close()
		}
	}()

	// a missing items file is a fresh start
	if created && 0 != index.count {
		log.Warnf("items: %q  was missing, discard index count: %d", itemsPath, index.count)
		if err := index.reset(); nil != err {
			return nil, err
		}
	}

	sizes, err := index.readSizes()
	if nil != err {
		log.Criticalf("index: %q  count: %d  error: %s", indexPath, index.count, err)
		return nil, err
	}
	offsets := buildOffsets(sizes)

	if items.size < offsets.end {
		log.Criticalf("items: %q  length: %d  shorter than indexed end: %d", itemsPath, items.size, offsets.end)
		return nil, fault.ErrCorruptIndex
	}
	if items.size > offsets.end {
		log.Warnf("items: %q  ignoring %d unreferenced bytes after offset: %d", itemsPath, items.size-offsets.end, offsets.end)
	}

	log.Infof("opened: %q  records: %d  end offset: %d  cache: %d", itemsPath, offsets.length(), offsets.end, capacity)

	ok = true
	s := &Store[T]{
		log:     log,
		codec:   codec,
		index:   index,
		items:   items,
		offsets: offsets,
		pool:    cache.New[T](capacity),
	}
	return s, nil
}

// Close - release both files and report cache effectiveness
func (s *Store[T]) Close() error {
	if nil == s.index {
		return fault.ErrNotInitialised
	}

	stats := s.pool.Stats()
	if total := stats.Hits + stats.Misses; 0 == total {
		s.log.Infof("closing: %q  records: %d  no reads", s.items.path, s.offsets.length())
	} else {
		s.log.Infof("closing: %q  records: %d  hits: %d  misses: %d  hit ratio: %.2f%%", s.items.path, s.offsets.length(), stats.Hits, stats.Misses, stats.Ratio())
	}
	s.log.Flush()

	err1 := s.index.close()
	err2 := s.items.close()
	s.index = nil
	s.items = nil
	s.pool.Clear()

	if nil != err1 {
		return err1
	}
	return err2
}

// IsEmpty - true if no records
func (s *Store[T]) IsEmpty() bool {
	return 0 == s.offsets.length()
}

// Len - number of records
func (s *Store[T]) Len() uint64 {
	return s.offsets.length()
}

// EndOffset - byte offset where the next record will be written
func (s *Store[T]) EndOffset() uint64 {
	return s.offsets.end
}

// Offsets - a copy of the start offset of every record
func (s *Store[T]) Offsets() []uint64 {
	o := make([]uint64, len(s.offsets.offsets))
	copy(o, s.offsets.offsets)
	return o
}

// Stats - cache hits and misses since open
func (s *Store[T]) Stats() cache.Stats {
	return s.pool.Stats()
}

// Resident - number of decoded records held in memory
func (s *Store[T]) Resident() int {
	return s.pool.Len()
}

// Get - record at a logical index
//
// the result may be shared with the cache, callers must not modify it
func (s *Store[T]) Get(i uint64) (T, error) {
	var zero T
	if nil == s.index {
		return zero, fault.ErrNotInitialised
	}
	if i >= s.offsets.length() {
		return zero, fault.ErrIndexOutOfRange
	}

	if record, ok := s.pool.Get(i); ok {
		return record, nil
	}

	offset, size := s.offsets.span(i)
	buffer, err := s.items.readAt(offset, size)
	if nil != err {
		s.log.Errorf("read: %d  offset: %d  size: %d  error: %s", i, offset, size, err)
		return zero, err
	}

	record, err := unpackExact(s.codec, buffer)
	if nil != err {
		s.log.Errorf("decode: %d  offset: %d  size: %d  error: %s", i, offset, size, err)
		return zero, err
	}

	s.pool.Put(i, record)
	return record, nil
}

// First - record at index zero
func (s *Store[T]) First() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, fault.ErrEmptyStore
	}
	return s.Get(0)
}

// Last - record at the highest index
func (s *Store[T]) Last() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, fault.ErrEmptyStore
	}
	return s.Get(s.offsets.length() - 1)
}

// Append - store a record at index Len()
func (s *Store[T]) Append(record T) error {
	if nil == s.index {
		return fault.ErrNotInitialised
	}

	buffer, err := s.codec.Pack(record)
	if nil != err {
		return err
	}
	if uint64(len(buffer)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", fault.ErrRecordTooLarge, len(buffer))
	}
	size := uint32(len(buffer))

	// items first: a crash before the index update leaves
	// unreferenced bytes that the next append overwrites
	if _, err := s.items.appendAt(s.offsets.end, buffer); nil != err {
		s.log.Errorf("append items: offset: %d  error: %s", s.offsets.end, err)
		return err
	}
	if err := s.index.appendSize(size); nil != err {
		s.log.Errorf("append index: count: %d  error: %s", s.index.count, err)
		return err
	}

	i := s.offsets.length()
	s.offsets.push(size)
	s.pool.Put(i, record)

	s.log.Debugf("append: %d  size: %d", i, size)
	return nil
}

// TruncateLast - remove the record at the highest index
func (s *Store[T]) TruncateLast() error {
	if nil == s.index {
		return fault.ErrNotInitialised
	}
	if s.IsEmpty() {
		return fault.ErrEmptyStore
	}
	if err := s.index.truncateLast(); nil != err {
		return err
	}

	last := s.offsets.length() - 1
	s.offsets.pop()
	s.pool.Remove(last)

	s.log.Debugf("truncate: %d  end offset: %d", last, s.offsets.end)
	return nil
}

// Clear - remove every record
func (s *Store[T]) Clear() error {
	if nil == s.index {
		return fault.ErrNotInitialised
	}
	if err := s.index.reset(); nil != err {
		return err
	}
	s.offsets.clear()
	s.pool.Clear()

	s.log.Info("cleared")
	return nil
}

// Map - call f for each record from start to the end, stops at the first error
func (s *Store[T]) Map(start uint64, f func(i uint64, record T) error) error {
	c := s.NewCursor()
	for ok := c.Seek(start); ok; ok = c.Next() {
		record, err := c.Record()
		if nil != err {
			return err
		}
		if err := f(c.Position(), record); nil != err {
			return err
		}
	}
	return nil
}
