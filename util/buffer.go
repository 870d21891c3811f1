// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"

	"github.com/bitmark-inc/ledgerd/fault"
)

// MaximumFieldLength - upper bound for any length prefixed field
const MaximumFieldLength = 1 << 24

// PackBuffer - accumulates a self-delimiting record
//
// every variable field is preceded by its Varint64 length so a reader
// positioned at the start never needs an external length hint
type PackBuffer []byte

// AppendUint64 - add a Varint64 value
func (p PackBuffer) AppendUint64(value uint64) PackBuffer {
	return AppendVarint64(p, value)
}

// AppendBytes - add a length prefixed byte string
func (p PackBuffer) AppendBytes(data []byte) PackBuffer {
	p = AppendVarint64(p, uint64(len(data)))
	return append(p, data...)
}

// AppendFixed - add bytes whose length is implied by the field type
func (p PackBuffer) AppendFixed(data []byte) PackBuffer {
	return append(p, data...)
}

// UnpackBuffer - reads fields written by PackBuffer
type UnpackBuffer struct {
	buffer []byte
	n      int
}

// NewUnpackBuffer - start reading at the beginning of buffer
func NewUnpackBuffer(buffer []byte) *UnpackBuffer {
	return &UnpackBuffer{buffer: buffer}
}

// Consumed - number of bytes read so far
func (u *UnpackBuffer) Consumed() int {
	return u.n
}

// Remaining - number of unread bytes
func (u *UnpackBuffer) Remaining() int {
	return len(u.buffer) - u.n
}

// Uint64 - read a Varint64 value
func (u *UnpackBuffer) Uint64(field string) (uint64, error) {
	value, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		return 0, fmt.Errorf("%w: truncated %s", fault.ErrCorruptRecord, field)
	}
	u.n += count
	return value, nil
}

// Uint8 - read a Varint64 value that must fit a byte
func (u *UnpackBuffer) Uint8(field string) (uint8, error) {
	value, err := u.Uint64(field)
	if nil != err {
		return 0, err
	}
	if value > 0xff {
		return 0, fmt.Errorf("%w: %s out of range: %d", fault.ErrCorruptRecord, field, value)
	}
	return uint8(value), nil
}

// Count - read a Varint64 element count, bounded by maximum
func (u *UnpackBuffer) Count(field string, maximum int) (int, error) {
	value, err := u.Uint64(field)
	if nil != err {
		return 0, err
	}
	if value > uint64(maximum) {
		return 0, fmt.Errorf("%w: %s count too large: %d", fault.ErrCorruptRecord, field, value)
	}
	return int(value), nil
}

// Bytes - read a length prefixed byte string, the result is a copy
func (u *UnpackBuffer) Bytes(field string) ([]byte, error) {
	length, err := u.Count(field, MaximumFieldLength)
	if nil != err {
		return nil, err
	}
	return u.Fixed(field, length)
}

// Fixed - read exactly length bytes, the result is a copy
func (u *UnpackBuffer) Fixed(field string, length int) ([]byte, error) {
	if length < 0 || length > u.Remaining() {
		return nil, fmt.Errorf("%w: truncated %s", fault.ErrCorruptRecord, field)
	}
	data := make([]byte, length)
	copy(data, u.buffer[u.n:u.n+length])
	u.n += length
	return data, nil
}

// Unread - the bytes not yet consumed, not a copy
func (u *UnpackBuffer) Unread() []byte {
	return u.buffer[u.n:]
}

// Skip - consume bytes read through Unread
func (u *UnpackBuffer) Skip(field string, length int) error {
	if length < 0 || length > u.Remaining() {
		return fmt.Errorf("%w: truncated %s", fault.ErrCorruptRecord, field)
	}
	u.n += length
	return nil
}
