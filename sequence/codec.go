// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

import (
	"fmt"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Codec - conversion between a record and its stored bytes
//
// Pack must be deterministic.  The packed form must be self
// delimiting: Unpack reads from the start of buffer and returns the
// number of bytes it consumed, which must equal the length Pack
// produced.  Malformed input must return an error.
type Codec[T any] interface {
	Pack(record T) ([]byte, error)
	Unpack(buffer []byte) (T, int, error)
}

// decode one stored record, the whole buffer must be consumed
func unpackExact[T any](codec Codec[T], buffer []byte) (T, error) {
	record, n, err := codec.Unpack(buffer)
	if nil != err {
		var zero T
		if fault.IsErrRecord(err) {
			return zero, err
		}
		return zero, fmt.Errorf("%w: %v", fault.ErrCorruptRecord, err)
	}
	if n != len(buffer) {
		var zero T
		return zero, fmt.Errorf("%w: consumed: %d  stored size: %d", fault.ErrCorruptRecord, n, len(buffer))
	}
	return record, nil
}
