// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sequence

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/bitmark-inc/ledgerd/fault"
)

// index file layout
const (
	headerSize = 8 // u64 count
	entrySize  = 4 // u32 record size

	// entries read per system call while rebuilding offsets
	readBatch = 16384
)

// count header and per record sizes
type indexFile struct {
	path  string
	file  *os.File
	count uint64
}

// open an existing index or create one holding a zero count
func openIndexFile(path string) (*indexFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if nil != err {
		return nil, fault.NewIOError("open", path, err)
	}

	x := &indexFile{
		path: path,
		file: f,
	}

	info, err := f.Stat()
	if nil != err {
		f.Close()
		return nil, fault.NewIOError("stat", path, err)
	}

	switch size := info.Size(); {
	case 0 == size:
		err = x.writeHeader(0)
	case size < headerSize:
		err = fault.ErrCorruptIndex
	default:
		err = x.readHeader()
	}
	if nil != err {
		f.Close()
		return nil, err
	}
	return x, nil
}

func (x *indexFile) close() error {
	if nil == x.file {
		return nil
	}
	err := x.file.Close()
	x.file = nil
	return fault.NewIOError("close", x.path, err)
}

func (x *indexFile) readHeader() error {
	buffer := make([]byte, headerSize)
	if _, err := x.file.ReadAt(buffer, 0); nil != err {
		return fault.NewIOError("read header", x.path, err)
	}
	x.count = binary.LittleEndian.Uint64(buffer)
	return nil
}

// readSizes - exactly count sizes in file order
//
// entries beyond count are ignored
func (x *indexFile) readSizes() ([]uint32, error) {
	sizes := make([]uint32, 0, x.count)
	buffer := make([]byte, readBatch*entrySize)

	for n := uint64(0); n < x.count; {
		batch := x.count - n
		if batch > readBatch {
			batch = readBatch
		}
		b := buffer[:batch*entrySize]
		_, err := x.file.ReadAt(b, int64(headerSize+n*entrySize))
		if io.EOF == err || io.ErrUnexpectedEOF == err {
			return nil, fault.ErrCorruptIndex
		}
		if nil != err {
			return nil, fault.NewIOError("read sizes", x.path, err)
		}
		for i := 0; i < len(b); i += entrySize {
			sizes = append(sizes, binary.LittleEndian.Uint32(b[i:]))
		}
		n += batch
	}
	return sizes, nil
}

// appendSize - durable size entry first, then the incremented count
func (x *indexFile) appendSize(size uint32) error {
	if err := x.writeEntry(x.count, size); nil != err {
		return err
	}
	return x.writeHeader(x.count + 1)
}

// truncateLast - the trailing entry stays on disk but is unreachable
func (x *indexFile) truncateLast() error {
	if 0 == x.count {
		return fault.ErrEmptyStore
	}
	return x.writeHeader(x.count - 1)
}

func (x *indexFile) reset() error {
	return x.writeHeader(0)
}

func (x *indexFile) writeEntry(n uint64, size uint32) error {
	buffer := make([]byte, entrySize)
	binary.LittleEndian.PutUint32(buffer, size)
	if _, err := x.file.WriteAt(buffer, int64(headerSize+n*entrySize)); nil != err {
		return fault.NewIOError("write size", x.path, err)
	}
	return fault.NewIOError("sync size", x.path, syncData(x.file))
}

func (x *indexFile) writeHeader(count uint64) error {
	buffer := make([]byte, headerSize)
	binary.LittleEndian.PutUint64(buffer, count)
	if _, err := x.file.WriteAt(buffer, 0); nil != err {
		return fault.NewIOError("write header", x.path, err)
	}
	if err := syncData(x.file); nil != err {
		return fault.NewIOError("sync header", x.path, err)
	}
	x.count = count
	return nil
}
